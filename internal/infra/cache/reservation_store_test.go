package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReservationStore(t *testing.T) {
	userID := uuid.New()

	t.Run("consume returns the payload once", func(t *testing.T) {
		store := NewReservationStore()
		store.Set(userID, `{"data":{"order_id":"SB-1"}}`, time.Minute)

		payload, ok := store.Consume(userID)
		assert.True(t, ok)
		assert.Equal(t, `{"data":{"order_id":"SB-1"}}`, payload)

		_, ok = store.Consume(userID)
		assert.False(t, ok, "second consume should miss")
	})

	t.Run("expired reservations are not returned", func(t *testing.T) {
		store := NewReservationStore()
		store.Set(userID, "payload", -time.Second)

		_, ok := store.Consume(userID)
		assert.False(t, ok)
	})

	t.Run("sweep reclaims abandoned reservations", func(t *testing.T) {
		store := NewReservationStore().(*ReservationStore)
		store.Set(userID, "abandoned", time.Minute)
		store.Set(uuid.New(), "also abandoned", time.Minute)
		live := uuid.New()
		store.Set(live, "live", time.Hour)

		store.sweep(time.Now().Add(30 * time.Minute))

		store.mu.RLock()
		remaining := len(store.data)
		store.mu.RUnlock()
		assert.Equal(t, 1, remaining, "only the unexpired entry should survive")

		payload, ok := store.Consume(live)
		assert.True(t, ok)
		assert.Equal(t, "live", payload)
	})

	t.Run("a second set overwrites the first", func(t *testing.T) {
		store := NewReservationStore()
		store.Set(userID, "first", time.Minute)
		store.Set(userID, "second", time.Minute)

		payload, ok := store.Consume(userID)
		assert.True(t, ok)
		assert.Equal(t, "second", payload)
	})

	t.Run("clear drops without reading", func(t *testing.T) {
		store := NewReservationStore()
		store.Set(userID, "payload", time.Minute)
		store.Clear(userID)

		_, ok := store.Consume(userID)
		assert.False(t, ok)
	})

	t.Run("keys are scoped per user", func(t *testing.T) {
		store := NewReservationStore()
		other := uuid.New()
		store.Set(userID, "mine", time.Minute)

		_, ok := store.Consume(other)
		assert.False(t, ok)

		payload, ok := store.Consume(userID)
		assert.True(t, ok)
		assert.Equal(t, "mine", payload)
	})
}
