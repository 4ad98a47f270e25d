package service

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStore is the short-lived per-user binding between a pre-paid
// shipping label and the user it belongs to. Values are the provider's raw
// JSON response. A second reservation for the same user overwrites the first;
// the most recent wins.
type ReservationStore interface {
	// Set stashes a reservation under the user's key for the given TTL.
	Set(userID uuid.UUID, payload string, ttl time.Duration)

	// Consume returns the reservation and removes it (single use).
	// The boolean is false when the key is missing or expired.
	Consume(userID uuid.UUID) (string, bool)

	// Clear drops the reservation without reading it, so a failed checkout
	// does not leave the user bound to a held label.
	Clear(userID uuid.UUID)
}
