// Package cache provides the in-memory shipment reservation store.
package cache

import (
	"sync"
	"time"

	"rocktea/internal/domain/service"

	"github.com/google/uuid"
)

type entry struct {
	payload   string
	expiresAt time.Time
}

// ReservationStore is a mutex-guarded TTL map keyed by user. Reservations are
// single-use: Consume removes what it returns. A second Set for the same user
// overwrites the first, so only the most recent held label survives.
type ReservationStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]entry
}

// sweepInterval bounds how long an abandoned reservation can outlive its TTL.
const sweepInterval = time.Minute

// NewReservationStore is the constructor for ReservationStore. It starts a
// janitor goroutine that reclaims expired entries for the process lifetime.
func NewReservationStore() service.ReservationStore {
	s := &ReservationStore{
		data: make(map[uuid.UUID]entry),
	}
	go s.janitor(sweepInterval)

	return s
}

func (s *ReservationStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.sweep(time.Now())
	}
}

// sweep drops every entry expired as of now.
func (s *ReservationStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, userID)
		}
	}
}

// Set stashes a reservation under the user's key for the given TTL.
func (s *ReservationStore) Set(userID uuid.UUID, payload string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = entry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
}

// Consume returns the reservation and removes it (single use). The boolean is
// false when the key is missing or expired.
func (s *ReservationStore) Consume(userID uuid.UUID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[userID]
	if !ok {
		return "", false
	}
	delete(s.data, userID)
	if time.Now().After(e.expiresAt) {
		return "", false
	}

	return e.payload, true
}

// Clear drops the reservation without reading it.
func (s *ReservationStore) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
