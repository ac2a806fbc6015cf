package store

import (
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// ReservationStore is the append-only ledger of reservations made during
// the process lifetime.  Entries are immutable once appended and are
// never removed.  Identifiers come from a monotonic counter owned by the
// store rather than from the current list length, so they stay unique
// even if the ledger were ever compacted.
type ReservationStore struct {
	mu     sync.RWMutex
	nextID uint64
	items  []model.Reservation
}

// NewReservationStore returns an empty ledger.
func NewReservationStore() *ReservationStore {
	return &ReservationStore{nextID: 1}
}

// Append records a new reservation and returns it with its assigned
// identifier and creation timestamp filled in.
func (s *ReservationStore) Append(roomID uint64, guest string, checkIn, checkOut time.Time, totalCents uint32) model.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := model.Reservation{
		ID:         s.nextID,
		RoomID:     roomID,
		GuestName:  guest,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalCents: totalCents,
		CreatedAt:  time.Now().UTC(),
	}
	s.nextID++
	s.items = append(s.items, res)
	return res
}

// ListByGuest returns all reservations whose guest name matches the
// given name case-insensitively, in ledger insertion order.  No match
// yields an empty slice.
func (s *ReservationStore) ListByGuest(name string) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, 0)
	for _, res := range s.items {
		if strings.EqualFold(res.GuestName, name) {
			out = append(out, res)
		}
	}
	return out
}

// ListAll returns a snapshot of the whole ledger in insertion order.
func (s *ReservationStore) ListAll() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.items))
	copy(out, s.items)
	return out
}

// Count reports how many reservations have been recorded.
func (s *ReservationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
