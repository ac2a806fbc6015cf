package store

import (
	"strings"
	"sync"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// RoomStore holds the authoritative list of rooms and their live
// availability.  All state lives in memory for the lifetime of the
// process.  A single RWMutex guards the slice; every method returns
// copies so callers never hold references into the store.
type RoomStore struct {
	mu    sync.RWMutex
	rooms []model.Room
}

// DefaultRooms returns the seed inventory used when no explicit room list
// is supplied: three rooms with ascending identifiers starting at 1.
func DefaultRooms() []model.Room {
	return []model.Room{
		{ID: 1, Category: "Single", RateCents: 10000, Available: true},
		{ID: 2, Category: "Double", RateCents: 15000, Available: true},
		{ID: 3, Category: "Suite", RateCents: 30000, Available: true},
	}
}

// NewRoomStore builds a store seeded with the given rooms.  The input
// slice is copied; insertion order is preserved and determines the order
// of Search and List results.  Every seeded room starts available unless
// the seed says otherwise.
func NewRoomStore(rooms []model.Room) *RoomStore {
	s := &RoomStore{rooms: make([]model.Room, len(rooms))}
	copy(s.rooms, rooms)
	return s
}

// Search returns all rooms that are currently available and whose
// category matches the requested one case-insensitively, in insertion
// order.  No match yields an empty slice, never an error.
func (s *RoomStore) Search(category string) []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, 0)
	for _, r := range s.rooms {
		if r.Available && strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}

// List returns a snapshot of the whole inventory in insertion order,
// including rooms that are currently unavailable.
func (s *RoomStore) List() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// GetByID returns the room with the given identifier or ErrRoomNotFound.
func (s *RoomStore) GetByID(id uint64) (model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Room{}, ErrRoomNotFound
}

// SetAvailability overwrites the availability flag of the room with the
// given identifier.  Unknown identifiers return ErrRoomNotFound so the
// caller knows the update did not happen.
func (s *RoomStore) SetAvailability(id uint64, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i].Available = available
			return nil
		}
	}
	return ErrRoomNotFound
}

// Reserve atomically checks that the room exists and is available and
// marks it unavailable, returning the room as it was at the moment of
// the transition.  The check and the flip happen under one lock so two
// concurrent bookings of the same room cannot both succeed.  Returns
// ErrRoomNotFound for unknown identifiers and ErrRoomUnavailable when
// the room is already booked.
func (s *RoomStore) Reserve(id uint64) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		if !s.rooms[i].Available {
			return model.Room{}, ErrRoomUnavailable
		}
		s.rooms[i].Available = false
		return s.rooms[i], nil
	}
	return model.Room{}, ErrRoomNotFound
}
