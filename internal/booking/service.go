// Package booking orchestrates reservations against the room inventory
// and the reservation ledger.  It owns the pricing rule (nights times
// the nightly rate at booking time) and the availability transition.
package booking

import (
	"time"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

// Service books rooms.  Both stores must be non-nil; construction
// panics otherwise, mirroring how handlers reject nil repositories.
type Service struct {
	rooms  *store.RoomStore
	ledger *store.ReservationStore
}

// New returns a booking service bound to the given stores.
func New(rooms *store.RoomStore, ledger *store.ReservationStore) *Service {
	if rooms == nil || ledger == nil {
		panic("nil store passed to booking.New")
	}
	return &Service{rooms: rooms, ledger: ledger}
}

// Nights returns the whole-day difference between check-in and
// check-out, floored at 1.  Equal dates, or a check-out before the
// check-in, still count as one night: the floor is a pricing rule, not
// a validation error.
func Nights(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn) / (24 * time.Hour))
	if n < 1 {
		return 1
	}
	return n
}

// Book reserves the room for the guest over the given date range.  The
// availability check and the flip to unavailable happen atomically in
// the room store, then the reservation is appended to the ledger.  The
// returned reservation carries the total priced at the room's current
// nightly rate.  Fails with store.ErrRoomNotFound when the room does
// not exist and store.ErrRoomUnavailable when it is already booked; no
// reservation is recorded in either case.
func (s *Service) Book(roomID uint64, guestName string, checkIn, checkOut time.Time) (model.Reservation, error) {
	room, err := s.rooms.Reserve(roomID)
	if err != nil {
		return model.Reservation{}, err
	}
	nights := Nights(checkIn, checkOut)
	total := uint32(nights) * room.RateCents
	return s.ledger.Append(roomID, guestName, checkIn, checkOut, total), nil
}

// FindByGuest returns the guest's reservations in booking order.  The
// name comparison is case-insensitive; an unknown guest yields an empty
// slice, not an error.
func (s *Service) FindByGuest(guestName string) []model.Reservation {
	return s.ledger.ListByGuest(guestName)
}
