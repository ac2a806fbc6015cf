package model

import "time"

// Reservation records a guest's booking of a single room for a date
// range.  Reservations are immutable once appended to the ledger and are
// never deleted or modified; they accumulate for the lifetime of the
// process.  The total is priced at booking time from the room's nightly
// rate, so a later rate change would not affect past reservations.
//
// Fields:
//  ID         - unique reservation identifier from a monotonic counter.
//  RoomID     - identifier of the booked room.
//  GuestName  - name supplied by the guest; matched case-insensitively.
//  CheckIn    - check-in date (day granularity, UTC).
//  CheckOut   - check-out date (day granularity, UTC).
//  TotalCents - total price in cents: nights x nightly rate.
//  CreatedAt  - timestamp when the reservation was recorded.
type Reservation struct {
	ID         uint64    `json:"id"`
	RoomID     uint64    `json:"room_id"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalCents uint32    `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// Total returns the reservation total in whole currency units.
func (r Reservation) Total() float64 {
	return float64(r.TotalCents) / 100
}
