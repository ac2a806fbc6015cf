package model

// Room represents a bookable hotel room in the inventory.  Rooms are
// seeded once when the store is created and are never deleted; the only
// field that changes over the life of the process is Available, which is
// flipped when a reservation is made.
//
// Fields:
//  ID        - unique room identifier, assigned at store construction.
//  Category  - room category label (e.g. "Single", "Double", "Suite").
//  RateCents - price per night in cents.
//  Available - whether the room can currently be booked.
type Room struct {
	ID        uint64 `json:"id"`
	Category  string `json:"category"`
	RateCents uint32 `json:"rate_cents"`
	Available bool   `json:"available"`
}

// Rate returns the nightly rate in whole currency units.  Prices are kept
// in cents internally; the float form exists for rendering only.
func (r Room) Rate() float64 {
	return float64(r.RateCents) / 100
}
