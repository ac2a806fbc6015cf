// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a booking succeeds and the
// payment is settled.  It carries enough information for downstream
// consumers to log or notify without reaching back into the service's
// in-process state.
type ReservationConfirmedEvent struct {
	ReservationID uint64  `json:"reservation_id"`
	RoomID        uint64  `json:"room_id"`
	RoomCategory  string  `json:"room_category"`
	GuestName     string  `json:"guest_name"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalCents    uint32  `json:"total_cents"`
	Total         float64 `json:"total"`
	PaymentRef    string  `json:"payment_ref"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
