// Package store owns the in-memory state of the reservation system: the
// room inventory and the append-only reservation ledger.  This file
// defines the sentinel errors shared by the stores so that higher layers
// such as handlers can distinguish failure scenarios.  For example,
// ErrRoomNotFound maps to an HTTP 404 while ErrRoomUnavailable maps to a
// 409 because the room exists but is already booked.
package store

import "errors"

// ErrRoomNotFound is returned when no room with the requested identifier
// exists in the inventory.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomUnavailable is returned when a booking is attempted against a
// room that is already marked unavailable.
var ErrRoomUnavailable = errors.New("room unavailable")
