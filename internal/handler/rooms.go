// Package handler exposes HTTP handlers for both public and admin
// endpoints.  This file defines the public room browsing API: anyone
// can list the inventory, fetch a room by id, or search available
// rooms by category.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

// RoomHandler serves read-only room endpoints against the in-memory
// inventory.
type RoomHandler struct {
	Rooms *store.RoomStore
}

// NewRoomHandler constructs a RoomHandler.  The store must be non-nil.
func NewRoomHandler(rooms *store.RoomStore) *RoomHandler {
	if rooms == nil {
		panic("nil store passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

// publicRoom is the wire shape of a room.  The nightly rate is exposed
// both in cents and in whole currency units so clients do not have to
// divide.
type publicRoom struct {
	ID        uint64  `json:"id"`
	Category  string  `json:"category"`
	RateCents uint32  `json:"rate_cents"`
	Rate      float64 `json:"rate"`
	Available bool    `json:"available"`
}

func toPublicRoom(r model.Room) publicRoom {
	return publicRoom{
		ID:        r.ID,
		Category:  r.Category,
		RateCents: r.RateCents,
		Rate:      r.Rate(),
		Available: r.Available,
	}
}

func toPublicRooms(rooms []model.Room) []publicRoom {
	out := make([]publicRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toPublicRoom(r))
	}
	return out
}

// ListRooms handles GET /v1/rooms.  It returns the whole inventory,
// including rooms that are currently booked.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"rooms": toPublicRooms(h.Rooms.List())})
}

// GetRoom handles GET /v1/rooms/:id.  Unknown ids yield 404.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Rooms.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	return c.JSON(http.StatusOK, toPublicRoom(room))
}

// SearchRooms handles GET /v1/rooms/search?category=.  The match is an
// exact, case-insensitive category comparison over available rooms; no
// match returns an empty list, not an error.
func (h *RoomHandler) SearchRooms(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	if category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category is required"})
	}
	rooms := h.Rooms.Search(category)
	return c.JSON(http.StatusOK, echo.Map{
		"category": category,
		"rooms":    toPublicRooms(rooms),
	})
}
