package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

// AdminHandler serves operator endpoints: forcing a room's availability
// flag and inspecting the whole reservation ledger.  Routes using it
// sit behind JWT authentication with the ADMIN role.
type AdminHandler struct {
	Rooms  *store.RoomStore
	Ledger *store.ReservationStore
}

// NewAdminHandler constructs an AdminHandler.  Both stores must be
// non-nil.
func NewAdminHandler(rooms *store.RoomStore, ledger *store.ReservationStore) *AdminHandler {
	if rooms == nil || ledger == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Rooms: rooms, Ledger: ledger}
}

type updateAvailabilityReq struct {
	Available *bool `json:"available"`
}

// UpdateAvailability handles PATCH /v1/admin/rooms/:id/availability.
// Unknown room ids are reported as 404 rather than silently ignored,
// so the operator knows the flag was not written.
func (h *AdminHandler) UpdateAvailability(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req updateAvailabilityReq
	if err := c.Bind(&req); err != nil || req.Available == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available is required"})
	}
	if err := h.Rooms.SetAvailability(id, *req.Available); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	room, err := h.Rooms.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "room lookup failed"})
	}
	return c.JSON(http.StatusOK, toPublicRoom(room))
}

// ListReservations handles GET /v1/admin/reservations.  It returns the
// full ledger in insertion order.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	items := h.Ledger.ListAll()
	out := make([]reservationResp, 0, len(items))
	for _, r := range items {
		out = append(out, toReservationResp(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": out})
}
