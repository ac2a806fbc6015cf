package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/booking"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/payment"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	queue_publisher "github.com/iliyamo/hotel-room-reservation/internal/service"
	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

// dateLayout is the wire format for check-in and check-out dates.  The
// system works at day granularity; times within the day are not part of
// the contract.
const dateLayout = "2006-01-02"

// ReservationHandler serves booking and reservation-listing endpoints.
// Booking is a guest-facing operation: the guest identifies themselves
// by name in the request body, no account required.
type ReservationHandler struct {
	Booking  *booking.Service
	Rooms    *store.RoomStore
	Payments *payment.Gateway
	// Publish pushes the confirmation event to the broker.  Swappable
	// so tests do not need a running RabbitMQ.
	Publish func(c echo.Context, ev queue.ReservationConfirmedEvent)
}

// NewReservationHandler constructs a ReservationHandler wired to the
// real queue publisher.  All dependencies must be non-nil.
func NewReservationHandler(b *booking.Service, rooms *store.RoomStore, p *payment.Gateway) *ReservationHandler {
	if b == nil || rooms == nil || p == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Booking:  b,
		Rooms:    rooms,
		Payments: p,
		Publish: func(c echo.Context, ev queue.ReservationConfirmedEvent) {
			// Best effort: a broker outage must not fail the booking.
			if err := queue_publisher.PublishReservationConfirmed(c.Request().Context(), ev); err != nil {
				log.Printf("reservation: publish confirmation failed: %v", err)
			}
		},
	}
}

// ----- DTOs -----

type createReservationReq struct {
	RoomID         uint64 `json:"room_id"`
	GuestName      string `json:"guest_name"`
	CheckIn        string `json:"check_in"`  // YYYY-MM-DD
	CheckOut       string `json:"check_out"` // YYYY-MM-DD
	PaymentDetails string `json:"payment_details"`
}

type reservationResp struct {
	ID        uint64  `json:"id"`
	RoomID    uint64  `json:"room_id"`
	GuestName string  `json:"guest_name"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Total     float64 `json:"total"`
	CreatedAt string  `json:"created_at"`
}

func toReservationResp(r model.Reservation) reservationResp {
	return reservationResp{
		ID:        r.ID,
		RoomID:    r.RoomID,
		GuestName: r.GuestName,
		CheckIn:   r.CheckIn.Format(dateLayout),
		CheckOut:  r.CheckOut.Format(dateLayout),
		Total:     r.Total(),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// CreateReservation handles POST /v1/reservations.  It books the room,
// settles the total through the payment gateway and publishes the
// confirmation event.  A malformed date is a recoverable 400, an
// unknown room a 404 and an already-booked room a 409.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.RoomID == 0 || req.GuestName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id and guest_name are required"})
	}
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}

	res, err := h.Booking.Book(req.RoomID, req.GuestName, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, store.ErrRoomUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room unavailable"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}

	receipt, err := h.Payments.Charge(c.Request().Context(), req.PaymentDetails, int64(res.TotalCents))
	if err != nil || !receipt.Approved {
		// The stub gateway always approves; a real one can decline.  The
		// reservation is kept and marked for follow-up by the operator.
		log.Printf("reservation %d: payment not settled: approved=%v err=%v", res.ID, receipt.Approved, err)
		return c.JSON(http.StatusPaymentRequired, echo.Map{
			"error":       "payment declined",
			"reservation": toReservationResp(res),
		})
	}

	room, _ := h.Rooms.GetByID(res.RoomID)
	h.Publish(c, queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		RoomID:        res.RoomID,
		RoomCategory:  room.Category,
		GuestName:     res.GuestName,
		CheckIn:       res.CheckIn.Format(dateLayout),
		CheckOut:      res.CheckOut.Format(dateLayout),
		TotalCents:    res.TotalCents,
		Total:         res.Total(),
		PaymentRef:    receipt.Reference,
		ConfirmedAt:   receipt.ProcessedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"reservation": toReservationResp(res),
		"payment": echo.Map{
			"approved":  receipt.Approved,
			"reference": receipt.Reference,
		},
	})
}

// ListByGuest handles GET /v1/reservations?guest=.  The guest name is
// matched case-insensitively; an unknown guest gets an empty list.
func (h *ReservationHandler) ListByGuest(c echo.Context) error {
	guest := strings.TrimSpace(c.QueryParam("guest"))
	if guest == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest is required"})
	}
	items := h.Booking.FindByGuest(guest)
	out := make([]reservationResp, 0, len(items))
	for _, r := range items {
		out = append(out, toReservationResp(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"guest": guest, "reservations": out})
}
