package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/booking"
	"github.com/iliyamo/hotel-room-reservation/internal/payment"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

// testReservationHandler wires the handler against fresh in-memory
// state with the broker publish captured instead of sent.
func testReservationHandler() (*ReservationHandler, *store.RoomStore, *[]queue.ReservationConfirmedEvent) {
	rooms := store.NewRoomStore(store.DefaultRooms())
	ledger := store.NewReservationStore()
	h := NewReservationHandler(booking.New(rooms, ledger), rooms, payment.New())

	published := &[]queue.ReservationConfirmedEvent{}
	h.Publish = func(_ echo.Context, ev queue.ReservationConfirmedEvent) {
		*published = append(*published, ev)
	}
	return h, rooms, published
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestCreateReservation_Success(t *testing.T) {
	h, rooms, published := testReservationHandler()

	rec := postJSON(t, h.CreateReservation, `{
		"room_id": 1,
		"guest_name": "Alice",
		"check_in": "2024-01-01",
		"check_out": "2024-01-03",
		"payment_details": "card 4242"
	}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Reservation reservationResp `json:"reservation"`
		Payment     struct {
			Approved  bool   `json:"approved"`
			Reference string `json:"reference"`
		} `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(1), body.Reservation.ID)
	assert.Equal(t, 200.0, body.Reservation.Total)
	assert.True(t, body.Payment.Approved)
	assert.NotEmpty(t, body.Payment.Reference)

	room, err := rooms.GetByID(1)
	require.NoError(t, err)
	assert.False(t, room.Available)

	require.Len(t, *published, 1)
	ev := (*published)[0]
	assert.Equal(t, uint64(1), ev.ReservationID)
	assert.Equal(t, "Single", ev.RoomCategory)
	assert.Equal(t, body.Payment.Reference, ev.PaymentRef)
}

func TestCreateReservation_RoomNotFound(t *testing.T) {
	h, _, published := testReservationHandler()

	rec := postJSON(t, h.CreateReservation, `{
		"room_id": 999,
		"guest_name": "Alice",
		"check_in": "2024-01-01",
		"check_out": "2024-01-02"
	}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, *published)
}

func TestCreateReservation_RoomUnavailable(t *testing.T) {
	h, _, _ := testReservationHandler()

	first := postJSON(t, h.CreateReservation, `{
		"room_id": 2,
		"guest_name": "Alice",
		"check_in": "2024-01-01",
		"check_out": "2024-01-02"
	}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, h.CreateReservation, `{
		"room_id": 2,
		"guest_name": "Bob",
		"check_in": "2024-02-01",
		"check_out": "2024-02-02"
	}`)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCreateReservation_BadDateIsRecoverable(t *testing.T) {
	h, rooms, _ := testReservationHandler()

	rec := postJSON(t, h.CreateReservation, `{
		"room_id": 1,
		"guest_name": "Alice",
		"check_in": "01/01/2024",
		"check_out": "2024-01-03"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A rejected request must not have reserved anything.
	room, err := rooms.GetByID(1)
	require.NoError(t, err)
	assert.True(t, room.Available)
}

func TestCreateReservation_SameDayStayChargesOneNight(t *testing.T) {
	h, _, _ := testReservationHandler()

	rec := postJSON(t, h.CreateReservation, `{
		"room_id": 3,
		"guest_name": "Alice",
		"check_in": "2024-01-01",
		"check_out": "2024-01-01"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Reservation reservationResp `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 300.0, body.Reservation.Total)
}

func TestListByGuest(t *testing.T) {
	h, _, _ := testReservationHandler()

	rec := postJSON(t, h.CreateReservation, `{
		"room_id": 1,
		"guest_name": "alice",
		"check_in": "2024-01-01",
		"check_out": "2024-01-03"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations?guest=Alice", nil)
	list := httptest.NewRecorder()
	require.NoError(t, h.ListByGuest(e.NewContext(req, list)))
	assert.Equal(t, http.StatusOK, list.Code)

	var body struct {
		Reservations []reservationResp `json:"reservations"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &body))
	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "alice", body.Reservations[0].GuestName)

	// Unknown guest: empty list, not an error.
	req = httptest.NewRequest(http.MethodGet, "/v1/reservations?guest=Bob", nil)
	empty := httptest.NewRecorder()
	require.NoError(t, h.ListByGuest(e.NewContext(req, empty)))
	assert.Equal(t, http.StatusOK, empty.Code)
	assert.Contains(t, empty.Body.String(), `"reservations":[]`)
}
