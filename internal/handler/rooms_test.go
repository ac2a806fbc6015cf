package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/store"
)

func newRoomHandler() *RoomHandler {
	return NewRoomHandler(store.NewRoomStore(store.DefaultRooms()))
}

func TestRoomHandler_ListRooms(t *testing.T) {
	h := newRoomHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListRooms(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rooms []publicRoom `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 3)
	assert.Equal(t, 100.0, body.Rooms[0].Rate)
	assert.Equal(t, "Suite", body.Rooms[2].Category)
}

func TestRoomHandler_SearchRooms(t *testing.T) {
	h := newRoomHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/search?category=single", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SearchRooms(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Category string       `json:"category"`
		Rooms    []publicRoom `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, uint64(1), body.Rooms[0].ID)
}

func TestRoomHandler_SearchRoomsRequiresCategory(t *testing.T) {
	h := newRoomHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/search", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SearchRooms(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoomHandler_SearchRoomsNoMatch(t *testing.T) {
	h := newRoomHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/search?category=Penthouse", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SearchRooms(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rooms":[]`)
}

func TestRoomHandler_GetRoom(t *testing.T) {
	h := newRoomHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/rooms/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.GetRoom(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var room publicRoom
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	assert.Equal(t, "Double", room.Category)
	assert.Equal(t, 150.0, room.Rate)
}

func TestRoomHandler_GetRoomNotFound(t *testing.T) {
	h := newRoomHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/rooms/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, h.GetRoom(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
