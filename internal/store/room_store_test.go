package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStore_SeedInventory(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	rooms := s.List()
	require.Len(t, rooms, 3)
	assert.Equal(t, uint64(1), rooms[0].ID)
	assert.Equal(t, "Single", rooms[0].Category)
	assert.Equal(t, uint32(10000), rooms[0].RateCents)
	assert.Equal(t, uint64(2), rooms[1].ID)
	assert.Equal(t, "Double", rooms[1].Category)
	assert.Equal(t, uint64(3), rooms[2].ID)
	assert.Equal(t, "Suite", rooms[2].Category)
	for _, r := range rooms {
		assert.True(t, r.Available)
	}
}

func TestRoomStore_SearchCaseInsensitive(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	for _, q := range []string{"Single", "single", "SINGLE", "sIngLe"} {
		found := s.Search(q)
		require.Len(t, found, 1, "query %q", q)
		assert.Equal(t, uint64(1), found[0].ID)
	}
}

func TestRoomStore_SearchSkipsUnavailable(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	require.NoError(t, s.SetAvailability(1, false))
	assert.Empty(t, s.Search("Single"))

	require.NoError(t, s.SetAvailability(1, true))
	assert.Len(t, s.Search("Single"), 1)
}

func TestRoomStore_SearchNoMatchIsEmptyNotNil(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	found := s.Search("Penthouse")
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestRoomStore_GetByID(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	for id := uint64(1); id <= 3; id++ {
		room, err := s.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, id, room.ID)
	}

	_, err := s.GetByID(999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomStore_SetAvailabilityUnknownID(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	err := s.SetAvailability(999, false)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// The failed update must not have touched anything.
	for _, r := range s.List() {
		assert.True(t, r.Available)
	}
}

func TestRoomStore_Reserve(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	room, err := s.Reserve(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), room.ID)
	assert.Equal(t, uint32(15000), room.RateCents)

	// Second attempt hits the flipped flag.
	_, err = s.Reserve(2)
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	_, err = s.Reserve(999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomStore_ReadsAreIdempotent(t *testing.T) {
	s := NewRoomStore(DefaultRooms())

	first := s.Search("Double")
	second := s.Search("Double")
	assert.Equal(t, first, second)

	r1, err := s.GetByID(3)
	require.NoError(t, err)
	r2, err := s.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	// Mutating a returned snapshot must not leak into the store.
	first[0].Available = false
	fresh := s.Search("Double")
	assert.True(t, fresh[0].Available)
}
