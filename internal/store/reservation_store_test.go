package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReservationStore_AppendAssignsMonotonicIDs(t *testing.T) {
	s := NewReservationStore()

	r1 := s.Append(1, "Alice", day("2024-01-01"), day("2024-01-03"), 20000)
	r2 := s.Append(2, "Bob", day("2024-02-01"), day("2024-02-02"), 15000)
	r3 := s.Append(3, "Carol", day("2024-03-01"), day("2024-03-05"), 120000)

	assert.Equal(t, uint64(1), r1.ID)
	assert.Equal(t, uint64(2), r2.ID)
	assert.Equal(t, uint64(3), r3.ID)
	assert.Equal(t, 3, s.Count())
	assert.False(t, r1.CreatedAt.IsZero())
}

func TestReservationStore_ListByGuestCaseInsensitive(t *testing.T) {
	s := NewReservationStore()
	s.Append(1, "alice", day("2024-01-01"), day("2024-01-03"), 20000)
	s.Append(2, "Bob", day("2024-01-02"), day("2024-01-04"), 30000)
	s.Append(3, "ALICE", day("2024-02-01"), day("2024-02-02"), 10000)

	got := s.ListByGuest("Alice")
	require.Len(t, got, 2)
	// Ledger insertion order is preserved.
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}

func TestReservationStore_ListByGuestUnknownIsEmpty(t *testing.T) {
	s := NewReservationStore()
	s.Append(1, "alice", day("2024-01-01"), day("2024-01-03"), 20000)

	got := s.ListByGuest("Bob")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReservationStore_ListAllSnapshot(t *testing.T) {
	s := NewReservationStore()
	s.Append(1, "alice", day("2024-01-01"), day("2024-01-03"), 20000)

	all := s.ListAll()
	require.Len(t, all, 1)
	all[0].GuestName = "mallory"
	assert.Equal(t, "alice", s.ListAll()[0].GuestName)
}
