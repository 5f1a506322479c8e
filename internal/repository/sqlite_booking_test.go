package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cadence-sh/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBookingRepo(db)
	ctx := context.Background()

	later := testutil.NewTestBooking("Dentist", time.Date(2026, time.June, 3, 14, 0, 0, 0, time.UTC), 60)
	earlier := testutil.NewTestBooking("Standup", time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC), 15)
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Standup", bookings[0].Title, "list is chronological")
	assert.Equal(t, "Dentist", bookings[1].Title)
	assert.Equal(t, earlier.Start, bookings[0].Start)
	assert.Equal(t, earlier.End, bookings[0].End)
}

func TestBookingRepo_ListOverlapping(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBookingRepo(db)
	ctx := context.Background()

	inside := testutil.NewTestBooking("Inside", time.Date(2026, time.June, 2, 10, 0, 0, 0, time.UTC), 30)
	before := testutil.NewTestBooking("Before", time.Date(2026, time.May, 20, 10, 0, 0, 0, time.UTC), 30)
	straddling := testutil.NewTestBooking("Straddling", time.Date(2026, time.May, 31, 23, 30, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, straddling))

	windowStart := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListOverlapping(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Straddling", got[0].Title, "partial overlap at the window edge counts")
	assert.Equal(t, "Inside", got[1].Title)
}

func TestBookingRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBookingRepo(db)
	ctx := context.Background()

	b := testutil.NewTestBooking("One-off", time.Date(2026, time.June, 2, 10, 0, 0, 0, time.UTC), 30)
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBookingRepo(db)

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
