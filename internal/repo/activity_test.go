package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
	"github.com/aadarshsenapati/globetrotter/backend/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := beginTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()
	user := seedUser(t, tx)
	trip := seedTrip(t, tx, user.ID)
	stop := seedStop(t, tx, trip.ID, 1)

	cost := 42.5
	mins := 90
	input := domain.Activity{
		StopID:          stop.ID,
		Name:            "TeamLab Planets",
		ActivityType:    "Art Museum",
		DurationMinutes: &mins,
		Cost:            &cost,
		PlaceID:         "fsq-1",
		Position:        0,
	}
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, stop.ID, got.StopID)
	assert.Equal(t, "USD", got.Currency, "currency defaults when not provided")
	require.NotNil(t, got.Cost)
	assert.InDelta(t, 42.5, *got.Cost, 1e-6)
	require.NotNil(t, got.DurationMinutes)
	assert.Equal(t, 90, *got.DurationMinutes)
}

func TestActivityRepo_MaxPositionAndList(t *testing.T) {
	tx := beginTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()
	user := seedUser(t, tx)
	trip := seedTrip(t, tx, user.ID)
	stop := seedStop(t, tx, trip.ID, 1)

	_, ok, err := r.MaxPosition(ctx, stop.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	second, err := r.Create(ctx, domain.Activity{StopID: stop.ID, Name: "Lunch", Position: 1})
	require.NoError(t, err)
	first, err := r.Create(ctx, domain.Activity{StopID: stop.ID, Name: "Museum", Position: 0})
	require.NoError(t, err)

	max, ok, err := r.MaxPosition(ctx, stop.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, max)

	activities, err := r.ListByStopID(ctx, stop.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, first.ID, activities[0].ID)
	assert.Equal(t, second.ID, activities[1].ID)
}

func TestActivityRepo_GetStopID(t *testing.T) {
	tx := beginTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()
	user := seedUser(t, tx)
	trip := seedTrip(t, tx, user.ID)
	stop := seedStop(t, tx, trip.ID, 1)

	act, err := r.Create(ctx, domain.Activity{StopID: stop.ID, Name: "Museum"})
	require.NoError(t, err)

	stopID, err := r.GetStopID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, stop.ID, stopID)

	_, err = r.GetStopID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_Delete_ScopedToStop(t *testing.T) {
	tx := beginTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()
	user := seedUser(t, tx)
	trip := seedTrip(t, tx, user.ID)
	stop := seedStop(t, tx, trip.ID, 1)
	otherStop := seedStop(t, tx, trip.ID, 2)

	act, err := r.Create(ctx, domain.Activity{StopID: stop.ID, Name: "Museum"})
	require.NoError(t, err)

	err = r.Delete(ctx, otherStop.ID, act.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "wrong parent stop must not match")

	require.NoError(t, r.Delete(ctx, stop.ID, act.ID))
}
