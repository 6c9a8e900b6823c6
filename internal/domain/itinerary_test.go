package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

func poi(n string) domain.PointOfInterest {
	return domain.PointOfInterest{PlaceID: "fsq-" + n, Name: n, Category: "Landmarks"}
}

func TestBuildItinerary_EvenSplit(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pois := []domain.PointOfInterest{
		poi("a"), poi("b"), poi("c"), poi("d"), poi("e"), poi("f"),
	}

	plan := domain.BuildItinerary("Paris", start, 3, pois)

	require.Len(t, plan, 3)
	for i, day := range plan {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, start.AddDate(0, 0, i), day.Date)
		assert.Equal(t, "Paris", day.City)
		assert.Len(t, day.Activities, 2)
	}
	assert.Equal(t, "a", plan[0].Activities[0].Name)
	assert.Equal(t, "f", plan[2].Activities[1].Name)
}

func TestBuildItinerary_RemainderDropped(t *testing.T) {
	// 10 places over 3 days: 3 per day, the 10th never appears.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var pois []domain.PointOfInterest
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		pois = append(pois, poi(n))
	}

	plan := domain.BuildItinerary("Rome", start, 3, pois)

	require.Len(t, plan, 3)
	var seen []string
	for _, day := range plan {
		require.Len(t, day.Activities, 3)
		for _, a := range day.Activities {
			seen = append(seen, a.Name)
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, seen)
	assert.NotContains(t, seen, "j")
}

func TestBuildItinerary_FewerPlacesThanDays(t *testing.T) {
	// 2 places over 4 days: one per day, trailing days stay empty rather
	// than shrinking the plan.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pois := []domain.PointOfInterest{poi("a"), poi("b")}

	plan := domain.BuildItinerary("Oslo", start, 4, pois)

	require.Len(t, plan, 4)
	assert.Len(t, plan[0].Activities, 1)
	assert.Len(t, plan[1].Activities, 1)
	assert.Empty(t, plan[2].Activities)
	assert.Empty(t, plan[3].Activities)
}

func TestBuildItinerary_NoPlaces(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	plan := domain.BuildItinerary("Quiet Town", start, 3, nil)

	require.Len(t, plan, 3)
	for _, day := range plan {
		assert.Empty(t, day.Activities)
	}
}

func TestBuildItinerary_Deterministic(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pois := []domain.PointOfInterest{poi("a"), poi("b"), poi("c"), poi("d")}

	first := domain.BuildItinerary("Kyoto", start, 2, pois)
	second := domain.BuildItinerary("Kyoto", start, 2, pois)

	assert.Equal(t, first, second)
}

func TestDaysInclusive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, domain.DaysInclusive(day(1), day(1)), "same-day trip is one day")
	assert.Equal(t, 3, domain.DaysInclusive(day(1), day(3)))
	assert.Equal(t, 0, domain.DaysInclusive(day(2), day(1)), "inverted range")
}
