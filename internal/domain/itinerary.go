package domain

import "time"

// PlannedActivity is one point of interest assigned to a day by the
// auto-itinerary generator.
type PlannedActivity struct {
	PlaceID   string
	Name      string
	Category  string
	Latitude  float64
	Longitude float64
}

// ItineraryDay is one calendar day of a generated itinerary.
// Day is 1-based; Activities may be empty when fewer points of interest were
// fetched than there are days in the trip.
type ItineraryDay struct {
	Day        int
	Date       time.Time
	City       string
	Activities []PlannedActivity
}

// BuildItinerary partitions pois across the inclusive date range
// [start, end], one contiguous chunk per day in fetch order.
//
// perDay is max(len(pois)/days, 1); any remainder beyond perDay*days is
// dropped, not redistributed. The output always contains exactly one entry
// per day, even when pois is empty. Deterministic for identical inputs.
func BuildItinerary(city string, start time.Time, days int, pois []PointOfInterest) []ItineraryDay {
	perDay := len(pois) / days
	if perDay < 1 {
		perDay = 1
	}

	plan := make([]ItineraryDay, 0, days)
	for d := 0; d < days; d++ {
		lo := d * perDay
		hi := lo + perDay
		if lo > len(pois) {
			lo = len(pois)
		}
		if hi > len(pois) {
			hi = len(pois)
		}

		activities := make([]PlannedActivity, 0, hi-lo)
		for _, p := range pois[lo:hi] {
			activities = append(activities, PlannedActivity{
				PlaceID:   p.PlaceID,
				Name:      p.Name,
				Category:  p.Category,
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
			})
		}

		plan = append(plan, ItineraryDay{
			Day:        d + 1,
			Date:       start.AddDate(0, 0, d),
			City:       city,
			Activities: activities,
		})
	}
	return plan
}

// DaysInclusive returns the number of whole days in [start, end], counting
// both endpoints. Returns 0 or less when end precedes start; callers treat
// anything below 1 as an invalid range.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
