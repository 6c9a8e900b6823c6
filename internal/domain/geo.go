package domain

// CityMatch is a geocoding result for a free-text place query.
// CountryName and Region are filled by a follow-up country lookup and may be
// empty when that lookup is skipped.
type CityMatch struct {
	City        string
	CountryCode string
	CountryName string
	Region      string
	Latitude    float64
	Longitude   float64
	Population  int64
}

// PointOfInterest is a place returned by the places search API, reduced to
// the fields this application cares about. Category is the name of the
// place's primary category.
type PointOfInterest struct {
	PlaceID   string
	Name      string
	Category  string
	Latitude  float64
	Longitude float64
}
