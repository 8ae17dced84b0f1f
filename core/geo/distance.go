// Package geo - Great-circle flight distances and airport reference data.
// The coordinate and country tables are process-wide read-only data,
// loaded once and never mutated.
package geo

import (
	"math"
	"strings"
)

// earthRadiusMiles is the mean Earth radius in statute miles
const earthRadiusMiles = 3959

// Coordinates is an airport location in degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// AirportCoordinates looks up the location of an airport.
// Returns false when the airport is not in the reference table.
func AirportCoordinates(code string) (Coordinates, bool) {
	c, ok := airportCoordinates[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Haversine computes the great-circle distance in miles between two points
func Haversine(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// FlightDistance returns the distance in miles between two airports.
// Returns 0 when either airport is missing from the reference table;
// callers must treat 0 as "distance unknown" and skip distance-based
// evaluation, not as a zero-length flight.
func FlightDistance(departure, arrival string) float64 {
	from, ok := AirportCoordinates(departure)
	if !ok {
		return 0
	}
	to, ok := AirportCoordinates(arrival)
	if !ok {
		return 0
	}
	return Haversine(from, to)
}
