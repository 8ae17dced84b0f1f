package deal

import (
	"sort"

	"github.com/jackzhaolt/plane-ticket-query/core/geo"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// Score weights. Miles-per-point dominates cents-per-point by two orders
// of magnitude: distance recovered per point is the stronger signal of
// redemption value on long-haul awards. The model is additive so the
// score stays monotonic in each signal.
const (
	priceScoreCeiling   = 2000
	cppWeight           = 100
	milesPerPointWeight = 10000
	nonStopBonus        = 500
)

// Score computes the composite desirability score for a flight.
// Higher is better.
func Score(flight types.Flight) float64 {
	price, _ := flight.Price.Float64()

	score := float64(0)
	if price < priceScoreCeiling {
		score += priceScoreCeiling - price
	}

	if flight.HasPoints() {
		score += flight.CentsPerPoint() * cppWeight

		distance := geo.FlightDistance(flight.DepartureAirport, flight.ArrivalAirport)
		if distance > 0 {
			score += distance / float64(flight.Points) * milesPerPointWeight
		}
	}

	if flight.Stops == 0 {
		score += nonStopBonus
	}

	return score
}

// Rank orders flights best deal first.
// The sort is stable: flights with equal scores keep their search order.
// The input slice is not mutated.
func (d *Detector) Rank(flights []types.Flight) []types.Flight {
	ranked := make([]types.Flight, len(flights))
	copy(ranked, flights)

	scores := make([]float64, len(ranked))
	for i, flight := range ranked {
		scores[i] = Score(flight)
	}

	indexes := make([]int, len(ranked))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return scores[indexes[a]] > scores[indexes[b]]
	})

	out := make([]types.Flight, len(ranked))
	for i, idx := range indexes {
		out[i] = ranked[idx]
	}
	return out
}
