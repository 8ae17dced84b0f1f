package search

import "github.com/jackzhaolt/plane-ticket-query/core/types"

// Deduplicate collapses flights that share the identity tuple
// (departure, arrival, departure date, airline), preserving first-seen
// order. On collision the entry carrying a booking reference wins: it
// came from the higher-fidelity source.
func Deduplicate(flights []types.Flight) []types.Flight {
	index := make(map[types.Key]int, len(flights))
	out := make([]types.Flight, 0, len(flights))

	for _, flight := range flights {
		key := flight.Key()
		if at, seen := index[key]; seen {
			if flight.BookingURL != "" && out[at].BookingURL == "" {
				out[at] = flight
			}
			continue
		}
		index[key] = len(out)
		out = append(out, flight)
	}

	return out
}
