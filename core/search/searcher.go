// Package search defines the flight search capability and the hybrid
// orchestrator that combines a fast, low-fidelity backend with a slow,
// high-fidelity one.
package search

import (
	"context"
	"time"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// Query describes one search call
type Query struct {
	// DepartureAirports are the candidate origin codes
	DepartureAirports []string

	// ArrivalAirports are the candidate destination codes
	ArrivalAirports []string

	// DepartureDate is the outbound date
	DepartureDate time.Time

	// ReturnDate is the inbound date, nil for one-way
	ReturnDate *time.Time

	// Adults is the passenger count
	Adults int

	// Cabin is the requested cabin class
	Cabin types.CabinClass
}

// Searcher is the capability implemented by every flight data source.
//
// Close releases backend resources. It is idempotent and safe to call
// even when the backend never served a query.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]types.Flight, error)
	Close() error
}
