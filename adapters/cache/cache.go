// Package cache provides keyed persistence for deep-search flight results.
// Reads are lazy-expiring: an entry older than the caller's TTL is treated
// as absent. Corrupt or unreadable entries are also treated as absent,
// never surfaced as errors.
package cache

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// Key addresses a cached flight list.
// Airport lists are sorted so the key is independent of configuration
// order.
func Key(departureAirports, arrivalAirports []string, departureDate time.Time) string {
	deps := make([]string, len(departureAirports))
	copy(deps, departureAirports)
	sort.Strings(deps)

	arrs := make([]string, len(arrivalAirports))
	copy(arrs, arrivalAirports)
	sort.Strings(arrs)

	return strings.Join(deps, "-") + "_" + strings.Join(arrs, "-") + "_" +
		departureDate.Format(types.DateLayout)
}

// Store persists flight lists under string keys.
//
// Get returns absent on miss, on expiry, and on any read or decode
// failure. Put overwrites any previous entry for the key
// (last-writer-wins). Close releases underlying resources and is safe to
// call more than once.
type Store interface {
	Get(ctx context.Context, key string, ttl time.Duration) ([]types.Flight, bool)
	Put(ctx context.Context, key string, flights []types.Flight) error
	Close() error
}

// entry is the stored payload
type entry struct {
	// ID identifies the write that produced this entry
	ID string `json:"id"`

	// Flights is the cached result list
	Flights []types.Flight `json:"flights"`

	// CreatedAt is when the entry was written; age is computed from it
	CreatedAt time.Time `json:"created_at"`
}

func (e entry) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.CreatedAt) > ttl
}
