package search

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jackzhaolt/plane-ticket-query/adapters/cache"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

// DeepFactory opens the deep backend session.
// Called at most once per Hybrid: the session is expensive (typically a
// live browser) and an initialization failure disables deep search for
// the rest of the orchestrator's lifetime.
type DeepFactory func() (Searcher, error)

// Options tunes the hybrid search policy
type Options struct {
	// UseDeep enables the deep backend at all
	UseDeep bool

	// CacheTTL is how long deep results stay valid
	CacheTTL time.Duration

	// HorizonDays bounds how far in the future deep search is worth
	// the cost
	HorizonDays int

	// PromisingPrice is the cash price below which a fast result
	// justifies deep verification
	PromisingPrice decimal.Decimal
}

// DefaultOptions returns the policy defaults
func DefaultOptions() Options {
	return Options{
		UseDeep:        true,
		CacheTTL:       6 * time.Hour,
		HorizonDays:    180,
		PromisingPrice: decimal.NewFromInt(1000),
	}
}

// Hybrid orchestrates a fast backend and a lazily opened deep backend.
//
// Per call: the fast backend always runs; a policy decides whether deep
// results are warranted; the cache is consulted before any deep query
// and only deep results are ever cached; fast and deep results are
// merged and deduplicated. Every failure degrades: a fast error becomes
// an empty result set, a deep error is skipped, cache errors become
// misses.
//
// A Hybrid owns at most one deep session and is not safe for concurrent
// use without external synchronization.
type Hybrid struct {
	fast    Searcher
	newDeep DeepFactory
	store   cache.Store
	opts    Options

	deep          Searcher
	deepAttempted bool

	// now is replaceable in tests
	now func() time.Time
}

// NewHybrid creates the orchestrator.
// fast may be nil when no fast backend is configured; newDeep may be nil
// to disable deep search regardless of options; store may be nil to
// disable caching.
func NewHybrid(fast Searcher, newDeep DeepFactory, store cache.Store, opts Options) *Hybrid {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultOptions().CacheTTL
	}
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = DefaultOptions().HorizonDays
	}
	if opts.PromisingPrice.IsZero() {
		opts.PromisingPrice = DefaultOptions().PromisingPrice
	}
	return &Hybrid{
		fast:    fast,
		newDeep: newDeep,
		store:   store,
		opts:    opts,
		now:     time.Now,
	}
}

// Search runs one hybrid search pass
func (h *Hybrid) Search(ctx context.Context, q Query) ([]types.Flight, error) {
	flights := h.searchFast(ctx, q)

	if h.shouldDeepSearch(flights, q.DepartureDate) {
		flights = append(flights, h.searchDeep(ctx, q)...)
	}

	return Deduplicate(flights), nil
}

// searchFast runs the fast backend.
// Failures are recoverable: the pass continues with an empty fast set.
func (h *Hybrid) searchFast(ctx context.Context, q Query) []types.Flight {
	if h.fast == nil {
		return nil
	}

	flights, err := h.fast.Search(ctx, q)
	if err != nil {
		logging.Warn("fast backend query failed, continuing without fast results",
			zap.Time("departure_date", q.DepartureDate),
			zap.Error(err))
		return nil
	}

	logging.Debug("fast backend returned results", zap.Int("flights", len(flights)))
	return flights
}

// shouldDeepSearch decides whether the expensive backend is warranted.
//
// Deep search runs when the fast query produced nothing at all, or when
// the departure is inside the horizon and at least one fast result came
// in below the promising-price threshold. Dates outside the horizon, and
// fast result sets with no promising price, skip the deep backend.
func (h *Hybrid) shouldDeepSearch(fastResults []types.Flight, departureDate time.Time) bool {
	if !h.opts.UseDeep || h.newDeep == nil {
		return false
	}

	if len(fastResults) == 0 {
		return true
	}

	daysOut := int(departureDate.Sub(h.now()).Hours() / 24)
	if daysOut < 0 || daysOut > h.opts.HorizonDays {
		return false
	}

	promising := 0
	for _, flight := range fastResults {
		if flight.Price.LessThan(h.opts.PromisingPrice) {
			promising++
		}
	}
	if promising > 0 {
		logging.Info("promising fast results, verifying with deep backend",
			zap.Int("promising", promising))
		return true
	}

	return false
}

// searchDeep returns deep results for the query, from cache when a
// fresh entry exists, otherwise from the deep backend. Only live deep
// results are written back to the cache.
func (h *Hybrid) searchDeep(ctx context.Context, q Query) []types.Flight {
	key := cache.Key(q.DepartureAirports, q.ArrivalAirports, q.DepartureDate)

	if h.store != nil {
		if cached, ok := h.store.Get(ctx, key, h.opts.CacheTTL); ok {
			logging.Info("using cached deep results",
				zap.String("key", key), zap.Int("flights", len(cached)))
			return cached
		}
	}

	deep := h.ensureDeep()
	if deep == nil {
		return nil
	}

	flights, err := deep.Search(ctx, q)
	if err != nil {
		logging.Warn("deep backend query failed, continuing without deep results",
			zap.Time("departure_date", q.DepartureDate),
			zap.Error(err))
		return nil
	}

	if h.store != nil {
		if err := h.store.Put(ctx, key, flights); err != nil {
			logging.Warn("caching deep results failed",
				zap.String("key", key), zap.Error(err))
		}
	}

	return flights
}

// ensureDeep opens the deep session on first use.
// An initialization failure is reported once and disables deep search
// for the lifetime of the orchestrator; it is never retried mid-session.
func (h *Hybrid) ensureDeep() Searcher {
	if h.deep != nil {
		return h.deep
	}
	if h.deepAttempted {
		return nil
	}
	h.deepAttempted = true

	deep, err := h.newDeep()
	if err != nil {
		logging.Error("deep backend initialization failed, deep search disabled for this session",
			zap.Error(err))
		return nil
	}

	h.deep = deep
	return deep
}

// Close releases both backends.
// Safe to call whether or not the deep session was ever opened, and
// safe to call repeatedly.
func (h *Hybrid) Close() error {
	var first error

	if h.fast != nil {
		if err := h.fast.Close(); err != nil && first == nil {
			first = err
		}
	}
	if h.deep != nil {
		if err := h.deep.Close(); err != nil && first == nil {
			first = err
		}
		h.deep = nil
	}
	if h.store != nil {
		if err := h.store.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
