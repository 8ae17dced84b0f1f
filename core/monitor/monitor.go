// Package monitor drives repeated deal checks over the configured route
// and date space.
package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jackzhaolt/plane-ticket-query/core/deal"
	"github.com/jackzhaolt/plane-ticket-query/core/geo"
	"github.com/jackzhaolt/plane-ticket-query/core/search"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/config"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
	"github.com/jackzhaolt/plane-ticket-query/notify"
)

// Monitor runs deal checks against a searcher and reports findings
type Monitor struct {
	cfg      *config.Config
	searcher search.Searcher
	detector *deal.Detector
	notifier notify.Notifier

	now func() time.Time
}

// New creates a monitor
func New(cfg *config.Config, searcher search.Searcher, detector *deal.Detector, notifier notify.Notifier) *Monitor {
	return &Monitor{
		cfg:      cfg,
		searcher: searcher,
		detector: detector,
		notifier: notifier,
		now:      time.Now,
	}
}

// CheckOnce runs a single monitoring pass: search every configured date,
// filter and rank deals, and dispatch an alert when any were found.
// Per-date search failures are logged and skipped; the pass reports
// whatever succeeded.
func (m *Monitor) CheckOnce(ctx context.Context) error {
	runID := uuid.NewString()

	departures, arrivals := geo.ExpandRouteConfig(
		m.cfg.Search.DepartureCountries,
		m.cfg.Search.ArrivalCountries,
		m.cfg.Search.DepartureAirports,
		m.cfg.Search.ArrivalAirports,
	)

	logging.Info("starting deal check",
		zap.String("run_id", runID),
		zap.Int("departure_airports", len(departures)),
		zap.Int("arrival_airports", len(arrivals)))

	var deals []types.Flight
	for _, date := range m.SearchDates() {
		if err := ctx.Err(); err != nil {
			return err
		}

		flights, err := m.searcher.Search(ctx, search.Query{
			DepartureAirports: departures,
			ArrivalAirports:   arrivals,
			DepartureDate:     date,
			Adults:            m.cfg.Search.Adults,
			Cabin:             types.ParseCabinClass(m.cfg.Search.CabinClass),
		})
		if err != nil {
			logging.Warn("search failed for date, continuing",
				zap.String("run_id", runID),
				zap.Time("departure_date", date),
				zap.Error(err))
			continue
		}

		found := m.detector.Filter(flights)
		logging.Info("date searched",
			zap.String("run_id", runID),
			zap.Time("departure_date", date),
			zap.Int("flights", len(flights)),
			zap.Int("deals", len(found)))
		deals = append(deals, found...)
	}

	if len(deals) == 0 {
		logging.Info("no deals this pass", zap.String("run_id", runID))
		return nil
	}

	return m.dispatch(ctx, runID, deals)
}

// dispatch ranks the deals and hands summaries to the notifier
func (m *Monitor) dispatch(ctx context.Context, runID string, deals []types.Flight) error {
	ranked := m.detector.Rank(deals)

	summaries := make([]string, len(ranked))
	for i, flight := range ranked {
		summaries[i] = m.detector.Summarize(flight)
	}

	logging.Info("dispatching deal alert",
		zap.String("run_id", runID),
		zap.Int("deals", len(ranked)))

	return m.notifier.Notify(ctx, notify.Alert{
		Summaries: summaries,
		TopDeal:   summaries[0],
	})
}

// Run checks continuously at the configured interval until the context
// is cancelled. The first check runs immediately.
func (m *Monitor) Run(ctx context.Context) error {
	interval := time.Duration(m.cfg.Alerts.CheckIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	logging.Info("monitor started", zap.Duration("interval", interval))

	if err := m.CheckOnce(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("monitor stopping")
			return ctx.Err()
		case <-ticker.C:
			if err := m.CheckOnce(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

// SearchDates generates the departure dates for one pass.
// Configured date ranges step weekly through each window; with no
// ranges configured the monitor steps weekly through the next 180 days.
func (m *Monitor) SearchDates() []time.Time {
	const step = 7 * 24 * time.Hour

	today := m.now().Truncate(24 * time.Hour)

	if len(m.cfg.Search.DateRanges) == 0 {
		var dates []time.Time
		for d := today; d.Before(today.Add(180 * 24 * time.Hour)); d = d.Add(step) {
			dates = append(dates, d)
		}
		return dates
	}

	var dates []time.Time
	for _, r := range m.cfg.Search.DateRanges {
		start, err := time.Parse(types.DateLayout, r.Start)
		if err != nil {
			logging.Warn("skipping date range with bad start", zap.String("start", r.Start))
			continue
		}
		end, err := time.Parse(types.DateLayout, r.End)
		if err != nil {
			logging.Warn("skipping date range with bad end", zap.String("end", r.End))
			continue
		}
		for d := start; !d.After(end); d = d.Add(step) {
			dates = append(dates, d)
		}
	}
	return dates
}

// Close releases the searcher
func (m *Monitor) Close() error {
	return m.searcher.Close()
}
