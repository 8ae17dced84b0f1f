// Package deal decides which flights qualify as deals and ranks them.
package deal

import (
	"github.com/shopspring/decimal"

	"github.com/jackzhaolt/plane-ticket-query/core/award"
	"github.com/jackzhaolt/plane-ticket-query/core/geo"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// Config contains deal acceptance thresholds
type Config struct {
	// MaxCashPrice accepts any flight at or below this cash price
	MaxCashPrice decimal.Decimal

	// MaxPoints caps the award price considered in the fallback check
	MaxPoints int

	// MinCentsPerPoint is the fallback value floor in cents per point
	MinCentsPerPoint float64

	// MinMilesPerPoint is the fallback distance-efficiency floor
	MinMilesPerPoint float64

	// UseAwardChart enables chart-based classification
	UseAwardChart bool

	// ChartName selects the reference chart
	ChartName string

	// MinQuality is the acceptance tier for chart classification
	MinQuality award.Quality
}

// DefaultConfig mirrors the thresholds the monitor ships with
func DefaultConfig() Config {
	return Config{
		MaxCashPrice:     decimal.NewFromInt(1000),
		MaxPoints:        100000,
		MinCentsPerPoint: 1.0,
		MinMilesPerPoint: 0.05,
		UseAwardChart:    true,
		ChartName:        "standard",
		MinQuality:       award.QualityGood,
	}
}

// Detector evaluates flights against configured deal criteria
type Detector struct {
	cfg    Config
	charts *award.Registry
}

// NewDetector creates a detector using the given chart registry
func NewDetector(cfg Config, charts *award.Registry) *Detector {
	if charts == nil {
		charts = award.NewRegistry()
	}
	return &Detector{cfg: cfg, charts: charts}
}

// IsDeal reports whether a flight qualifies as a deal.
//
// A flight qualifies when any of the following holds, checked in order:
//  1. cash price at or below the configured maximum
//  2. the award chart classifies the redemption at or above the minimum
//     tier (requires a known distance and an award price)
//  3. fallback: award price within the points cap and either cents-per-
//     point or miles-per-point meets its floor
//
// The chart check is authoritative once it fires; the fallback only runs
// when the chart did not accept the flight or the distance is unknown.
func (d *Detector) IsDeal(flight types.Flight) bool {
	if flight.Price.LessThanOrEqual(d.cfg.MaxCashPrice) {
		return true
	}

	if !flight.HasPoints() {
		return false
	}

	distance := geo.FlightDistance(flight.DepartureAirport, flight.ArrivalAirport)

	if d.cfg.UseAwardChart && distance > 0 {
		quality, _, _ := d.charts.Evaluate(d.cfg.ChartName, distance, flight.Points, flight.Cabin)
		if quality.AtLeast(d.cfg.MinQuality) {
			return true
		}
	}

	if flight.Points <= d.cfg.MaxPoints {
		cpp := flight.CentsPerPoint()
		milesPerPoint := distance / float64(flight.Points)
		if cpp >= d.cfg.MinCentsPerPoint || milesPerPoint >= d.cfg.MinMilesPerPoint {
			return true
		}
	}

	return false
}

// Filter returns only the flights that qualify as deals, preserving
// input order
func (d *Detector) Filter(flights []types.Flight) []types.Flight {
	deals := make([]types.Flight, 0, len(flights))
	for _, flight := range flights {
		if d.IsDeal(flight) {
			deals = append(deals, flight)
		}
	}
	return deals
}
