package award

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
)

// Tier boundaries as fractions of the expected range, measured from the
// band minimum. Ties at a boundary fall into the more generous tier.
const (
	greatUpperFraction = 0.33
	goodUpperFraction  = 0.66
)

// PointRange is the expected points span for a cabin within a band
type PointRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DistanceBand maps a contiguous mileage range to expected point ranges
// per cabin class
type DistanceBand struct {
	// MinMiles is the band start, inclusive
	MinMiles float64 `json:"min_miles"`

	// MaxMiles is the band end, inclusive
	MaxMiles float64 `json:"max_miles"`

	// Cabins holds the expected range per cabin. Charts that only
	// publish some cabins are valid; lookups fall back to economy.
	Cabins map[types.CabinClass]PointRange `json:"cabins"`
}

// Chart is a named, immutable award chart with ordered distance bands
type Chart struct {
	name  string
	bands []DistanceBand
}

// NewChart builds a chart from distance bands.
// Bands are sorted ascending by MinMiles. Overlapping bands or bands
// without an economy range are rejected.
func NewChart(name string, bands []DistanceBand) (*Chart, error) {
	if name == "" {
		return nil, errors.Chart("chart name is required")
	}
	if len(bands) == 0 {
		return nil, errors.Chart("chart has no distance bands")
	}

	sorted := make([]DistanceBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinMiles < sorted[j].MinMiles
	})

	for i, band := range sorted {
		if band.MaxMiles < band.MinMiles {
			return nil, errors.Newf(errors.TypeChart,
				"chart %q band %d: max_miles %.0f below min_miles %.0f",
				name, i, band.MaxMiles, band.MinMiles)
		}
		if _, ok := band.Cabins[types.CabinEconomy]; !ok {
			return nil, errors.Newf(errors.TypeChart,
				"chart %q band %d: economy range is required", name, i)
		}
		if i > 0 && band.MinMiles <= sorted[i-1].MaxMiles {
			return nil, errors.Newf(errors.TypeChart,
				"chart %q: bands %d and %d overlap", name, i-1, i)
		}
	}

	return &Chart{name: name, bands: sorted}, nil
}

// MustChart builds a chart and panics on invalid bands.
// Reserved for the built-in chart tables.
func MustChart(name string, bands []DistanceBand) *Chart {
	chart, err := NewChart(name, bands)
	if err != nil {
		panic(err)
	}
	return chart
}

// Name returns the chart name
func (c *Chart) Name() string {
	return c.name
}

// Bands returns a copy of the ordered distance bands
func (c *Chart) Bands() []DistanceBand {
	out := make([]DistanceBand, len(c.bands))
	copy(out, c.bands)
	return out
}

// ExpectedRange returns the expected points range for a distance and
// cabin. Cabins the chart does not publish fall back to economy.
// Returns false when the distance is outside every band.
func (c *Chart) ExpectedRange(distance float64, cabin types.CabinClass) (PointRange, bool) {
	for _, band := range c.bands {
		if distance < band.MinMiles || distance > band.MaxMiles {
			continue
		}
		if r, ok := band.Cabins[cabin]; ok {
			return r, true
		}
		return band.Cabins[types.CabinEconomy], true
	}
	return PointRange{}, false
}

// Classify rates an observed award price against the expected range.
// A distance outside every band yields a neutral fair tier, never an
// error: missing reference data is degraded input, not failure.
func (c *Chart) Classify(distance float64, points int, cabin types.CabinClass) (Quality, string) {
	expected, ok := c.ExpectedRange(distance, cabin)
	if !ok {
		return QualityFair, "Distance not in award chart range"
	}

	spread := float64(expected.Max - expected.Min)

	switch {
	case points < expected.Min:
		below := float64(expected.Min-points) / float64(expected.Min) * 100
		return QualityExceptional, fmt.Sprintf("%.0f%% below standard minimum (%s pts)",
			below, groupDigits(expected.Min))
	case float64(points) <= float64(expected.Min)+spread*greatUpperFraction:
		return QualityGreat, fmt.Sprintf("Low end of range (%s-%s pts)",
			groupDigits(expected.Min), groupDigits(expected.Max))
	case float64(points) <= float64(expected.Min)+spread*goodUpperFraction:
		return QualityGood, fmt.Sprintf("Mid-range pricing (%s-%s pts)",
			groupDigits(expected.Min), groupDigits(expected.Max))
	case points <= expected.Max:
		return QualityFair, fmt.Sprintf("High end of range (%s-%s pts)",
			groupDigits(expected.Min), groupDigits(expected.Max))
	default:
		above := float64(points-expected.Max) / float64(expected.Max) * 100
		return QualityPoor, fmt.Sprintf("%.0f%% above standard maximum (%s pts)",
			above, groupDigits(expected.Max))
	}
}

// groupDigits renders an integer with thousands separators (78,000)
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	return string(out)
}
