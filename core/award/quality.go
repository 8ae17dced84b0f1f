// Package award - Distance-banded award charts and redemption quality tiers.
// A chart maps flight distance to the expected points range per cabin;
// classification compares an observed award price against that range.
package award

import "strings"

// Quality rates how an observed award price compares to the chart's
// expected range. Values are ordered so threshold checks are a plain
// integer comparison.
type Quality int

const (
	// QualityPoor is above the expected range
	QualityPoor Quality = iota

	// QualityFair is the upper third of the range
	QualityFair

	// QualityGood is the middle third of the range
	QualityGood

	// QualityGreat is the lower third of the range
	QualityGreat

	// QualityExceptional is at or below the bottom of the range
	QualityExceptional
)

// String returns the tier name
func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityFair:
		return "fair"
	case QualityGood:
		return "good"
	case QualityGreat:
		return "great"
	case QualityExceptional:
		return "exceptional"
	default:
		return "unknown"
	}
}

// AtLeast reports whether the tier meets or exceeds a threshold
func (q Quality) AtLeast(min Quality) bool {
	return q >= min
}

// ParseQuality resolves a tier name from configuration.
// Unknown names resolve to good, the default acceptance threshold.
func ParseQuality(s string) Quality {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poor":
		return QualityPoor
	case "fair":
		return QualityFair
	case "good":
		return QualityGood
	case "great":
		return QualityGreat
	case "exceptional":
		return QualityExceptional
	default:
		return QualityGood
	}
}
