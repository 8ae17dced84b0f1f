// Package award - chart classification tests
package award

import (
	"strings"
	"testing"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// JFK-NRT is roughly 6,740 miles and lands in the standard chart's
// 5001-7500 band: economy 75,000-90,000 points.
const transpacificDistance = 6740

func TestClassifyAgainstStandardChart(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   Quality
	}{
		{"below band minimum", 45000, QualityExceptional},
		{"low end of band", 78000, QualityGreat},
		{"high end of band", 88000, QualityFair},
		{"above band maximum", 110000, QualityPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, explanation := StandardChart.Classify(transpacificDistance, tt.points, types.CabinEconomy)
			if got != tt.want {
				t.Errorf("Classify(%d pts) = %s, want %s (%s)", tt.points, got, tt.want, explanation)
			}
			if explanation == "" {
				t.Error("Classify returned empty explanation")
			}
		})
	}
}

func TestClassifyBoundaryTies(t *testing.T) {
	// Band 75,000-90,000: range 15,000. The 0.33 boundary sits at
	// 79,950 and the 0.66 at 84,900; an exact tie belongs to the more
	// generous tier.
	if got, _ := StandardChart.Classify(transpacificDistance, 79950, types.CabinEconomy); got != QualityGreat {
		t.Errorf("tie at great/good boundary = %s, want great", got)
	}
	if got, _ := StandardChart.Classify(transpacificDistance, 84900, types.CabinEconomy); got != QualityGood {
		t.Errorf("tie at good/fair boundary = %s, want good", got)
	}
	if got, _ := StandardChart.Classify(transpacificDistance, 90000, types.CabinEconomy); got != QualityFair {
		t.Errorf("tie at band maximum = %s, want fair", got)
	}
	if got, _ := StandardChart.Classify(transpacificDistance, 75000, types.CabinEconomy); got != QualityGreat {
		t.Errorf("tie at band minimum = %s, want great", got)
	}
}

func TestClassifyQualityNeverImprovesWithMorePoints(t *testing.T) {
	distances := []float64{500, 3000, 6740, 9000, 12000}
	cabins := []types.CabinClass{types.CabinEconomy, types.CabinBusiness, types.CabinFirst}

	for _, distance := range distances {
		for _, cabin := range cabins {
			prev := QualityExceptional
			for points := 1000; points <= 400000; points += 1000 {
				got, _ := StandardChart.Classify(distance, points, cabin)
				if got > prev {
					t.Fatalf("quality improved from %s to %s at distance %.0f, cabin %s, %d points",
						prev, got, distance, cabin, points)
				}
				prev = got
			}
		}
	}
}

func TestClassifyOutsideBandsIsNeutralFair(t *testing.T) {
	got, explanation := StandardChart.Classify(20000, 50000, types.CabinEconomy)
	if got != QualityFair {
		t.Errorf("out-of-band distance classified %s, want fair", got)
	}
	if !strings.Contains(explanation, "not in award chart range") {
		t.Errorf("explanation %q does not flag missing reference data", explanation)
	}
}

func TestCabinFallsBackToEconomy(t *testing.T) {
	// ANA publishes no first class ranges; a first class lookup uses
	// the economy band instead of failing.
	withFallback, ok := ANAChart.ExpectedRange(3000, types.CabinFirst)
	if !ok {
		t.Fatal("first class lookup on economy-only chart reported no range")
	}
	economy, _ := ANAChart.ExpectedRange(3000, types.CabinEconomy)
	if withFallback != economy {
		t.Errorf("first class fell back to %v, want economy range %v", withFallback, economy)
	}
}

func TestExceptionalExplanationCarriesDeviation(t *testing.T) {
	// 45,000 against a 75,000 minimum is 40% below.
	_, explanation := StandardChart.Classify(transpacificDistance, 45000, types.CabinEconomy)
	if !strings.Contains(explanation, "40% below standard minimum") {
		t.Errorf("exceptional explanation %q missing percentage deviation", explanation)
	}

	// 110,000 against a 90,000 maximum is 22% above.
	_, explanation = StandardChart.Classify(transpacificDistance, 110000, types.CabinEconomy)
	if !strings.Contains(explanation, "22% above standard maximum") {
		t.Errorf("poor explanation %q missing percentage deviation", explanation)
	}
}

func TestNewChartRejectsOverlappingBands(t *testing.T) {
	_, err := NewChart("broken", []DistanceBand{
		{MinMiles: 0, MaxMiles: 5000, Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy: {Min: 10000, Max: 20000},
		}},
		{MinMiles: 4000, MaxMiles: 8000, Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy: {Min: 20000, Max: 30000},
		}},
	})
	if err == nil {
		t.Fatal("overlapping bands accepted")
	}
}

func TestNewChartRequiresEconomyRange(t *testing.T) {
	_, err := NewChart("broken", []DistanceBand{
		{MinMiles: 0, MaxMiles: 5000, Cabins: map[types.CabinClass]PointRange{
			types.CabinBusiness: {Min: 10000, Max: 20000},
		}},
	})
	if err == nil {
		t.Fatal("chart without economy range accepted")
	}
}

func TestNewChartSortsBands(t *testing.T) {
	chart, err := NewChart("reversed", []DistanceBand{
		{MinMiles: 5001, MaxMiles: 10000, Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy: {Min: 50000, Max: 60000},
		}},
		{MinMiles: 0, MaxMiles: 5000, Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy: {Min: 20000, Max: 30000},
		}},
	})
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}

	r, ok := chart.ExpectedRange(1000, types.CabinEconomy)
	if !ok || r.Min != 20000 {
		t.Errorf("short distance resolved to %v, want the 20k-30k band", r)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{78000, "78,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
