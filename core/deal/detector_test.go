// Package deal - detector and ranking tests
package deal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackzhaolt/plane-ticket-query/core/award"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

func testFlight(from, to string, cash int64, points int) types.Flight {
	return types.Flight{
		DepartureAirport: from,
		ArrivalAirport:   to,
		DepartureDate:    time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Price:            decimal.NewFromInt(cash),
		Currency:         "USD",
		Points:           points,
		Airline:          "NH",
		Cabin:            types.CabinEconomy,
		Stops:            0,
	}
}

func TestCheapCashPriceIsAlwaysADeal(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	flight := testFlight("JFK", "NRT", 650, 0)
	if !d.IsDeal(flight) {
		t.Error("flight at $650 under a $1000 cap rejected")
	}

	// Points being terrible does not matter when cash qualifies.
	flight.Points = 500000
	if !d.IsDeal(flight) {
		t.Error("cheap cash flight rejected because of bad points price")
	}
}

func TestExpensiveFlightWithoutPointsIsNeverADeal(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)
	if d.IsDeal(testFlight("JFK", "NRT", 1500, 0)) {
		t.Error("expensive cash flight with no award price accepted")
	}
}

func TestChartAcceptanceTakesPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinQuality = award.QualityGreat
	// Force the fallback to be unreachable so only the chart can accept.
	cfg.MinCentsPerPoint = 1000
	cfg.MinMilesPerPoint = 1000
	d := NewDetector(cfg, nil)

	// 78,000 points on JFK-NRT economy sits in the lower third of the
	// 75,000-90,000 band: great.
	if !d.IsDeal(testFlight("JFK", "NRT", 1500, 78000)) {
		t.Error("chart-great redemption rejected")
	}

	// 88,000 points is only fair; the impossible fallback cannot save it.
	if d.IsDeal(testFlight("JFK", "NRT", 1500, 88000)) {
		t.Error("chart-fair redemption accepted with min quality great")
	}
}

func TestFallbackAcceptsByCentsPerPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseAwardChart = false
	d := NewDetector(cfg, nil)

	// $1,500 for 50,000 points is 3.0 cpp, over the 1.0 floor.
	if !d.IsDeal(testFlight("JFK", "NRT", 1500, 50000)) {
		t.Error("3.0 cpp redemption rejected by fallback")
	}
}

func TestFallbackAcceptsByMilesPerPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseAwardChart = false
	cfg.MinCentsPerPoint = 1000 // unreachable, isolate the distance signal
	d := NewDetector(cfg, nil)

	// JFK-NRT at 45,000 points recovers about 0.15 miles per point.
	if !d.IsDeal(testFlight("JFK", "NRT", 1200, 45000)) {
		t.Error("0.15 miles-per-point redemption rejected by fallback")
	}
}

func TestFallbackRespectsPointsCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseAwardChart = false
	d := NewDetector(cfg, nil)

	// Great cpp but over the 100,000 points cap.
	if d.IsDeal(testFlight("JFK", "NRT", 1999, 110000)) {
		t.Error("redemption over the points cap accepted by fallback")
	}
}

func TestUnknownDistanceSkipsChartAndDistanceSignals(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	// Unknown airports: no distance, chart check cannot run; the cpp
	// fallback still can. $1,200 for 50,000 points is 2.4 cpp.
	if !d.IsDeal(testFlight("AAA", "BBB", 1200, 50000)) {
		t.Error("unknown-distance flight with good cpp rejected")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	flights := []types.Flight{
		testFlight("JFK", "NRT", 650, 0),  // deal: cheap cash
		testFlight("JFK", "NRT", 1500, 0), // not a deal
		testFlight("JFK", "LAX", 400, 0),  // deal: cheap cash
	}

	deals := d.Filter(flights)
	if len(deals) != 2 {
		t.Fatalf("Filter kept %d flights, want 2", len(deals))
	}
	if deals[0].ArrivalAirport != "NRT" || deals[1].ArrivalAirport != "LAX" {
		t.Error("Filter reordered flights")
	}
}

func TestRankPrefersDistanceEfficiency(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	// Equal cash, both non-stop. JFK-LAX at 49,400 points recovers
	// about 0.05 miles per point; JFK-NRT at 45,000 points about 0.15.
	lax := testFlight("JFK", "LAX", 1500, 49400)
	nrt := testFlight("JFK", "NRT", 1500, 45000)

	ranked := d.Rank([]types.Flight{lax, nrt})
	if ranked[0].ArrivalAirport != "NRT" {
		t.Errorf("top ranked flight is %s, want NRT (scores: lax=%.0f nrt=%.0f)",
			ranked[0].ArrivalAirport, Score(lax), Score(nrt))
	}
	if Score(nrt) <= Score(lax) {
		t.Errorf("Score(NRT)=%.0f not strictly above Score(LAX)=%.0f", Score(nrt), Score(lax))
	}
}

func TestRankIsStable(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	// Same route, price, stops, and no points: identical scores.
	first := testFlight("JFK", "LAX", 900, 0)
	first.Airline = "AA"
	second := testFlight("JFK", "LAX", 900, 0)
	second.Airline = "DL"

	ranked := d.Rank([]types.Flight{first, second})
	if ranked[0].Airline != "AA" || ranked[1].Airline != "DL" {
		t.Error("equal-score flights did not keep their input order")
	}

	ranked = d.Rank([]types.Flight{second, first})
	if ranked[0].Airline != "DL" || ranked[1].Airline != "AA" {
		t.Error("equal-score flights did not keep their reversed input order")
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	flights := []types.Flight{
		testFlight("JFK", "LAX", 1900, 0),
		testFlight("JFK", "NRT", 200, 0),
	}
	d.Rank(flights)

	if flights[0].ArrivalAirport != "LAX" {
		t.Error("Rank mutated its input slice")
	}
}

func TestScoreRewardsNonStop(t *testing.T) {
	nonStop := testFlight("JFK", "LAX", 800, 0)
	oneStop := testFlight("JFK", "LAX", 800, 0)
	oneStop.Stops = 1

	if Score(nonStop)-Score(oneStop) != nonStopBonus {
		t.Errorf("non-stop bonus = %.0f, want %d", Score(nonStop)-Score(oneStop), nonStopBonus)
	}
}
