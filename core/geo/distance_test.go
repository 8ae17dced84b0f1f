// Package geo - distance property tests
package geo

import (
	"math"
	"testing"
)

func TestDistanceIsSymmetric(t *testing.T) {
	codes := KnownAirports()
	for _, a := range codes {
		for _, b := range codes {
			ab := FlightDistance(a, b)
			ba := FlightDistance(b, a)
			if math.Abs(ab-ba) > 1e-6 {
				t.Fatalf("distance(%s,%s)=%f but distance(%s,%s)=%f", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	for _, code := range KnownAirports() {
		if d := FlightDistance(code, code); d != 0 {
			t.Errorf("distance(%s,%s) = %f, want 0", code, code, d)
		}
	}
}

func TestTriangleInequality(t *testing.T) {
	// A representative spread of short, long, and antipodal-ish legs
	triples := [][3]string{
		{"JFK", "LHR", "NRT"},
		{"LAX", "SYD", "SIN"},
		{"ORD", "DXB", "GRU"},
		{"SFO", "HND", "BKK"},
	}

	for _, tr := range triples {
		ab := FlightDistance(tr[0], tr[1])
		bc := FlightDistance(tr[1], tr[2])
		ac := FlightDistance(tr[0], tr[2])
		if ac > ab+bc+1e-6 {
			t.Errorf("triangle inequality violated for %v: %f > %f + %f", tr, ac, ab, bc)
		}
	}
}

func TestKnownRouteDistances(t *testing.T) {
	tests := []struct {
		from, to string
		want     float64
		within   float64
	}{
		{"JFK", "NRT", 6740, 50},
		{"JFK", "LAX", 2470, 50},
		{"SFO", "SIN", 8440, 100},
		{"ORD", "LHR", 3950, 50},
	}

	for _, tt := range tests {
		got := FlightDistance(tt.from, tt.to)
		if math.Abs(got-tt.want) > tt.within {
			t.Errorf("distance(%s,%s) = %.0f, want %.0f ± %.0f", tt.from, tt.to, got, tt.want, tt.within)
		}
	}
}

func TestUnknownAirportReportsZero(t *testing.T) {
	if d := FlightDistance("XXX", "JFK"); d != 0 {
		t.Errorf("unknown departure airport yielded distance %f, want 0", d)
	}
	if d := FlightDistance("JFK", "XXX"); d != 0 {
		t.Errorf("unknown arrival airport yielded distance %f, want 0", d)
	}
}

func TestAirportLookupIsCaseInsensitive(t *testing.T) {
	if _, ok := AirportCoordinates("jfk"); !ok {
		t.Error("lowercase airport code not found")
	}
	if _, ok := AirportCoordinates(" JFK "); !ok {
		t.Error("airport code with surrounding spaces not found")
	}
}
