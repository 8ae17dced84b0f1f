package search

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

func dedupFlight(from, to, airline, bookingURL string) types.Flight {
	return types.Flight{
		DepartureAirport: from,
		ArrivalAirport:   to,
		DepartureDate:    time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Price:            decimal.NewFromInt(800),
		Currency:         "USD",
		Airline:          airline,
		Cabin:            types.CabinEconomy,
		BookingURL:       bookingURL,
	}
}

func TestDeduplicateCollapsesIdenticalFlights(t *testing.T) {
	flights := []types.Flight{
		dedupFlight("JFK", "NRT", "NH", ""),
		dedupFlight("JFK", "NRT", "NH", ""),
		dedupFlight("JFK", "NRT", "NH", ""),
	}

	out := Deduplicate(flights)
	if len(out) != 1 {
		t.Fatalf("got %d flights, want 1", len(out))
	}
}

func TestDeduplicateKeepsDistinctIdentities(t *testing.T) {
	flights := []types.Flight{
		dedupFlight("JFK", "NRT", "NH", ""),
		dedupFlight("JFK", "NRT", "DL", ""), // different airline
		dedupFlight("JFK", "HND", "NH", ""), // different arrival
	}
	withLaterDate := dedupFlight("JFK", "NRT", "NH", "")
	withLaterDate.DepartureDate = withLaterDate.DepartureDate.AddDate(0, 0, 1)
	flights = append(flights, withLaterDate)

	out := Deduplicate(flights)
	if len(out) != 4 {
		t.Fatalf("got %d flights, want 4", len(out))
	}
}

func TestDeduplicatePrefersBookingReference(t *testing.T) {
	plain := dedupFlight("JFK", "NRT", "NH", "")
	booked := dedupFlight("JFK", "NRT", "NH", "https://example.com/book/1")

	out := Deduplicate([]types.Flight{plain, booked})
	if len(out) != 1 {
		t.Fatalf("got %d flights, want 1", len(out))
	}
	if out[0].BookingURL == "" {
		t.Error("flight with booking reference lost to the plain entry")
	}

	// The preference holds regardless of arrival order.
	out = Deduplicate([]types.Flight{booked, plain})
	if len(out) != 1 || out[0].BookingURL == "" {
		t.Error("booking reference lost when the booked entry arrived first")
	}
}

func TestDeduplicatePreservesFirstSeenOrder(t *testing.T) {
	flights := []types.Flight{
		dedupFlight("JFK", "NRT", "NH", ""),
		dedupFlight("JFK", "HND", "JL", ""),
		dedupFlight("JFK", "NRT", "NH", "https://example.com/book/2"),
		dedupFlight("LAX", "NRT", "NH", ""),
	}

	out := Deduplicate(flights)
	if len(out) != 3 {
		t.Fatalf("got %d flights, want 3", len(out))
	}
	if out[0].ArrivalAirport != "NRT" || out[1].ArrivalAirport != "HND" || out[2].DepartureAirport != "LAX" {
		t.Errorf("order not preserved: %s %s %s", out[0].Route(), out[1].Route(), out[2].Route())
	}
	// The merged first slot picked up the booking reference.
	if out[0].BookingURL == "" {
		t.Error("merged entry lost its booking reference")
	}
}

func TestDeduplicateIsIdempotent(t *testing.T) {
	flights := []types.Flight{
		dedupFlight("JFK", "NRT", "NH", ""),
		dedupFlight("JFK", "NRT", "NH", "https://example.com/book/3"),
		dedupFlight("JFK", "HND", "JL", ""),
	}

	once := Deduplicate(flights)
	twice := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("second pass changed entry %d", i)
		}
	}
}
