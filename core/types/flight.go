// Package types - shared value types for flight search and deal evaluation
package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for departure and return dates
const DateLayout = "2006-01-02"

// Flight represents a single flight search result.
// Flights are immutable after creation: backends build them, everything
// downstream only reads them.
type Flight struct {
	// DepartureAirport is the 3-letter IATA origin code
	DepartureAirport string `json:"departure_airport"`

	// ArrivalAirport is the 3-letter IATA destination code
	ArrivalAirport string `json:"arrival_airport"`

	// DepartureDate is the outbound date (time component ignored)
	DepartureDate time.Time `json:"departure_date"`

	// ReturnDate is the inbound date, nil for one-way
	ReturnDate *time.Time `json:"return_date,omitempty"`

	// Price is the cash price
	Price decimal.Decimal `json:"price"`

	// Currency is the price currency
	Currency string `json:"currency"`

	// Points is the award price, 0 when the source reported none
	Points int `json:"points,omitempty"`

	// Airline is the marketing carrier code or name
	Airline string `json:"airline"`

	// Cabin is the cabin class
	Cabin CabinClass `json:"cabin_class"`

	// Stops is the number of stops, 0 for non-stop
	Stops int `json:"stops"`

	// BookingURL links to the booking page when the source provides one
	BookingURL string `json:"booking_url,omitempty"`
}

// Key identifies a flight for deduplication.
// Two results describing the same physical flight from different sources
// share a key.
type Key struct {
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    string
	Airline          string
}

// Key returns the deduplication identity of the flight
func (f Flight) Key() Key {
	return Key{
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
		DepartureDate:    f.DepartureDate.Format(DateLayout),
		Airline:          f.Airline,
	}
}

// HasPoints reports whether the source quoted an award price
func (f Flight) HasPoints() bool {
	return f.Points > 0
}

// CentsPerPoint is the cash value extracted per redeemed point.
// Returns 0 when no award price is present.
func (f Flight) CentsPerPoint() float64 {
	if f.Points <= 0 {
		return 0
	}
	price, _ := f.Price.Float64()
	return price * 100 / float64(f.Points)
}

// Route renders the flight route as "JFK -> NRT"
func (f Flight) Route() string {
	return fmt.Sprintf("%s -> %s", f.DepartureAirport, f.ArrivalAirport)
}

// String renders a one-line flight description
func (f Flight) String() string {
	dates := f.DepartureDate.Format(DateLayout)
	if f.ReturnDate != nil {
		dates += " - " + f.ReturnDate.Format(DateLayout)
	}

	price := "$" + f.Price.StringFixed(2)
	if f.HasPoints() {
		price += fmt.Sprintf(" or %d points", f.Points)
	}

	stops := "Direct"
	if f.Stops > 0 {
		stops = fmt.Sprintf("%d stop(s)", f.Stops)
	}

	return fmt.Sprintf("%s | %s | %s | %s | %s", f.Route(), dates, f.Airline, price, stops)
}
