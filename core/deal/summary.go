package deal

import (
	"fmt"
	"strings"

	"github.com/jackzhaolt/plane-ticket-query/core/award"
	"github.com/jackzhaolt/plane-ticket-query/core/geo"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

// Summarize renders a flight deal as human-readable text.
// Pure formatting: the same flight always yields the same summary.
func (d *Detector) Summarize(flight types.Flight) string {
	distance := geo.FlightDistance(flight.DepartureAirport, flight.ArrivalAirport)

	var b strings.Builder

	b.WriteString("DEAL FOUND\n\n")
	b.WriteString("Route: " + flight.Route())
	if distance > 0 {
		fmt.Fprintf(&b, " (%.0f miles)", distance)
	}
	b.WriteString("\n")

	b.WriteString("Date: " + flight.DepartureDate.Format(types.DateLayout))
	if flight.ReturnDate != nil {
		b.WriteString(" - " + flight.ReturnDate.Format(types.DateLayout))
	}
	b.WriteString("\n")

	b.WriteString("Airline: " + flight.Airline + "\n")
	b.WriteString("Class: " + flight.Cabin.String() + "\n")
	if flight.Stops == 0 {
		b.WriteString("Stops: Direct\n")
	} else {
		fmt.Fprintf(&b, "Stops: %d\n", flight.Stops)
	}

	fmt.Fprintf(&b, "\nPrice: $%s %s\n", flight.Price.StringFixed(2), flight.Currency)

	if flight.HasPoints() {
		fmt.Fprintf(&b, "Points: %d (%.2f cents per point)\n", flight.Points, flight.CentsPerPoint())

		if distance > 0 && d.cfg.UseAwardChart {
			quality, explanation, expected := d.charts.Evaluate(
				d.cfg.ChartName, distance, flight.Points, flight.Cabin)

			if expected != nil {
				fmt.Fprintf(&b, "\nAward Chart Analysis (%s):\n", d.cfg.ChartName)
				fmt.Fprintf(&b, "  Expected Range: %d-%d points\n", expected.Min, expected.Max)
				fmt.Fprintf(&b, "  This Flight: %d points\n", flight.Points)
				fmt.Fprintf(&b, "  Rating: %s - %s\n", strings.ToUpper(quality.String()), explanation)
			}
		}

		if distance > 0 {
			fmt.Fprintf(&b, "  Distance Efficiency: %.3f miles/point\n",
				distance/float64(flight.Points))
		}
	}

	if flight.BookingURL != "" {
		b.WriteString("\nBook now: " + flight.BookingURL + "\n")
	}

	return b.String()
}

// Quality classifies a flight against the configured chart.
// Returns false when the distance is unknown or the flight has no award
// price, in which case no chart judgement applies.
func (d *Detector) Quality(flight types.Flight) (award.Quality, string, bool) {
	if !flight.HasPoints() {
		return 0, "", false
	}
	distance := geo.FlightDistance(flight.DepartureAirport, flight.ArrivalAirport)
	if distance == 0 {
		return 0, "", false
	}
	quality, explanation, _ := d.charts.Evaluate(d.cfg.ChartName, distance, flight.Points, flight.Cabin)
	return quality, explanation, true
}
