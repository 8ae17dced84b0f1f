package amadeus

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jackzhaolt/plane-ticket-query/core/search"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
)

// offersResponse mirrors the flight-offers payload, limited to the
// fields the monitor cares about
type offersResponse struct {
	Data []offer `json:"data"`
}

type offer struct {
	Itineraries            []itinerary `json:"itineraries"`
	Price                  offerPrice  `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

type itinerary struct {
	Segments []segment `json:"segments"`
}

type segment struct {
	Departure   endpoint `json:"departure"`
	Arrival     endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
}

type endpoint struct {
	IataCode string `json:"iataCode"`
}

type offerPrice struct {
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

// parseOffers converts an API payload into flight values.
// Offers with unparseable prices or no itinerary are dropped rather than
// failing the whole response.
func parseOffers(body []byte, q search.Query) ([]types.Flight, error) {
	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Backend("decode flight-offers response", err)
	}

	flights := make([]types.Flight, 0, len(resp.Data))
	for _, o := range resp.Data {
		if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
			continue
		}

		price, err := decimal.NewFromString(o.Price.GrandTotal)
		if err != nil {
			continue
		}

		outbound := o.Itineraries[0]
		first := outbound.Segments[0]
		last := outbound.Segments[len(outbound.Segments)-1]

		airline := first.CarrierCode
		if len(o.ValidatingAirlineCodes) > 0 {
			airline = o.ValidatingAirlineCodes[0]
		}

		currency := o.Price.Currency
		if currency == "" {
			currency = "USD"
		}

		flights = append(flights, types.Flight{
			DepartureAirport: first.Departure.IataCode,
			ArrivalAirport:   last.Arrival.IataCode,
			DepartureDate:    q.DepartureDate,
			ReturnDate:       q.ReturnDate,
			Price:            price,
			Currency:         currency,
			Airline:          airline,
			Cabin:            q.Cabin,
			Stops:            len(outbound.Segments) - 1,
		})
	}

	return flights, nil
}
