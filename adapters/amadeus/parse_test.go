package amadeus

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackzhaolt/plane-ticket-query/core/search"
	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

const sampleOffers = `{
  "data": [
    {
      "itineraries": [
        {
          "segments": [
            {
              "departure": {"iataCode": "JFK"},
              "arrival": {"iataCode": "NRT"},
              "carrierCode": "NH"
            }
          ]
        }
      ],
      "price": {"grandTotal": "847.30", "currency": "USD"},
      "validatingAirlineCodes": ["NH"]
    },
    {
      "itineraries": [
        {
          "segments": [
            {
              "departure": {"iataCode": "JFK"},
              "arrival": {"iataCode": "SEA"},
              "carrierCode": "DL"
            },
            {
              "departure": {"iataCode": "SEA"},
              "arrival": {"iataCode": "HND"},
              "carrierCode": "DL"
            }
          ]
        }
      ],
      "price": {"grandTotal": "1120.00"}
    },
    {
      "itineraries": [],
      "price": {"grandTotal": "500.00", "currency": "USD"}
    },
    {
      "itineraries": [
        {
          "segments": [
            {
              "departure": {"iataCode": "JFK"},
              "arrival": {"iataCode": "LHR"},
              "carrierCode": "BA"
            }
          ]
        }
      ],
      "price": {"grandTotal": "not-a-number", "currency": "GBP"}
    }
  ]
}`

func sampleQuery() search.Query {
	return search.Query{
		DepartureAirports: []string{"JFK"},
		ArrivalAirports:   []string{"NRT", "HND"},
		DepartureDate:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Adults:            1,
		Cabin:             types.CabinEconomy,
	}
}

func TestParseOffers(t *testing.T) {
	flights, err := parseOffers([]byte(sampleOffers), sampleQuery())
	if err != nil {
		t.Fatalf("parseOffers: %v", err)
	}

	// The empty itinerary and the unparseable price are dropped.
	if len(flights) != 2 {
		t.Fatalf("got %d flights, want 2", len(flights))
	}

	direct := flights[0]
	if direct.DepartureAirport != "JFK" || direct.ArrivalAirport != "NRT" {
		t.Errorf("first flight route = %s", direct.Route())
	}
	if !direct.Price.Equal(decimal.RequireFromString("847.30")) {
		t.Errorf("first flight price = %s", direct.Price)
	}
	if direct.Airline != "NH" || direct.Currency != "USD" || direct.Stops != 0 {
		t.Errorf("first flight = %+v", direct)
	}
	if !direct.DepartureDate.Equal(sampleQuery().DepartureDate) {
		t.Errorf("departure date = %v", direct.DepartureDate)
	}

	connecting := flights[1]
	if connecting.DepartureAirport != "JFK" || connecting.ArrivalAirport != "HND" {
		t.Errorf("connecting flight route = %s", connecting.Route())
	}
	if connecting.Stops != 1 {
		t.Errorf("connecting flight stops = %d, want 1", connecting.Stops)
	}
	// No validating airline: fall back to the first segment's carrier.
	if connecting.Airline != "DL" {
		t.Errorf("connecting flight airline = %q, want DL", connecting.Airline)
	}
	// No currency in the payload: default to USD.
	if connecting.Currency != "USD" {
		t.Errorf("connecting flight currency = %q, want USD", connecting.Currency)
	}
}

func TestParseOffersRejectsMalformedPayload(t *testing.T) {
	if _, err := parseOffers([]byte("<html>rate limited</html>"), sampleQuery()); err == nil {
		t.Error("malformed payload accepted")
	}
}

func TestParseOffersEmptyData(t *testing.T) {
	flights, err := parseOffers([]byte(`{"data": []}`), sampleQuery())
	if err != nil {
		t.Fatalf("parseOffers: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("got %d flights from empty payload", len(flights))
	}
}
