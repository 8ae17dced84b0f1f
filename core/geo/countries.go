package geo

import "strings"

// countryAirports maps 2-letter ISO country codes to major airports.
// Used to expand "search everything out of Japan" style configuration
// into concrete airport lists.
var countryAirports = map[string][]string{
	"US": {
		"JFK", "EWR", "LGA", "BOS", "PHL", "IAD", "DCA", "ATL", "MIA", "MCO",
		"LAX", "SFO", "SEA", "PDX", "SAN",
		"ORD", "DFW", "IAH", "DEN", "PHX", "LAS",
	},
	"CA": {"YYZ", "YVR", "YUL", "YYC"},
	"JP": {"NRT", "HND", "KIX", "NGO", "FUK"},
	"KR": {"ICN", "GMP"},
	"TW": {"TPE"},
	"CN": {"PVG", "PEK"},
	"HK": {"HKG"},
	"SG": {"SIN"},
	"TH": {"BKK"},
	"IN": {"DEL", "BOM"},
	"GB": {"LHR", "LGW"},
	"FR": {"CDG", "ORY"},
	"DE": {"FRA", "MUC"},
	"NL": {"AMS"},
	"ES": {"MAD", "BCN"},
	"IT": {"FCO", "MXP"},
	"CH": {"ZRH"},
	"AU": {"SYD", "MEL", "BNE"},
	"NZ": {"AKL"},
	"AE": {"DXB", "AUH"},
	"QA": {"DOH"},
	"BR": {"GRU", "GIG"},
	"AR": {"EZE"},
	"MX": {"MEX", "CUN"},
}

// AirportsForCountry returns the airports configured for a country code.
// Unknown countries return an empty list.
func AirportsForCountry(country string) []string {
	airports := countryAirports[strings.ToUpper(strings.TrimSpace(country))]
	out := make([]string, len(airports))
	copy(out, airports)
	return out
}

// AirportsForCountries returns the combined airport list for several
// countries, deduplicated while preserving order.
func AirportsForCountries(countries []string) []string {
	var airports []string
	for _, country := range countries {
		airports = append(airports, AirportsForCountry(country)...)
	}
	return dedupeOrdered(airports)
}

// ExpandRouteConfig combines explicitly listed airports with airports
// expanded from country codes. Explicit airports come first and the
// result preserves order with duplicates removed.
func ExpandRouteConfig(departureCountries, arrivalCountries, departureAirports, arrivalAirports []string) (departures, arrivals []string) {
	departures = append(departures, departureAirports...)
	departures = append(departures, AirportsForCountries(departureCountries)...)

	arrivals = append(arrivals, arrivalAirports...)
	arrivals = append(arrivals, AirportsForCountries(arrivalCountries)...)

	return dedupeOrdered(departures), dedupeOrdered(arrivals)
}

func dedupeOrdered(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
