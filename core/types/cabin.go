package types

import "strings"

// CabinClass is a cabin class category
type CabinClass string

const (
	// CabinEconomy is the economy cabin
	CabinEconomy CabinClass = "economy"

	// CabinPremiumEconomy is the premium economy cabin
	CabinPremiumEconomy CabinClass = "premium_economy"

	// CabinBusiness is the business cabin
	CabinBusiness CabinClass = "business"

	// CabinFirst is the first class cabin
	CabinFirst CabinClass = "first"
)

// ParseCabinClass normalizes a cabin class name.
// Accepts upper and lower case forms ("ECONOMY", "economy").
// Unknown names fall back to economy.
func ParseCabinClass(s string) CabinClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "premium_economy", "premium economy":
		return CabinPremiumEconomy
	case "business":
		return CabinBusiness
	case "first":
		return CabinFirst
	default:
		return CabinEconomy
	}
}

// String returns the lowercase cabin name
func (c CabinClass) String() string {
	return string(c)
}
