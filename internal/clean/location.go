package clean

import "strings"

// Location type vocabulary.
const (
	LocationCity    = "City"
	LocationState   = "State"
	LocationCountry = "Country"
	LocationRemote  = "Remote"
	LocationUnknown = "Unknown"
)

// Location is the structured form of a raw location string. Geographic
// fields are nil when the raw value does not carry them.
type Location struct {
	City    *string
	State   *string
	Country *string
	Type    string
}

const unitedStates = "United States"

// stateCodes maps full US state names (plus DC) to their two-letter codes.
var stateCodes = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR",
	"California": "CA", "Colorado": "CO", "Connecticut": "CT", "Delaware": "DE",
	"Florida": "FL", "Georgia": "GA", "Hawaii": "HI", "Idaho": "ID",
	"Illinois": "IL", "Indiana": "IN", "Iowa": "IA", "Kansas": "KS",
	"Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS",
	"Missouri": "MO", "Montana": "MT", "Nebraska": "NE", "Nevada": "NV",
	"New Hampshire": "NH", "New Jersey": "NJ", "New Mexico": "NM", "New York": "NY",
	"North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH", "Oklahoma": "OK",
	"Oregon": "OR", "Pennsylvania": "PA", "Rhode Island": "RI", "South Carolina": "SC",
	"South Dakota": "SD", "Tennessee": "TN", "Texas": "TX", "Utah": "UT",
	"Vermont": "VT", "Virginia": "VA", "Washington": "WA", "West Virginia": "WV",
	"Wisconsin": "WI", "Wyoming": "WY", "District of Columbia": "DC",
}

// NormalizeLocation parses a raw location string into city, state, country
// and a location type. Rules are checked in order: "City, ST" pairs, the
// literal "Remote", the literal "United States", a bare full state name,
// and finally Unknown.
func NormalizeLocation(raw string) Location {
	switch {
	case strings.Contains(raw, ","):
		city, state, _ := strings.Cut(raw, ",")
		return Location{
			City:    ptr(strings.TrimSpace(city)),
			State:   ptr(strings.TrimSpace(state)),
			Country: ptr(unitedStates),
			Type:    LocationCity,
		}
	case raw == "Remote":
		return Location{Type: LocationRemote}
	case raw == unitedStates:
		return Location{Country: ptr(unitedStates), Type: LocationCountry}
	default:
		if code, ok := stateCodes[raw]; ok {
			return Location{
				State:   ptr(code),
				Country: ptr(unitedStates),
				Type:    LocationState,
			}
		}
		return Location{Type: LocationUnknown}
	}
}

func ptr[T any](v T) *T {
	return &v
}
