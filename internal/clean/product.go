package clean

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingNonDigits = regexp.MustCompile(`^\D+`)
	nonNumeric       = regexp.MustCompile(`[^0-9.,]`)
)

// CurrencySymbol extracts the leading non-digit run of a price string
// ("₹1,099" yields "₹"). Nil when the string is empty or starts with a
// digit.
func CurrencySymbol(raw string) *string {
	sym := strings.TrimSpace(leadingNonDigits.FindString(raw))
	if sym == "" {
		return nil
	}
	return &sym
}

// ParsePrice strips currency symbols and other non-numeric characters from
// a price string and parses the remainder as a float. Unparseable content
// yields nil rather than an error.
func ParsePrice(raw string) *float64 {
	s := nonNumeric.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseRating parses a product rating. Junk values that leak into the
// ratings column ("FREE", "Get") yield nil.
func ParseRating(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseRatingCount parses a review count like "1,074". Nil on anything
// non-numeric.
func ParseRatingCount(raw string) *int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
