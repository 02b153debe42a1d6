package clean

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun     = regexp.MustCompile(`\s+`)
	commaBeforeSuffix = regexp.MustCompile(`(?i),(\s*)\b(Inc|LLC|Corp|Ltd|Co)\b`)
	suffixPunctuation = regexp.MustCompile(`(?i)\b(Inc|LLC|Corp|Ltd|Co)\b[.,]`)
	suffixSplit       = regexp.MustCompile(`(?i)^(.*?)\b(Inc|LLC|Corp|Ltd|Co)\b(.*)$`)
)

// canonicalSuffixes maps upper-cased legal suffix tokens to their display
// spelling.
var canonicalSuffixes = map[string]string{
	"INC":  "Inc",
	"LLC":  "LLC",
	"CORP": "Corp",
	"LTD":  "Ltd",
	"CO":   "Co",
}

// NormalizeCompany turns a raw scraped organization name into a consistent
// display name. Trailing boilerplate after the first newline is discarded,
// whitespace is collapsed, punctuation around a recognized legal suffix is
// stripped and the suffix is rewritten in its canonical spelling. Names that
// are entirely upper- or lower-case are title-cased; mixed case is assumed
// already correct and left alone. A missing name becomes "Unknown".
func NormalizeCompany(raw string) string {
	name := raw
	if i := strings.IndexByte(name, '\n'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))
	name = commaBeforeSuffix.ReplaceAllString(name, "$1$2")
	name = suffixPunctuation.ReplaceAllString(name, "$1")
	if name == "" {
		return "Unknown"
	}

	if m := suffixSplit.FindStringSubmatch(name); m != nil {
		base := strings.TrimSpace(m[1])
		suffix := canonicalSuffix(m[2])
		trailing := strings.TrimSpace(m[3])

		if isUpper(base) || isLower(base) {
			base = titleCase(base)
		}
		name = strings.TrimSpace(base + " " + suffix)
		if trailing != "" {
			name += " " + trailing
		}
	} else if isUpper(name) || isLower(name) {
		name = titleCase(name)
	}

	// Title-casing capitalizes the letter after a dot, mangling domain-style
	// names ("Jobs.com" would come out "Jobs.Com").
	return strings.ReplaceAll(name, ".Com", ".com")
}

func canonicalSuffix(s string) string {
	if canonical, ok := canonicalSuffixes[strings.ToUpper(s)]; ok {
		return canonical
	}
	return s
}

// isUpper reports whether s contains at least one cased letter and no
// lower-case letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLower reports whether s contains at least one cased letter and no
// upper-case letters.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
