package transform

import (
	"sort"
	"time"
)

// surrogateKeys assigns dense integer keys to the distinct values of a
// categorical column. Distinct values are sorted lexicographically before
// assignment so the keys depend only on the set of values present in the
// batch, not on input row order. Keys start at 1; 0 is reserved and never
// assigned.
func surrogateKeys(values []string) map[string]int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}

	distinct := make([]string, 0, len(seen))
	for v := range seen {
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)

	keys := make(map[string]int, len(distinct))
	for i, v := range distinct {
		keys[v] = i + 1
	}
	return keys
}

// dateKey encodes a timestamp's date part as a YYYYMMDD integer.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// timeKey encodes a timestamp's time part as an HHMMSS integer.
func timeKey(t time.Time) int {
	return t.Hour()*10000 + t.Minute()*100 + t.Second()
}
