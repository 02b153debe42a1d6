package profile

import (
	"fmt"
	"sort"
	"strings"
)

const topValues = 5

// Render builds the diagnostic profiling report for a table: row and
// column counts, per-column null and distinct counts, and the most
// frequent values of each text column. Columns in exclude are left out of
// the frequency section; free-text columns like descriptions are
// meaningless to profile that way.
func Render(t *Table, exclude ...string) string {
	excluded := make(map[string]bool, len(exclude))
	for _, col := range exclude {
		excluded[col] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n", t.Name)
	fmt.Fprintf(&b, "Row count: %d\n", t.RowCount())
	fmt.Fprintf(&b, "Column count: %d\n", len(t.Columns))

	b.WriteString("\nMissing values per column:\n")
	for _, col := range t.Columns {
		nulls := 0
		for _, v := range col.Values {
			if v == nil {
				nulls++
			}
		}
		fmt.Fprintf(&b, "  %-24s %d\n", col.Name, nulls)
	}

	b.WriteString("\nUnique values per column:\n")
	for _, col := range t.Columns {
		fmt.Fprintf(&b, "  %-24s %d\n", col.Name, distinctCount(col.Values))
	}

	fmt.Fprintf(&b, "\nTop %d most frequent values per text column:\n", topValues)
	for _, col := range t.Columns {
		if !col.Text || excluded[col.Name] {
			continue
		}
		fmt.Fprintf(&b, "\nColumn: %s\n", col.Name)
		for _, vc := range topFrequencies(col.Values, topValues) {
			fmt.Fprintf(&b, "  %-32s %d\n", vc.value, vc.count)
		}
	}

	return b.String()
}

func distinctCount(values []*string) int {
	seen := map[string]struct{}{}
	for _, v := range values {
		if v != nil {
			seen[*v] = struct{}{}
		}
	}
	return len(seen)
}

type valueCount struct {
	value string
	count int
}

// topFrequencies counts non-null values and returns the n most frequent.
// Ties break on the value itself so the report is deterministic.
func topFrequencies(values []*string, n int) []valueCount {
	counts := map[string]int{}
	for _, v := range values {
		if v != nil {
			counts[*v]++
		}
	}

	ranked := make([]valueCount, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, valueCount{value: v, count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].value < ranked[j].value
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
