package load

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamart/internal/profile"
)

func strp(s string) *string { return &s }

func TestSaveCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output") // does not exist yet

	table := &profile.Table{
		Name: "sample",
		Columns: []profile.Column{
			{Name: "id", Values: []*string{strp("0"), strp("1")}},
			{Name: "company", Values: []*string{strp("Apple Inc"), nil}},
		},
	}

	path, err := SaveCSV(dir, "sample", table)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"), "extension appended when missing")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "company"}, records[0])
	assert.Equal(t, []string{"0", "Apple Inc"}, records[1])
	assert.Equal(t, []string{"1", ""}, records[2], "absent values serialize empty")
}

func TestSaveCSVKeepsExistingExtension(t *testing.T) {
	dir := t.TempDir()
	table := &profile.Table{
		Name:    "sample",
		Columns: []profile.Column{{Name: "id", Values: []*string{strp("0")}}},
	}

	path, err := SaveCSV(dir, "sample.csv", table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample.csv"), path)
}
