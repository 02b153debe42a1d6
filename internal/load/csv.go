package load

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"datamart/internal/errors"
	"datamart/internal/profile"
)

// SaveCSV writes a cleaned table under dir, creating the directory when it
// does not exist and appending a .csv extension when missing. Absent
// values serialize as empty strings.
func SaveCSV(dir, filename string, table *profile.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Storage("create output directory", err)
	}
	if !strings.HasSuffix(filename, ".csv") {
		filename += ".csv"
	}
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Storage("create output file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	headerRow := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		headerRow[i] = col.Name
	}
	if err := w.Write(headerRow); err != nil {
		return "", errors.Storage("write csv header", err)
	}

	for i := 0; i < table.RowCount(); i++ {
		rec := make([]string, len(table.Columns))
		for j, col := range table.Columns {
			if v := col.Values[i]; v != nil {
				rec[j] = *v
			}
		}
		if err := w.Write(rec); err != nil {
			return "", errors.Storage("write csv row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Storage("flush csv output", err)
	}
	return path, nil
}
