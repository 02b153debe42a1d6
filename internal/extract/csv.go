package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"datamart/internal/errors"
	"datamart/internal/models"
)

// Expected column schemas. Downstream steps reference these columns by
// name, so a missing one is fatal.
var (
	requirementColumns = []string{
		"job_title", "company", "location", "salary_estimate",
		"company_size", "company_type", "company_sector", "company_industry",
		"company_founded", "company_revenue", "dates", "job_description",
	}
	productColumns = []string{
		"name", "ratings", "no_of_ratings", "actual_price", "discount_price",
	}
)

// Reader loads raw CSV datasets fully into memory, one file per call.
type Reader struct {
	logger *zap.Logger
}

func NewReader(logger *zap.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadRequirements reads the job requirements dataset.
func (r *Reader) ReadRequirements(path string) ([]models.RawRequirement, error) {
	header, records, err := r.readFile(path, requirementColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]models.RawRequirement, 0, len(records))
	for i, rec := range records {
		id, err := sourceID(header, rec, i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.RawRequirement{
			RequirementID:   id,
			JobTitle:        header.field(rec, "job_title"),
			Company:         header.field(rec, "company"),
			Location:        header.field(rec, "location"),
			SalaryEstimate:  header.field(rec, "salary_estimate"),
			CompanySize:     header.field(rec, "company_size"),
			CompanyType:     header.field(rec, "company_type"),
			CompanySector:   header.field(rec, "company_sector"),
			CompanyIndustry: header.field(rec, "company_industry"),
			CompanyFounded:  header.field(rec, "company_founded"),
			CompanyRevenue:  header.field(rec, "company_revenue"),
			Dates:           header.field(rec, "dates"),
			JobDescription:  header.field(rec, "job_description"),
		})
	}

	r.logger.Info("read requirements dataset",
		zap.String("path", path),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// ReadProducts reads the product listings dataset.
func (r *Reader) ReadProducts(path string) ([]models.RawProduct, error) {
	header, records, err := r.readFile(path, productColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]models.RawProduct, 0, len(records))
	for i, rec := range records {
		id, err := sourceID(header, rec, i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.RawProduct{
			ProductID:     id,
			Name:          header.field(rec, "name"),
			Ratings:       header.field(rec, "ratings"),
			RatingCount:   header.field(rec, "no_of_ratings"),
			ActualPrice:   header.field(rec, "actual_price"),
			DiscountPrice: header.field(rec, "discount_price"),
		})
	}

	r.logger.Info("read products dataset",
		zap.String("path", path),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// header maps column names to their position in a record. The unnamed
// source index column keeps its "" key.
type header map[string]int

func (h header) field(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// sourceID remaps the unnamed index column from the source file to the
// explicit identifier. Files without an index column fall back to row
// ordinals; a present but unparseable index aborts the run, since a
// guessed ordinal can collide with a real ID and break the fact table's
// primary key much later, mid-load.
func sourceID(h header, rec []string, ordinal int) (int, error) {
	i, ok := h[""]
	if !ok || i >= len(rec) {
		return ordinal, nil
	}
	raw := strings.TrimSpace(rec[i])
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(
			fmt.Sprintf("unparseable source index %q in row %d", raw, ordinal), err)
	}
	return id, nil
}

func (r *Reader) readFile(path string, expected []string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.InvalidInput(fmt.Sprintf("open dataset %s", path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.LazyQuotes = true

	head, err := cr.Read()
	if err != nil {
		return nil, nil, errors.SchemaMismatch(fmt.Sprintf("read header of %s", path), err)
	}

	h := make(header, len(head))
	for i, name := range head {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		h[name] = i
	}
	for _, col := range expected {
		if _, ok := h[col]; !ok {
			return nil, nil, errors.SchemaMismatch(
				fmt.Sprintf("dataset %s is missing expected column %q", path, col), nil)
		}
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.InvalidInput(fmt.Sprintf("read row of %s", path), err)
		}
		records = append(records, rec)
	}
	return h, records, nil
}
