package transform

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"datamart/internal/clean"
	"datamart/internal/errors"
	"datamart/internal/models"
)

// Timestamp layouts accepted in the dates column, tried in order. Parsed
// values are normalized to UTC.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const unknown = "Unknown"

// RequirementsTransformer derives the cleaned wide table from raw job
// requirement rows: field normalization, classification, numeric
// extraction, date parts and batch-local surrogate keys.
type RequirementsTransformer struct {
	logger *zap.Logger
}

func NewRequirementsTransformer(logger *zap.Logger) *RequirementsTransformer {
	return &RequirementsTransformer{logger: logger}
}

// Transform cleans every raw row. Rows that are blank apart from their
// identifier are dropped; every surviving row produces exactly one cleaned
// record. A timestamp that fails to parse aborts the run, since malformed
// input is a data-quality problem to fix upstream.
func (t *RequirementsTransformer) Transform(raw []models.RawRequirement) ([]models.Requirement, error) {
	recs := make([]models.Requirement, 0, len(raw))
	dropped := 0

	for _, row := range raw {
		if row.Blank() {
			dropped++
			continue
		}

		rec, err := t.cleanRow(row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	assignSurrogateKeys(recs)

	t.logger.Info("transformed requirements",
		zap.Int("rows_in", len(raw)),
		zap.Int("rows_out", len(recs)),
		zap.Int("rows_dropped", dropped))
	return recs, nil
}

func (t *RequirementsTransformer) cleanRow(row models.RawRequirement) (models.Requirement, error) {
	postedAt, err := parseUTC(row.Dates)
	if err != nil {
		return models.Requirement{}, errors.InvalidInput(
			fmt.Sprintf("unparseable timestamp in row %d", row.RequirementID), err)
	}

	loc := clean.NormalizeLocation(row.Location)
	salaryAmount, salaryPeriod := clean.ParseSalary(row.SalaryEstimate)
	sizeMin, sizeMax := clean.ParseEmployeeRange(row.CompanySize)
	revenueMin, revenueMax := clean.SplitRevenue(row.CompanyRevenue)

	return models.Requirement{
		RequirementID: row.RequirementID,

		JobTitle:       row.JobTitle,
		JobFamily:      clean.DetectJobFamily(row.JobTitle),
		SeniorityLevel: clean.ClassifySeniority(row.JobTitle),

		Company:         clean.NormalizeCompany(row.Company),
		CompanyType:     fillUnknown(row.CompanyType),
		CompanySector:   fillUnknown(row.CompanySector),
		CompanyIndustry: fillUnknown(row.CompanyIndustry),
		CompanyFounded:  parseYear(row.CompanyFounded),
		CompanySizeMin:  sizeMin,
		CompanySizeMax:  sizeMax,
		RevenueMin:      revenueMin,
		RevenueMax:      revenueMax,

		Location:     row.Location,
		City:         loc.City,
		State:        loc.State,
		Country:      loc.Country,
		LocationType: loc.Type,

		SalaryAmount: salaryAmount,
		SalaryPeriod: salaryPeriod,

		PostedAt: postedAt,
		Day:      postedAt.Day(),
		Month:    int(postedAt.Month()),
		Year:     postedAt.Year(),
		Clock:    postedAt.Format("15:04:05"),

		JobDescription: row.JobDescription,
	}, nil
}

// assignSurrogateKeys derives the dimension keys over the full batch. The
// raw location string keys the location dimension, mirroring the company
// column keying the company dimension.
func assignSurrogateKeys(recs []models.Requirement) {
	companies := make([]string, len(recs))
	locations := make([]string, len(recs))
	families := make([]string, len(recs))
	seniorities := make([]string, len(recs))
	for i, rec := range recs {
		companies[i] = rec.Company
		locations[i] = rec.Location
		families[i] = rec.JobFamily
		seniorities[i] = rec.SeniorityLevel
	}

	companyKeys := surrogateKeys(companies)
	locationKeys := surrogateKeys(locations)
	familyKeys := surrogateKeys(families)
	seniorityKeys := surrogateKeys(seniorities)

	for i := range recs {
		recs[i].CompanyID = companyKeys[recs[i].Company]
		recs[i].LocationID = locationKeys[recs[i].Location]
		recs[i].JobFamilyID = familyKeys[recs[i].JobFamily]
		recs[i].SeniorityLevelID = seniorityKeys[recs[i].SeniorityLevel]
		recs[i].DateID = dateKey(recs[i].PostedAt)
		recs[i].TimeID = timeKey(recs[i].PostedAt)
	}
}

func parseUTC(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseYear(raw string) *int {
	y, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &y
}

func fillUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
