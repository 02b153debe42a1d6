package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"datamart/internal/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const requirementsCSV = `,job_title,company,location,salary_estimate,company_size,company_type,company_sector,company_industry,company_founded,company_revenue,dates,job_description
0,Data Analyst,Apple Inc,"Cupertino, CA","$85,000/yr",10000+ Employees,Company - Public,Information Technology,Computer Hardware Development,1976,$10+ billion (USD),2023-07-13 04:57:27,Analyze things.
1,Data Engineer,Google,Remote,"$50.00/hr",Unknown,,,,,Unknown / Non-Applicable,2023-07-12 10:15:30,Build pipelines.
`

func TestReadRequirements(t *testing.T) {
	r := NewReader(zap.NewNop())

	rows, err := r.ReadRequirements(writeFile(t, requirementsCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The unnamed source index column becomes the identifier.
	assert.Equal(t, 0, rows[0].RequirementID)
	assert.Equal(t, 1, rows[1].RequirementID)
	assert.Equal(t, "Data Analyst", rows[0].JobTitle)
	assert.Equal(t, "Cupertino, CA", rows[0].Location)
	assert.Equal(t, "$85,000/yr", rows[0].SalaryEstimate)
	assert.Equal(t, "", rows[1].CompanyType)
}

func TestReadRequirementsMissingColumnIsFatal(t *testing.T) {
	r := NewReader(zap.NewNop())

	_, err := r.ReadRequirements(writeFile(t, ",job_title,company\n0,Data Analyst,Apple Inc\n"))
	require.Error(t, err)

	var domainErr *errors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.ErrTypeSchemaMismatch, domainErr.Type)
}

func TestReadRequirementsBadSourceIndexIsFatal(t *testing.T) {
	r := NewReader(zap.NewNop())

	// A corrupt index cell must not silently become a row ordinal; a
	// guessed ID can collide with a real one further down the file.
	csv := ",job_title,company,location,salary_estimate,company_size,company_type,company_sector,company_industry,company_founded,company_revenue,dates,job_description\n" +
		"oops,Data Analyst,Apple Inc,Remote,,,,,,,,2023-07-13 04:57:27,x\n"
	_, err := r.ReadRequirements(writeFile(t, csv))
	require.Error(t, err)

	var domainErr *errors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.ErrTypeInvalidInput, domainErr.Type)
}

func TestReadProducts(t *testing.T) {
	r := NewReader(zap.NewNop())

	csv := ",name,ratings,no_of_ratings,actual_price,discount_price\n" +
		"0,Wireless Mouse,4.1,\"1,074\",₹1099,₹399\n"
	rows, err := r.ReadProducts(writeFile(t, csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wireless Mouse", rows[0].Name)
	assert.Equal(t, "1,074", rows[0].RatingCount)
	assert.Equal(t, "₹1099", rows[0].ActualPrice)
}

func TestReadMissingFile(t *testing.T) {
	r := NewReader(zap.NewNop())

	_, err := r.ReadRequirements(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
