package load

import (
	"context"
	"database/sql/driver"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"datamart/internal/errors"
	"datamart/internal/models"
	"datamart/internal/warehouse"
)

func opt[T any](v T) *T { return &v }

func sampleBatch() (*warehouse.StarSchema, []models.Product) {
	posted := time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC)
	star := &warehouse.StarSchema{
		Companies: []models.CompanyDim{{
			CompanyID:       1,
			Company:         "Apple Inc",
			CompanyType:     "Company - Public",
			CompanySector:   "Information Technology",
			CompanyIndustry: "Computer Hardware Development",
			CompanyFounded:  opt(1976),
			CompanySizeMin:  opt(10000),
			RevenueMin:      opt(1e10),
		}},
		Locations: []models.LocationDim{{
			LocationID: 1, Location: "Cupertino, CA",
			City: opt("Cupertino"), LocationType: "City",
		}},
		JobFamilies: []models.JobFamilyDim{{JobFamilyID: 1, JobFamily: "Data Analyst"}},
		Seniorities: []models.SeniorityDim{{SeniorityLevelID: 1, SeniorityLevel: "Mid"}},
		Dates:       []models.DateDim{{DateID: 20230713, Date: posted, Day: 13, Month: 7, Year: 2023}},
		Times:       []models.TimeDim{{TimeID: 45727, Clock: "04:57:27"}},
		Facts: []models.RequirementFact{{
			RequirementID: 0, JobTitle: "Data Analyst",
			SalaryAmount: opt(85000.0), SalaryPeriod: opt("yr"),
			JobDescription: "Analyze things.",
			CompanyID:      1, LocationID: 1, JobFamilyID: 1,
			SeniorityLevelID: 1, DateID: 20230713, TimeID: 45727,
		}},
	}
	products := []models.Product{{
		ProductID: 0, Name: "Wireless Mouse",
		Currency: opt("₹"), Rating: opt(4.1), RatingCount: opt(1074),
		ActualPrice: opt(1099.0), DiscountPrice: opt(399.0),
	}}
	return star, products
}

// expectSetup matches the fixed preamble of every load: the schema-ensure
// statements followed by one truncate over all target tables, inside the
// already-open transaction.
func expectSetup(mock sqlmock.Sqlmock) {
	for _, table := range tableOrder {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta(
		"TRUNCATE TABLE dim_company, dim_location, dim_job_family, dim_seniority, " +
			"dim_date, dim_time, fact_requirements, products_cleaned RESTART IDENTITY CASCADE")).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func expectCopy(prep *sqlmock.ExpectedPrepare, rows ...[]driver.Value) {
	for _, row := range rows {
		prep.ExpectExec().WithArgs(row...).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	// Flush exec with no arguments ends the COPY.
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, int64(len(rows))))
}

func TestWarehouseLoadSingleTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	star, products := sampleBatch()
	posted := star.Dates[0].Date

	mock.ExpectBegin()
	expectSetup(mock)
	expectCopy(mock.ExpectPrepare(`COPY "dim_company"`),
		[]driver.Value{1, "Apple Inc", "Company - Public", "Information Technology",
			"Computer Hardware Development", 1976, 10000, nil, 1e10, nil})
	expectCopy(mock.ExpectPrepare(`COPY "dim_location"`),
		[]driver.Value{1, "Cupertino, CA", "Cupertino", nil, nil, "City"})
	expectCopy(mock.ExpectPrepare(`COPY "dim_job_family"`),
		[]driver.Value{1, "Data Analyst"})
	expectCopy(mock.ExpectPrepare(`COPY "dim_seniority"`),
		[]driver.Value{1, "Mid"})
	expectCopy(mock.ExpectPrepare(`COPY "dim_date"`),
		[]driver.Value{20230713, posted, 13, 7, 2023})
	expectCopy(mock.ExpectPrepare(`COPY "dim_time"`),
		[]driver.Value{45727, "04:57:27"})
	expectCopy(mock.ExpectPrepare(`COPY "fact_requirements"`),
		[]driver.Value{0, "Data Analyst", 85000.0, "yr", "Analyze things.",
			1, 1, 1, 1, 20230713, 45727})
	expectCopy(mock.ExpectPrepare(`COPY "products_cleaned"`),
		[]driver.Value{0, "Wireless Mouse", "₹", 4.1, 1074, 1099.0, 399.0})
	mock.ExpectCommit()

	w := NewWarehouse(db, zap.NewNop())
	require.NoError(t, w.Load(context.Background(), star, products))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehouseLoadRollsBackOnCopyFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	star, products := sampleBatch()

	mock.ExpectBegin()
	expectSetup(mock)
	prep := mock.ExpectPrepare(`COPY "dim_company"`)
	prep.ExpectExec().WillReturnError(fmt.Errorf("connection reset by peer"))
	// No commit: the failed copy must roll the whole batch back, leaving
	// the tables as the previous run loaded them.
	mock.ExpectRollback()

	w := NewWarehouse(db, zap.NewNop())
	err = w.Load(context.Background(), star, products)
	require.Error(t, err)

	var domainErr *errors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.ErrTypeStorage, domainErr.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehouseLoadTruncateFailureAborts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	star, products := sampleBatch()

	mock.ExpectBegin()
	for _, table := range tableOrder {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("TRUNCATE TABLE").WillReturnError(fmt.Errorf("permission denied"))
	mock.ExpectRollback()

	w := NewWarehouse(db, zap.NewNop())
	err = w.Load(context.Background(), star, products)
	require.Error(t, err)

	var domainErr *errors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, errors.ErrTypeStorage, domainErr.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}
