package load

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"datamart/internal/config"
	"datamart/internal/errors"
	"datamart/internal/models"
	"datamart/internal/warehouse"
)

// OpenDB connects to the target Postgres warehouse.
func OpenDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, errors.Storage("open warehouse connection", err)
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Storage("ping warehouse", err)
	}
	return db, nil
}

// Warehouse performs the destructive-replace load. All truncates and
// inserts run in a single transaction so a mid-run failure leaves every
// target table exactly as the previous run left it, and readers never see
// a half-loaded batch.
type Warehouse struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewWarehouse(db *sql.DB, logger *zap.Logger) *Warehouse {
	return &Warehouse{db: db, logger: logger}
}

// Load replaces the contents of every dimension, fact and product table
// with the current batch.
func (w *Warehouse) Load(ctx context.Context, star *warehouse.StarSchema, products []models.Product) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Storage("begin load transaction", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Storage("ensure warehouse schema", err)
		}
	}

	truncate := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE",
		strings.Join(tableOrder, ", "))
	if _, err := tx.ExecContext(ctx, truncate); err != nil {
		return errors.Storage("truncate warehouse tables", err)
	}

	if err := w.copyStar(ctx, tx, star); err != nil {
		return err
	}
	if err := w.copyProducts(ctx, tx, products); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Storage("commit load transaction", err)
	}

	w.logger.Info("warehouse load complete",
		zap.Int("companies", len(star.Companies)),
		zap.Int("locations", len(star.Locations)),
		zap.Int("facts", len(star.Facts)),
		zap.Int("products", len(products)))
	return nil
}

func (w *Warehouse) copyStar(ctx context.Context, tx *sql.Tx, star *warehouse.StarSchema) error {
	companies := make([][]any, len(star.Companies))
	for i, d := range star.Companies {
		companies[i] = []any{d.CompanyID, d.Company, d.CompanyType, d.CompanySector,
			d.CompanyIndustry, d.CompanyFounded, d.CompanySizeMin, d.CompanySizeMax,
			d.RevenueMin, d.RevenueMax}
	}
	if err := copyRows(ctx, tx, "dim_company", []string{
		"company_id", "company", "company_type", "company_sector", "company_industry",
		"company_founded", "company_size_min", "company_size_max",
		"company_revenue_min", "company_revenue_max",
	}, companies); err != nil {
		return err
	}

	locations := make([][]any, len(star.Locations))
	for i, d := range star.Locations {
		locations[i] = []any{d.LocationID, d.Location, d.City, d.State, d.Country, d.LocationType}
	}
	if err := copyRows(ctx, tx, "dim_location", []string{
		"location_id", "location", "city", "state", "country", "location_type",
	}, locations); err != nil {
		return err
	}

	families := make([][]any, len(star.JobFamilies))
	for i, d := range star.JobFamilies {
		families[i] = []any{d.JobFamilyID, d.JobFamily}
	}
	if err := copyRows(ctx, tx, "dim_job_family",
		[]string{"job_family_id", "job_family"}, families); err != nil {
		return err
	}

	seniorities := make([][]any, len(star.Seniorities))
	for i, d := range star.Seniorities {
		seniorities[i] = []any{d.SeniorityLevelID, d.SeniorityLevel}
	}
	if err := copyRows(ctx, tx, "dim_seniority",
		[]string{"seniority_level_id", "seniority_level"}, seniorities); err != nil {
		return err
	}

	dates := make([][]any, len(star.Dates))
	for i, d := range star.Dates {
		dates[i] = []any{d.DateID, d.Date, d.Day, d.Month, d.Year}
	}
	if err := copyRows(ctx, tx, "dim_date",
		[]string{"date_id", "date", "day", "month", "year"}, dates); err != nil {
		return err
	}

	times := make([][]any, len(star.Times))
	for i, d := range star.Times {
		times[i] = []any{d.TimeID, d.Clock}
	}
	if err := copyRows(ctx, tx, "dim_time",
		[]string{"time_id", "time"}, times); err != nil {
		return err
	}

	facts := make([][]any, len(star.Facts))
	for i, f := range star.Facts {
		facts[i] = []any{f.RequirementID, f.JobTitle, f.SalaryAmount, f.SalaryPeriod,
			f.JobDescription, f.CompanyID, f.LocationID, f.JobFamilyID,
			f.SeniorityLevelID, f.DateID, f.TimeID}
	}
	return copyRows(ctx, tx, "fact_requirements", []string{
		"requirement_id", "job_title", "salary_amount", "salary_period",
		"job_description", "company_id", "location_id", "job_family_id",
		"seniority_level_id", "date_id", "time_id",
	}, facts)
}

func (w *Warehouse) copyProducts(ctx context.Context, tx *sql.Tx, products []models.Product) error {
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ProductID, p.Name, p.Currency, p.Rating, p.RatingCount,
			p.ActualPrice, p.DiscountPrice}
	}
	return copyRows(ctx, tx, "products_cleaned", []string{
		"product_id", "name", "currency", "rating", "rating_count",
		"actual_price", "discount_price",
	}, rows)
}

// copyRows bulk-inserts with COPY FROM STDIN.
func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]any) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return errors.Storage(fmt.Sprintf("prepare copy into %s", table), err)
	}

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			stmt.Close()
			return errors.Storage(fmt.Sprintf("copy row into %s", table), err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return errors.Storage(fmt.Sprintf("flush copy into %s", table), err)
	}
	if err := stmt.Close(); err != nil {
		return errors.Storage(fmt.Sprintf("close copy into %s", table), err)
	}
	return nil
}
