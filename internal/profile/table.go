package profile

import (
	"strconv"
	"time"

	"datamart/internal/models"
)

// Column is one named column of a cleaned table, stringified for profiling
// and CSV output. A nil value marks a missing cell. Text columns take part
// in the top-value frequency section of the report.
type Column struct {
	Name   string
	Text   bool
	Values []*string
}

// Table is a column-oriented view over a cleaned dataset.
type Table struct {
	Name    string
	Columns []Column
}

func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// RequirementsTable builds the profiling/export view of the cleaned job
// requirements table.
func RequirementsTable(recs []models.Requirement) *Table {
	n := len(recs)
	b := newBuilder(n)

	for _, rec := range recs {
		b.addInt("requirement_id", false, rec.RequirementID)
		b.addStr("job_title", true, rec.JobTitle)
		b.addStr("company", true, rec.Company)
		b.addStr("location", true, rec.Location)
		b.addOptStr("city", true, rec.City)
		b.addOptStr("state", true, rec.State)
		b.addOptStr("country", true, rec.Country)
		b.addStr("location_type", true, rec.LocationType)
		b.addStr("job_family", true, rec.JobFamily)
		b.addStr("seniority_level", true, rec.SeniorityLevel)
		b.addOptFloat("salary_amount", rec.SalaryAmount)
		b.addOptStr("salary_period", true, rec.SalaryPeriod)
		b.addOptInt("company_size_min", rec.CompanySizeMin)
		b.addOptInt("company_size_max", rec.CompanySizeMax)
		b.addStr("company_type", true, rec.CompanyType)
		b.addStr("company_sector", true, rec.CompanySector)
		b.addStr("company_industry", true, rec.CompanyIndustry)
		b.addOptInt("company_founded", rec.CompanyFounded)
		b.addOptFloat("company_revenue_min", rec.RevenueMin)
		b.addOptFloat("company_revenue_max", rec.RevenueMax)
		b.addStr("dates", false, rec.PostedAt.Format(time.RFC3339))
		b.addStr("date", false, rec.PostedAt.Format("2006-01-02"))
		b.addInt("day", false, rec.Day)
		b.addInt("month", false, rec.Month)
		b.addInt("year", false, rec.Year)
		b.addStr("time", false, rec.Clock)
		b.addInt("company_id", false, rec.CompanyID)
		b.addInt("location_id", false, rec.LocationID)
		b.addInt("job_family_id", false, rec.JobFamilyID)
		b.addInt("seniority_level_id", false, rec.SeniorityLevelID)
		b.addInt("date_id", false, rec.DateID)
		b.addInt("time_id", false, rec.TimeID)
		b.addStr("job_description", true, rec.JobDescription)
	}

	return b.table("requirements_cleaned")
}

// ProductsTable builds the profiling/export view of the cleaned product
// listings table.
func ProductsTable(products []models.Product) *Table {
	b := newBuilder(len(products))

	for _, p := range products {
		b.addInt("product_id", false, p.ProductID)
		b.addStr("name", true, p.Name)
		b.addOptStr("currency", true, p.Currency)
		b.addOptFloat("ratings", p.Rating)
		b.addOptInt("no_of_ratings", p.RatingCount)
		b.addOptFloat("actual_price", p.ActualPrice)
		b.addOptFloat("discount_price", p.DiscountPrice)
	}

	return b.table("products_cleaned")
}

// builder accumulates columns in first-add order.
type builder struct {
	order []string
	text  map[string]bool
	cols  map[string][]*string
	rows  int
}

func newBuilder(rows int) *builder {
	return &builder{
		text: map[string]bool{},
		cols: map[string][]*string{},
		rows: rows,
	}
}

func (b *builder) add(name string, text bool, v *string) {
	if _, ok := b.cols[name]; !ok {
		b.order = append(b.order, name)
		b.text[name] = text
		b.cols[name] = make([]*string, 0, b.rows)
	}
	b.cols[name] = append(b.cols[name], v)
}

func (b *builder) addStr(name string, text bool, v string) {
	if v == "" {
		b.add(name, text, nil)
		return
	}
	b.add(name, text, &v)
}

func (b *builder) addOptStr(name string, text bool, v *string) {
	b.add(name, text, v)
}

func (b *builder) addInt(name string, text bool, v int) {
	s := strconv.Itoa(v)
	b.add(name, text, &s)
}

func (b *builder) addOptInt(name string, v *int) {
	if v == nil {
		b.add(name, false, nil)
		return
	}
	s := strconv.Itoa(*v)
	b.add(name, false, &s)
}

func (b *builder) addOptFloat(name string, v *float64) {
	if v == nil {
		b.add(name, false, nil)
		return
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	b.add(name, false, &s)
}

func (b *builder) table(name string) *Table {
	t := &Table{Name: name}
	for _, col := range b.order {
		t.Columns = append(t.Columns, Column{
			Name:   col,
			Text:   b.text[col],
			Values: b.cols[col],
		})
	}
	return t
}
