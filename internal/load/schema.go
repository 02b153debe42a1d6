package load

// Target tables, dimensions before facts so foreign keys resolve on load.
var tableOrder = []string{
	"dim_company",
	"dim_location",
	"dim_job_family",
	"dim_seniority",
	"dim_date",
	"dim_time",
	"fact_requirements",
	"products_cleaned",
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dim_company (
		company_id INTEGER PRIMARY KEY,
		company TEXT NOT NULL,
		company_type TEXT NOT NULL,
		company_sector TEXT NOT NULL,
		company_industry TEXT NOT NULL,
		company_founded INTEGER,
		company_size_min INTEGER,
		company_size_max INTEGER,
		company_revenue_min DOUBLE PRECISION,
		company_revenue_max DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS dim_location (
		location_id INTEGER PRIMARY KEY,
		location TEXT NOT NULL,
		city TEXT,
		state TEXT,
		country TEXT,
		location_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_job_family (
		job_family_id INTEGER PRIMARY KEY,
		job_family TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_seniority (
		seniority_level_id INTEGER PRIMARY KEY,
		seniority_level TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_date (
		date_id INTEGER PRIMARY KEY,
		date DATE NOT NULL,
		day INTEGER NOT NULL,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_time (
		time_id INTEGER PRIMARY KEY,
		time TIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fact_requirements (
		requirement_id INTEGER PRIMARY KEY,
		job_title TEXT NOT NULL,
		salary_amount DOUBLE PRECISION,
		salary_period TEXT,
		job_description TEXT,
		company_id INTEGER NOT NULL REFERENCES dim_company (company_id),
		location_id INTEGER NOT NULL REFERENCES dim_location (location_id),
		job_family_id INTEGER NOT NULL REFERENCES dim_job_family (job_family_id),
		seniority_level_id INTEGER NOT NULL REFERENCES dim_seniority (seniority_level_id),
		date_id INTEGER NOT NULL REFERENCES dim_date (date_id),
		time_id INTEGER NOT NULL REFERENCES dim_time (time_id)
	)`,
	`CREATE TABLE IF NOT EXISTS products_cleaned (
		product_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		currency TEXT,
		rating DOUBLE PRECISION,
		rating_count INTEGER,
		actual_price DOUBLE PRECISION,
		discount_price DOUBLE PRECISION
	)`,
}
