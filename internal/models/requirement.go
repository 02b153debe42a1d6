package models

import "time"

// RawRequirement is one row of the scraped job requirements CSV, exactly as
// read from the file. All fields except the identifier are unvalidated text.
type RawRequirement struct {
	RequirementID   int
	JobTitle        string
	Company         string
	Location        string
	SalaryEstimate  string
	CompanySize     string
	CompanyType     string
	CompanySector   string
	CompanyIndustry string
	CompanyFounded  string
	CompanyRevenue  string
	Dates           string
	JobDescription  string
}

// Blank reports whether every field besides the identifier is empty. Such
// rows carry no information and are dropped during transformation.
func (r RawRequirement) Blank() bool {
	return r.JobTitle == "" &&
		r.Company == "" &&
		r.Location == "" &&
		r.SalaryEstimate == "" &&
		r.CompanySize == "" &&
		r.CompanyType == "" &&
		r.CompanySector == "" &&
		r.CompanyIndustry == "" &&
		r.CompanyFounded == "" &&
		r.CompanyRevenue == "" &&
		r.Dates == "" &&
		r.JobDescription == ""
}

// Requirement is the cleaned wide record: every raw field normalized plus
// the derived columns and batch-local surrogate keys. Pointer fields are
// nil when the source value was missing or unparseable.
type Requirement struct {
	RequirementID int

	JobTitle       string
	JobFamily      string
	SeniorityLevel string

	Company         string
	CompanyType     string
	CompanySector   string
	CompanyIndustry string
	CompanyFounded  *int
	CompanySizeMin  *int
	CompanySizeMax  *int
	RevenueMin      *float64
	RevenueMax      *float64

	Location     string
	City         *string
	State        *string
	Country      *string
	LocationType string

	SalaryAmount *float64
	SalaryPeriod *string

	PostedAt time.Time // normalized to UTC
	Day      int
	Month    int
	Year     int
	Clock    string // HH:MM:SS

	JobDescription string

	CompanyID        int
	LocationID       int
	JobFamilyID      int
	SeniorityLevelID int
	DateID           int // YYYYMMDD
	TimeID           int // HHMMSS
}
