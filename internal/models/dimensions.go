package models

import "time"

// Dimension and fact rows of the star schema. Surrogate keys are dense
// positive integers assigned over a single batch; 0 never appears.

type CompanyDim struct {
	CompanyID       int
	Company         string
	CompanyType     string
	CompanySector   string
	CompanyIndustry string
	CompanyFounded  *int
	CompanySizeMin  *int
	CompanySizeMax  *int
	RevenueMin      *float64
	RevenueMax      *float64
}

type LocationDim struct {
	LocationID   int
	Location     string
	City         *string
	State        *string
	Country      *string
	LocationType string
}

type JobFamilyDim struct {
	JobFamilyID int
	JobFamily   string
}

type SeniorityDim struct {
	SeniorityLevelID int
	SeniorityLevel   string
}

type DateDim struct {
	DateID int // YYYYMMDD
	Date   time.Time
	Day    int
	Month  int
	Year   int
}

type TimeDim struct {
	TimeID int // HHMMSS
	Clock  string
}

// RequirementFact keeps one row per cleaned listing. Job titles stay on the
// fact as a descriptive column; their cardinality is too high for a
// dimension of their own.
type RequirementFact struct {
	RequirementID    int
	JobTitle         string
	SalaryAmount     *float64
	SalaryPeriod     *string
	JobDescription   string
	CompanyID        int
	LocationID       int
	JobFamilyID      int
	SeniorityLevelID int
	DateID           int
	TimeID           int
}
