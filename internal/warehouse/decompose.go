package warehouse

import (
	"sort"
	"time"

	"datamart/internal/models"
)

// StarSchema holds one batch's dimension and fact tables, ready to load.
// Dimension slices are ordered by surrogate key with no duplicates; the
// fact table keeps one row per cleaned record in input order.
type StarSchema struct {
	Companies   []models.CompanyDim
	Locations   []models.LocationDim
	JobFamilies []models.JobFamilyDim
	Seniorities []models.SeniorityDim
	Dates       []models.DateDim
	Times       []models.TimeDim
	Facts       []models.RequirementFact
}

// Decompose projects the cleaned wide table into the star schema. Each
// dimension takes its column subset deduplicated by key (first occurrence
// wins); the fact table takes its subset with no deduplication.
func Decompose(recs []models.Requirement) *StarSchema {
	s := &StarSchema{
		Facts: make([]models.RequirementFact, 0, len(recs)),
	}

	seenCompany := map[int]bool{}
	seenLocation := map[int]bool{}
	seenFamily := map[int]bool{}
	seenSeniority := map[int]bool{}
	seenDate := map[int]bool{}
	seenTime := map[int]bool{}

	for _, rec := range recs {
		if !seenCompany[rec.CompanyID] {
			seenCompany[rec.CompanyID] = true
			s.Companies = append(s.Companies, models.CompanyDim{
				CompanyID:       rec.CompanyID,
				Company:         rec.Company,
				CompanyType:     rec.CompanyType,
				CompanySector:   rec.CompanySector,
				CompanyIndustry: rec.CompanyIndustry,
				CompanyFounded:  rec.CompanyFounded,
				CompanySizeMin:  rec.CompanySizeMin,
				CompanySizeMax:  rec.CompanySizeMax,
				RevenueMin:      rec.RevenueMin,
				RevenueMax:      rec.RevenueMax,
			})
		}
		if !seenLocation[rec.LocationID] {
			seenLocation[rec.LocationID] = true
			s.Locations = append(s.Locations, models.LocationDim{
				LocationID:   rec.LocationID,
				Location:     rec.Location,
				City:         rec.City,
				State:        rec.State,
				Country:      rec.Country,
				LocationType: rec.LocationType,
			})
		}
		if !seenFamily[rec.JobFamilyID] {
			seenFamily[rec.JobFamilyID] = true
			s.JobFamilies = append(s.JobFamilies, models.JobFamilyDim{
				JobFamilyID: rec.JobFamilyID,
				JobFamily:   rec.JobFamily,
			})
		}
		if !seenSeniority[rec.SeniorityLevelID] {
			seenSeniority[rec.SeniorityLevelID] = true
			s.Seniorities = append(s.Seniorities, models.SeniorityDim{
				SeniorityLevelID: rec.SeniorityLevelID,
				SeniorityLevel:   rec.SeniorityLevel,
			})
		}
		if !seenDate[rec.DateID] {
			seenDate[rec.DateID] = true
			s.Dates = append(s.Dates, models.DateDim{
				DateID: rec.DateID,
				Date:   rec.PostedAt.Truncate(24 * time.Hour),
				Day:    rec.Day,
				Month:  rec.Month,
				Year:   rec.Year,
			})
		}
		if !seenTime[rec.TimeID] {
			seenTime[rec.TimeID] = true
			s.Times = append(s.Times, models.TimeDim{
				TimeID: rec.TimeID,
				Clock:  rec.Clock,
			})
		}

		s.Facts = append(s.Facts, models.RequirementFact{
			RequirementID:    rec.RequirementID,
			JobTitle:         rec.JobTitle,
			SalaryAmount:     rec.SalaryAmount,
			SalaryPeriod:     rec.SalaryPeriod,
			JobDescription:   rec.JobDescription,
			CompanyID:        rec.CompanyID,
			LocationID:       rec.LocationID,
			JobFamilyID:      rec.JobFamilyID,
			SeniorityLevelID: rec.SeniorityLevelID,
			DateID:           rec.DateID,
			TimeID:           rec.TimeID,
		})
	}

	sort.Slice(s.Companies, func(i, j int) bool { return s.Companies[i].CompanyID < s.Companies[j].CompanyID })
	sort.Slice(s.Locations, func(i, j int) bool { return s.Locations[i].LocationID < s.Locations[j].LocationID })
	sort.Slice(s.JobFamilies, func(i, j int) bool { return s.JobFamilies[i].JobFamilyID < s.JobFamilies[j].JobFamilyID })
	sort.Slice(s.Seniorities, func(i, j int) bool { return s.Seniorities[i].SeniorityLevelID < s.Seniorities[j].SeniorityLevelID })
	sort.Slice(s.Dates, func(i, j int) bool { return s.Dates[i].DateID < s.Dates[j].DateID })
	sort.Slice(s.Times, func(i, j int) bool { return s.Times[i].TimeID < s.Times[j].TimeID })

	return s
}
