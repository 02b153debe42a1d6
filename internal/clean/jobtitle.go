package clean

import (
	"regexp"
	"strings"
)

// Job family vocabulary.
const (
	FamilyDataAnalyst    = "Data Analyst"
	FamilyDataScientist  = "Data Scientist"
	FamilySoftware       = "Software Engineer"
	FamilyInfrastructure = "Infrastructure Engineer"
	FamilyDataEngineer   = "Data Engineer"
	FamilyOther          = "Other"
)

// familyRule classifies a lower-cased title by substring membership:
// any of the tokens in any, plus every token in all, must be present.
type familyRule struct {
	any    []string
	all    []string
	family string
}

// familyRules are evaluated in priority order; the first match wins.
var familyRules = []familyRule{
	{any: []string{"analyst", "analytics", "visualization"}, family: FamilyDataAnalyst},
	{any: []string{"science", "scientist"}, family: FamilyDataScientist},
	{all: []string{"software", "engineer"}, family: FamilySoftware},
	{any: []string{"data center", "infrastructure", "network", "systems", "system", "configuration"}, family: FamilyInfrastructure},
	{all: []string{"data", "engineer"}, family: FamilyDataEngineer},
}

// DetectJobFamily maps a job title onto one of the fixed job families.
func DetectJobFamily(title string) string {
	title = strings.ToLower(title)
	for _, rule := range familyRules {
		if rule.matches(title) {
			return rule.family
		}
	}
	return FamilyOther
}

func (r familyRule) matches(title string) bool {
	for _, token := range r.all {
		if !strings.Contains(title, token) {
			return false
		}
	}
	if len(r.any) == 0 {
		return len(r.all) > 0
	}
	for _, token := range r.any {
		if strings.Contains(title, token) {
			return true
		}
	}
	return false
}

// Seniority vocabulary. SeniorityMid doubles as the default when no
// keyword matches.
const (
	SeniorityManager   = "Manager"
	SeniorityPrincipal = "Principal"
	SeniorityStaff     = "Staff"
	SenioritySenior    = "Senior"
	SeniorityLead      = "Lead"
	SeniorityAssociate = "Associate"
	SeniorityJunior    = "Junior"
	SeniorityMid       = "Mid"
)

// seniorityRules match whole words so that the roman-numeral tokens
// (i, ii, iii, iv) never fire inside longer words. First match wins.
var seniorityRules = []struct {
	pattern *regexp.Regexp
	level   string
}{
	{regexp.MustCompile(`\b(manager|mgr)\b`), SeniorityManager},
	{regexp.MustCompile(`\b(principal|iv)\b|level\s*4`), SeniorityPrincipal},
	{regexp.MustCompile(`\bstaff\b`), SeniorityStaff},
	{regexp.MustCompile(`\b(sr|senior|iii)\b|level\s*3`), SenioritySenior},
	{regexp.MustCompile(`\blead\b`), SeniorityLead},
	{regexp.MustCompile(`\b(associate|assoc)\b`), SeniorityAssociate},
	{regexp.MustCompile(`\b(junior|intern|i)\b|level\s*1`), SeniorityJunior},
	{regexp.MustCompile(`\b(mid|ii)\b|level\s*2`), SeniorityMid},
}

// ClassifySeniority maps a job title onto a seniority level, defaulting to
// Mid when no keyword is found.
func ClassifySeniority(title string) string {
	title = strings.ToLower(title)
	for _, rule := range seniorityRules {
		if rule.pattern.MatchString(title) {
			return rule.level
		}
	}
	return SeniorityMid
}
