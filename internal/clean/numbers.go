package clean

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	salaryAmount = regexp.MustCompile(`\$([\d,\.]+)`)
	salaryPeriod = regexp.MustCompile(`/(hr|yr)`)
	firstInt     = regexp.MustCompile(`(\d+)`)
	rangeMaxInt  = regexp.MustCompile(`to (\d+)`)
	number       = regexp.MustCompile(`\d+\.?\d*`)
)

// ParseSalary extracts the dollar amount and pay period from an estimate
// like "$85,000/yr". Either part is nil when its pattern does not match.
func ParseSalary(raw string) (amount *float64, period *string) {
	if m := salaryAmount.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			amount = &v
		}
	}
	if m := salaryPeriod.FindStringSubmatch(raw); m != nil {
		period = &m[1]
	}
	return amount, period
}

// ParseEmployeeRange extracts the headcount bounds from a company size
// string like "501 to 1000 Employees". The literal "Unknown" and anything
// without a leading integer yield nil bounds.
func ParseEmployeeRange(raw string) (min, max *int) {
	if raw == "Unknown" {
		return nil, nil
	}
	if m := firstInt.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			min = &v
		}
	}
	if m := rangeMaxInt.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			max = &v
		}
	}
	return min, max
}

// SplitRevenue turns free-text revenue descriptions into numeric bounds.
// "Less than $1 million (USD)" becomes (0, 1e6); "billion"/"million" scale
// the extracted numbers; one number means an open-ended minimum, two mean a
// closed range, anything else is absent. The placeholder
// "Unknown / Non-Applicable" is treated as missing input.
func SplitRevenue(raw string) (min, max *float64) {
	if raw == "" || raw == "Unknown / Non-Applicable" {
		return nil, nil
	}

	var nums []float64
	for _, tok := range number.FindAllString(raw, -1) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, nil
		}
		nums = append(nums, v)
	}

	if strings.Contains(raw, "Less than") {
		if len(nums) == 0 {
			return nil, nil
		}
		return ptr(0.0), ptr(nums[0] * 1e6)
	}

	scale := 1.0
	if strings.Contains(raw, "billion") {
		scale = 1e9
	} else if strings.Contains(raw, "million") {
		scale = 1e6
	}
	for i := range nums {
		nums[i] *= scale
	}

	switch len(nums) {
	case 1:
		return &nums[0], nil
	case 2:
		return &nums[0], &nums[1]
	default:
		return nil, nil
	}
}
