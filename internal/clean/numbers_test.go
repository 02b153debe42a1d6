package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		raw    string
		amount float64
		period string
		miss   bool
	}{
		{raw: "$85,000/yr", amount: 85000, period: "yr"},
		{raw: "$30.50/hr", amount: 30.5, period: "hr"},
		{raw: "$120,000", amount: 120000, period: ""},
		{raw: "Employer Provided Salary:$95,000/yr", amount: 95000, period: "yr"},
		{raw: "Competitive", miss: true},
		{raw: "", miss: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			amount, period := ParseSalary(tt.raw)
			if tt.miss {
				assert.Nil(t, amount)
				assert.Nil(t, period)
				return
			}
			require.NotNil(t, amount)
			assert.Equal(t, tt.amount, *amount)
			assertOpt(t, tt.period, period)
		})
	}
}

func TestParseEmployeeRange(t *testing.T) {
	tests := []struct {
		raw      string
		min, max int
	}{
		{raw: "501 to 1000 Employees", min: 501, max: 1000},
		{raw: "1 to 50 Employees", min: 1, max: 50},
		{raw: "10000+ Employees", min: 10000},
		{raw: "Unknown"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			min, max := ParseEmployeeRange(tt.raw)
			if tt.min == 0 {
				assert.Nil(t, min)
			} else {
				require.NotNil(t, min)
				assert.Equal(t, tt.min, *min)
			}
			if tt.max == 0 {
				assert.Nil(t, max)
			} else {
				require.NotNil(t, max)
				assert.Equal(t, tt.max, *max)
			}
		})
	}
}

func TestSplitRevenue(t *testing.T) {
	tests := []struct {
		raw      string
		min, max *float64
	}{
		{raw: "$1 to $5 billion (USD)", min: f(1e9), max: f(5e9)},
		{raw: "$5 to $10 million (USD)", min: f(5e6), max: f(1e7)},
		{raw: "$10+ billion (USD)", min: f(1e10)},
		{raw: "Less than $1 million (USD)", min: f(0), max: f(1e6)},
		{raw: "$1 to $2 (USD)", min: f(1), max: f(2)},
		{raw: "Unknown / Non-Applicable"},
		{raw: ""},
		{raw: "$1 to $5 to $10 million (USD)"}, // more than two numbers
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			min, max := SplitRevenue(tt.raw)
			assertOptFloat(t, tt.min, min)
			assertOptFloat(t, tt.max, max)
		})
	}
}

func f(v float64) *float64 {
	return &v
}

func assertOptFloat(t *testing.T, want, got *float64) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)
}
