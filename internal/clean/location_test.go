package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		raw     string
		city    string
		state   string
		country string
		locType string
	}{
		{raw: "Cupertino, CA", city: "Cupertino", state: "CA", country: "United States", locType: "City"},
		{raw: "New York, NY", city: "New York", state: "NY", country: "United States", locType: "City"},
		{raw: "Remote", locType: "Remote"},
		{raw: "United States", country: "United States", locType: "Country"},
		{raw: "California", state: "CA", country: "United States", locType: "State"},
		{raw: "District of Columbia", state: "DC", country: "United States", locType: "State"},
		{raw: "Anywhere", locType: "Unknown"},
		{raw: "", locType: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			loc := NormalizeLocation(tt.raw)
			assert.Equal(t, tt.locType, loc.Type)
			assertOpt(t, tt.city, loc.City)
			assertOpt(t, tt.state, loc.State)
			assertOpt(t, tt.country, loc.Country)
		})
	}
}

func TestNormalizeLocationTrimsCityStatePair(t *testing.T) {
	loc := NormalizeLocation("  Austin ,  TX ")
	require.NotNil(t, loc.City)
	require.NotNil(t, loc.State)
	assert.Equal(t, "Austin", *loc.City)
	assert.Equal(t, "TX", *loc.State)
}

func assertOpt(t *testing.T, want string, got *string) {
	t.Helper()
	if want == "" {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}
