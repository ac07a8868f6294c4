package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pop     Population
		wantErr bool
	}{
		{"valid", Population{NumYears: 10, AssetsPerYear: 50, YearLength: 52}, false},
		{"single cohort", Population{NumYears: 1, AssetsPerYear: 1, YearLength: 52}, false},
		{"zero years", Population{NumYears: 0, AssetsPerYear: 50, YearLength: 52}, true},
		{"zero assets per year", Population{NumYears: 10, AssetsPerYear: 0, YearLength: 52}, true},
		{"zero year length", Population{NumYears: 10, AssetsPerYear: 50, YearLength: 0}, true},
		{"negative year length", Population{NumYears: 10, AssetsPerYear: 50, YearLength: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pop.Validate()
			if tt.wantErr {
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPopulation_YearOf(t *testing.T) {
	pop := Population{NumYears: 3, AssetsPerYear: 50, YearLength: 52}

	year, err := pop.YearOf(1)
	require.NoError(t, err)
	assert.Equal(t, 0, year)

	year, err = pop.YearOf(50)
	require.NoError(t, err)
	assert.Equal(t, 0, year)

	year, err = pop.YearOf(51)
	require.NoError(t, err)
	assert.Equal(t, 1, year)

	year, err = pop.YearOf(150)
	require.NoError(t, err)
	assert.Equal(t, 2, year)
}

func TestPopulation_YearOf_OutOfBounds(t *testing.T) {
	pop := Population{NumYears: 2, AssetsPerYear: 10, YearLength: 52}

	for _, id := range []int{0, -1, 21} {
		_, err := pop.YearOf(id)
		var cfgErr *ConfigurationError
		assert.ErrorAs(t, err, &cfgErr, "asset id %d", id)
	}
}
