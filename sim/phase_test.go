package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhaseTable_Valid(t *testing.T) {
	table, err := NewPhaseTable([]Phase{
		{Name: "ID1", Duration: 10, SuccessProb: 0.95},
		{Name: "Ph1", Duration: 52, SuccessProb: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "Ph1", table.At(1).Name)
}

func TestNewPhaseTable_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		phases []Phase
	}{
		{"empty table", nil},
		{"empty name", []Phase{{Name: "", Duration: 10, SuccessProb: 0.5}}},
		{"duplicate name", []Phase{
			{Name: "Ph1", Duration: 10, SuccessProb: 0.5},
			{Name: "Ph1", Duration: 20, SuccessProb: 0.5},
		}},
		{"zero duration", []Phase{{Name: "Ph1", Duration: 0, SuccessProb: 0.5}}},
		{"negative duration", []Phase{{Name: "Ph1", Duration: -1, SuccessProb: 0.5}}},
		{"probability above one", []Phase{{Name: "Ph1", Duration: 10, SuccessProb: 1.1}}},
		{"negative probability", []Phase{{Name: "Ph1", Duration: 10, SuccessProb: -0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewPhaseTable(tt.phases)
			require.Error(t, err)
			assert.Nil(t, table)

			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestPhaseTable_PhasesReturnsCopy(t *testing.T) {
	table, err := NewPhaseTable([]Phase{{Name: "Ph1", Duration: 10, SuccessProb: 0.5}})
	require.NoError(t, err)

	phases := table.Phases()
	phases[0].Name = "mutated"
	assert.Equal(t, "Ph1", table.At(0).Name)
}

func TestNewPhaseTable_CopiesInput(t *testing.T) {
	in := []Phase{{Name: "Ph1", Duration: 10, SuccessProb: 0.5}}
	table, err := NewPhaseTable(in)
	require.NoError(t, err)

	in[0].Duration = 999
	assert.Equal(t, 10.0, table.At(0).Duration)
}
