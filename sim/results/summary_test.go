package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 3)
	assert.Equal(t, 0, s.TotalRecords)
	assert.Equal(t, 0, s.Replications)
	assert.Empty(t, s.Phases)
	assert.Equal(t, 0.0, s.MeanTransit)
}

func TestSummarize_Attrition(t *testing.T) {
	records := []Record{
		// rep 1, asset 1: completes both phases, transit 15 weeks
		{Replication: 1, AssetID: 1, Phase: "P1", PhaseIndex: 0, PhaseStart: 0, PhaseEnd: 10, Outcome: OutcomeSuccess, AssetArrival: 0},
		{Replication: 1, AssetID: 1, Phase: "P2", PhaseIndex: 1, PhaseStart: 10, PhaseEnd: 15, Outcome: OutcomeSuccess, AssetArrival: 0},
		// rep 1, asset 2: fails at P1
		{Replication: 1, AssetID: 2, Phase: "P1", PhaseIndex: 0, PhaseStart: 5, PhaseEnd: 15, Outcome: OutcomeFailure, AssetArrival: 5},
		// rep 2, asset 1: completes, transit 25 weeks
		{Replication: 2, AssetID: 1, Phase: "P1", PhaseIndex: 0, PhaseStart: 0, PhaseEnd: 10, Outcome: OutcomeSuccess, AssetArrival: 0},
		{Replication: 2, AssetID: 1, Phase: "P2", PhaseIndex: 1, PhaseStart: 10, PhaseEnd: 25, Outcome: OutcomeSuccess, AssetArrival: 0},
	}

	s := Summarize(records, 2)
	assert.Equal(t, 5, s.TotalRecords)
	assert.Equal(t, 2, s.Replications)
	assert.Equal(t, 2, s.CompletedAssets)
	assert.Equal(t, 1, s.FailedAssets)
	assert.InDelta(t, 20.0, s.MeanTransit, 1e-9)

	require.Len(t, s.Phases, 2)
	assert.Equal(t, PhaseStats{Name: "P1", Index: 0, Entered: 3, Succeeded: 2, Failed: 1}, s.Phases[0])
	assert.Equal(t, PhaseStats{Name: "P2", Index: 1, Entered: 2, Succeeded: 2, Failed: 0}, s.Phases[1])
}

func TestSummarize_NonFinalSuccessIsNotCompletion(t *testing.T) {
	records := []Record{
		{Replication: 1, AssetID: 1, Phase: "P1", PhaseIndex: 0, PhaseStart: 0, PhaseEnd: 10, Outcome: OutcomeSuccess},
	}
	s := Summarize(records, 2)
	assert.Equal(t, 0, s.CompletedAssets)
	assert.Equal(t, 0, s.FailedAssets)
}
