// Package results holds the simulation's output table types and their I/O.
// This package has no dependencies on sim/ — it stores pure data types.
package results

// Outcome is the resolution of one phase gate.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// Record is one immutable output row: one asset's result at one phase within
// one replication. Records are appended in event-processing order and never
// mutated afterwards.
type Record struct {
	Replication      int
	AssetID          int
	Phase            string
	PhaseIndex       int
	PhaseDuration    float64
	PhaseSuccessProb float64
	PhaseStart       float64
	PhaseEnd         float64
	Outcome          Outcome
	AssetArrival     float64
}
