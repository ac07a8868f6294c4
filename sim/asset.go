// Defines the Asset struct that models one unit progressing through the
// pipeline, and its trajectory state machine:
// NotStarted -> InPhase(0) -> ... -> Failed | Completed.

package sim

import "fmt"

// AssetStatus represents the lifecycle state of an asset.
type AssetStatus string

const (
	StatusNotStarted AssetStatus = "not_started"
	StatusInPhase    AssetStatus = "in_phase"
	StatusFailed     AssetStatus = "failed"
	StatusCompleted  AssetStatus = "completed"
)

// Asset models a single asset's trajectory within one replication.
type Asset struct {
	ID   int // unique within the replication, 1-based
	Year int // cohort index, determines the arrival window

	ArrivalTime float64 // simulated week the asset enters phase 0
	PhaseIndex  int     // current pipeline position; -1 until arrival
	PhaseStart  float64 // simulated week the current phase began
	Status      AssetStatus
}

// NewAsset creates an asset that has not yet entered the pipeline.
func NewAsset(id, year int, arrival float64) *Asset {
	return &Asset{
		ID:          id,
		Year:        year,
		ArrivalTime: arrival,
		PhaseIndex:  -1,
		Status:      StatusNotStarted,
	}
}

// Alive reports whether the asset can still produce events.
func (a *Asset) Alive() bool {
	return a.Status == StatusNotStarted || a.Status == StatusInPhase
}

// Enter transitions NotStarted -> InPhase(0) at the asset's arrival time.
func (a *Asset) Enter(now float64) error {
	if a.Status != StatusNotStarted {
		return fmt.Errorf("asset %d entered pipeline twice (status %s)", a.ID, a.Status)
	}
	a.PhaseIndex = 0
	a.PhaseStart = now
	a.Status = StatusInPhase
	return nil
}

// Advance transitions InPhase(k) -> InPhase(k+1) after a successful gate.
func (a *Asset) Advance(now float64) error {
	if a.Status != StatusInPhase {
		return fmt.Errorf("asset %d advanced while %s", a.ID, a.Status)
	}
	a.PhaseIndex++
	a.PhaseStart = now
	a.Status = StatusInPhase
	return nil
}

// Fail marks the asset terminal after an unsuccessful gate draw.
func (a *Asset) Fail() {
	a.Status = StatusFailed
}

// Complete marks the asset terminal after clearing the final phase.
func (a *Asset) Complete() {
	a.Status = StatusCompleted
}

// String returns a human-readable representation of the asset.
func (a *Asset) String() string {
	return fmt.Sprintf("Asset(ID: %d, Year: %d, Phase: %d, Status: %s)", a.ID, a.Year, a.PhaseIndex, a.Status)
}
