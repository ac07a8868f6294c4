// Tracks replication-level and batch-level counters for final reporting.

package sim

import (
	"fmt"
	"sort"
	"time"
)

// ReplicationMetrics aggregates per-replication counters. These are plain
// return values; nothing in the scheduling hot path logs or prints.
type ReplicationMetrics struct {
	CompletedAssets int            // assets that cleared the final phase
	FailedAssets    int            // assets that failed some phase
	FailuresByPhase map[string]int // phase name -> failure count
	TotalRecords    int            // records emitted
}

// NewReplicationMetrics returns zeroed counters with the failure map ready.
func NewReplicationMetrics() ReplicationMetrics {
	return ReplicationMetrics{FailuresByPhase: make(map[string]int)}
}

// BatchMetrics aggregates counters across a whole batch of replications.
type BatchMetrics struct {
	Replications       int
	FailedReplications int
	CompletedAssets    int
	FailedAssets       int
	FailuresByPhase    map[string]int
	TotalRecords       int
	WallClock          time.Duration
}

// Add folds one replication's counters into the batch totals.
func (m *BatchMetrics) Add(rm ReplicationMetrics) {
	m.CompletedAssets += rm.CompletedAssets
	m.FailedAssets += rm.FailedAssets
	m.TotalRecords += rm.TotalRecords
	if m.FailuresByPhase == nil {
		m.FailuresByPhase = make(map[string]int)
	}
	for phase, n := range rm.FailuresByPhase {
		m.FailuresByPhase[phase] += n
	}
}

// Print displays aggregated metrics at the end of the batch.
func (m *BatchMetrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Replications         : %d\n", m.Replications)
	if m.FailedReplications > 0 {
		fmt.Printf("Failed Replications  : %d\n", m.FailedReplications)
	}
	fmt.Printf("Completed Assets     : %d\n", m.CompletedAssets)
	fmt.Printf("Failed Assets        : %d\n", m.FailedAssets)
	fmt.Printf("Total Records        : %d\n", m.TotalRecords)

	phases := make([]string, 0, len(m.FailuresByPhase))
	for name := range m.FailuresByPhase {
		phases = append(phases, name)
	}
	sort.Strings(phases)
	for _, name := range phases {
		fmt.Printf("Failures at %-9s: %d\n", name, m.FailuresByPhase[name])
	}
	fmt.Printf("Total running time   : %.2f seconds\n", m.WallClock.Seconds())
}
