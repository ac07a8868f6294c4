package sim

import "github.com/pipeline-sim/pipeline-sim/sim/results"

// RunReplication executes one complete, independent replication: it builds a
// fresh random stream and scheduler bound to the replication id, seeds one
// arrival event per asset, runs the event loop to quiescence, and returns the
// full record table in event-processing order.
//
// Pure with respect to its inputs: identical (table, pop, baseSeed,
// replication) always yields an identical record table. A failed replication
// returns no partial table.
func RunReplication(table *PhaseTable, pop Population, baseSeed int64, replication int) ([]results.Record, ReplicationMetrics, error) {
	if table == nil || table.Len() == 0 {
		return nil, ReplicationMetrics{}, simErrorf(replication, "phase table is empty")
	}
	if pop.TotalAssets() == 0 {
		return nil, ReplicationMetrics{}, simErrorf(replication, "population is empty")
	}
	if err := pop.Validate(); err != nil {
		return nil, ReplicationMetrics{}, err
	}

	rng := NewReplicationRNG(baseSeed, replication)
	sched := NewScheduler(table, rng, replication)

	// Arrival offsets are drawn in ascending asset-id order so the arrival
	// stream's consumption order is deterministic.
	for id := 1; id <= pop.TotalAssets(); id++ {
		year, err := pop.YearOf(id)
		if err != nil {
			return nil, ReplicationMetrics{}, err
		}
		arrival := float64(year)*pop.YearLength + rng.ArrivalOffset(pop.YearLength)
		if err := sched.AddAsset(NewAsset(id, year, arrival)); err != nil {
			return nil, ReplicationMetrics{}, err
		}
	}

	if err := sched.Run(); err != nil {
		return nil, ReplicationMetrics{}, err
	}
	return sched.Records(), sched.Metrics(), nil
}
