// Package sim provides the discrete-event simulation engine for the
// phase-gate pipeline model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - asset.go: Asset trajectory state machine (not_started → in_phase → failed | completed)
//   - event.go: Event types that drive the simulation (Arrival, PhaseComplete)
//   - scheduler.go: The per-replication event loop
//
// # Architecture
//
// A Scheduler runs exactly one replication: a priority queue of future events
// ordered by (time, asset id, kind), popped to quiescence. RunReplication
// wraps a Scheduler with a fresh ReplicationRNG and the cohort arrival
// seeding. Orchestrator fans replications out over a bounded worker pool and
// merges the record tables.
//
// Output rows live in the sim/results sub-package, which holds pure data
// types plus CSV and summary helpers and has no dependency on sim.
//
// # Determinism
//
// Every random draw derives from (base seed, replication id): arrival offsets
// from one per-replication stream consumed in asset-id order, phase outcomes
// from an independent sub-stream per asset. Combined with the event queue's
// deterministic tie-break, the same inputs always reproduce byte-identical
// record tables.
package sim
