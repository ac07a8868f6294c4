package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// ReplicationRNG supplies every random draw for one replication. All streams
// derive deterministically from (base seed, replication id), so two runs of
// the same replication id reproduce the identical sequence of draws.
//
// Arrival offsets come from a single "arrival" stream consumed in ascending
// asset-id order at seed time. Outcome draws come from an independent
// sub-stream per asset, so one asset's outcomes never depend on how its
// events interleave with other assets' events.
//
// Thread-safety: NOT thread-safe. Each replication worker owns exactly one
// instance; instances are never shared across workers.
type ReplicationRNG struct {
	seed     int64
	arrival  *rand.Rand
	outcomes map[int]*rand.Rand
}

// NewReplicationRNG derives a replication-local generator from the batch's
// base seed and the 1-based replication id. Knuth's multiplicative hash
// spreads the replication id so that adjacent ids do not yield correlated
// streams.
func NewReplicationRNG(baseSeed int64, replication int) *ReplicationRNG {
	seed := baseSeed*2654435761 + int64(replication)
	return &ReplicationRNG{
		seed:     seed,
		arrival:  rand.New(rand.NewSource(seed ^ fnv1a64("arrival"))),
		outcomes: make(map[int]*rand.Rand),
	}
}

// ArrivalOffset draws a uniform offset in [0, window).
func (r *ReplicationRNG) ArrivalOffset(window float64) float64 {
	return r.arrival.Float64() * window
}

// Bernoulli draws the given asset's next outcome with success probability p.
// The per-asset stream is created lazily and advances monotonically.
func (r *ReplicationRNG) Bernoulli(assetID int, p float64) bool {
	return r.forAsset(assetID).Float64() < p
}

func (r *ReplicationRNG) forAsset(assetID int) *rand.Rand {
	if rng, ok := r.outcomes[assetID]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(r.seed ^ fnv1a64(fmt.Sprintf("asset_%d", assetID))))
	r.outcomes[assetID] = rng
	return rng
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
