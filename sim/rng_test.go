package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplicationRNG_DeterministicArrivals(t *testing.T) {
	// Same (base seed, replication) produces the same offset sequence
	rng1 := NewReplicationRNG(42, 7)
	rng2 := NewReplicationRNG(42, 7)

	for i := 0; i < 10; i++ {
		assert.Equal(t, rng1.ArrivalOffset(52), rng2.ArrivalOffset(52))
	}
}

func TestReplicationRNG_DeterministicOutcomes(t *testing.T) {
	rng1 := NewReplicationRNG(42, 7)
	rng2 := NewReplicationRNG(42, 7)

	for asset := 1; asset <= 5; asset++ {
		for i := 0; i < 20; i++ {
			assert.Equal(t, rng1.Bernoulli(asset, 0.5), rng2.Bernoulli(asset, 0.5))
		}
	}
}

func TestReplicationRNG_ReplicationsDiffer(t *testing.T) {
	rng1 := NewReplicationRNG(42, 1)
	rng2 := NewReplicationRNG(42, 2)

	same := true
	for i := 0; i < 16; i++ {
		if rng1.ArrivalOffset(52) != rng2.ArrivalOffset(52) {
			same = false
			break
		}
	}
	assert.False(t, same, "replications 1 and 2 produced identical arrival streams")
}

func TestReplicationRNG_AssetStreamsAreIndependent(t *testing.T) {
	// Interleaving draws across assets must not change what each asset sees.
	a := NewReplicationRNG(42, 1)
	b := NewReplicationRNG(42, 1)

	var aDraws []bool
	for i := 0; i < 10; i++ {
		aDraws = append(aDraws, a.Bernoulli(1, 0.5))
	}

	var bDraws []bool
	for i := 0; i < 10; i++ {
		b.Bernoulli(2, 0.5) // draws for a different asset in between
		bDraws = append(bDraws, b.Bernoulli(1, 0.5))
	}

	assert.Equal(t, aDraws, bDraws)
}

func TestReplicationRNG_ArrivalOffsetInWindow(t *testing.T) {
	rng := NewReplicationRNG(99, 3)
	for i := 0; i < 1000; i++ {
		off := rng.ArrivalOffset(52)
		assert.GreaterOrEqual(t, off, 0.0)
		assert.Less(t, off, 52.0)
	}
}

func TestReplicationRNG_BernoulliExtremes(t *testing.T) {
	rng := NewReplicationRNG(7, 1)
	for i := 0; i < 100; i++ {
		assert.True(t, rng.Bernoulli(1, 1.0))
		assert.False(t, rng.Bernoulli(2, 0.0))
	}
}
