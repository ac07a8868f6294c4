// Fans out independent replications across a bounded worker pool. Each worker
// owns its own scheduler and random stream; results are merged only after
// every worker finishes, so no lock guards any shared state.

package sim

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pipeline-sim/pipeline-sim/sim/results"
)

// Orchestrator runs a batch of independent replications of one scenario.
type Orchestrator struct {
	Table        *PhaseTable
	Population   Population
	BaseSeed     int64
	Replications int
	Workers      int // max concurrently running replications
}

// ReplicationResult is one replication's outcome: either a complete record
// table with its metrics, or the error that aborted it.
type ReplicationResult struct {
	Replication int
	Records     []results.Record
	Metrics     ReplicationMetrics
	Err         error
}

// BatchResult is the merged outcome of a whole batch.
type BatchResult struct {
	// Records concatenates successful replications' tables in ascending
	// replication-id order. Every record is tagged with its replication id,
	// so consumers never depend on this merge order.
	Records []results.Record
	// PerReplication holds each replication's result, failures included,
	// indexed by replication id minus one.
	PerReplication []ReplicationResult
	Metrics        BatchMetrics
}

// RunMany executes all replications, at most Workers at a time. Shared
// configuration faults fail fast before any worker launches; a failure inside
// one replication is reported in its slot without aborting the rest.
func (o *Orchestrator) RunMany(ctx context.Context) (*BatchResult, error) {
	if o.Table == nil || o.Table.Len() == 0 {
		return nil, configErrorf("orchestrator: phase table is empty")
	}
	if err := o.Population.Validate(); err != nil {
		return nil, err
	}
	if o.Replications <= 0 {
		return nil, configErrorf("orchestrator: replications must be positive, got %d", o.Replications)
	}
	if o.Workers <= 0 {
		return nil, configErrorf("orchestrator: workers must be positive, got %d", o.Workers)
	}

	start := time.Now()
	perRep := make([]ReplicationResult, o.Replications)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < o.Replications; i++ {
		i := i
		rep := i + 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				perRep[i] = ReplicationResult{Replication: rep, Err: err}
				return nil
			}
			recs, m, err := RunReplication(o.Table, o.Population, o.BaseSeed, rep)
			perRep[i] = ReplicationResult{Replication: rep, Records: recs, Metrics: m, Err: err}
			if err != nil {
				logrus.Warnf("replication %d failed: %v", rep, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{
		PerReplication: perRep,
		Metrics: BatchMetrics{
			Replications:    o.Replications,
			FailuresByPhase: make(map[string]int),
			WallClock:       time.Since(start),
		},
	}
	for _, rr := range perRep {
		if rr.Err != nil {
			batch.Metrics.FailedReplications++
			continue
		}
		batch.Records = append(batch.Records, rr.Records...)
		batch.Metrics.Add(rr.Metrics)
	}
	logrus.Infof("ran %d replications (%d failed) in %s",
		o.Replications, batch.Metrics.FailedReplications, batch.Metrics.WallClock)
	return batch, nil
}
