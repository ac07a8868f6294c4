// sim/scheduler.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/pipeline-sim/pipeline-sim/sim/results"
)

// Scheduler is the core object for one replication: it holds simulated time,
// per-asset state, the event queue, and the append-only record table. It is
// strictly single-threaded; "waiting" exists only as future events in the
// queue, never as a suspended goroutine.
type Scheduler struct {
	Clock float64

	replication int
	table       *PhaseTable
	rng         *ReplicationRNG
	events      *EventQueue
	assets      map[int]*Asset
	records     []results.Record
	metrics     ReplicationMetrics
}

// NewScheduler creates an empty scheduler bound to one replication's phase
// table and random stream.
func NewScheduler(table *PhaseTable, rng *ReplicationRNG, replication int) *Scheduler {
	return &Scheduler{
		replication: replication,
		table:       table,
		rng:         rng,
		events:      NewEventQueue(),
		assets:      make(map[int]*Asset),
		metrics:     NewReplicationMetrics(),
	}
}

// AddAsset registers an asset and seeds its arrival event.
func (s *Scheduler) AddAsset(a *Asset) error {
	if _, exists := s.assets[a.ID]; exists {
		return simErrorf(s.replication, "asset %d registered twice", a.ID)
	}
	s.assets[a.ID] = a
	return s.Schedule(&ArrivalEvent{time: a.ArrivalTime, asset: a})
}

// Schedule pushes an event into the queue. Events may never be scheduled in
// the scheduler's past; that would break clock monotonicity.
func (s *Scheduler) Schedule(ev Event) error {
	if ev.Time() < s.Clock {
		return simErrorf(s.replication, "event %s for asset %d scheduled at %.3f, before clock %.3f",
			ev.Kind(), ev.AssetID(), ev.Time(), s.Clock)
	}
	s.events.Schedule(ev)
	return nil
}

// Run drives the event loop to quiescence: pop the earliest event, advance
// the clock, execute. When the queue empties every asset must have reached a
// terminal status; a dangling asset is an invariant violation.
func (s *Scheduler) Run() error {
	if s.events.Len() == 0 {
		return simErrorf(s.replication, "event queue was never seeded")
	}
	for s.events.Len() > 0 {
		ev := s.events.PopNext()
		if ev.Time() < s.Clock {
			return simErrorf(s.replication, "clock moved backwards: %.3f -> %.3f", s.Clock, ev.Time())
		}
		s.Clock = ev.Time()
		logrus.Debugf("[rep %d][week %07.1f] executing %s for asset %d", s.replication, s.Clock, ev.Kind(), ev.AssetID())
		if err := ev.Execute(s); err != nil {
			return err
		}
	}
	for _, a := range s.assets {
		if a.Alive() {
			return simErrorf(s.replication, "asset %d left in-progress (%s) after queue drained", a.ID, a.Status)
		}
	}
	logrus.Debugf("[rep %d][week %07.1f] replication ended with %d records", s.replication, s.Clock, len(s.records))
	return nil
}

func (s *Scheduler) appendRecord(r results.Record) {
	s.records = append(s.records, r)
	s.metrics.TotalRecords++
}

// Records returns the record table in event-processing order.
func (s *Scheduler) Records() []results.Record {
	return s.records
}

// Metrics returns the replication-level counters accumulated so far.
func (s *Scheduler) Metrics() ReplicationMetrics {
	return s.metrics
}
