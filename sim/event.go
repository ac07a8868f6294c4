// Event types that drive the simulation: cohort arrivals and phase-gate
// completions. Each event carries its simulated time and advances scheduler
// state when executed.

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/pipeline-sim/pipeline-sim/sim/results"
)

// EventKind discriminates queued event types. Its integer value is the
// same-time, same-asset ordering priority: arrivals resolve before
// phase completions.
type EventKind int

const (
	KindArrival EventKind = iota
	KindPhaseComplete
)

func (k EventKind) String() string {
	switch k {
	case KindArrival:
		return "Arrival"
	case KindPhaseComplete:
		return "PhaseComplete"
	default:
		return "Unknown"
	}
}

// Event is a scheduled future state change. Time, asset id and kind together
// define the deterministic processing order (see EventQueue.Less).
type Event interface {
	Time() float64
	AssetID() int
	Kind() EventKind
	Execute(s *Scheduler) error
}

// ArrivalEvent moves an asset from NotStarted into phase 0.
type ArrivalEvent struct {
	time  float64
	asset *Asset
}

func (e *ArrivalEvent) Time() float64   { return e.time }
func (e *ArrivalEvent) AssetID() int    { return e.asset.ID }
func (e *ArrivalEvent) Kind() EventKind { return KindArrival }

// Execute enters the pipeline and schedules the first phase completion.
func (e *ArrivalEvent) Execute(s *Scheduler) error {
	logrus.Debugf("[rep %d] asset %d initialized at week %.1f", s.replication, e.asset.ID, e.time)

	if err := e.asset.Enter(e.time); err != nil {
		return simErrorf(s.replication, "%v", err)
	}
	first := s.table.At(0)
	return s.Schedule(&PhaseCompleteEvent{
		time:  e.time + first.Duration,
		asset: e.asset,
		phase: 0,
	})
}

// PhaseCompleteEvent resolves the gate at the end of one phase: it draws the
// outcome, appends a Record, and either schedules the next phase completion
// or marks the asset terminal.
type PhaseCompleteEvent struct {
	time  float64
	asset *Asset
	phase int
}

func (e *PhaseCompleteEvent) Time() float64   { return e.time }
func (e *PhaseCompleteEvent) AssetID() int    { return e.asset.ID }
func (e *PhaseCompleteEvent) Kind() EventKind { return KindPhaseComplete }

func (e *PhaseCompleteEvent) Execute(s *Scheduler) error {
	if e.asset.Status != StatusInPhase || e.asset.PhaseIndex != e.phase {
		return simErrorf(s.replication, "asset %d resolved phase %d while at phase %d (%s)",
			e.asset.ID, e.phase, e.asset.PhaseIndex, e.asset.Status)
	}

	phase := s.table.At(e.phase)
	success := s.rng.Bernoulli(e.asset.ID, phase.SuccessProb)
	outcome := results.OutcomeFailure
	if success {
		outcome = results.OutcomeSuccess
	}
	logrus.Debugf("[rep %d] asset %d completed %s at week %.1f with %s",
		s.replication, e.asset.ID, phase.Name, e.time, outcome)

	s.appendRecord(results.Record{
		Replication:      s.replication,
		AssetID:          e.asset.ID,
		Phase:            phase.Name,
		PhaseIndex:       e.phase,
		PhaseDuration:    phase.Duration,
		PhaseSuccessProb: phase.SuccessProb,
		PhaseStart:       e.asset.PhaseStart,
		PhaseEnd:         e.time,
		Outcome:          outcome,
		AssetArrival:     e.asset.ArrivalTime,
	})

	if !success {
		e.asset.Fail()
		s.metrics.FailedAssets++
		s.metrics.FailuresByPhase[phase.Name]++
		return nil
	}
	if e.phase+1 >= s.table.Len() {
		e.asset.Complete()
		s.metrics.CompletedAssets++
		return nil
	}

	if err := e.asset.Advance(e.time); err != nil {
		return simErrorf(s.replication, "%v", err)
	}
	next := s.table.At(e.phase + 1)
	return s.Schedule(&PhaseCompleteEvent{
		time:  e.time + next.Duration,
		asset: e.asset,
		phase: e.phase + 1,
	})
}
