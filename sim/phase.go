// Defines Phase and the validated, immutable PhaseTable shared by all
// replications. Order in the table is the pipeline order.

package sim

import "fmt"

// Phase is one stage of the pipeline: a fixed duration in simulated weeks and
// a probability that an asset clears the stage.
type Phase struct {
	Name        string  `yaml:"name"`
	Duration    float64 `yaml:"duration"`
	SuccessProb float64 `yaml:"success_prob"`
}

func (p Phase) String() string {
	return fmt.Sprintf("Phase(%s, %.1fw, p=%.2f)", p.Name, p.Duration, p.SuccessProb)
}

// PhaseTable is the ordered pipeline definition. It is constructed once,
// validated, and never mutated afterwards, so a single instance is safely
// shared read-only across concurrently running replications.
type PhaseTable struct {
	phases []Phase
}

// NewPhaseTable validates the phase definitions and returns an immutable
// table. The input slice is copied; callers keep ownership of theirs.
func NewPhaseTable(phases []Phase) (*PhaseTable, error) {
	if len(phases) == 0 {
		return nil, configErrorf("phase table must contain at least one phase")
	}
	seen := make(map[string]bool, len(phases))
	for i, p := range phases {
		if p.Name == "" {
			return nil, configErrorf("phase %d has an empty name", i)
		}
		if seen[p.Name] {
			return nil, configErrorf("duplicate phase name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Duration <= 0 {
			return nil, configErrorf("phase %q has non-positive duration %v", p.Name, p.Duration)
		}
		if p.SuccessProb < 0 || p.SuccessProb > 1 {
			return nil, configErrorf("phase %q has success probability %v outside [0,1]", p.Name, p.SuccessProb)
		}
	}
	t := &PhaseTable{phases: make([]Phase, len(phases))}
	copy(t.phases, phases)
	return t, nil
}

// Len returns the number of phases in the pipeline.
func (t *PhaseTable) Len() int {
	return len(t.phases)
}

// At returns the phase at pipeline position i.
func (t *PhaseTable) At(i int) Phase {
	return t.phases[i]
}

// Phases returns a copy of the ordered phase definitions.
func (t *PhaseTable) Phases() []Phase {
	out := make([]Phase, len(t.phases))
	copy(out, t.phases)
	return out
}
