package results

import (
	"fmt"
	"sort"
)

// PhaseStats counts gate outcomes at one phase across the whole table.
type PhaseStats struct {
	Name      string
	Index     int
	Entered   int // assets whose gate at this phase was resolved
	Succeeded int
	Failed    int
}

// Summary aggregates statistics from a merged record table.
type Summary struct {
	TotalRecords int
	Replications int          // distinct replication ids present
	Phases       []PhaseStats // ordered by phase index
	// CompletedAssets counts (replication, asset) pairs whose final-phase
	// gate succeeded; MeanTransit is their mean arrival-to-last-gate time.
	CompletedAssets int
	FailedAssets    int
	MeanTransit     float64
}

// Summarize computes aggregate statistics from a record table. phaseCount is
// the pipeline length; a success at index phaseCount-1 marks a completed
// asset. Safe for empty tables.
func Summarize(records []Record, phaseCount int) *Summary {
	s := &Summary{TotalRecords: len(records)}

	reps := make(map[int]bool)
	byPhase := make(map[int]*PhaseStats)
	transitSum := 0.0

	for _, r := range records {
		reps[r.Replication] = true

		ps, ok := byPhase[r.PhaseIndex]
		if !ok {
			ps = &PhaseStats{Name: r.Phase, Index: r.PhaseIndex}
			byPhase[r.PhaseIndex] = ps
		}
		ps.Entered++
		if r.Outcome == OutcomeSuccess {
			ps.Succeeded++
			if r.PhaseIndex == phaseCount-1 {
				s.CompletedAssets++
				transitSum += r.PhaseEnd - r.AssetArrival
			}
		} else {
			ps.Failed++
			s.FailedAssets++
		}
	}

	s.Replications = len(reps)
	if s.CompletedAssets > 0 {
		s.MeanTransit = transitSum / float64(s.CompletedAssets)
	}
	for _, ps := range byPhase {
		s.Phases = append(s.Phases, *ps)
	}
	sort.Slice(s.Phases, func(i, j int) bool { return s.Phases[i].Index < s.Phases[j].Index })
	return s
}

// Print displays the summary as a per-phase attrition table.
func (s *Summary) Print() {
	fmt.Println("=== Pipeline Summary ===")
	fmt.Printf("Replications     : %d\n", s.Replications)
	fmt.Printf("Total Records    : %d\n", s.TotalRecords)
	fmt.Printf("Completed Assets : %d\n", s.CompletedAssets)
	fmt.Printf("Failed Assets    : %d\n", s.FailedAssets)
	if s.CompletedAssets > 0 {
		fmt.Printf("Mean Transit     : %.1f weeks\n", s.MeanTransit)
	}
	fmt.Printf("%-10s %10s %10s %10s\n", "Phase", "Entered", "Succeeded", "Failed")
	for _, ps := range s.Phases {
		fmt.Printf("%-10s %10d %10d %10d\n", ps.Name, ps.Entered, ps.Succeeded, ps.Failed)
	}
}
