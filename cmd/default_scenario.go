package cmd

import sim "github.com/pipeline-sim/pipeline-sim/sim"

// DefaultScenario returns the built-in development pipeline: seven gated
// phases and ten yearly cohorts of fifty assets over 52-week years.
func DefaultScenario() *Scenario {
	return &Scenario{
		Phases: []sim.Phase{
			{Name: "ID1", Duration: 10, SuccessProb: 0.95},
			{Name: "ID2", Duration: 12, SuccessProb: 0.90},
			{Name: "Ph1", Duration: 52, SuccessProb: 0.50},
			{Name: "Ph2A", Duration: 52, SuccessProb: 0.60},
			{Name: "Ph2B", Duration: 52, SuccessProb: 0.70},
			{Name: "Ph3", Duration: 104, SuccessProb: 0.50},
			{Name: "File", Duration: 26, SuccessProb: 0.90},
		},
		Population: sim.Population{
			NumYears:      10,
			AssetsPerYear: 50,
			YearLength:    52,
		},
	}
}
