package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/pipeline-sim/pipeline-sim/sim"
)

// Scenario is the YAML scenario file: the ordered phase table plus the cohort
// layout of the asset population. Replication count, seed, and worker cap are
// CLI flags, not scenario fields, so one scenario can be reused across runs.
type Scenario struct {
	Phases     []sim.Phase    `yaml:"phases"`
	Population sim.Population `yaml:"population"`
}

// LoadScenario reads and parses a scenario YAML file. Semantic validation
// (durations, probabilities, cohort sizes) belongs to the sim package.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &s, nil
}
