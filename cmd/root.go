package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pipeline-sim/pipeline-sim/sim"
	"github.com/pipeline-sim/pipeline-sim/sim/results"
)

var (
	// CLI flags for the simulation batch
	scenarioPath string // Path to a scenario YAML (phases + population)
	seed         int64  // Base seed; all replication streams derive from it
	replications int    // Number of independent replications
	workers      int    // Max concurrently running replications
	logLevel     string // Log verbosity level
	outputPath   string // Optional CSV path for the merged record table
	showSummary  bool   // Print the per-phase attrition summary
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pipeline-sim",
	Short: "Discrete-event simulator for phase-gated asset pipelines",
}

// runCmd executes a batch of replications using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch of pipeline replications",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scenario := loadOrDefaultScenario()
		table, err := sim.NewPhaseTable(scenario.Phases)
		if err != nil {
			logrus.Fatalf("Invalid phase table: %v", err)
		}

		logrus.Infof("Starting %d replications of %d assets through %d phases (seed=%d, workers=%d)",
			replications, scenario.Population.TotalAssets(), table.Len(), seed, workers)

		orch := &sim.Orchestrator{
			Table:        table,
			Population:   scenario.Population,
			BaseSeed:     seed,
			Replications: replications,
			Workers:      workers,
		}
		batch, err := orch.RunMany(context.Background())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		batch.Metrics.Print()
		if showSummary {
			results.Summarize(batch.Records, table.Len()).Print()
		}
		if outputPath != "" {
			if err := results.WriteCSVFile(outputPath, batch.Records); err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
			logrus.Infof("Wrote %d records to %s", len(batch.Records), outputPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// validateCmd checks a scenario file without running anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("--scenario is required for validate")
		}
		scenario, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Scenario invalid: %v", err)
		}
		if _, err := sim.NewPhaseTable(scenario.Phases); err != nil {
			logrus.Fatalf("Scenario invalid: %v", err)
		}
		if err := scenario.Population.Validate(); err != nil {
			logrus.Fatalf("Scenario invalid: %v", err)
		}
		logrus.Infof("Scenario %s is valid: %d phases, %d assets",
			scenarioPath, len(scenario.Phases), scenario.Population.TotalAssets())
	},
}

func loadOrDefaultScenario() *Scenario {
	if scenarioPath == "" {
		logrus.Info("No scenario file given; using the built-in default scenario")
		return DefaultScenario()
	}
	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
	}
	return scenario
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scenario YAML (default: built-in scenario)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Base seed for all replication random streams")
	runCmd.Flags().IntVar(&replications, "replications", 1000, "Number of independent replications")
	runCmd.Flags().IntVar(&workers, "workers", 8, "Maximum concurrently running replications")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the merged record table to this CSV file")
	runCmd.Flags().BoolVar(&showSummary, "summary", true, "Print the per-phase attrition summary")

	validateCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scenario YAML")
	_ = validateCmd.MarkFlagRequired("scenario")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
