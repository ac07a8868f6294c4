// Defines the error taxonomy for the simulation core.
// ConfigurationError means the input was invalid before any replication ran;
// SimulationError means an internal invariant broke while one replication ran.

package sim

import "fmt"

// ConfigurationError reports invalid scenario input (phase table, population
// layout, batch parameters). It is always raised before any event is
// processed, so a run that returns one has produced no partial results.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// SimulationError reports an internal invariant violation inside one
// replication's event loop. It aborts only that replication; concurrently
// running replications are unaffected.
type SimulationError struct {
	Replication int
	Reason      string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation: replication %d: %s", e.Replication, e.Reason)
}

func simErrorf(replication int, format string, args ...any) *SimulationError {
	return &SimulationError{Replication: replication, Reason: fmt.Sprintf(format, args...)}
}
