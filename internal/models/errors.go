package models

import "fmt"

// ConfigError indicates invalid generator or run configuration. It is
// fatal at startup; no partial run is attempted.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// EquivalenceError indicates that a strategy classified a case differently
// than the fixture or the other strategies. This is a harness bug, not a
// business failure: the run aborts.
type EquivalenceError struct {
	Scenario string
	// CaseID is the diverging test case, or -1 when the divergence was
	// detected at the count level.
	CaseID int
	Detail string
}

func (e *EquivalenceError) Error() string {
	if e.CaseID >= 0 {
		return fmt.Sprintf("equivalence violation in scenario %s, case %d: %s", e.Scenario, e.CaseID, e.Detail)
	}
	return fmt.Sprintf("equivalence violation in scenario %s: %s", e.Scenario, e.Detail)
}
