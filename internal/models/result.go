package models

import "time"

// ScenarioResult is the aggregated measurement for one (strategy, depth)
// pair. Durations serialize as nanoseconds.
type ScenarioResult struct {
	Strategy     string        `json:"strategy"`
	Depth        Depth         `json:"depth"`
	Cases        int           `json:"cases"`
	TotalElapsed time.Duration `json:"total_ns"`
	PerTestAvg   time.Duration `json:"avg_per_test_ns"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`

	// Speedup is the baseline scenario's total time divided by this
	// scenario's total time at the same depth. The baseline itself has
	// Speedup == 1. Populated by the aggregator.
	Speedup float64 `json:"speedup_vs_baseline"`
}

// Key identifies a scenario uniquely within a report.
func (r ScenarioResult) Key() string {
	return r.Strategy + "/" + string(r.Depth)
}

// BenchmarkReport is the write-once record of a full run: all scenario
// results in execution order plus run metadata.
type BenchmarkReport struct {
	Timestamp   time.Time        `json:"timestamp"`
	Environment string           `json:"environment"`
	Fixture     string           `json:"fixture,omitempty"`
	Cases       int              `json:"cases"`
	Scenarios   []ScenarioResult `json:"scenarios"`
}
