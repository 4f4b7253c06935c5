// Package orchestration runs the benchmark scenarios. Execution is
// strictly sequential: scenarios never overlap, and nothing inside a
// timed loop allocates goroutines, blocks, or touches I/O. Concurrent
// scheduling would corrupt the timing comparison.
package orchestration

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/errsig/errbench/internal/models"
	"github.com/errsig/errbench/internal/pipeline"
)

// Runner executes the (strategy × depth) scenario matrix over one fixed
// test-case set. The set and all configuration are passed in explicitly;
// the runner holds no ambient state.
type Runner struct {
	cases      models.TestCaseSet
	strategies []pipeline.Strategy
	warmup     bool

	listeners []ProgressListener
}

// ProgressListener receives progress updates.
type ProgressListener func(event ProgressEvent)

// EventType identifies a progress event.
type EventType string

const (
	EventRunStart         EventType = "run_start"
	EventScenarioStart    EventType = "scenario_start"
	EventScenarioComplete EventType = "scenario_complete"
	EventRunComplete      EventType = "run_complete"
)

// ProgressEvent is a progress update emitted between scenarios, never
// inside a timed loop.
type ProgressEvent struct {
	EventType      EventType
	Strategy       string
	Depth          models.Depth
	ScenarioNum    int
	TotalScenarios int
	Elapsed        time.Duration
	Succeeded      int
	Failed         int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWarmup makes every scenario run one untimed pass over the full set
// before its measured loop.
func WithWarmup(enabled bool) RunnerOption {
	return func(r *Runner) {
		r.warmup = enabled
	}
}

// WithStrategies overrides the default strategy set.
func WithStrategies(strategies ...pipeline.Strategy) RunnerOption {
	return func(r *Runner) {
		r.strategies = strategies
	}
}

// NewRunner creates a runner over the given test-case set.
func NewRunner(cases models.TestCaseSet, opts ...RunnerOption) *Runner {
	r := &Runner{
		cases:      cases,
		strategies: pipeline.Strategies(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(listener ProgressListener) {
	r.listeners = append(r.listeners, listener)
}

func (r *Runner) notify(event ProgressEvent) {
	for _, listener := range r.listeners {
		listener(event)
	}
}

func (r *Runner) entryPoint(s pipeline.Strategy, depth models.Depth) func(string) models.Outcome {
	if depth == models.DepthDeep {
		return s.Deep
	}
	return s.Shallow
}

func scenarioName(s pipeline.Strategy, depth models.Depth) string {
	return s.Name() + "/" + string(depth)
}

// VerifyEquivalence cross-checks every test case against every scenario
// before any measurement: each entry point must agree with the fixture's
// expected verdict, and all successful parses must yield the identical
// canonical value. The first divergence aborts the run.
func (r *Runner) VerifyEquivalence() error {
	for i := range r.cases {
		tc := &r.cases[i]
		wantValue := ""

		for _, s := range r.strategies {
			for _, depth := range []models.Depth{models.DepthShallow, models.DepthDeep} {
				out := r.entryPoint(s, depth)(tc.RawMessage)
				if out.OK != tc.ExpectSuccess {
					return &models.EquivalenceError{
						Scenario: scenarioName(s, depth),
						CaseID:   tc.ID,
						Detail:   fmt.Sprintf("classified success=%v, fixture expects success=%v", out.OK, tc.ExpectSuccess),
					}
				}
				if !out.OK {
					continue
				}
				if wantValue == "" {
					wantValue = out.Value
				} else if out.Value != wantValue {
					return &models.EquivalenceError{
						Scenario: scenarioName(s, depth),
						CaseID:   tc.ID,
						Detail:   fmt.Sprintf("parsed value %q disagrees with %q", out.Value, wantValue),
					}
				}
			}
		}
	}
	slog.Debug("equivalence verified", "cases", len(r.cases), "strategies", len(r.strategies))
	return nil
}

// RunScenario measures one (strategy, depth) pair over the whole set.
// A single timer pair brackets the invocation loop; per-case timing is
// deliberately avoided to keep timer overhead out of the measurement.
func (r *Runner) RunScenario(s pipeline.Strategy, depth models.Depth) (models.ScenarioResult, error) {
	entry := r.entryPoint(s, depth)

	if r.warmup {
		for i := range r.cases {
			_ = entry(r.cases[i].RawMessage)
		}
	}

	succeeded, failed := 0, 0
	start := time.Now()
	for i := range r.cases {
		if entry(r.cases[i].RawMessage).OK {
			succeeded++
		} else {
			failed++
		}
	}
	elapsed := time.Since(start)

	wantSucceed, wantFail := r.cases.ExpectedCounts()
	if succeeded != wantSucceed || failed != wantFail {
		return models.ScenarioResult{}, &models.EquivalenceError{
			Scenario: scenarioName(s, depth),
			CaseID:   -1,
			Detail: fmt.Sprintf("observed %d/%d success/failure, fixture expects %d/%d",
				succeeded, failed, wantSucceed, wantFail),
		}
	}

	return models.ScenarioResult{
		Strategy:     s.Name(),
		Depth:        depth,
		Cases:        len(r.cases),
		TotalElapsed: elapsed,
		PerTestAvg:   elapsed / time.Duration(len(r.cases)),
		SuccessCount: succeeded,
		FailureCount: failed,
	}, nil
}

// RunAll executes all scenarios sequentially, grouped by depth with the
// strategy order fixed, and returns results in execution order.
func (r *Runner) RunAll() ([]models.ScenarioResult, error) {
	total := len(r.strategies) * 2
	r.notify(ProgressEvent{EventType: EventRunStart, TotalScenarios: total})

	results := make([]models.ScenarioResult, 0, total)
	num := 0
	runStart := time.Now()

	for _, depth := range []models.Depth{models.DepthShallow, models.DepthDeep} {
		for _, s := range r.strategies {
			num++
			r.notify(ProgressEvent{
				EventType:      EventScenarioStart,
				Strategy:       s.Name(),
				Depth:          depth,
				ScenarioNum:    num,
				TotalScenarios: total,
			})

			result, err := r.RunScenario(s, depth)
			if err != nil {
				return nil, err
			}
			results = append(results, result)

			r.notify(ProgressEvent{
				EventType:      EventScenarioComplete,
				Strategy:       s.Name(),
				Depth:          depth,
				ScenarioNum:    num,
				TotalScenarios: total,
				Elapsed:        result.TotalElapsed,
				Succeeded:      result.SuccessCount,
				Failed:         result.FailureCount,
			})
		}
	}

	r.notify(ProgressEvent{
		EventType:      EventRunComplete,
		TotalScenarios: total,
		Elapsed:        time.Since(runStart),
	})
	return results, nil
}
