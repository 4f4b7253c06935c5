// Package reporting aggregates scenario results into a benchmark report
// and renders it as a text table, a markdown summary, and a JSON record.
package reporting

import (
	"fmt"
	"runtime"
	"time"

	"github.com/errsig/errbench/internal/models"
	"github.com/errsig/errbench/internal/statistics"
)

// BaselineStrategy is the strategy every speedup is computed against.
const BaselineStrategy = "panic"

// RunMeta carries run metadata into the report.
type RunMeta struct {
	Fixture     string
	Environment string
}

// Environment describes the Go runtime and platform of the current run.
func Environment() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Aggregate computes per-depth speedups against the baseline strategy and
// assembles the write-once report. Scenario order is preserved.
func Aggregate(results []models.ScenarioResult, meta RunMeta) *models.BenchmarkReport {
	baselines := map[models.Depth]time.Duration{}
	for _, r := range results {
		if r.Strategy == BaselineStrategy {
			baselines[r.Depth] = r.TotalElapsed
		}
	}

	cases := 0
	scenarios := make([]models.ScenarioResult, len(results))
	for i, r := range results {
		r.Speedup = statistics.Speedup(baselines[r.Depth], r.TotalElapsed)
		scenarios[i] = r
		cases = r.Cases
	}

	env := meta.Environment
	if env == "" {
		env = Environment()
	}

	return &models.BenchmarkReport{
		Timestamp:   time.Now(),
		Environment: env,
		Fixture:     meta.Fixture,
		Cases:       cases,
		Scenarios:   scenarios,
	}
}
