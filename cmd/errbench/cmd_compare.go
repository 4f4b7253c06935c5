package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/errsig/errbench/internal/models"
	"github.com/errsig/errbench/internal/reporting"
	"github.com/errsig/errbench/internal/statistics"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <before.json> <after.json>",
		Short: "Compare two saved benchmark reports",
		Long: `Compare two report JSON files scenario by scenario.

Scenarios are matched by strategy and stack depth; the ratio column shows
before/after total time, so values above 1.0 mean the second run was
faster.`,
		Args: cobra.ExactArgs(2),
		RunE: compareCommandE,
	}
}

// scenarioDelta pairs up one scenario across the two reports.
type scenarioDelta struct {
	before models.ScenarioResult
	after  models.ScenarioResult
}

func compareCommandE(_ *cobra.Command, args []string) error {
	before, err := reporting.LoadReport(args[0])
	if err != nil {
		return err
	}
	after, err := reporting.LoadReport(args[1])
	if err != nil {
		return err
	}

	afterByKey := make(map[string]models.ScenarioResult, len(after.Scenarios))
	for _, r := range after.Scenarios {
		afterByKey[r.Key()] = r
	}

	var deltas []scenarioDelta
	var missing []string
	for _, r := range before.Scenarios {
		other, ok := afterByKey[r.Key()]
		if !ok {
			missing = append(missing, r.Key())
			continue
		}
		deltas = append(deltas, scenarioDelta{before: r, after: other})
	}
	if len(deltas) == 0 {
		return fmt.Errorf("no matching scenarios between %s and %s", args[0], args[1])
	}

	printComparisonTable(args[0], args[1], deltas)

	if len(missing) > 0 {
		fmt.Printf("\nScenarios only in %s: %s\n", args[0], strings.Join(missing, ", "))
	}
	return nil
}

func printComparisonTable(beforePath, afterPath string, deltas []scenarioDelta) {
	fmt.Println()
	fmt.Println("═" + strings.Repeat("═", 86))
	fmt.Println(" SCENARIO COMPARISON")
	fmt.Println("═" + strings.Repeat("═", 86))
	fmt.Printf(" before: %s\n after:  %s\n\n", beforePath, afterPath)

	fmt.Printf("%s %8s %14s %14s %12s %8s\n",
		runewidth.FillRight("Implementation", 24),
		"Stack", "Before", "After", "Δ µs/test", "Ratio")
	fmt.Println("─" + strings.Repeat("─", 86))

	for _, d := range deltas {
		deltaMicros := float64(d.after.PerTestAvg.Nanoseconds()-d.before.PerTestAvg.Nanoseconds()) / 1e3
		ratio := statistics.Speedup(d.before.TotalElapsed, d.after.TotalElapsed)

		fmt.Printf("%s %8s %14s %14s %+12.2f %7.2fx\n",
			runewidth.FillRight(reporting.DisplayName(d.before.Strategy), 24),
			string(d.before.Depth),
			d.before.TotalElapsed.Round(time.Microsecond),
			d.after.TotalElapsed.Round(time.Microsecond),
			deltaMicros,
			ratio)
	}
	fmt.Println()
}
