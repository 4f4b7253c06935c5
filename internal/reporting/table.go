package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/errsig/errbench/internal/models"
)

// displayNames maps strategy identifiers to table labels.
var displayNames = map[string]string{
	"panic": "Panic/Recover",
	"union": "Union (value | error)",
	"tuple": "Tuple (result, error)",
}

// DisplayName returns the human-readable label for a strategy identifier.
func DisplayName(strategy string) string {
	if name, ok := displayNames[strategy]; ok {
		return name
	}
	return strategy
}

func microsPerTest(r models.ScenarioResult) float64 {
	return float64(r.PerTestAvg.Nanoseconds()) / 1e3
}

// FormatTable renders the full plain-text comparison table, grouped by
// depth in scenario execution order.
func FormatTable(report *models.BenchmarkReport) string {
	var b strings.Builder
	printer := message.NewPrinter(language.English)

	rule := strings.Repeat("=", 88)
	b.WriteString(rule + "\n")
	b.WriteString(" ERROR SIGNALING BENCHMARK\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(fmt.Sprintf("Timestamp:   %s\n", report.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Environment: %s\n", report.Environment))
	if report.Fixture != "" {
		b.WriteString(printer.Sprintf("Fixture:     %s (%d cases)\n", report.Fixture, report.Cases))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %8s %14s %10s %9s %9s %9s\n",
		runewidth.FillRight("Implementation", 24),
		"Stack", "Total Time", "µs/test", "Success", "Failure", "Speedup"))
	b.WriteString(strings.Repeat("-", 88) + "\n")

	var lastDepth models.Depth
	for i, r := range report.Scenarios {
		if i > 0 && r.Depth != lastDepth {
			b.WriteString("\n")
		}
		lastDepth = r.Depth

		b.WriteString(printer.Sprintf("%s %8s %14s %10.2f %9d %9d %8.2fx\n",
			runewidth.FillRight(DisplayName(r.Strategy), 24),
			string(r.Depth),
			r.TotalElapsed.Round(time.Microsecond),
			microsPerTest(r),
			r.SuccessCount,
			r.FailureCount,
			r.Speedup))
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// FormatMarkdown renders the report as a markdown summary suitable for a
// PR or issue comment.
func FormatMarkdown(report *models.BenchmarkReport) string {
	var b strings.Builder

	b.WriteString("## Error Signaling Benchmark\n\n")
	b.WriteString(fmt.Sprintf("**Environment:** %s | **Cases:** %d | **Run:** %s\n\n",
		report.Environment, report.Cases, report.Timestamp.Format(time.RFC3339)))

	b.WriteString("| Implementation | Stack | Total Time | µs/test | Success | Failure | Speedup |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, r := range report.Scenarios {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %.2f | %d | %d | %.2fx |\n",
			DisplayName(r.Strategy),
			string(r.Depth),
			r.TotalElapsed.Round(time.Microsecond),
			microsPerTest(r),
			r.SuccessCount,
			r.FailureCount,
			r.Speedup))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Speedup is relative to the %s baseline at the same stack depth.\n",
		DisplayName(BaselineStrategy)))
	return b.String()
}
