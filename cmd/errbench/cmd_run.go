package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/errsig/errbench/internal/fixture"
	"github.com/errsig/errbench/internal/models"
	"github.com/errsig/errbench/internal/orchestration"
	"github.com/errsig/errbench/internal/reporting"
)

var (
	runFixturePath string
	runOutputDir   string
	runVerbose     bool
	runWarmup      bool
	runMarkdown    bool
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [bench.yaml]",
		Short: "Run all benchmark scenarios",
		Long: `Run all six scenarios (3 strategies × 2 stack depths) over the shared
fixture and write a JSON record plus a plain-text table, both
timestamp-named.

An optional YAML spec file supplies the configuration; flags override
individual fields. The fixture must exist — generate it first with
"errbench generate".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCommandE,
	}

	cmd.Flags().StringVar(&runFixturePath, "fixture", "", "Fixture path (default from spec: testcases.json)")
	cmd.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "Directory for report artifacts (default from spec: .)")
	cmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose per-scenario progress")
	cmd.Flags().BoolVar(&runWarmup, "warmup", false, "Run one untimed pass before each measured loop")
	cmd.Flags().BoolVar(&runMarkdown, "markdown", false, "Print the summary as markdown instead of a table")

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string) error {
	spec := models.DefaultBenchSpec()
	if len(args) == 1 {
		loaded, err := models.LoadBenchSpec(args[0])
		if err != nil {
			return err
		}
		spec = loaded
	}

	// CLI flags override the spec
	if runFixturePath != "" {
		spec.Fixture = runFixturePath
	}
	if runOutputDir != "" {
		spec.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("warmup") {
		spec.Warmup = runWarmup
	}

	cases, err := fixture.Load(spec.Fixture)
	if err != nil {
		return err
	}

	runner := orchestration.NewRunner(cases, orchestration.WithWarmup(spec.Warmup))
	if runVerbose {
		runner.OnProgress(verboseProgressListener)
	} else {
		runner.OnProgress(simpleProgressListener)
	}

	fmt.Printf("Running benchmark: %s\n", spec.Name)
	fmt.Printf("Fixture: %s (%d cases)\n", spec.Fixture, len(cases))
	if spec.Warmup {
		fmt.Println("Warmup: enabled")
	}
	fmt.Println()

	// All six entry points are cross-checked against the fixture before
	// anything is timed; a divergence aborts the whole run.
	if err := runner.VerifyEquivalence(); err != nil {
		return err
	}

	results, err := runner.RunAll()
	if err != nil {
		return err
	}

	report := reporting.Aggregate(results, reporting.RunMeta{Fixture: spec.Fixture})

	fmt.Println()
	if runMarkdown {
		fmt.Print(reporting.FormatMarkdown(report))
	} else {
		fmt.Print(reporting.FormatTable(report))
	}

	jsonPath, textPath, err := reporting.WriteArtifacts(spec.OutputDir, report)
	if err != nil {
		return err
	}
	fmt.Printf("\nResults saved to: %s\n", jsonPath)
	fmt.Printf("Results saved to: %s\n", textPath)

	return nil
}

func verboseProgressListener(event orchestration.ProgressEvent) {
	switch event.EventType {
	case orchestration.EventRunStart:
		fmt.Printf("Starting %d scenario(s)...\n", event.TotalScenarios)
	case orchestration.EventScenarioStart:
		fmt.Printf("[%d/%d] Running %s (%s stack)...\n",
			event.ScenarioNum, event.TotalScenarios,
			reporting.DisplayName(event.Strategy), event.Depth)
	case orchestration.EventScenarioComplete:
		fmt.Printf("  completed in %v (%d success, %d failure)\n",
			event.Elapsed, event.Succeeded, event.Failed)
	case orchestration.EventRunComplete:
		fmt.Printf("All scenarios completed in %v\n", event.Elapsed)
	}
}

func simpleProgressListener(event orchestration.ProgressEvent) {
	if event.EventType == orchestration.EventScenarioComplete {
		fmt.Printf("✓ [%d/%d] %s/%s (%v)\n",
			event.ScenarioNum, event.TotalScenarios,
			event.Strategy, event.Depth, event.Elapsed)
	}
}
