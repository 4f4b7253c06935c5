package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/errsig/errbench/internal/fixture"
	"github.com/errsig/errbench/internal/generate"
	"github.com/errsig/errbench/internal/models"
)

var (
	genOutput       string
	genCases        int
	genFailureRatio float64
	genSeed         int64
)

func newGenerateCommand() *cobra.Command {
	defaults := models.DefaultBenchSpec()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the benchmark fixture",
		Long: `Generate the fixed test-case set every scenario runs against.

The set is reproducible: the same seed and parameters always produce the
same fixture. Failing cases are malformed in exactly the way the final
format-validation stage rejects, so every strategy fails at the same
pipeline stage.`,
		Args: cobra.NoArgs,
		RunE: generateCommandE,
	}

	cmd.Flags().StringVarP(&genOutput, "output", "o", defaults.Fixture, "Fixture output path (.json or .json.gz)")
	cmd.Flags().IntVar(&genCases, "cases", defaults.Cases, "Number of test cases")
	cmd.Flags().Float64Var(&genFailureRatio, "failure-ratio", defaults.FailureRatio, "Fraction of cases that fail validation")
	cmd.Flags().Int64Var(&genSeed, "seed", defaults.Seed, "Random seed")

	return cmd
}

func generateCommandE(_ *cobra.Command, _ []string) error {
	cases, err := generate.Generate(genCases, genFailureRatio, genSeed)
	if err != nil {
		return err
	}

	if err := fixture.Save(genOutput, cases); err != nil {
		return err
	}

	succeed, fail := cases.ExpectedCounts()
	fmt.Printf("Generated %d test cases and saved to %s\n", len(cases), genOutput)
	fmt.Printf("Valid cases: %d\n", succeed)
	fmt.Printf("Error cases: %d\n", fail)
	return nil
}
