package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errbench",
		Short: "errbench - microbenchmark for error-signaling idioms",
		Long: `errbench compares the cost of three error-signaling idioms —
panic/recover, union-typed returns, and (result, error) tuples — across
shallow and deep call stacks, over a fixed error-heavy validation workload.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newCompareCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
