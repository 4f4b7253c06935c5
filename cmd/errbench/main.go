package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/errsig/errbench/internal/models"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Run completed, all strategies agreed
	ExitEquivalence = 1 // A strategy diverged from the others
	ExitError       = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var equivErr *models.EquivalenceError
		if errors.As(err, &equivErr) {
			os.Exit(ExitEquivalence)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
