// Package pipeline implements the text-validation pipeline under three
// error-signaling conventions: panic/recover, union-typed returns, and
// (result, error) tuples. All three run the identical five stages and
// reach the identical verdict for any input; they differ only in how the
// sole failing stage's error travels back to the entry point.
package pipeline

import "github.com/errsig/errbench/internal/models"

// Strategy is one error-signaling convention. Shallow runs the 3-level
// call chain (parse_message → parse_datetime → validate_format); Deep
// runs the 5-level chain (process_batch → validate_message → the shallow
// chain). Entry points never let strategy-specific signaling escape: they
// always return a classified Outcome.
type Strategy interface {
	Name() string
	Shallow(raw string) models.Outcome
	Deep(raw string) models.Outcome
}

// Strategies returns the closed set of strategies in canonical order.
// The panic strategy comes first: it is the speedup baseline.
func Strategies() []Strategy {
	return []Strategy{
		panicStrategy{},
		unionStrategy{},
		tupleStrategy{},
	}
}

func successOutcome(value string) models.Outcome {
	return models.Outcome{OK: true, Value: value}
}

func failureOutcome(err *stageError) models.Outcome {
	return models.Outcome{Stage: err.stage, Msg: err.msg}
}
