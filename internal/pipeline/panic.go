package pipeline

import "github.com/errsig/errbench/internal/models"

// panicStrategy signals failure by panicking with a *stageError at the
// format stage. Intermediate stages install no recovery; only the entry
// points recover and classify. This is the closest Go rendering of
// exception handling and serves as the speedup baseline.
type panicStrategy struct{}

func (panicStrategy) Name() string { return "panic" }

func (s panicStrategy) Shallow(raw string) (out models.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = classifyPanic(r)
		}
	}()
	return successOutcome(s.parseMessage(raw))
}

func (s panicStrategy) Deep(raw string) (out models.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = classifyPanic(r)
		}
	}()
	return successOutcome(s.processBatch(raw))
}

// classifyPanic converts a recovered *stageError into a failure outcome.
// Anything else is a harness bug and propagates.
func classifyPanic(r any) models.Outcome {
	if err, ok := r.(*stageError); ok {
		return failureOutcome(err)
	}
	panic(r)
}

func (s panicStrategy) processBatch(raw string) string {
	_ = batchNormalize(raw)
	return s.validateMessage(raw)
}

func (s panicStrategy) validateMessage(raw string) string {
	return s.parseMessage(scrubMessage(raw))
}

func (s panicStrategy) parseMessage(raw string) string {
	return s.parseDatetime(normalizeMessage(raw))
}

func (s panicStrategy) parseDatetime(msg string) string {
	return s.validateFormat(extractTimestamp(msg))
}

func (panicStrategy) validateFormat(ts string) string {
	value, err := checkFormat(ts)
	if err != nil {
		panic(err)
	}
	return value
}
