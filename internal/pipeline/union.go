package pipeline

import "github.com/errsig/errbench/internal/models"

// unionStrategy signals failure by returning a value that is
// type-distinguishable from a success value: every stage returns `any`
// holding either the parsed string or a *stageError. Intermediate stages
// type-check their callee's return and pass an error value up unchanged,
// skipping their own transformation.
type unionStrategy struct{}

func (unionStrategy) Name() string { return "union" }

func (s unionStrategy) Shallow(raw string) models.Outcome {
	return classifyUnion(s.parseMessage(raw))
}

func (s unionStrategy) Deep(raw string) models.Outcome {
	return classifyUnion(s.processBatch(raw))
}

func classifyUnion(v any) models.Outcome {
	switch r := v.(type) {
	case *stageError:
		return failureOutcome(r)
	case string:
		return successOutcome(r)
	default:
		panic("pipeline: union stage returned neither string nor *stageError")
	}
}

func (s unionStrategy) processBatch(raw string) any {
	_ = batchNormalize(raw)
	result := s.validateMessage(raw)
	if err, ok := result.(*stageError); ok {
		return err
	}
	return result
}

func (s unionStrategy) validateMessage(raw string) any {
	cleaned := scrubMessage(raw)
	result := s.parseMessage(cleaned)
	if err, ok := result.(*stageError); ok {
		return err
	}
	return result
}

func (s unionStrategy) parseMessage(raw string) any {
	normalized := normalizeMessage(raw)
	result := s.parseDatetime(normalized)
	if err, ok := result.(*stageError); ok {
		return err
	}
	return result
}

func (s unionStrategy) parseDatetime(msg string) any {
	ts := extractTimestamp(msg)
	result := s.validateFormat(ts)
	if err, ok := result.(*stageError); ok {
		return err
	}
	return result
}

func (unionStrategy) validateFormat(ts string) any {
	value, err := checkFormat(ts)
	if err != nil {
		return err
	}
	return value
}
