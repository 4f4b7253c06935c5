package pipeline

import "github.com/errsig/errbench/internal/models"

// tupleStrategy is the idiomatic Go convention: every stage returns
// (result, error), and every intermediate stage checks the error slot
// after calling down and returns ("", err) without doing its own work.
type tupleStrategy struct{}

func (tupleStrategy) Name() string { return "tuple" }

func (s tupleStrategy) Shallow(raw string) models.Outcome {
	return classifyTuple(s.parseMessage(raw))
}

func (s tupleStrategy) Deep(raw string) models.Outcome {
	return classifyTuple(s.processBatch(raw))
}

func classifyTuple(value string, err error) models.Outcome {
	if err != nil {
		se, ok := err.(*stageError)
		if !ok {
			panic("pipeline: tuple stage returned a foreign error type")
		}
		return failureOutcome(se)
	}
	return successOutcome(value)
}

func (s tupleStrategy) processBatch(raw string) (string, error) {
	_ = batchNormalize(raw)
	result, err := s.validateMessage(raw)
	if err != nil {
		return "", err
	}
	return result, nil
}

func (s tupleStrategy) validateMessage(raw string) (string, error) {
	cleaned := scrubMessage(raw)
	result, err := s.parseMessage(cleaned)
	if err != nil {
		return "", err
	}
	return result, nil
}

func (s tupleStrategy) parseMessage(raw string) (string, error) {
	normalized := normalizeMessage(raw)
	result, err := s.parseDatetime(normalized)
	if err != nil {
		return "", err
	}
	return result, nil
}

func (s tupleStrategy) parseDatetime(msg string) (string, error) {
	ts := extractTimestamp(msg)
	result, err := s.validateFormat(ts)
	if err != nil {
		return "", err
	}
	return result, nil
}

func (tupleStrategy) validateFormat(ts string) (string, error) {
	value, err := checkFormat(ts)
	if err != nil {
		return "", err
	}
	return value, nil
}
