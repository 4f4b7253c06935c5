package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/errsig/errbench/internal/models"
)

// TimeLayout is the canonical timestamp shape the format stage accepts.
const TimeLayout = "2006-01-02 15:04:05"

// stageError is the failure value carried by all three strategies. Only
// the format stage produces one; how it travels up the stack is the
// property under measurement.
type stageError struct {
	stage models.Stage
	msg   string
}

func (e *stageError) Error() string {
	return string(e.stage) + ": " + e.msg
}

// The helpers below are the shared transformation bodies of the pipeline
// stages. Each strategy calls the same helpers so that the measured
// difference between strategies is propagation mechanics, not workload.

// normalizeMessage is the parse_message work: whitespace and casing
// normalization of the full raw message.
func normalizeMessage(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	cleaned = strings.ReplaceAll(cleaned, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\r", " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.Trim(cleaned, `"'`)
	// Case round-trip; field values are lowercase by convention and
	// timestamps are digits, so this normalizes without losing data.
	return strings.ToLower(strings.ToUpper(cleaned))
}

// extractTimestamp is the parse_datetime work: pick the timestamp field
// out of a "user | timestamp | body" message and scrub it.
func extractTimestamp(msg string) string {
	field := msg
	if parts := strings.Split(msg, "|"); len(parts) >= 3 {
		field = parts[1]
	}
	field = strings.TrimSpace(field)
	field = strings.ReplaceAll(field, ",", "")
	field = strings.ReplaceAll(field, ";", "")
	return strings.Join(strings.Fields(field), " ")
}

// scrubMessage is the deep-stack validate_message pre-pass: control
// character removal ahead of parse_message. Idempotent with respect to
// normalizeMessage, so shallow and deep stacks agree on every input.
func scrubMessage(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "\r\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return cleaned
}

// batchNormalize is the deep-stack process_batch work. The result is
// discarded: the stage exists to give the outermost frame a realistic
// body, and it forwards the raw message untouched.
func batchNormalize(raw string) int {
	processed := strings.TrimSpace(strings.ReplaceAll(raw, "  ", " "))
	processed = strings.ToLower(strings.ToUpper(processed))
	return len(processed)
}

// checkFormat is the validate_format work and the pipeline's sole failure
// point. On success it returns the canonical rendering of the timestamp.
func checkFormat(ts string) (string, *stageError) {
	if ts == "" {
		return "", &stageError{stage: models.StageValidateFormat, msg: "empty timestamp"}
	}
	t, err := time.Parse(TimeLayout, ts)
	if err != nil {
		return "", &stageError{stage: models.StageValidateFormat, msg: fmt.Sprintf("invalid timestamp %q", ts)}
	}
	return t.Format(TimeLayout), nil
}
