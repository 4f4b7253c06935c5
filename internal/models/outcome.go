package models

// Stage identifies a pipeline stage.
type Stage string

const (
	StageProcessBatch    Stage = "process_batch"
	StageValidateMessage Stage = "validate_message"
	StageParseMessage    Stage = "parse_message"
	StageParseDatetime   Stage = "parse_datetime"
	StageValidateFormat  Stage = "validate_format"
)

// Depth labels the call-stack depth of a scenario.
type Depth string

const (
	DepthShallow Depth = "shallow"
	DepthDeep    Depth = "deep"
)

// Outcome is the classified result of running one raw message through a
// strategy's entry point. Strategy-specific signaling (panic, union value,
// error slot) never escapes past the entry point; the runner only ever
// sees an Outcome.
type Outcome struct {
	OK bool

	// Value holds the canonical parsed timestamp when OK.
	Value string

	// Stage and Msg describe the failure when !OK. Only
	// StageValidateFormat can reject input.
	Stage Stage
	Msg   string
}
