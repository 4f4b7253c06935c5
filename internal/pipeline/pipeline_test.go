package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/errsig/errbench/internal/generate"
	"github.com/errsig/errbench/internal/models"
)

const (
	wellFormed  = "user_1 | 2024-01-15 10:30:45 | message content 1"
	formatBad   = "user_2 | 2024-13-01 10:30:45 | message content 2"
	canonical   = "2024-01-15 10:30:45"
	noisyFormed = "\t  user_3 |  2024-01-15   10:30:45 | message content 3  "
)

// entryPoints enumerates all six (strategy, depth) entry points.
func entryPoints() map[string]func(string) models.Outcome {
	entries := map[string]func(string) models.Outcome{}
	for _, s := range Strategies() {
		entries[s.Name()+"/shallow"] = s.Shallow
		entries[s.Name()+"/deep"] = s.Deep
	}
	return entries
}

func TestStrategies_ClosedSetAndOrder(t *testing.T) {
	strategies := Strategies()
	require.Len(t, strategies, 3)
	assert.Equal(t, "panic", strategies[0].Name(), "baseline strategy must come first")
	assert.Equal(t, "union", strategies[1].Name())
	assert.Equal(t, "tuple", strategies[2].Name())
}

func TestWellFormedMessage_SucceedsEverywhere(t *testing.T) {
	for name, entry := range entryPoints() {
		out := entry(wellFormed)
		require.True(t, out.OK, "%s rejected a well-formed message: %s", name, out.Msg)
		assert.Equal(t, canonical, out.Value, "%s returned a non-canonical value", name)
	}
}

func TestNoisyMessage_NormalizedEverywhere(t *testing.T) {
	for name, entry := range entryPoints() {
		out := entry(noisyFormed)
		require.True(t, out.OK, "%s rejected a noisy but valid message: %s", name, out.Msg)
		assert.Equal(t, canonical, out.Value, name)
	}
}

func TestFormatFailure_FailsAtFormatStageEverywhere(t *testing.T) {
	for name, entry := range entryPoints() {
		out := entry(formatBad)
		require.False(t, out.OK, "%s accepted a format-invalid message", name)
		assert.Equal(t, models.StageValidateFormat, out.Stage,
			"%s failed at %s, only the format stage may fail", name, out.Stage)
		assert.NotEmpty(t, out.Msg, name)
	}
}

func TestQuotedMessage_SucceedsEverywhere(t *testing.T) {
	quoted := `"` + wellFormed + `"`
	for name, entry := range entryPoints() {
		out := entry(quoted)
		require.True(t, out.OK, "%s rejected a quoted message: %s", name, out.Msg)
		assert.Equal(t, canonical, out.Value, name)
	}
}

// TestGeneratedSet_EquivalenceAcrossStrategies is the core property of the
// whole suite: every strategy at every depth reaches the identical verdict
// and value for every generated case.
func TestGeneratedSet_EquivalenceAcrossStrategies(t *testing.T) {
	cases, err := generate.Generate(1000, 0.787, 42)
	require.NoError(t, err)

	entries := entryPoints()
	for _, tc := range cases {
		var refName string
		var ref models.Outcome
		for name, entry := range entries {
			out := entry(tc.RawMessage)

			assert.Equal(t, tc.ExpectSuccess, out.OK,
				"case %d: %s disagrees with the fixture", tc.ID, name)
			if refName == "" {
				refName, ref = name, out
				continue
			}
			assert.Equal(t, ref.OK, out.OK, "case %d: %s vs %s", tc.ID, name, refName)
			if ref.OK && out.OK {
				assert.Equal(t, ref.Value, out.Value, "case %d: %s vs %s", tc.ID, name, refName)
			}
		}
	}
}

func TestInvalidCorpus_FailsOnlyAtFormatStage(t *testing.T) {
	// Every failure mode the generator emits must survive normalization
	// and extraction, then die at the format check.
	cases, err := generate.Generate(400, 1.0, 9)
	require.NoError(t, err)

	for _, s := range Strategies() {
		for i, tc := range cases {
			out := s.Deep(tc.RawMessage)
			require.False(t, out.OK, "%s: case %d should fail", s.Name(), i)
			require.Equal(t, models.StageValidateFormat, out.Stage,
				"%s: case %d failed at the wrong stage", s.Name(), i)
		}
	}
}

func TestEmptyTimestampField_IsFormatFailure(t *testing.T) {
	msg := "user_9 |  | message content 9"
	for name, entry := range entryPoints() {
		out := entry(msg)
		require.False(t, out.OK, name)
		assert.Equal(t, models.StageValidateFormat, out.Stage, name)
	}
}

func TestCheckFormat_CanonicalizesValue(t *testing.T) {
	value, err := checkFormat("2024-02-29 09:30:15")
	require.Nil(t, err)
	assert.Equal(t, "2024-02-29 09:30:15", value)
}
