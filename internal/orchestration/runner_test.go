package orchestration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/errsig/errbench/internal/generate"
	"github.com/errsig/errbench/internal/models"
	"github.com/errsig/errbench/internal/pipeline"
)

func referenceSet(t *testing.T) models.TestCaseSet {
	t.Helper()
	cases, err := generate.Generate(1000, 0.787, 42)
	require.NoError(t, err)
	return cases
}

// brokenStrategy misclassifies everything as a success.
type brokenStrategy struct{}

func (brokenStrategy) Name() string { return "broken" }

func (brokenStrategy) Shallow(string) models.Outcome {
	return models.Outcome{OK: true, Value: "bogus"}
}

func (brokenStrategy) Deep(string) models.Outcome {
	return models.Outcome{OK: true, Value: "bogus"}
}

func TestRunScenario_CountsMatchFixture(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases)

	for _, s := range pipeline.Strategies() {
		for _, depth := range []models.Depth{models.DepthShallow, models.DepthDeep} {
			result, err := runner.RunScenario(s, depth)
			require.NoError(t, err)

			assert.Equal(t, 213, result.SuccessCount, "%s/%s", s.Name(), depth)
			assert.Equal(t, 787, result.FailureCount, "%s/%s", s.Name(), depth)
			assert.Equal(t, 1000, result.Cases)
		}
	}
}

func TestRunScenario_TimingSanity(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases)

	result, err := runner.RunScenario(pipeline.Strategies()[0], models.DepthShallow)
	require.NoError(t, err)

	assert.Greater(t, result.TotalElapsed, time.Duration(0))
	assert.Equal(t, result.TotalElapsed/time.Duration(result.Cases), result.PerTestAvg,
		"per-test average must be exactly total/n")
}

func TestRunAll_SixScenariosInOrder(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases)

	results, err := runner.RunAll()
	require.NoError(t, err)
	require.Len(t, results, 6)

	wantOrder := []string{
		"panic/shallow", "union/shallow", "tuple/shallow",
		"panic/deep", "union/deep", "tuple/deep",
	}
	for i, r := range results {
		assert.Equal(t, wantOrder[i], r.Key())
	}
}

func TestRunAll_EmitsProgressEvents(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases)

	var events []EventType
	runner.OnProgress(func(event ProgressEvent) {
		events = append(events, event.EventType)
	})

	_, err := runner.RunAll()
	require.NoError(t, err)

	// run_start + 6×(scenario_start, scenario_complete) + run_complete
	require.Len(t, events, 14)
	assert.Equal(t, EventRunStart, events[0])
	assert.Equal(t, EventRunComplete, events[len(events)-1])
}

func TestRunScenario_BrokenStrategyIsHardFailure(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases, WithStrategies(brokenStrategy{}))

	_, err := runner.RunScenario(brokenStrategy{}, models.DepthShallow)
	require.Error(t, err)

	var equivErr *models.EquivalenceError
	require.ErrorAs(t, err, &equivErr)
	assert.Equal(t, "broken/shallow", equivErr.Scenario)
	assert.Equal(t, -1, equivErr.CaseID)
}

func TestVerifyEquivalence_PassesForRealStrategies(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases)

	require.NoError(t, runner.VerifyEquivalence())
}

func TestVerifyEquivalence_NamesDivergingCase(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases, WithStrategies(brokenStrategy{}))

	err := runner.VerifyEquivalence()
	require.Error(t, err)

	var equivErr *models.EquivalenceError
	require.ErrorAs(t, err, &equivErr)
	assert.GreaterOrEqual(t, equivErr.CaseID, 0, "divergence must name the case")
	assert.Contains(t, equivErr.Scenario, "broken")
}

func TestRunScenario_WarmupDoesNotChangeCounts(t *testing.T) {
	cases := referenceSet(t)
	runner := NewRunner(cases, WithWarmup(true))

	result, err := runner.RunScenario(pipeline.Strategies()[2], models.DepthDeep)
	require.NoError(t, err)
	assert.Equal(t, 213, result.SuccessCount)
	assert.Equal(t, 787, result.FailureCount)
}
