package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/errsig/errbench/internal/models"
)

func TestGenerate_ReferenceConfiguration(t *testing.T) {
	cases, err := Generate(1000, 0.787, 42)
	require.NoError(t, err)
	require.Len(t, cases, 1000)

	succeed, fail := cases.ExpectedCounts()
	assert.Equal(t, 213, succeed)
	assert.Equal(t, 787, fail)
}

func TestGenerate_RatioInvariant(t *testing.T) {
	for _, tc := range []struct {
		n        int
		ratio    float64
		wantFail int
	}{
		{100, 0.0, 0},
		{100, 1.0, 100},
		{100, 0.5, 50},
		{3, 0.5, 2}, // round half away from zero
		{10, 0.25, 3},
	} {
		cases, err := Generate(tc.n, tc.ratio, 1)
		require.NoError(t, err)
		_, fail := cases.ExpectedCounts()
		assert.Equal(t, tc.wantFail, fail, "n=%d ratio=%g", tc.n, tc.ratio)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(500, 0.787, 42)
	require.NoError(t, err)
	second, err := Generate(500, 0.787, 42)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must reproduce the identical set")
}

func TestGenerate_SeedChangesOrder(t *testing.T) {
	first, err := Generate(500, 0.5, 1)
	require.NoError(t, err)
	second, err := Generate(500, 0.5, 2)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerate_IDsAreUnique(t *testing.T) {
	cases, err := Generate(200, 0.5, 7)
	require.NoError(t, err)

	seen := make(map[int]bool, len(cases))
	for _, tc := range cases {
		assert.False(t, seen[tc.ID], "duplicate id %d", tc.ID)
		seen[tc.ID] = true
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	var cfgErr *models.ConfigError

	_, err := Generate(0, 0.5, 1)
	require.ErrorAs(t, err, &cfgErr)

	_, err = Generate(-10, 0.5, 1)
	require.ErrorAs(t, err, &cfgErr)

	_, err = Generate(100, -0.1, 1)
	require.ErrorAs(t, err, &cfgErr)

	_, err = Generate(100, 1.5, 1)
	require.ErrorAs(t, err, &cfgErr)
}
