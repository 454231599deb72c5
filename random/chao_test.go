package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonUniformSampleWithoutReplacementUniqueSubset(t *testing.T) {
	src := newSource(t, "chao-reservoir")
	parts := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out, err := NonUniformSampleWithoutReplacement(src, parts, 4)
	require.NoError(t, err)
	require.Len(t, out, 4)

	seen := make(map[int]bool, 4)
	for _, v := range out {
		require.False(t, seen[v], "index %d sampled twice", v)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, len(parts))
		seen[v] = true
	}
}

func TestNonUniformSampleWithoutReplacementRejectsOversizedRequest(t *testing.T) {
	src := newSource(t, "chao-oversized")
	_, err := NonUniformSampleWithoutReplacement(src, []float64{1, 2}, 3)
	require.ErrorIs(t, err, ErrSizeExceedsTotal)
}

func TestNonUniformSampleWithoutReplacementRejectsNegativeWeight(t *testing.T) {
	src := newSource(t, "chao-negative")
	_, err := NonUniformSampleWithoutReplacement(src, []float64{1, -1, 2}, 2)
	require.ErrorIs(t, err, ErrNegativeWeight)
}

func TestNonUniformSampleWithoutReplacementFullSizeIsIdentity(t *testing.T) {
	src := newSource(t, "chao-full")
	parts := []float64{3, 1, 4, 1, 5}
	out, err := NonUniformSampleWithoutReplacement(src, parts, len(parts))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, out)
}
