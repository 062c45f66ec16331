package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/core"
)

func TestIsAscending(t *testing.T) {
	require.True(t, core.IsAscending(nil), "empty slice is ascending")
	require.True(t, core.IsAscending([]int{0, 1, 1, 4}), "repeats allowed")
	require.False(t, core.IsAscending([]int{2, 1}), "descending pair must fail")
}

func TestIsStrictlyAscending(t *testing.T) {
	require.True(t, core.IsStrictlyAscending([]int{0, 2, 5}))
	require.False(t, core.IsStrictlyAscending([]int{0, 2, 2}), "repeat must fail strict check")
}

func TestFirstDuplicate(t *testing.T) {
	_, ok := core.FirstDuplicate([]int{0, 1, 2})
	require.False(t, ok, "no duplicate expected")

	d, ok := core.FirstDuplicate([]int{0, 1, 1, 2})
	require.True(t, ok)
	require.Equal(t, 1, d)
}

func TestMergeSortedCrossings(t *testing.T) {
	// Every element of b smaller than every element of a: full crossing count.
	merged, crossings := core.MergeSorted([]int{2, 3}, []int{0, 1})
	require.Equal(t, []int{0, 1, 2, 3}, merged)
	require.Equal(t, 4, crossings, "each of the two b elements passes both a elements")

	// Already interleaved in order: no crossings.
	merged, crossings = core.MergeSorted([]int{0, 2}, []int{3, 5})
	require.Equal(t, []int{0, 2, 3, 5}, merged)
	require.Equal(t, 0, crossings)

	// Single swap.
	_, crossings = core.MergeSorted([]int{1}, []int{0})
	require.Equal(t, 1, crossings)
}

func TestSortCountedParity(t *testing.T) {
	sorted, sign := core.SortCounted([]int{0, 1, 2})
	require.Equal(t, []int{0, 1, 2}, sorted)
	require.Equal(t, 1, sign, "already sorted input has even parity")

	sorted, sign = core.SortCounted([]int{1, 0})
	require.Equal(t, []int{0, 1}, sorted)
	require.Equal(t, -1, sign, "one transposition flips the sign")

	sorted, sign = core.SortCounted([]int{2, 1, 0})
	require.Equal(t, []int{0, 1, 2}, sorted)
	require.Equal(t, -1, sign, "three inversions give odd parity")
}

func TestCompareIndexSlices(t *testing.T) {
	require.Equal(t, 0, core.CompareIndexSlices([]int{0, 1}, []int{0, 1}))
	require.Equal(t, -1, core.CompareIndexSlices([]int{0}, []int{0, 1}), "shorter prefix sorts first")
	require.Equal(t, 1, core.CompareIndexSlices([]int{2}, []int{1, 5}))
	require.Equal(t, -1, core.CompareIndexSlices(nil, []int{0}))
}
