package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/core"
)

func TestParseLadderProduct(t *testing.T) {
	creators, annihilators, err := core.ParseLadderProduct("c0c12a3")
	require.NoError(t, err)
	require.Equal(t, []int{0, 12}, creators)
	require.Equal(t, []int{3}, annihilators)

	creators, annihilators, err = core.ParseLadderProduct("I")
	require.NoError(t, err)
	require.Empty(t, creators)
	require.Empty(t, annihilators)

	// Pure annihilator and pure creator runs are valid.
	_, annihilators, err = core.ParseLadderProduct("a0a1")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, annihilators)
}

func TestParseLadderProductErrors(t *testing.T) {
	for _, bad := range []string{"", "a0c1", "c", "x0", "c0a", "c0 a1", "c00", "c0a01"} {
		_, _, err := core.ParseLadderProduct(bad)
		require.ErrorIs(t, err, core.ErrLadderSyntax, "input %q", bad)
	}
}

func TestFormatLadderProduct(t *testing.T) {
	require.Equal(t, "I", core.FormatLadderProduct(nil, nil))
	require.Equal(t, "c0c1a2", core.FormatLadderProduct([]int{0, 1}, []int{2}))
	require.Equal(t, "a7", core.FormatLadderProduct(nil, []int{7}))
}

func TestToleranceHelpers(t *testing.T) {
	require.True(t, core.IsZero(complex(1e-13, -1e-13)))
	require.False(t, core.IsZero(complex(1e-11, 0)))
	require.True(t, core.IsReal(complex(3, 1e-13)))
	require.False(t, core.IsReal(complex(0, 1e-3)))
	require.True(t, core.CloseTo(1+2i, 1+2i+complex(0, 1e-14)))
}
