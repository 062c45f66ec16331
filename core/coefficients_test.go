package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/core"
)

// label is a minimal Keyer for exercising the coefficient map.
type label string

func (l label) String() string { return string(l) }

func TestCoefficientsSetGetRemove(t *testing.T) {
	c := core.NewCoefficients[label]()
	require.Equal(t, 0, c.Len())
	require.Equal(t, complex128(0), c.Get("a"), "absent key reads as zero")

	c.Set("a", 2)
	require.Equal(t, complex128(2), c.Get("a"))
	require.True(t, c.Contains("a"))

	c.Set("a", 3+1i)
	require.Equal(t, 3+1i, c.Get("a"), "Set overwrites")
	require.Equal(t, 1, c.Len())

	c.Remove("a")
	require.False(t, c.Contains("a"))
	require.Equal(t, 0, c.Len())
}

func TestCoefficientsZeroInvariant(t *testing.T) {
	c := core.NewCoefficients[label]()

	// Setting zero never creates an entry.
	c.Set("a", 0)
	require.False(t, c.Contains("a"), "zero Set must not store")

	// Adding to an exact cancellation removes the entry.
	c.Set("b", 1+2i)
	c.Add("b", -1-2i)
	require.False(t, c.Contains("b"), "cancelled coefficient must be dropped")

	// Setting an existing entry to zero removes it.
	c.Set("c", 5)
	c.Set("c", 0)
	require.False(t, c.Contains("c"))
}

func TestCoefficientsInsertionOrder(t *testing.T) {
	c := core.NewCoefficients[label]()
	c.Set("x", 1)
	c.Set("y", 2)
	c.Set("z", 3)
	c.Remove("y")
	c.Set("y", 4) // re-insertion goes to the back

	keys := c.Keys()
	require.Equal(t, []label{"x", "z", "y"}, keys)

	terms := c.Terms()
	require.Len(t, terms, 3)
	require.Equal(t, label("x"), terms[0].Key)
	require.Equal(t, complex128(4), terms[2].Value)
}

func TestCoefficientsScaleAndClone(t *testing.T) {
	c := core.NewCoefficients[label]()
	c.Set("a", 2)
	c.Set("b", -1i)

	clone := c.Clone()
	c.Scale(2i)
	require.Equal(t, 4i, c.Get("a"))
	require.Equal(t, complex128(2), c.Get("b"))
	require.Equal(t, complex128(2), clone.Get("a"), "clone must be independent")

	c.Scale(0)
	require.Equal(t, 0, c.Len(), "scaling by zero empties the map")
	require.Equal(t, 2, clone.Len())
}
