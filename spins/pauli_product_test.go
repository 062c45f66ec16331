package spins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/spins"
	"github.com/qualgebra/qualgebra/symbols"
)

func TestPauliProductBuildAndString(t *testing.T) {
	p := spins.NewPauliProduct().X(0).Z(3).Y(1)
	require.Equal(t, "0X1Y3Z", p.String(), "sites render in ascending index order")
	require.Equal(t, symbols.PauliX, p.Get(0))
	require.Equal(t, symbols.PauliI, p.Get(2), "untouched site reads identity")
	require.Equal(t, 3, p.Len())
	require.Equal(t, 4, p.CurrentNumberSpins())

	require.Equal(t, "I", spins.NewPauliProduct().String())

	// Setting identity clears a site.
	cleared := p.Set(1, symbols.PauliI)
	require.Equal(t, "0X3Z", cleared.String())
	require.Equal(t, "0X1Y3Z", p.String(), "products are immutable")
}

func TestParsePauliProduct(t *testing.T) {
	p, err := spins.ParsePauliProduct("0X1Z")
	require.NoError(t, err)
	require.True(t, p.Equal(spins.NewPauliProduct().X(0).Z(1)))

	identity, err := spins.ParsePauliProduct("I")
	require.NoError(t, err)
	require.Equal(t, 0, identity.Len())

	for _, bad := range []string{"", "1Z0X", "0X0Y", "0I", "0", "X", "0X1", "00X", "0X01Z"} {
		_, err := spins.ParsePauliProduct(bad)
		require.ErrorIs(t, err, spins.ErrFromString, "input %q", bad)
	}

	_, err = spins.ParsePauliProduct("0Q")
	require.ErrorIs(t, err, symbols.ErrUnknownSymbol)
}

func TestPauliProductMul(t *testing.T) {
	x0 := spins.NewPauliProduct().X(0)
	y0 := spins.NewPauliProduct().Y(0)

	prod, phase := x0.Mul(y0)
	require.Equal(t, "0Z", prod.String())
	require.Equal(t, 1i, phase, "XY = iZ")

	prod, phase = y0.Mul(x0)
	require.Equal(t, "0Z", prod.String())
	require.Equal(t, -1i, phase, "YX = -iZ")

	// Disjoint sites concatenate with phase 1.
	z1 := spins.NewPauliProduct().Z(1)
	prod, phase = x0.Mul(z1)
	require.Equal(t, "0X1Z", prod.String())
	require.Equal(t, complex128(1), phase)

	// Same symbol squares to identity.
	prod, phase = x0.Mul(x0)
	require.Equal(t, "I", prod.String())
	require.Equal(t, complex128(1), phase)
}

func TestPauliProductConcatenate(t *testing.T) {
	left := spins.NewPauliProduct().X(0)
	right := spins.NewPauliProduct().Z(1)

	joined, err := left.Concatenate(right)
	require.NoError(t, err)
	want, err := spins.ParsePauliProduct("0X1Z")
	require.NoError(t, err)
	require.True(t, joined.Equal(want), "concatenation must agree with the parsed canonical form")

	_, err = left.Concatenate(spins.NewPauliProduct().Y(0))
	require.ErrorIs(t, err, spins.ErrIndexOccupied)
}

func TestPauliProductRemapQubits(t *testing.T) {
	p := spins.NewPauliProduct().X(0).Z(1)
	swapped, err := p.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	require.Equal(t, "0Z1X", swapped.String())

	// Unmapped indices stay put.
	moved, err := p.RemapQubits(map[int]int{0: 5})
	require.NoError(t, err)
	require.Equal(t, "1Z5X", moved.String())

	_, err = p.RemapQubits(map[int]int{0: 1})
	require.ErrorIs(t, err, spins.ErrIndexOccupied, "remapping 0 onto occupied 1 must fail")
}

func TestPauliProductHermitian(t *testing.T) {
	p := spins.NewPauliProduct().X(0).Y(1).Z(2)
	conj, sign := p.HermitianConjugate()
	require.True(t, conj.Equal(p), "Pauli products are self-adjoint")
	require.Equal(t, 1.0, sign)
	require.True(t, p.IsNaturalHermitian())
}
