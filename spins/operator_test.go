package spins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/core"
	"github.com/qualgebra/qualgebra/spins"
)

func TestPauliOperatorSetAddRemove(t *testing.T) {
	op := spins.NewPauliOperator()
	x0 := spins.NewPauliProduct().X(0)

	require.NoError(t, op.Set(x0, 2))
	require.Equal(t, complex128(2), op.Get(x0))
	require.Equal(t, 1, op.Len())

	require.NoError(t, op.Add(x0, -2))
	require.Equal(t, 0, op.Len(), "cancelled coefficient must vanish")
	require.Equal(t, complex128(0), op.Get(x0))

	require.NoError(t, op.Set(x0, 1))
	op.Remove(x0)
	require.Equal(t, 0, op.Len())
}

func TestPauliOperatorCapacity(t *testing.T) {
	op := spins.NewPauliOperator(spins.WithNumberSpins(2))
	require.Equal(t, 2, op.NumberSpins())

	require.NoError(t, op.Set(spins.NewPauliProduct().Z(1), 1))
	err := op.Set(spins.NewPauliProduct().Z(2), 1)
	require.ErrorIs(t, err, spins.ErrNumberSpinsExceeded, "site 2 needs three spins")

	require.Panics(t, func() { spins.NewPauliOperator(spins.WithNumberSpins(0)) },
		"non-positive capacity is programmer error")
}

func TestPauliOperatorMul(t *testing.T) {
	a := spins.NewPauliOperator()
	require.NoError(t, a.Set(spins.NewPauliProduct().X(0), 2))
	b := spins.NewPauliOperator()
	require.NoError(t, b.Set(spins.NewPauliProduct().Y(0), 3))

	prod := a.Mul(b)
	require.Equal(t, 1, prod.Len())
	require.Equal(t, 6i, prod.Get(spins.NewPauliProduct().Z(0)), "2X · 3Y = 6iZ")

	// Non-commutativity shows in the phase.
	require.Equal(t, -6i, b.Mul(a).Get(spins.NewPauliProduct().Z(0)))

	// Cross terms that cancel disappear from the result.
	c := spins.NewPauliOperator()
	require.NoError(t, c.Set(spins.NewPauliProduct().X(0), 1))
	require.NoError(t, c.Add(spins.NewPauliProduct().Y(0), 1i))
	// (X + iY)(X + iY) = X² - Y² + i(XY + YX) = 0.
	require.Equal(t, 0, c.Mul(c).Len())
}

func TestPauliOperatorHermitianConjugate(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct().X(0), 1i))
	require.NoError(t, op.Add(spins.NewPauliProduct().Z(1), 2))

	conj := op.HermitianConjugate()
	require.Equal(t, -1i, conj.Get(spins.NewPauliProduct().X(0)))
	require.Equal(t, complex128(2), conj.Get(spins.NewPauliProduct().Z(1)))
}

func TestPauliOperatorRemapAndClone(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct().X(0).Z(1), 1))

	swapped, err := op.RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	require.Equal(t, complex128(1), swapped.Get(spins.NewPauliProduct().Z(0).X(1)))

	clone := op.Clone()
	op.Scale(5)
	require.Equal(t, complex128(1), clone.Get(spins.NewPauliProduct().X(0).Z(1)),
		"clone must not see later scaling")
}

func TestPlusMinusOperatorMulBranches(t *testing.T) {
	a := spins.NewPlusMinusOperator()
	require.NoError(t, a.Set(spins.NewPlusMinusProduct().Plus(0), 1))
	b := spins.NewPlusMinusOperator()
	require.NoError(t, b.Set(spins.NewPlusMinusProduct().Minus(0), 1))

	prod := a.Mul(b)
	require.Equal(t, 2, prod.Len())
	require.Equal(t, complex128(2), prod.Get(spins.NewPlusMinusProduct()))
	require.Equal(t, complex128(2), prod.Get(spins.NewPlusMinusProduct().Z(0)))

	// + · + annihilates entirely.
	require.Equal(t, 0, a.Mul(a).Len())
}

func TestPauliOperatorString(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct().X(0), 1))
	require.Equal(t, "{0X: (1+0i)}", op.String())
	require.Equal(t, "{}", spins.NewPauliOperator().String())
}

func TestPauliOperatorAddOperator(t *testing.T) {
	a := spins.NewPauliOperator()
	require.NoError(t, a.Set(spins.NewPauliProduct().X(0), 1))
	b := spins.NewPauliOperator()
	require.NoError(t, b.Set(spins.NewPauliProduct().X(0), -1))
	require.NoError(t, b.Set(spins.NewPauliProduct().Y(0), 1))

	require.NoError(t, a.AddOperator(b))
	require.Equal(t, 1, a.Len())
	require.True(t, core.CloseTo(1, a.Get(spins.NewPauliProduct().Y(0))))
}
