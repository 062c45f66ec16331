package spins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/spins"
)

func TestPauliHamiltonianRejectsComplexCoefficients(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	z0 := spins.NewPauliProduct().Z(0)

	require.NoError(t, h.Set(z0, 2))
	require.Equal(t, 2.0, h.Get(z0))

	err := h.Set(z0, 1+1i)
	require.ErrorIs(t, err, spins.ErrNonHermitian)
	err = h.Add(z0, 1i)
	require.ErrorIs(t, err, spins.ErrNonHermitian)

	// Rounding-noise imaginary parts are tolerated and truncated.
	require.NoError(t, h.Add(z0, complex(1, 1e-14)))
	require.Equal(t, 3.0, h.Get(z0))
}

func TestPauliHamiltonianCapacity(t *testing.T) {
	h := spins.NewPauliHamiltonian(spins.WithNumberSpins(1))
	require.NoError(t, h.Set(spins.NewPauliProduct().X(0), 1))
	err := h.Set(spins.NewPauliProduct().X(1), 1)
	require.ErrorIs(t, err, spins.ErrNumberSpinsExceeded)
}

func TestPauliHamiltonianToOperator(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	require.NoError(t, h.Set(spins.NewPauliProduct().Z(0), -0.5))
	require.NoError(t, h.Set(spins.NewPauliProduct().X(0).X(1), 0.25))

	op := h.ToOperator()
	require.Equal(t, 2, op.Len())
	require.Equal(t, complex128(-0.5), op.Get(spins.NewPauliProduct().Z(0)))
	require.Equal(t, complex128(0.25), op.Get(spins.NewPauliProduct().X(0).X(1)))
}

func TestPauliLindbladNoiseOperator(t *testing.T) {
	noise := spins.NewPauliLindbladNoiseOperator()
	left := spins.NewDecoherenceProduct().X(0)
	right := spins.NewDecoherenceProduct().Z(0)

	require.NoError(t, noise.Set(left, right, 0.5i))
	require.Equal(t, 0.5i, noise.Get(left, right))
	require.Equal(t, complex128(0), noise.Get(right, left), "pairs are ordered")

	require.NoError(t, noise.Add(left, right, -0.5i))
	require.Equal(t, 0, noise.Len(), "cancelled rate must vanish")

	require.NoError(t, noise.Set(left, right, 1+2i))
	conj := noise.HermitianConjugate()
	require.Equal(t, 1-2i, conj.Get(right, left), "adjoint swaps the pair and conjugates the rate")
	require.Equal(t, 1, conj.Len())
}

func TestPauliLindbladNoiseCapacity(t *testing.T) {
	noise := spins.NewPauliLindbladNoiseOperator(spins.WithNumberSpins(1))
	wide := spins.NewDecoherenceProduct().X(1)
	err := noise.Set(spins.NewDecoherenceProduct().X(0), wide, 1)
	require.ErrorIs(t, err, spins.ErrNumberSpinsExceeded, "capacity covers both sides of the pair")
}
