package bosons_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/bosons"
)

func TestBosonOperatorContainer(t *testing.T) {
	op := bosons.NewBosonOperator()
	n0 := bosons.NewBosonProduct([]int{0}, []int{0})

	require.NoError(t, op.Set(n0, 2))
	require.Equal(t, complex128(2), op.Get(n0))
	require.NoError(t, op.Add(n0, -2))
	require.Equal(t, 0, op.Len())
}

func TestBosonOperatorCapacity(t *testing.T) {
	op := bosons.NewBosonOperator(bosons.WithNumberModes(2))
	require.NoError(t, op.Set(bosons.NewBosonProduct([]int{1}, nil), 1))
	err := op.Set(bosons.NewBosonProduct([]int{2}, nil), 1)
	require.ErrorIs(t, err, bosons.ErrNumberModesExceeded)
}

func TestBosonOperatorMul(t *testing.T) {
	a := bosons.NewBosonOperator()
	require.NoError(t, a.Set(bosons.NewBosonProduct([]int{0}, nil), 2))
	b := bosons.NewBosonOperator()
	require.NoError(t, b.Set(bosons.NewBosonProduct(nil, []int{1}), 3))

	prod := a.Mul(b)
	require.Equal(t, 1, prod.Len())
	require.Equal(t, complex128(6), prod.Get(bosons.NewBosonProduct([]int{0}, []int{1})))
}

func TestBosonOperatorHermitianConjugate(t *testing.T) {
	op := bosons.NewBosonOperator()
	require.NoError(t, op.Set(bosons.NewBosonProduct([]int{0}, []int{1}), 1i))

	conj := op.HermitianConjugate()
	require.Equal(t, -1i, conj.Get(bosons.NewBosonProduct([]int{1}, []int{0})))
}

func TestBosonHamiltonianHermiticity(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	diag := bosons.NewHermitianBosonProduct([]int{0}, []int{0})

	require.NoError(t, h.Set(diag, 2))
	err := h.Set(diag, 1i)
	require.ErrorIs(t, err, bosons.ErrNonHermitian, "self-adjoint key needs a real coefficient")

	// Off-diagonal keys may carry complex coefficients.
	hop := bosons.NewHermitianBosonProduct([]int{0}, []int{1})
	require.NoError(t, h.Set(hop, 1+1i))
}

func TestBosonHamiltonianToOperator(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	diag := bosons.NewHermitianBosonProduct([]int{0}, []int{0})
	hop := bosons.NewHermitianBosonProduct([]int{0}, []int{1})
	require.NoError(t, h.Set(diag, 2))
	require.NoError(t, h.Set(hop, 1+1i))

	op := h.ToOperator()
	require.Equal(t, 3, op.Len(), "off-diagonal key expands into term plus adjoint")
	require.Equal(t, complex128(2), op.Get(bosons.NewBosonProduct([]int{0}, []int{0})))
	require.Equal(t, 1+1i, op.Get(bosons.NewBosonProduct([]int{0}, []int{1})))
	require.Equal(t, 1-1i, op.Get(bosons.NewBosonProduct([]int{1}, []int{0})))

	// The expansion is exactly self-adjoint.
	conj := op.HermitianConjugate()
	for _, term := range op.Terms() {
		require.Equal(t, term.Weight, conj.Get(term.Product))
	}
}

func TestBosonLindbladNoiseOperator(t *testing.T) {
	noise := bosons.NewBosonLindbladNoiseOperator()
	lower := bosons.NewBosonProduct(nil, []int{0})

	require.NoError(t, noise.Set(lower, lower, 0.1))
	require.Equal(t, complex128(0.1), noise.Get(lower, lower))

	other := bosons.NewBosonProduct(nil, []int{1})
	require.Equal(t, complex128(0), noise.Get(lower, other))
	require.Equal(t, 1, noise.Len())

	noise.Remove(lower, lower)
	require.Equal(t, 0, noise.Len())

	require.NoError(t, noise.Set(lower, other, 1i))
	conj := noise.HermitianConjugate()
	require.Equal(t, -1i, conj.Get(other, lower), "adjoint swaps the pair and conjugates the rate")
}
