package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/matrix"
	"github.com/qualgebra/qualgebra/spins"
)

func TestProductTripletsSingleQubit(t *testing.T) {
	// Z = diag(1, -1).
	triplets, err := matrix.ProductTriplets(spins.NewPauliProduct().Z(0), 1)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: -1},
	}, triplets)

	// X flips the basis state.
	triplets, err = matrix.ProductTriplets(spins.NewPauliProduct().X(0), 1)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{
		{Row: 1, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 1},
	}, triplets)

	// Y = [[0, -i], [i, 0]].
	triplets, err = matrix.ProductTriplets(spins.NewPauliProduct().Y(0), 1)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{
		{Row: 1, Col: 0, Val: 1i},
		{Row: 0, Col: 1, Val: -1i},
	}, triplets)
}

func TestProductTripletsTwoQubits(t *testing.T) {
	// X0 Z1 on two qubits, little-endian: entry for column c sits at row
	// c^1 with sign (-1)^(bit 1 of c).
	triplets, err := matrix.ProductTriplets(spins.NewPauliProduct().X(0).Z(1), 2)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{
		{Row: 1, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 1},
		{Row: 3, Col: 2, Val: -1},
		{Row: 2, Col: 3, Val: -1},
	}, triplets)
}

func TestOperatorTripletsMergesAndDrops(t *testing.T) {
	// I - Z0 has no entry for basis state 0 and weight 2 for state 1.
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct(), 1))
	require.NoError(t, op.Add(spins.NewPauliProduct().Z(0), -1))

	triplets, err := matrix.OperatorTriplets(op, 1)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{{Row: 1, Col: 1, Val: 2}}, triplets)
}

func TestOperatorMatrixDense(t *testing.T) {
	// The qubit number operator (I - Z0)/2 = diag(0, 1).
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct(), 0.5))
	require.NoError(t, op.Add(spins.NewPauliProduct().Z(0), -0.5))

	dense, err := matrix.OperatorMatrix(op, 1)
	require.NoError(t, err)
	r, c := dense.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, complex128(0), dense.At(0, 0))
	require.Equal(t, complex128(1), dense.At(1, 1))
	require.Equal(t, complex128(0), dense.At(0, 1))
}

func TestHamiltonianMatrixHermitian(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	require.NoError(t, h.Set(spins.NewPauliProduct().Y(0), 1))

	dense, err := matrix.HamiltonianMatrix(h, 1)
	require.NoError(t, err)
	require.Equal(t, -1i, dense.At(0, 1))
	require.Equal(t, 1i, dense.At(1, 0))
}

func TestMatrixDimensionErrors(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct().X(3), 1))

	_, err := matrix.OperatorTriplets(op, 2)
	require.ErrorIs(t, err, matrix.ErrProductTooWide, "qubit 3 does not fit in 2")

	_, err = matrix.OperatorTriplets(op, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.OperatorTriplets(op, matrix.MaxQubits+1)
	require.ErrorIs(t, err, matrix.ErrTooManyQubits)

	_, err = matrix.ProductTriplets(spins.NewPauliProduct().X(0), 40)
	require.ErrorIs(t, err, matrix.ErrTooManyQubits)
}
