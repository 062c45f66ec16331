// Package matrix lowers symbolic qubit operators to numeric matrices in
// the computational basis.
//
// The matrix package provides:
//
//   - ProductTriplets / OperatorTriplets for a sparse (row, col, value)
//     view: a Pauli product touches exactly one entry per column, so a
//     product on n qubits yields 2^n triplets.
//   - OperatorMatrix for a dense gonum *mat.CDense when the dimension is
//     small enough to materialize.
//
// Basis convention is little-endian: qubit i is bit i of the basis-state
// integer, so the state index runs over [0, 2^numberSpins).
//
// Dimensions grow as 2^numberSpins; requests beyond MaxQubits fail with
// ErrTooManyQubits before any allocation.
package matrix
