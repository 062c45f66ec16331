// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/qualgebra/qualgebra/core"
	"github.com/qualgebra/qualgebra/spins"
	"github.com/qualgebra/qualgebra/symbols"
)

// MaxQubits caps the dimension of any materialized matrix; 2^30 rows is
// already far beyond what a dense or triplet representation can hold.
const MaxQubits = 30

// Triplet is one sparse matrix entry.
type Triplet struct {
	Row int
	Col int
	Val complex128
}

func checkDimension(numberSpins, needed int) error {
	if numberSpins <= 0 {
		return fmt.Errorf("matrix: requested %d qubits: %w", numberSpins, ErrInvalidDimension)
	}
	if numberSpins > MaxQubits {
		return fmt.Errorf("matrix: requested %d qubits: %w", numberSpins, ErrTooManyQubits)
	}
	if needed > numberSpins {
		return fmt.Errorf("matrix: operator touches qubit %d, dimension holds %d: %w",
			needed-1, numberSpins, ErrProductTooWide)
	}
	return nil
}

// ProductTriplets returns the sparse entries of a Pauli product on
// numberSpins qubits. Every column holds exactly one non-zero entry, so
// the result has 2^numberSpins triplets in column order.
// Complexity: O(2^numberSpins · k) for a product on k sites.
func ProductTriplets(p spins.PauliProduct, numberSpins int) ([]Triplet, error) {
	if err := checkDimension(numberSpins, p.CurrentNumberSpins()); err != nil {
		return nil, err
	}
	dim := 1 << numberSpins
	sites := p.Sites()
	out := make([]Triplet, 0, dim)
	for col := 0; col < dim; col++ {
		row, phase := applyProduct(sites, col)
		out = append(out, Triplet{Row: row, Col: col, Val: phase})
	}
	return out, nil
}

// applyProduct computes the image of basis state col under the product:
// the target basis state and the accumulated phase.
func applyProduct(sites []spins.PauliEntry, col int) (int, complex128) {
	row := col
	phase := complex128(1)
	for _, s := range sites {
		bit := (col >> s.Index) & 1
		switch s.Op {
		case symbols.PauliX:
			row ^= 1 << s.Index
		case symbols.PauliY:
			row ^= 1 << s.Index
			if bit == 0 {
				phase *= complex(0, 1)
			} else {
				phase *= complex(0, -1)
			}
		case symbols.PauliZ:
			if bit == 1 {
				phase = -phase
			}
		}
	}
	return row, phase
}

// OperatorTriplets returns the sparse entries of a Pauli operator on
// numberSpins qubits, entries of coinciding positions summed and exact
// zeros dropped. Triplets are ordered by column, then row.
func OperatorTriplets(op *spins.PauliOperator, numberSpins int) ([]Triplet, error) {
	if err := checkDimension(numberSpins, op.CurrentNumberSpins()); err != nil {
		return nil, err
	}
	dim := 1 << numberSpins
	acc := make(map[int]complex128)
	for _, t := range op.Terms() {
		sites := t.Product.Sites()
		for col := 0; col < dim; col++ {
			row, phase := applyProduct(sites, col)
			acc[col*dim+row] += t.Weight * phase
		}
	}
	keys := make([]int, 0, len(acc))
	for k, v := range acc {
		if core.IsZero(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]Triplet, len(keys))
	for i, k := range keys {
		out[i] = Triplet{Row: k % dim, Col: k / dim, Val: acc[k]}
	}
	return out, nil
}

// OperatorMatrix materializes a Pauli operator as a dense complex matrix.
// Complexity: O(|terms| · 2^numberSpins) work on top of the 4^numberSpins
// allocation, since each Pauli term is a generalized permutation.
func OperatorMatrix(op *spins.PauliOperator, numberSpins int) (*mat.CDense, error) {
	triplets, err := OperatorTriplets(op, numberSpins)
	if err != nil {
		return nil, err
	}
	dim := 1 << numberSpins
	dense := mat.NewCDense(dim, dim, nil)
	for _, t := range triplets {
		dense.Set(t.Row, t.Col, t.Val)
	}
	return dense, nil
}

// HamiltonianMatrix materializes a Pauli Hamiltonian; the result is
// Hermitian by construction.
func HamiltonianMatrix(h *spins.PauliHamiltonian, numberSpins int) (*mat.CDense, error) {
	return OperatorMatrix(h.ToOperator(), numberSpins)
}
