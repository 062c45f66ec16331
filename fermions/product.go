// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"

	"github.com/qualgebra/qualgebra/core"
)

// FermionProduct is an immutable normal-ordered fermionic monomial:
// creator and annihilator mode indices, each strictly ascending.
type FermionProduct struct {
	creators     []int
	annihilators []int
}

// FermionTerm is a FermionProduct with a real weight (fermionic reordering
// only ever contributes signs).
type FermionTerm struct {
	Product FermionProduct
	Weight  float64
}

// NewFermionProduct builds a product from raw index lists, sorting both
// ascending. It fails with ErrDuplicateIndex when either list repeats a
// mode (Pauli exclusion). The sign of sorting is not tracked here: the
// inputs name the normal-ordered monomial directly. Use CreateValidPair
// to fold the reordering sign into a coefficient instead.
func NewFermionProduct(creators, annihilators []int) (FermionProduct, error) {
	c := core.SortedCopy(creators)
	a := core.SortedCopy(annihilators)
	if d, ok := core.FirstDuplicate(c); ok {
		return FermionProduct{}, fmt.Errorf("fermions: creator mode %d: %w", d, ErrDuplicateIndex)
	}
	if d, ok := core.FirstDuplicate(a); ok {
		return FermionProduct{}, fmt.Errorf("fermions: annihilator mode %d: %w", d, ErrDuplicateIndex)
	}
	return FermionProduct{creators: c, annihilators: a}, nil
}

// CreateValidPair normalizes raw index lists to canonical order and folds
// the anticommutation sign of the reordering into value. Fails with
// ErrDuplicateIndex on repeated modes.
func CreateValidPair(creators, annihilators []int, value complex128) (FermionProduct, complex128, error) {
	c, cParity := core.SortCounted(creators)
	a, aParity := core.SortCounted(annihilators)
	if d, ok := core.FirstDuplicate(c); ok {
		return FermionProduct{}, 0, fmt.Errorf("fermions: creator mode %d: %w", d, ErrDuplicateIndex)
	}
	if d, ok := core.FirstDuplicate(a); ok {
		return FermionProduct{}, 0, fmt.Errorf("fermions: annihilator mode %d: %w", d, ErrDuplicateIndex)
	}
	sign := float64(cParity * aParity)
	return FermionProduct{creators: c, annihilators: a}, value * complex(sign, 0), nil
}

// ParseFermionProduct parses the canonical form produced by String, e.g.
// "c0c1a0" or "I". Indices must be strictly ascending within each block;
// anything else wraps ErrFromString.
func ParseFermionProduct(s string) (FermionProduct, error) {
	creators, annihilators, err := core.ParseLadderProduct(s)
	if err != nil {
		return FermionProduct{}, fmt.Errorf("fermions: parse product: %v: %w", err, ErrFromString)
	}
	if !core.IsStrictlyAscending(creators) || !core.IsStrictlyAscending(annihilators) {
		return FermionProduct{}, fmt.Errorf("fermions: parse product %q: indices out of order: %w", s, ErrFromString)
	}
	return FermionProduct{creators: creators, annihilators: annihilators}, nil
}

// Creators returns a copy of the creator index list.
func (p FermionProduct) Creators() []int { return append([]int(nil), p.creators...) }

// Annihilators returns a copy of the annihilator index list.
func (p FermionProduct) Annihilators() []int { return append([]int(nil), p.annihilators...) }

// NumberCreators returns the number of creation operators.
func (p FermionProduct) NumberCreators() int { return len(p.creators) }

// NumberAnnihilators returns the number of annihilation operators.
func (p FermionProduct) NumberAnnihilators() int { return len(p.annihilators) }

// CurrentNumberModes returns the highest referenced mode index + 1, or 0
// for the empty product.
func (p FermionProduct) CurrentNumberModes() int {
	n := 0
	if len(p.creators) > 0 {
		n = p.creators[len(p.creators)-1] + 1
	}
	if len(p.annihilators) > 0 && p.annihilators[len(p.annihilators)-1]+1 > n {
		n = p.annihilators[len(p.annihilators)-1] + 1
	}
	return n
}

// Mul concatenates two fermionic monomials into normal order. The result
// is empty when a creator or annihilator index would repeat (the product
// is algebraically zero); otherwise it is a single term whose sign is the
// parity of the transpositions performed: interleaving the two creator
// blocks, interleaving the two annihilator blocks, and carrying the right
// operand's creators past the left operand's annihilators.
func (p FermionProduct) Mul(o FermionProduct) []FermionTerm {
	creators, cCross := core.MergeSorted(p.creators, o.creators)
	if _, dup := core.FirstDuplicate(creators); dup {
		return nil
	}
	annihilators, aCross := core.MergeSorted(p.annihilators, o.annihilators)
	if _, dup := core.FirstDuplicate(annihilators); dup {
		return nil
	}
	swaps := cCross + aCross + len(p.annihilators)*len(o.creators)
	sign := 1.0
	if swaps%2 == 1 {
		sign = -1.0
	}
	return []FermionTerm{{
		Product: FermionProduct{creators: creators, annihilators: annihilators},
		Weight:  sign,
	}}
}

// HermitianConjugate returns the adjoint: creators and annihilators swap
// and each reversed block is re-sorted ascending, contributing
// (-1)^(n(n-1)/2 + m(m-1)/2) for n creators and m annihilators.
func (p FermionProduct) HermitianConjugate() (FermionProduct, float64) {
	n, m := len(p.creators), len(p.annihilators)
	swaps := n*(n-1)/2 + m*(m-1)/2
	sign := 1.0
	if swaps%2 == 1 {
		sign = -1.0
	}
	return FermionProduct{
		creators:     append([]int(nil), p.annihilators...),
		annihilators: append([]int(nil), p.creators...),
	}, sign
}

// IsNaturalHermitian reports whether the creator and annihilator index
// sets coincide.
func (p FermionProduct) IsNaturalHermitian() bool {
	return core.CompareIndexSlices(p.creators, p.annihilators) == 0
}

// Equal reports canonical equality.
func (p FermionProduct) Equal(o FermionProduct) bool {
	return core.CompareIndexSlices(p.creators, o.creators) == 0 &&
		core.CompareIndexSlices(p.annihilators, o.annihilators) == 0
}

// String returns the canonical form, e.g. "c0c1a0", or "I" for the empty
// product.
func (p FermionProduct) String() string {
	return core.FormatLadderProduct(p.creators, p.annihilators)
}
