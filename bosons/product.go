// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"

	"github.com/qualgebra/qualgebra/core"
)

// BosonProduct is an immutable normal-ordered bosonic monomial: creator
// mode indices and annihilator mode indices, each sorted ascending,
// repeats allowed.
type BosonProduct struct {
	creators     []int
	annihilators []int
}

// BosonTerm is a BosonProduct with a complex weight.
type BosonTerm struct {
	Product BosonProduct
	Weight  complex128
}

// NewBosonProduct builds a product from raw index lists, sorting both
// ascending. Bosonic construction is total: repeats are physical and
// reordering carries no sign.
func NewBosonProduct(creators, annihilators []int) BosonProduct {
	return BosonProduct{
		creators:     core.SortedCopy(creators),
		annihilators: core.SortedCopy(annihilators),
	}
}

// CreateValidPair normalizes raw index lists to canonical order and folds
// the reordering bookkeeping into value. For bosons the reordering is free,
// so the value passes through unchanged; the signature mirrors the
// fermionic variant.
func CreateValidPair(creators, annihilators []int, value complex128) (BosonProduct, complex128) {
	return NewBosonProduct(creators, annihilators), value
}

// ParseBosonProduct parses the canonical form produced by String, e.g.
// "c0c1a0" or "I". Indices must be non-decreasing within each block;
// anything else wraps ErrFromString.
func ParseBosonProduct(s string) (BosonProduct, error) {
	creators, annihilators, err := core.ParseLadderProduct(s)
	if err != nil {
		return BosonProduct{}, fmt.Errorf("bosons: parse product: %v: %w", err, ErrFromString)
	}
	if !core.IsAscending(creators) || !core.IsAscending(annihilators) {
		return BosonProduct{}, fmt.Errorf("bosons: parse product %q: indices out of order: %w", s, ErrFromString)
	}
	return BosonProduct{creators: creators, annihilators: annihilators}, nil
}

// Creators returns a copy of the creator index list.
func (p BosonProduct) Creators() []int { return append([]int(nil), p.creators...) }

// Annihilators returns a copy of the annihilator index list.
func (p BosonProduct) Annihilators() []int { return append([]int(nil), p.annihilators...) }

// NumberCreators returns the number of creation operators.
func (p BosonProduct) NumberCreators() int { return len(p.creators) }

// NumberAnnihilators returns the number of annihilation operators.
func (p BosonProduct) NumberAnnihilators() int { return len(p.annihilators) }

// CurrentNumberModes returns the highest referenced mode index + 1, or 0
// for the empty product.
func (p BosonProduct) CurrentNumberModes() int {
	n := 0
	if len(p.creators) > 0 {
		n = p.creators[len(p.creators)-1] + 1
	}
	if len(p.annihilators) > 0 && p.annihilators[len(p.annihilators)-1]+1 > n {
		n = p.annihilators[len(p.annihilators)-1] + 1
	}
	return n
}

// Mul concatenates two bosonic monomials into normal order: creator lists
// merge, annihilator lists merge, prefactor is always 1.
func (p BosonProduct) Mul(o BosonProduct) (BosonProduct, float64) {
	creators, _ := core.MergeSorted(p.creators, o.creators)
	annihilators, _ := core.MergeSorted(p.annihilators, o.annihilators)
	return BosonProduct{creators: creators, annihilators: annihilators}, 1
}

// HermitianConjugate returns the adjoint: creators and annihilators swap,
// prefactor 1 (bosonic reversal is free).
func (p BosonProduct) HermitianConjugate() (BosonProduct, float64) {
	return BosonProduct{
		creators:     append([]int(nil), p.annihilators...),
		annihilators: append([]int(nil), p.creators...),
	}, 1
}

// IsNaturalHermitian reports whether p equals its own adjoint, i.e. the
// creator and annihilator multisets coincide.
func (p BosonProduct) IsNaturalHermitian() bool {
	return core.CompareIndexSlices(p.creators, p.annihilators) == 0
}

// Equal reports canonical equality.
func (p BosonProduct) Equal(o BosonProduct) bool {
	return core.CompareIndexSlices(p.creators, o.creators) == 0 &&
		core.CompareIndexSlices(p.annihilators, o.annihilators) == 0
}

// String returns the canonical form, e.g. "c0c1a0", or "I" for the empty
// product.
func (p BosonProduct) String() string {
	return core.FormatLadderProduct(p.creators, p.annihilators)
}
