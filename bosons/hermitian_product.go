// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"

	"github.com/qualgebra/qualgebra/core"
)

// HermitianBosonProduct is a BosonProduct in a canonical orientation: a
// term and its Hermitian conjugate map to the same representative. The
// representative is the orientation whose creator list compares
// lexicographically no greater than its annihilator list; construction
// flips the other orientation onto it.
type HermitianBosonProduct struct {
	inner BosonProduct
}

// HermitianBosonTerm is a HermitianBosonProduct with a complex weight.
type HermitianBosonTerm struct {
	Product HermitianBosonProduct
	Weight  complex128
}

// NewHermitianBosonProduct builds the canonical representative for the
// (creators, annihilators) monomial, conjugating the orientation when
// needed. The flip matters only alongside a coefficient — use
// CreateValidHermitianPair to track it.
func NewHermitianBosonProduct(creators, annihilators []int) HermitianBosonProduct {
	p, _ := CreateValidHermitianPair(creators, annihilators, 1)
	return p
}

// CreateValidHermitianPair normalizes raw index lists to the canonical
// orientation; when the orientation flips, value is conjugated (the stored
// representative is then the adjoint of the requested term).
func CreateValidHermitianPair(creators, annihilators []int, value complex128) (HermitianBosonProduct, complex128) {
	p, v := CreateValidPair(creators, annihilators, value)
	if core.CompareIndexSlices(p.creators, p.annihilators) > 0 {
		conj, _ := p.HermitianConjugate()
		return HermitianBosonProduct{inner: conj}, complex(real(v), -imag(v))
	}
	return HermitianBosonProduct{inner: p}, v
}

// ParseHermitianBosonProduct parses the canonical form; strings naming the
// non-canonical orientation are rejected, since String never produces them.
func ParseHermitianBosonProduct(s string) (HermitianBosonProduct, error) {
	p, err := ParseBosonProduct(s)
	if err != nil {
		return HermitianBosonProduct{}, err
	}
	if core.CompareIndexSlices(p.creators, p.annihilators) > 0 {
		return HermitianBosonProduct{}, fmt.Errorf("bosons: parse hermitian product %q: non-canonical orientation: %w", s, ErrFromString)
	}
	return HermitianBosonProduct{inner: p}, nil
}

// Product returns the underlying canonical BosonProduct.
func (p HermitianBosonProduct) Product() BosonProduct { return p.inner }

// Creators returns a copy of the creator index list.
func (p HermitianBosonProduct) Creators() []int { return p.inner.Creators() }

// Annihilators returns a copy of the annihilator index list.
func (p HermitianBosonProduct) Annihilators() []int { return p.inner.Annihilators() }

// CurrentNumberModes returns the highest referenced mode index + 1.
func (p HermitianBosonProduct) CurrentNumberModes() int { return p.inner.CurrentNumberModes() }

// IsNaturalHermitian reports whether the term is self-adjoint (creator and
// annihilator multisets coincide).
func (p HermitianBosonProduct) IsNaturalHermitian() bool { return p.inner.IsNaturalHermitian() }

// Equal reports canonical equality.
func (p HermitianBosonProduct) Equal(o HermitianBosonProduct) bool { return p.inner.Equal(o.inner) }

// String returns the canonical form of the representative.
func (p HermitianBosonProduct) String() string { return p.inner.String() }
