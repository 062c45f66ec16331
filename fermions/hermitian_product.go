// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"

	"github.com/qualgebra/qualgebra/core"
)

// HermitianFermionProduct is a FermionProduct in a canonical orientation: a
// term and its Hermitian conjugate map to the same representative (the
// orientation whose creator list compares lexicographically no greater than
// its annihilator list).
type HermitianFermionProduct struct {
	inner FermionProduct
}

// HermitianFermionTerm is a HermitianFermionProduct with a complex weight.
type HermitianFermionTerm struct {
	Product HermitianFermionProduct
	Weight  complex128
}

// NewHermitianFermionProduct builds the canonical representative for the
// (creators, annihilators) monomial, conjugating the orientation when
// needed. Fails with ErrDuplicateIndex on repeated modes. The flip's sign
// and conjugation matter only alongside a coefficient — use
// CreateValidHermitianPair to track them.
func NewHermitianFermionProduct(creators, annihilators []int) (HermitianFermionProduct, error) {
	p, _, err := CreateValidHermitianPair(creators, annihilators, 1)
	return p, err
}

// CreateValidHermitianPair normalizes raw index lists to the canonical
// orientation, folding both the sorting parity and — when the orientation
// flips — the conjugation sign into value, which is also complex-conjugated
// on a flip.
func CreateValidHermitianPair(creators, annihilators []int, value complex128) (HermitianFermionProduct, complex128, error) {
	p, v, err := CreateValidPair(creators, annihilators, value)
	if err != nil {
		return HermitianFermionProduct{}, 0, err
	}
	if core.CompareIndexSlices(p.creators, p.annihilators) > 0 {
		conj, sign := p.HermitianConjugate()
		return HermitianFermionProduct{inner: conj}, complex(sign, 0) * complex(real(v), -imag(v)), nil
	}
	return HermitianFermionProduct{inner: p}, v, nil
}

// ParseHermitianFermionProduct parses the canonical form; strings naming
// the non-canonical orientation are rejected, since String never produces
// them.
func ParseHermitianFermionProduct(s string) (HermitianFermionProduct, error) {
	p, err := ParseFermionProduct(s)
	if err != nil {
		return HermitianFermionProduct{}, err
	}
	if core.CompareIndexSlices(p.creators, p.annihilators) > 0 {
		return HermitianFermionProduct{}, fmt.Errorf("fermions: parse hermitian product %q: non-canonical orientation: %w", s, ErrFromString)
	}
	return HermitianFermionProduct{inner: p}, nil
}

// Product returns the underlying canonical FermionProduct.
func (p HermitianFermionProduct) Product() FermionProduct { return p.inner }

// Creators returns a copy of the creator index list.
func (p HermitianFermionProduct) Creators() []int { return p.inner.Creators() }

// Annihilators returns a copy of the annihilator index list.
func (p HermitianFermionProduct) Annihilators() []int { return p.inner.Annihilators() }

// CurrentNumberModes returns the highest referenced mode index + 1.
func (p HermitianFermionProduct) CurrentNumberModes() int { return p.inner.CurrentNumberModes() }

// IsNaturalHermitian reports whether the term is self-adjoint.
func (p HermitianFermionProduct) IsNaturalHermitian() bool { return p.inner.IsNaturalHermitian() }

// Equal reports canonical equality.
func (p HermitianFermionProduct) Equal(o HermitianFermionProduct) bool {
	return p.inner.Equal(o.inner)
}

// String returns the canonical form of the representative.
func (p HermitianFermionProduct) String() string { return p.inner.String() }
