// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/qualgebra/qualgebra/symbols"
)

// PlusMinusProduct is an immutable monomial in the plus-minus alphabet
// (+, -, Z). Unlike the Pauli and decoherence alphabets, multiplication can
// branch: crossed +/- pairs at a shared site split over I and Z, and
// nilpotent pairs (+·+, -·-) annihilate the whole product.
type PlusMinusProduct struct {
	sites []site[symbols.PlusMinus]
}

// PlusMinusTerm is a PlusMinusProduct with a complex weight.
type PlusMinusTerm struct {
	Product PlusMinusProduct
	Weight  complex128
}

// PlusMinusEntry is one (site, symbol) entry exposed by Sites.
type PlusMinusEntry struct {
	Index int
	Op    symbols.PlusMinus
}

// NewPlusMinusProduct returns the identity product.
func NewPlusMinusProduct() PlusMinusProduct { return PlusMinusProduct{} }

// ParsePlusMinusProduct parses the canonical form produced by String, e.g.
// "0+2Z" or "I", wrapping ErrFromString on malformed input.
func ParsePlusMinusProduct(s string) (PlusMinusProduct, error) {
	sites, err := parseSites(s, symbols.ParsePlusMinus, symbols.PlusMinus.IsIdentity)
	if err != nil {
		return PlusMinusProduct{}, fmt.Errorf("spins: parse plus-minus product: %w", err)
	}
	return PlusMinusProduct{sites: sites}, nil
}

// Set returns a product with op at index; PlusMinusI removes the entry.
func (p PlusMinusProduct) Set(index int, op symbols.PlusMinus) PlusMinusProduct {
	return PlusMinusProduct{sites: setSite(p.sites, index, op, op.IsIdentity())}
}

// Plus returns a product with the raising operator at index.
func (p PlusMinusProduct) Plus(index int) PlusMinusProduct {
	return p.Set(index, symbols.PlusMinusPlus)
}

// Minus returns a product with the lowering operator at index.
func (p PlusMinusProduct) Minus(index int) PlusMinusProduct {
	return p.Set(index, symbols.PlusMinusMinus)
}

// Z returns a product with σ_z at index.
func (p PlusMinusProduct) Z(index int) PlusMinusProduct {
	return p.Set(index, symbols.PlusMinusZ)
}

// Get returns the symbol at index, PlusMinusI when absent.
func (p PlusMinusProduct) Get(index int) symbols.PlusMinus {
	return getSite(p.sites, index, symbols.PlusMinusI)
}

// Len returns the number of non-identity sites.
func (p PlusMinusProduct) Len() int { return len(p.sites) }

// Sites returns the (index, symbol) entries in ascending index order.
func (p PlusMinusProduct) Sites() []PlusMinusEntry {
	out := make([]PlusMinusEntry, len(p.sites))
	for i, s := range p.sites {
		out[i] = PlusMinusEntry{Index: s.index, Op: s.op}
	}
	return out
}

// CurrentNumberSpins returns the highest site index + 1, or 0 for identity.
func (p PlusMinusProduct) CurrentNumberSpins() int { return currentNumberSpins(p.sites) }

// Mul multiplies two plus-minus products site-by-site, returning the
// weighted branches. The list is empty when a nilpotent pair annihilates
// the product (e.g. 0+ · 0+), and grows by a factor of two for every
// crossed +/- pair at a shared site.
func (p PlusMinusProduct) Mul(o PlusMinusProduct) []PlusMinusTerm {
	branches := mulSites(p.sites, o.sites,
		func(x, y symbols.PlusMinus) []weighted[symbols.PlusMinus] {
			opts := symbols.MulPlusMinus(x, y)
			out := make([]weighted[symbols.PlusMinus], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.PlusMinus]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.PlusMinus.IsIdentity,
	)
	out := make([]PlusMinusTerm, len(branches))
	for i, br := range branches {
		out[i] = PlusMinusTerm{Product: PlusMinusProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}

// HermitianConjugate returns the adjoint and its real prefactor: + and -
// swap at every site, Z is self-adjoint, prefactor is always 1.
func (p PlusMinusProduct) HermitianConjugate() (PlusMinusProduct, float64) {
	conj, sign := conjSites(p.sites, symbols.PlusMinus.HermitianConjugate)
	return PlusMinusProduct{sites: conj}, sign
}

// IsNaturalHermitian reports whether p equals its own adjoint with
// prefactor +1, i.e. whether p contains no + or - site.
func (p PlusMinusProduct) IsNaturalHermitian() bool {
	conj, sign := p.HermitianConjugate()
	return sign == 1 && conj.Equal(p)
}

// Concatenate merges two products with disjoint site sets; ErrIndexOccupied
// on collision.
func (p PlusMinusProduct) Concatenate(o PlusMinusProduct) (PlusMinusProduct, error) {
	merged, index, ok := concatSites(p.sites, o.sites)
	if !ok {
		return PlusMinusProduct{}, fmt.Errorf("spins: concatenate at site %d: %w", index, ErrIndexOccupied)
	}
	return PlusMinusProduct{sites: merged}, nil
}

// RemapQubits relabels site indices through mapping; ErrIndexOccupied when
// two sites collide.
func (p PlusMinusProduct) RemapQubits(mapping map[int]int) (PlusMinusProduct, error) {
	remapped, index, ok := remapSites(p.sites, mapping)
	if !ok {
		return PlusMinusProduct{}, fmt.Errorf("spins: remap to site %d: %w", index, ErrIndexOccupied)
	}
	return PlusMinusProduct{sites: remapped}, nil
}

// Equal reports canonical equality.
func (p PlusMinusProduct) Equal(o PlusMinusProduct) bool {
	if len(p.sites) != len(o.sites) {
		return false
	}
	for i := range p.sites {
		if p.sites[i] != o.sites[i] {
			return false
		}
	}
	return true
}

// String returns the canonical form, e.g. "0+2Z", or "I" for identity.
func (p PlusMinusProduct) String() string { return formatSites(p.sites) }
