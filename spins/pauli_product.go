// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/qualgebra/qualgebra/symbols"
)

// PauliProduct is an immutable monomial of Pauli operators: an ascending,
// duplicate-free list of (site index, X/Y/Z) entries. The zero value and
// NewPauliProduct() are the identity product "I".
type PauliProduct struct {
	sites []site[symbols.Pauli]
}

// PauliTerm is a PauliProduct with a complex weight.
type PauliTerm struct {
	Product PauliProduct
	Weight  complex128
}

// PauliEntry is one (site, symbol) entry exposed by Sites.
type PauliEntry struct {
	Index int
	Op    symbols.Pauli
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// ParsePauliProduct parses the canonical form produced by String, e.g.
// "0X1Z" or "I". It rejects duplicate or descending indices, identity
// symbols inside the string, and malformed tokens, wrapping ErrFromString.
func ParsePauliProduct(s string) (PauliProduct, error) {
	sites, err := parseSites(s, symbols.ParsePauli, symbols.Pauli.IsIdentity)
	if err != nil {
		return PauliProduct{}, fmt.Errorf("spins: parse pauli product: %w", err)
	}
	return PauliProduct{sites: sites}, nil
}

// Set returns a product with op at index. Setting PauliI removes the entry.
// Total function: no error path.
func (p PauliProduct) Set(index int, op symbols.Pauli) PauliProduct {
	return PauliProduct{sites: setSite(p.sites, index, op, op.IsIdentity())}
}

// X returns a product with σ_x at index.
func (p PauliProduct) X(index int) PauliProduct { return p.Set(index, symbols.PauliX) }

// Y returns a product with σ_y at index.
func (p PauliProduct) Y(index int) PauliProduct { return p.Set(index, symbols.PauliY) }

// Z returns a product with σ_z at index.
func (p PauliProduct) Z(index int) PauliProduct { return p.Set(index, symbols.PauliZ) }

// Get returns the symbol at index, PauliI when the site is not present.
func (p PauliProduct) Get(index int) symbols.Pauli {
	return getSite(p.sites, index, symbols.PauliI)
}

// Len returns the number of non-identity sites.
func (p PauliProduct) Len() int { return len(p.sites) }

// Sites returns the (index, symbol) entries in ascending index order. The
// iteration order is deterministic and is the contract consumed by the
// matrix builder.
func (p PauliProduct) Sites() []PauliEntry {
	out := make([]PauliEntry, len(p.sites))
	for i, s := range p.sites {
		out[i] = PauliEntry{Index: s.index, Op: s.op}
	}
	return out
}

// CurrentNumberSpins returns the highest site index + 1, or 0 for identity.
func (p PauliProduct) CurrentNumberSpins() int { return currentNumberSpins(p.sites) }

// Mul multiplies two Pauli products site-by-site. The Pauli alphabet is
// closed up to a phase, so the result is a single product and a complex
// prefactor, e.g. Mul(0X, 0Y) = (0Z, i).
func (p PauliProduct) Mul(o PauliProduct) (PauliProduct, complex128) {
	branches := mulSites(p.sites, o.sites,
		func(x, y symbols.Pauli) []weighted[symbols.Pauli] {
			out, w := symbols.MulPauli(x, y)
			return []weighted[symbols.Pauli]{{op: out, w: w}}
		},
		symbols.Pauli.IsIdentity,
	)
	if len(branches) != 1 {
		panic("spins: pauli multiplication must yield exactly one branch")
	}
	return PauliProduct{sites: branches[0].sites}, branches[0].w
}

// HermitianConjugate returns the adjoint and its real prefactor. Pauli
// products are products of self-adjoint symbols at distinct sites, so the
// conjugate is always the product itself with prefactor 1.
func (p PauliProduct) HermitianConjugate() (PauliProduct, float64) {
	conj, sign := conjSites(p.sites, symbols.Pauli.HermitianConjugate)
	return PauliProduct{sites: conj}, sign
}

// IsNaturalHermitian reports whether p equals its own adjoint with
// prefactor +1. True for every Pauli product.
func (p PauliProduct) IsNaturalHermitian() bool {
	conj, sign := p.HermitianConjugate()
	return sign == 1 && conj.Equal(p)
}

// Concatenate merges two products with disjoint site sets, used to build
// multi-site products from independent subsystems. Returns ErrIndexOccupied
// when the operands share a site.
func (p PauliProduct) Concatenate(o PauliProduct) (PauliProduct, error) {
	merged, index, ok := concatSites(p.sites, o.sites)
	if !ok {
		return PauliProduct{}, fmt.Errorf("spins: concatenate at site %d: %w", index, ErrIndexOccupied)
	}
	return PauliProduct{sites: merged}, nil
}

// RemapQubits relabels site indices through mapping; indices absent from the
// mapping keep their label. Returns ErrIndexOccupied when two sites collide.
func (p PauliProduct) RemapQubits(mapping map[int]int) (PauliProduct, error) {
	remapped, index, ok := remapSites(p.sites, mapping)
	if !ok {
		return PauliProduct{}, fmt.Errorf("spins: remap to site %d: %w", index, ErrIndexOccupied)
	}
	return PauliProduct{sites: remapped}, nil
}

// Equal reports canonical equality.
func (p PauliProduct) Equal(o PauliProduct) bool {
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

// String returns the canonical form, e.g. "0X1Z", or "I" for identity.
func (p PauliProduct) String() string { return formatSites(p.sites) }
