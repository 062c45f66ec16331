// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/qualgebra/qualgebra/symbols"
)

// DecoherenceProduct is an immutable monomial in the decoherence alphabet
// (X, iY, Z): the natural basis for Lindblad noise operators, where every
// multiplication prefactor is real.
type DecoherenceProduct struct {
	sites []site[symbols.Decoherence]
}

// DecoherenceTerm is a DecoherenceProduct with a complex weight.
type DecoherenceTerm struct {
	Product DecoherenceProduct
	Weight  complex128
}

// DecoherenceEntry is one (site, symbol) entry exposed by Sites.
type DecoherenceEntry struct {
	Index int
	Op    symbols.Decoherence
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// ParseDecoherenceProduct parses the canonical form produced by String,
// e.g. "0X1iY" or "I", wrapping ErrFromString on malformed input.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	sites, err := parseSites(s, symbols.ParseDecoherence, symbols.Decoherence.IsIdentity)
	if err != nil {
		return DecoherenceProduct{}, fmt.Errorf("spins: parse decoherence product: %w", err)
	}
	return DecoherenceProduct{sites: sites}, nil
}

// Set returns a product with op at index; DecoherenceI removes the entry.
func (p DecoherenceProduct) Set(index int, op symbols.Decoherence) DecoherenceProduct {
	return DecoherenceProduct{sites: setSite(p.sites, index, op, op.IsIdentity())}
}

// X returns a product with σ_x at index.
func (p DecoherenceProduct) X(index int) DecoherenceProduct {
	return p.Set(index, symbols.DecoherenceX)
}

// IY returns a product with i·σ_y at index.
func (p DecoherenceProduct) IY(index int) DecoherenceProduct {
	return p.Set(index, symbols.DecoherenceIY)
}

// Z returns a product with σ_z at index.
func (p DecoherenceProduct) Z(index int) DecoherenceProduct {
	return p.Set(index, symbols.DecoherenceZ)
}

// Get returns the symbol at index, DecoherenceI when absent.
func (p DecoherenceProduct) Get(index int) symbols.Decoherence {
	return getSite(p.sites, index, symbols.DecoherenceI)
}

// Len returns the number of non-identity sites.
func (p DecoherenceProduct) Len() int { return len(p.sites) }

// Sites returns the (index, symbol) entries in ascending index order.
func (p DecoherenceProduct) Sites() []DecoherenceEntry {
	out := make([]DecoherenceEntry, len(p.sites))
	for i, s := range p.sites {
		out[i] = DecoherenceEntry{Index: s.index, Op: s.op}
	}
	return out
}

// CurrentNumberSpins returns the highest site index + 1, or 0 for identity.
func (p DecoherenceProduct) CurrentNumberSpins() int { return currentNumberSpins(p.sites) }

// Mul multiplies two decoherence products site-by-site. The decoherence
// alphabet is closed up to a real sign, so the result is a single product
// and a real prefactor.
func (p DecoherenceProduct) Mul(o DecoherenceProduct) (DecoherenceProduct, float64) {
	branches := mulSites(p.sites, o.sites,
		func(x, y symbols.Decoherence) []weighted[symbols.Decoherence] {
			out, sign := symbols.MulDecoherence(x, y)
			return []weighted[symbols.Decoherence]{{op: out, w: complex(sign, 0)}}
		},
		symbols.Decoherence.IsIdentity,
	)
	if len(branches) != 1 {
		panic("spins: decoherence multiplication must yield exactly one branch")
	}
	return DecoherenceProduct{sites: branches[0].sites}, real(branches[0].w)
}

// HermitianConjugate returns the adjoint and its real prefactor: each iY
// site contributes -1, X and Z sites contribute +1.
func (p DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, float64) {
	conj, sign := conjSites(p.sites, symbols.Decoherence.HermitianConjugate)
	return DecoherenceProduct{sites: conj}, sign
}

// IsNaturalHermitian reports whether p equals its own adjoint with
// prefactor +1, i.e. whether the number of iY sites is even.
func (p DecoherenceProduct) IsNaturalHermitian() bool {
	conj, sign := p.HermitianConjugate()
	return sign == 1 && conj.Equal(p)
}

// Concatenate merges two products with disjoint site sets; ErrIndexOccupied
// on collision.
func (p DecoherenceProduct) Concatenate(o DecoherenceProduct) (DecoherenceProduct, error) {
	merged, index, ok := concatSites(p.sites, o.sites)
	if !ok {
		return DecoherenceProduct{}, fmt.Errorf("spins: concatenate at site %d: %w", index, ErrIndexOccupied)
	}
	return DecoherenceProduct{sites: merged}, nil
}

// RemapQubits relabels site indices through mapping; ErrIndexOccupied when
// two sites collide.
func (p DecoherenceProduct) RemapQubits(mapping map[int]int) (DecoherenceProduct, error) {
	remapped, index, ok := remapSites(p.sites, mapping)
	if !ok {
		return DecoherenceProduct{}, fmt.Errorf("spins: remap to site %d: %w", index, ErrIndexOccupied)
	}
	return DecoherenceProduct{sites: remapped}, nil
}

// Equal reports canonical equality.
func (p DecoherenceProduct) Equal(o DecoherenceProduct) bool {
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

// String returns the canonical form, e.g. "0X1iY", or "I" for identity.
func (p DecoherenceProduct) String() string { return formatSites(p.sites) }
