// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/bosons"
	"github.com/qualgebra/qualgebra/fermions"
	"github.com/qualgebra/qualgebra/spins"
)

// MixedProduct is an immutable tensor product of one Pauli product per
// spin subsystem, one boson product per boson subsystem and one fermion
// product per fermion subsystem.
type MixedProduct struct {
	spins    []spins.PauliProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// MixedTerm is a MixedProduct with a complex weight.
type MixedTerm struct {
	Product MixedProduct
	Weight  complex128
}

// NewMixedProduct assembles a product from per-subsystem factors. The
// slice lengths fix the arity; the factors are stored verbatim (subsystems
// never interact).
func NewMixedProduct(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedProduct {
	return MixedProduct{
		spins:    append([]spins.PauliProduct(nil), s...),
		bosons:   append([]bosons.BosonProduct(nil), b...),
		fermions: append([]fermions.FermionProduct(nil), f...),
	}
}

// ParseMixedProduct parses the canonical form produced by String: one
// colon-separated token per subsystem, "S..." spin tokens first, then
// "B..." boson tokens, then "F..." fermion tokens, or the literal "I"
// for the product with no subsystems at all.
func ParseMixedProduct(s string) (MixedProduct, error) {
	var p MixedProduct
	if s == "I" {
		return p, nil
	}
	if s == "" {
		return MixedProduct{}, fmt.Errorf("mixed: empty product string: %w", ErrFromString)
	}
	seenBoson, seenFermion := false, false
	for _, tok := range strings.Split(s, ":") {
		if tok == "" {
			return MixedProduct{}, fmt.Errorf("mixed: empty subsystem token in %q: %w", s, ErrFromString)
		}
		switch tok[0] {
		case 'S':
			if seenBoson || seenFermion {
				return MixedProduct{}, fmt.Errorf("mixed: spin token %q out of order: %w", tok, ErrFromString)
			}
			sp, err := spins.ParsePauliProduct(tok[1:])
			if err != nil {
				return MixedProduct{}, fmt.Errorf("mixed: subsystem %q: %w", tok, err)
			}
			p.spins = append(p.spins, sp)
		case 'B':
			if seenFermion {
				return MixedProduct{}, fmt.Errorf("mixed: boson token %q out of order: %w", tok, ErrFromString)
			}
			seenBoson = true
			bp, err := bosons.ParseBosonProduct(tok[1:])
			if err != nil {
				return MixedProduct{}, fmt.Errorf("mixed: subsystem %q: %w", tok, err)
			}
			p.bosons = append(p.bosons, bp)
		case 'F':
			seenFermion = true
			fp, err := fermions.ParseFermionProduct(tok[1:])
			if err != nil {
				return MixedProduct{}, fmt.Errorf("mixed: subsystem %q: %w", tok, err)
			}
			p.fermions = append(p.fermions, fp)
		default:
			return MixedProduct{}, fmt.Errorf("mixed: subsystem token %q: %w", tok, ErrFromString)
		}
	}
	return p, nil
}

// NumberSpinSubsystems returns the number of spin subsystems.
func (p MixedProduct) NumberSpinSubsystems() int { return len(p.spins) }

// NumberBosonSubsystems returns the number of boson subsystems.
func (p MixedProduct) NumberBosonSubsystems() int { return len(p.bosons) }

// NumberFermionSubsystems returns the number of fermion subsystems.
func (p MixedProduct) NumberFermionSubsystems() int { return len(p.fermions) }

// Spins returns a copy of the per-subsystem spin factors.
func (p MixedProduct) Spins() []spins.PauliProduct {
	return append([]spins.PauliProduct(nil), p.spins...)
}

// Bosons returns a copy of the per-subsystem boson factors.
func (p MixedProduct) Bosons() []bosons.BosonProduct {
	return append([]bosons.BosonProduct(nil), p.bosons...)
}

// Fermions returns a copy of the per-subsystem fermion factors.
func (p MixedProduct) Fermions() []fermions.FermionProduct {
	return append([]fermions.FermionProduct(nil), p.fermions...)
}

func (p MixedProduct) sameArity(o MixedProduct) bool {
	return len(p.spins) == len(o.spins) &&
		len(p.bosons) == len(o.bosons) &&
		len(p.fermions) == len(o.fermions)
}

// Mul multiplies two mixed products subsystem-wise. It fails with
// ErrMismatchedSubsystems when the arities differ; the result is a single
// weighted term, or nothing when a fermionic subsystem annihilates.
func (p MixedProduct) Mul(o MixedProduct) ([]MixedTerm, error) {
	if !p.sameArity(o) {
		return nil, fmt.Errorf("mixed: multiply (%d,%d,%d) by (%d,%d,%d): %w",
			len(p.spins), len(p.bosons), len(p.fermions),
			len(o.spins), len(o.bosons), len(o.fermions), ErrMismatchedSubsystems)
	}
	out := MixedProduct{
		spins:    make([]spins.PauliProduct, len(p.spins)),
		bosons:   make([]bosons.BosonProduct, len(p.bosons)),
		fermions: make([]fermions.FermionProduct, len(p.fermions)),
	}
	weight := complex128(1)
	for i := range p.spins {
		prod, phase := p.spins[i].Mul(o.spins[i])
		out.spins[i] = prod
		weight *= phase
	}
	for i := range p.bosons {
		prod, sign := p.bosons[i].Mul(o.bosons[i])
		out.bosons[i] = prod
		weight *= complex(sign, 0)
	}
	for i := range p.fermions {
		branches := p.fermions[i].Mul(o.fermions[i])
		if len(branches) == 0 {
			return nil, nil
		}
		out.fermions[i] = branches[0].Product
		weight *= complex(branches[0].Weight, 0)
	}
	return []MixedTerm{{Product: out, Weight: weight}}, nil
}

// HermitianConjugate conjugates every subsystem factor independently and
// multiplies the resulting real prefactors.
func (p MixedProduct) HermitianConjugate() (MixedProduct, float64) {
	out := MixedProduct{
		spins:    make([]spins.PauliProduct, len(p.spins)),
		bosons:   make([]bosons.BosonProduct, len(p.bosons)),
		fermions: make([]fermions.FermionProduct, len(p.fermions)),
	}
	sign := 1.0
	for i, sp := range p.spins {
		conj, s := sp.HermitianConjugate()
		out.spins[i] = conj
		sign *= s
	}
	for i, bp := range p.bosons {
		conj, s := bp.HermitianConjugate()
		out.bosons[i] = conj
		sign *= s
	}
	for i, fp := range p.fermions {
		conj, s := fp.HermitianConjugate()
		out.fermions[i] = conj
		sign *= s
	}
	return out, sign
}

// IsNaturalHermitian reports whether p equals its own adjoint with
// prefactor +1.
func (p MixedProduct) IsNaturalHermitian() bool {
	conj, sign := p.HermitianConjugate()
	return sign == 1 && conj.Equal(p)
}

// Equal reports canonical equality (including equal arity).
func (p MixedProduct) Equal(o MixedProduct) bool {
	if !p.sameArity(o) {
		return false
	}
	for i := range p.spins {
		if !p.spins[i].Equal(o.spins[i]) {
			return false
		}
	}
	for i := range p.bosons {
		if !p.bosons[i].Equal(o.bosons[i]) {
			return false
		}
	}
	for i := range p.fermions {
		if !p.fermions[i].Equal(o.fermions[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical form, e.g. "S0X1Z:Bc0a1:Fc0a0", or "I"
// for the product with no subsystems.
func (p MixedProduct) String() string {
	if len(p.spins)+len(p.bosons)+len(p.fermions) == 0 {
		return "I"
	}
	tokens := make([]string, 0, len(p.spins)+len(p.bosons)+len(p.fermions))
	for _, sp := range p.spins {
		tokens = append(tokens, "S"+sp.String())
	}
	for _, bp := range p.bosons {
		tokens = append(tokens, "B"+bp.String())
	}
	for _, fp := range p.fermions {
		tokens = append(tokens, "F"+fp.String())
	}
	return strings.Join(tokens, ":")
}
