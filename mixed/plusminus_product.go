// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/bosons"
	"github.com/qualgebra/qualgebra/fermions"
	"github.com/qualgebra/qualgebra/spins"
)

// MixedPlusMinusProduct is a MixedProduct whose spin subsystems are
// expressed in the plus-minus alphabet instead of Pauli. Boson and fermion
// subsystems are unchanged.
type MixedPlusMinusProduct struct {
	spins    []spins.PlusMinusProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// MixedPlusMinusTerm is a MixedPlusMinusProduct with a complex weight.
type MixedPlusMinusTerm struct {
	Product MixedPlusMinusProduct
	Weight  complex128
}

// NewMixedPlusMinusProduct assembles a product from per-subsystem factors.
func NewMixedPlusMinusProduct(s []spins.PlusMinusProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedPlusMinusProduct {
	return MixedPlusMinusProduct{
		spins:    append([]spins.PlusMinusProduct(nil), s...),
		bosons:   append([]bosons.BosonProduct(nil), b...),
		fermions: append([]fermions.FermionProduct(nil), f...),
	}
}

// NumberSpinSubsystems returns the number of spin subsystems.
func (p MixedPlusMinusProduct) NumberSpinSubsystems() int { return len(p.spins) }

// NumberBosonSubsystems returns the number of boson subsystems.
func (p MixedPlusMinusProduct) NumberBosonSubsystems() int { return len(p.bosons) }

// NumberFermionSubsystems returns the number of fermion subsystems.
func (p MixedPlusMinusProduct) NumberFermionSubsystems() int { return len(p.fermions) }

// Spins returns a copy of the per-subsystem spin factors.
func (p MixedPlusMinusProduct) Spins() []spins.PlusMinusProduct {
	return append([]spins.PlusMinusProduct(nil), p.spins...)
}

// Bosons returns a copy of the per-subsystem boson factors.
func (p MixedPlusMinusProduct) Bosons() []bosons.BosonProduct {
	return append([]bosons.BosonProduct(nil), p.bosons...)
}

// Fermions returns a copy of the per-subsystem fermion factors.
func (p MixedPlusMinusProduct) Fermions() []fermions.FermionProduct {
	return append([]fermions.FermionProduct(nil), p.fermions...)
}

func (p MixedPlusMinusProduct) sameArity(o MixedPlusMinusProduct) bool {
	return len(p.spins) == len(o.spins) &&
		len(p.bosons) == len(o.bosons) &&
		len(p.fermions) == len(o.fermions)
}

// Mul multiplies two mixed plus-minus products subsystem-wise. Spin
// subsystems may branch (crossed +/- pairs) or annihilate, so the result
// is the Cartesian product of the per-subsystem branch lists.
func (p MixedPlusMinusProduct) Mul(o MixedPlusMinusProduct) ([]MixedPlusMinusTerm, error) {
	if !p.sameArity(o) {
		return nil, fmt.Errorf("mixed: multiply (%d,%d,%d) by (%d,%d,%d): %w",
			len(p.spins), len(p.bosons), len(p.fermions),
			len(o.spins), len(o.bosons), len(o.fermions), ErrMismatchedSubsystems)
	}
	base := MixedPlusMinusProduct{
		spins:    make([]spins.PlusMinusProduct, len(p.spins)),
		bosons:   make([]bosons.BosonProduct, len(p.bosons)),
		fermions: make([]fermions.FermionProduct, len(p.fermions)),
	}
	weight := complex128(1)
	for i := range p.bosons {
		prod, sign := p.bosons[i].Mul(o.bosons[i])
		base.bosons[i] = prod
		weight *= complex(sign, 0)
	}
	for i := range p.fermions {
		branches := p.fermions[i].Mul(o.fermions[i])
		if len(branches) == 0 {
			return nil, nil
		}
		base.fermions[i] = branches[0].Product
		weight *= complex(branches[0].Weight, 0)
	}

	partials := []MixedPlusMinusTerm{{Product: base, Weight: weight}}
	for i := range p.spins {
		branches := p.spins[i].Mul(o.spins[i])
		if len(branches) == 0 {
			return nil, nil
		}
		next := make([]MixedPlusMinusTerm, 0, len(partials)*len(branches))
		for _, part := range partials {
			for _, br := range branches {
				prod := part.Product
				ns := append([]spins.PlusMinusProduct(nil), prod.spins...)
				ns[i] = br.Product
				prod.spins = ns
				next = append(next, MixedPlusMinusTerm{Product: prod, Weight: part.Weight * br.Weight})
			}
		}
		partials = next
	}
	return partials, nil
}

// HermitianConjugate conjugates every subsystem factor independently and
// multiplies the resulting real prefactors.
func (p MixedPlusMinusProduct) HermitianConjugate() (MixedPlusMinusProduct, float64) {
	out := MixedPlusMinusProduct{
		spins:    make([]spins.PlusMinusProduct, len(p.spins)),
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

// Equal reports canonical equality (including equal arity).
func (p MixedPlusMinusProduct) Equal(o MixedPlusMinusProduct) bool {
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

// String returns the canonical form, e.g. "S0+2Z:Bc0a1:Fc0a0".
func (p MixedPlusMinusProduct) String() string {
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

// ToPlusMinus re-expresses a Pauli-based mixed product in the plus-minus
// alphabet: the Cartesian product of the per-subsystem spin expansions,
// weights multiplied through.
func (p MixedProduct) ToPlusMinus() []MixedPlusMinusTerm {
	partials := []MixedPlusMinusTerm{{
		Product: MixedPlusMinusProduct{
			spins:    make([]spins.PlusMinusProduct, len(p.spins)),
			bosons:   p.Bosons(),
			fermions: p.Fermions(),
		},
		Weight: 1,
	}}
	for i, sp := range p.spins {
		branches := spins.PauliProductToPlusMinus(sp)
		next := make([]MixedPlusMinusTerm, 0, len(partials)*len(branches))
		for _, part := range partials {
			for _, br := range branches {
				prod := part.Product
				ns := append([]spins.PlusMinusProduct(nil), prod.spins...)
				ns[i] = br.Product
				prod.spins = ns
				next = append(next, MixedPlusMinusTerm{Product: prod, Weight: part.Weight * br.Weight})
			}
		}
		partials = next
	}
	return partials
}

// ToPauli re-expresses a plus-minus mixed product in the Pauli alphabet:
// the Cartesian product of the per-subsystem spin expansions. Terms
// normal-ordering to the same Pauli-based product must be summed by the
// caller when extending linearly over operators.
func (p MixedPlusMinusProduct) ToPauli() []MixedTerm {
	partials := []MixedTerm{{
		Product: MixedProduct{
			spins:    make([]spins.PauliProduct, len(p.spins)),
			bosons:   p.Bosons(),
			fermions: p.Fermions(),
		},
		Weight: 1,
	}}
	for i, sp := range p.spins {
		branches := spins.PlusMinusProductToPauli(sp)
		next := make([]MixedTerm, 0, len(partials)*len(branches))
		for _, part := range partials {
			for _, br := range branches {
				prod := part.Product
				ns := append([]spins.PauliProduct(nil), prod.spins...)
				ns[i] = br.Product
				prod.spins = ns
				next = append(next, MixedTerm{Product: prod, Weight: part.Weight * br.Weight})
			}
		}
		partials = next
	}
	return partials
}
