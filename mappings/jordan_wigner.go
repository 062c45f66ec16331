// SPDX-License-Identifier: MIT

package mappings

import (
	"fmt"

	"github.com/qualgebra/qualgebra/fermions"
	"github.com/qualgebra/qualgebra/spins"
)

// jwFactor builds the plus-minus image of a single ladder operator on mode
// index: a Z string on all lower modes, a raising or lowering symbol on
// the mode itself, and an overall weight of one half.
func jwFactor(index int, creator bool) spins.PlusMinusTerm {
	p := spins.NewPlusMinusProduct()
	for site := 0; site < index; site++ {
		p = p.Z(site)
	}
	if creator {
		p = p.Minus(index)
	} else {
		p = p.Plus(index)
	}
	return spins.PlusMinusTerm{Product: p, Weight: 0.5}
}

// JordanWignerProduct maps a normal-ordered fermionic product to a qubit
// operator: the ordered product of the per-ladder-operator images, expanded
// back to the Pauli basis. Complexity: O(k) operator multiplications for a
// product of k ladder operators, each at most doubling the term count.
func JordanWignerProduct(p fermions.FermionProduct) *spins.PauliOperator {
	acc := spins.NewPlusMinusOperator()
	// Identity image; multiplication folds the ladder factors in from the
	// right, creators first, matching the normal-ordered key.
	_ = acc.Set(spins.NewPlusMinusProduct(), 1)
	for _, index := range p.Creators() {
		acc = mulTerm(acc, jwFactor(index, true))
	}
	for _, index := range p.Annihilators() {
		acc = mulTerm(acc, jwFactor(index, false))
	}
	return spins.PlusMinusOperatorToPauli(acc)
}

// mulTerm multiplies acc on the right by a single weighted product.
func mulTerm(acc *spins.PlusMinusOperator, factor spins.PlusMinusTerm) *spins.PlusMinusOperator {
	rhs := spins.NewPlusMinusOperator()
	_ = rhs.Set(factor.Product, factor.Weight)
	return acc.Mul(rhs)
}

// JordanWignerOperator maps a fermionic operator linearly: every stored
// term is mapped by JordanWignerProduct and scaled by its coefficient.
func JordanWignerOperator(op *fermions.FermionOperator) *spins.PauliOperator {
	out := spins.NewPauliOperator()
	for _, t := range op.Terms() {
		image := JordanWignerProduct(t.Product)
		image.Scale(t.Weight)
		_ = out.AddOperator(image)
	}
	return out
}

// JordanWignerHamiltonian maps a fermionic Hamiltonian to a qubit
// Hamiltonian. The transform preserves Hermiticity, so every image
// coefficient is real up to numerical tolerance; a genuinely non-real
// image coefficient is reported as the wrapped spins error.
func JordanWignerHamiltonian(h *fermions.FermionHamiltonian) (*spins.PauliHamiltonian, error) {
	image := JordanWignerOperator(h.ToOperator())
	out := spins.NewPauliHamiltonian()
	for _, t := range image.Terms() {
		if err := out.Add(t.Product, t.Weight); err != nil {
			return nil, fmt.Errorf("mappings: Jordan-Wigner image of %s: %w", h, err)
		}
	}
	return out, nil
}

// JordanWignerNoise maps a fermionic Lindblad noise operator to a qubit
// noise operator. Each stored pair (L, R) with rate g contributes
// g·w·conj(v) to the decoherence pair (dL, dR) for every decoherence image
// term w·dL of L and v·dR of R.
func JordanWignerNoise(op *fermions.FermionLindbladNoiseOperator) *spins.PauliLindbladNoiseOperator {
	out := spins.NewPauliLindbladNoiseOperator()
	for _, t := range op.Terms() {
		left := decoherenceImage(t.Left)
		right := decoherenceImage(t.Right)
		for _, l := range left {
			for _, r := range right {
				w := t.Weight * l.Weight * complex(real(r.Weight), -imag(r.Weight))
				_ = out.Add(l.Product, r.Product, w)
			}
		}
	}
	return out
}

// decoherenceImage maps a fermionic product through Jordan-Wigner and
// re-expresses the resulting Pauli terms in the decoherence alphabet.
func decoherenceImage(p fermions.FermionProduct) []spins.DecoherenceTerm {
	var out []spins.DecoherenceTerm
	for _, t := range JordanWignerProduct(p).Terms() {
		for _, d := range spins.PauliProductToDecoherence(t.Product) {
			out = append(out, spins.DecoherenceTerm{Product: d.Product, Weight: t.Weight * d.Weight})
		}
	}
	return out
}
