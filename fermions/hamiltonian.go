// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// FermionHamiltonian is a Hermitian weighted sum of fermionic terms, keyed
// by the Hermitian product variant. Self-adjoint keys must carry a real
// coefficient; off-diagonal keys implicitly stand for
// coefficient·key + conjugate(coefficient)·key†.
type FermionHamiltonian struct {
	terms       *core.Coefficients[HermitianFermionProduct]
	numberModes int
}

// NewFermionHamiltonian returns an empty Hamiltonian.
func NewFermionHamiltonian(opts ...OperatorOption) *FermionHamiltonian {
	cfg := gatherOperatorOptions(opts)
	return &FermionHamiltonian{terms: core.NewCoefficients[HermitianFermionProduct](), numberModes: cfg.numberModes}
}

func (h *FermionHamiltonian) check(p HermitianFermionProduct, value complex128) error {
	if p.IsNaturalHermitian() && !core.IsReal(value) {
		return fmt.Errorf("fermions: coefficient %v for self-adjoint key %s: %w",
			value, p, ErrNonHermitian)
	}
	return checkModes(h.numberModes, p.CurrentNumberModes(), "product")
}

// NumberModes returns the declared capacity, or 0 when unbounded.
func (h *FermionHamiltonian) NumberModes() int { return h.numberModes }

// Set stores value for p; zero removes the entry. Fails with
// ErrNonHermitian when a self-adjoint key receives a non-real value.
func (h *FermionHamiltonian) Set(p HermitianFermionProduct, value complex128) error {
	if err := h.check(p, value); err != nil {
		return err
	}
	h.terms.Set(p, value)
	return nil
}

// Add sums value into the coefficient of p under the same Hermiticity rule.
func (h *FermionHamiltonian) Add(p HermitianFermionProduct, value complex128) error {
	if err := h.check(p, value); err != nil {
		return err
	}
	h.terms.Add(p, value)
	return nil
}

// Get returns the coefficient of p, zero when absent.
func (h *FermionHamiltonian) Get(p HermitianFermionProduct) complex128 { return h.terms.Get(p) }

// Remove deletes the entry for p.
func (h *FermionHamiltonian) Remove(p HermitianFermionProduct) { h.terms.Remove(p) }

// Len returns the number of stored terms.
func (h *FermionHamiltonian) Len() int { return h.terms.Len() }

// Terms returns all stored terms in insertion order.
func (h *FermionHamiltonian) Terms() []HermitianFermionTerm {
	raw := h.terms.Terms()
	out := make([]HermitianFermionTerm, len(raw))
	for i, t := range raw {
		out[i] = HermitianFermionTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// ToOperator widens the Hamiltonian into a plain FermionOperator,
// expanding every off-diagonal representative into term + adjoint.
func (h *FermionHamiltonian) ToOperator() *FermionOperator {
	out := NewFermionOperator()
	out.numberModes = h.numberModes
	for _, t := range h.Terms() {
		inner := t.Product.Product()
		out.terms.Add(inner, t.Weight)
		if !t.Product.IsNaturalHermitian() {
			conj, sign := inner.HermitianConjugate()
			out.terms.Add(conj, complex(sign, 0)*complex(real(t.Weight), -imag(t.Weight)))
		}
	}
	return out
}

// String renders the Hamiltonian as "{product: coefficient, ...}".
func (h *FermionHamiltonian) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, t := range h.Terms() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", t.Product, t.Weight)
	}
	b.WriteString("}")
	return b.String()
}
