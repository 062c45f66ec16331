// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// BosonHamiltonian is a Hermitian weighted sum of bosonic terms, keyed by
// the Hermitian product variant so that a term and its adjoint share one
// entry. Self-adjoint keys (creator multiset == annihilator multiset) must
// carry a real coefficient; off-diagonal keys implicitly stand for
// coefficient·key + conjugate(coefficient)·key†.
type BosonHamiltonian struct {
	terms       *core.Coefficients[HermitianBosonProduct]
	numberModes int
}

// NewBosonHamiltonian returns an empty Hamiltonian.
func NewBosonHamiltonian(opts ...OperatorOption) *BosonHamiltonian {
	cfg := gatherOperatorOptions(opts)
	return &BosonHamiltonian{terms: core.NewCoefficients[HermitianBosonProduct](), numberModes: cfg.numberModes}
}

func (h *BosonHamiltonian) check(p HermitianBosonProduct, value complex128) error {
	if p.IsNaturalHermitian() && !core.IsReal(value) {
		return fmt.Errorf("bosons: coefficient %v for self-adjoint key %s: %w",
			value, p, ErrNonHermitian)
	}
	return checkModes(h.numberModes, p.CurrentNumberModes(), "product")
}

// NumberModes returns the declared capacity, or 0 when unbounded.
func (h *BosonHamiltonian) NumberModes() int { return h.numberModes }

// Set stores value for p; zero removes the entry. Fails with
// ErrNonHermitian when a self-adjoint key receives a non-real value.
func (h *BosonHamiltonian) Set(p HermitianBosonProduct, value complex128) error {
	if err := h.check(p, value); err != nil {
		return err
	}
	h.terms.Set(p, value)
	return nil
}

// Add sums value into the coefficient of p under the same Hermiticity rule.
func (h *BosonHamiltonian) Add(p HermitianBosonProduct, value complex128) error {
	if err := h.check(p, value); err != nil {
		return err
	}
	h.terms.Add(p, value)
	return nil
}

// Get returns the coefficient of p, zero when absent.
func (h *BosonHamiltonian) Get(p HermitianBosonProduct) complex128 { return h.terms.Get(p) }

// Remove deletes the entry for p.
func (h *BosonHamiltonian) Remove(p HermitianBosonProduct) { h.terms.Remove(p) }

// Len returns the number of stored terms.
func (h *BosonHamiltonian) Len() int { return h.terms.Len() }

// Terms returns all stored terms in insertion order.
func (h *BosonHamiltonian) Terms() []HermitianBosonTerm {
	raw := h.terms.Terms()
	out := make([]HermitianBosonTerm, len(raw))
	for i, t := range raw {
		out[i] = HermitianBosonTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// ToOperator widens the Hamiltonian into a plain BosonOperator, expanding
// every off-diagonal representative into term + adjoint.
func (h *BosonHamiltonian) ToOperator() *BosonOperator {
	out := NewBosonOperator()
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
func (h *BosonHamiltonian) String() string {
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
