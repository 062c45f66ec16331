// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// PauliHamiltonian is a Hermitian weighted sum of Pauli products. Every
// Pauli product is self-adjoint, so Hermiticity reduces to an invariant on
// the coefficients: they must be real. Writes with an imaginary part beyond
// core.Tolerance fail with ErrNonHermitian.
type PauliHamiltonian struct {
	terms       *core.Coefficients[PauliProduct]
	numberSpins int
}

// NewPauliHamiltonian returns an empty Hamiltonian.
func NewPauliHamiltonian(opts ...OperatorOption) *PauliHamiltonian {
	cfg := gatherOperatorOptions(opts)
	return &PauliHamiltonian{terms: core.NewCoefficients[PauliProduct](), numberSpins: cfg.numberSpins}
}

func (h *PauliHamiltonian) check(p PauliProduct, value complex128) error {
	if !core.IsReal(value) {
		return fmt.Errorf("spins: coefficient %v for self-adjoint key %s: %w",
			value, p, ErrNonHermitian)
	}
	if h.numberSpins > 0 && p.CurrentNumberSpins() > h.numberSpins {
		return fmt.Errorf("spins: product needs %d spins, container holds %d: %w",
			p.CurrentNumberSpins(), h.numberSpins, ErrNumberSpinsExceeded)
	}
	return nil
}

// NumberSpins returns the declared capacity, or 0 when unbounded.
func (h *PauliHamiltonian) NumberSpins() int { return h.numberSpins }

// CurrentNumberSpins returns the highest site index + 1 over stored terms.
func (h *PauliHamiltonian) CurrentNumberSpins() int {
	n := 0
	for _, t := range h.terms.Terms() {
		if c := t.Key.CurrentNumberSpins(); c > n {
			n = c
		}
	}
	return n
}

// Set stores a real value for p; zero removes the entry.
func (h *PauliHamiltonian) Set(p PauliProduct, value complex128) error {
	if err := h.check(p, value); err != nil {
		return err
	}
	h.terms.Set(p, complex(real(value), 0))
	return nil
}

// Add sums a real value into the coefficient of p.
func (h *PauliHamiltonian) Add(p PauliProduct, value complex128) error {
	if err := h.check(p, value); err != nil {
		return err
	}
	h.terms.Add(p, complex(real(value), 0))
	return nil
}

// Get returns the real coefficient of p, zero when absent.
func (h *PauliHamiltonian) Get(p PauliProduct) float64 { return real(h.terms.Get(p)) }

// Remove deletes the entry for p.
func (h *PauliHamiltonian) Remove(p PauliProduct) { h.terms.Remove(p) }

// Len returns the number of stored terms.
func (h *PauliHamiltonian) Len() int { return h.terms.Len() }

// Terms returns all stored terms in insertion order; weights carry a zero
// imaginary part by construction.
func (h *PauliHamiltonian) Terms() []PauliTerm {
	raw := h.terms.Terms()
	out := make([]PauliTerm, len(raw))
	for i, t := range raw {
		out[i] = PauliTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// ToOperator widens the Hamiltonian into a plain PauliOperator.
func (h *PauliHamiltonian) ToOperator() *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = h.numberSpins
	for _, t := range h.Terms() {
		out.terms.Set(t.Product, t.Weight)
	}
	return out
}

// String renders the Hamiltonian as "{product: coefficient, ...}".
func (h *PauliHamiltonian) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, t := range h.Terms() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", t.Product, real(t.Weight))
	}
	b.WriteString("}")
	return b.String()
}
