// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// PlusMinusOperator is a weighted sum of plus-minus products. Same
// container contract as PauliOperator; multiplication differs because the
// plus-minus product algebra branches.
type PlusMinusOperator struct {
	terms       *core.Coefficients[PlusMinusProduct]
	numberSpins int
}

// NewPlusMinusOperator returns an empty operator.
func NewPlusMinusOperator(opts ...OperatorOption) *PlusMinusOperator {
	cfg := gatherOperatorOptions(opts)
	return &PlusMinusOperator{terms: core.NewCoefficients[PlusMinusProduct](), numberSpins: cfg.numberSpins}
}

func (o *PlusMinusOperator) checkCapacity(n int) error {
	if o.numberSpins > 0 && n > o.numberSpins {
		return fmt.Errorf("spins: product needs %d spins, container holds %d: %w",
			n, o.numberSpins, ErrNumberSpinsExceeded)
	}
	return nil
}

// NumberSpins returns the declared capacity, or 0 when unbounded.
func (o *PlusMinusOperator) NumberSpins() int { return o.numberSpins }

// CurrentNumberSpins returns the highest site index + 1 over stored terms.
func (o *PlusMinusOperator) CurrentNumberSpins() int {
	n := 0
	for _, t := range o.terms.Terms() {
		if c := t.Key.CurrentNumberSpins(); c > n {
			n = c
		}
	}
	return n
}

// Set stores value for p; zero removes the entry.
func (o *PlusMinusOperator) Set(p PlusMinusProduct, value complex128) error {
	if err := o.checkCapacity(p.CurrentNumberSpins()); err != nil {
		return err
	}
	o.terms.Set(p, value)
	return nil
}

// Add sums value into the coefficient of p.
func (o *PlusMinusOperator) Add(p PlusMinusProduct, value complex128) error {
	if err := o.checkCapacity(p.CurrentNumberSpins()); err != nil {
		return err
	}
	o.terms.Add(p, value)
	return nil
}

// Get returns the coefficient of p, zero when absent.
func (o *PlusMinusOperator) Get(p PlusMinusProduct) complex128 { return o.terms.Get(p) }

// Remove deletes the entry for p.
func (o *PlusMinusOperator) Remove(p PlusMinusProduct) { o.terms.Remove(p) }

// Len returns the number of stored terms.
func (o *PlusMinusOperator) Len() int { return o.terms.Len() }

// Terms returns all stored terms in insertion order.
func (o *PlusMinusOperator) Terms() []PlusMinusTerm {
	raw := o.terms.Terms()
	out := make([]PlusMinusTerm, len(raw))
	for i, t := range raw {
		out[i] = PlusMinusTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// Scale multiplies every coefficient by factor in place.
func (o *PlusMinusOperator) Scale(factor complex128) { o.terms.Scale(factor) }

// AddOperator sums every term of other into o.
func (o *PlusMinusOperator) AddOperator(other *PlusMinusOperator) error {
	for _, t := range other.Terms() {
		if err := o.Add(t.Product, t.Weight); err != nil {
			return err
		}
	}
	return nil
}

// Mul returns the operator product o·other, accumulating every branch of
// every term-pair multiplication by key. Complexity: O(|o|·|other|) term
// pairs, each contributing up to 2^k branches.
func (o *PlusMinusOperator) Mul(other *PlusMinusOperator) *PlusMinusOperator {
	out := NewPlusMinusOperator()
	out.numberSpins = maxInt(o.numberSpins, other.numberSpins)
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			for _, br := range lt.Product.Mul(rt.Product) {
				out.terms.Add(br.Product, lt.Weight*rt.Weight*br.Weight)
			}
		}
	}
	return out
}

// HermitianConjugate returns the adjoint operator.
func (o *PlusMinusOperator) HermitianConjugate() *PlusMinusOperator {
	out := NewPlusMinusOperator()
	out.numberSpins = o.numberSpins
	for _, t := range o.Terms() {
		conj, sign := t.Product.HermitianConjugate()
		out.terms.Add(conj, complex(sign, 0)*conjugate(t.Weight))
	}
	return out
}

// Clone returns an independent copy.
func (o *PlusMinusOperator) Clone() *PlusMinusOperator {
	return &PlusMinusOperator{terms: o.terms.Clone(), numberSpins: o.numberSpins}
}

// String renders the operator as "{product: coefficient, ...}".
func (o *PlusMinusOperator) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, t := range o.Terms() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", t.Product, t.Weight)
	}
	b.WriteString("}")
	return b.String()
}

// PauliOperatorToPlusMinus re-expresses a Pauli operator in the plus-minus
// basis, summing coefficients of coinciding target products.
func PauliOperatorToPlusMinus(op *PauliOperator) *PlusMinusOperator {
	out := NewPlusMinusOperator()
	out.numberSpins = op.numberSpins
	for _, t := range op.Terms() {
		for _, br := range PauliProductToPlusMinus(t.Product) {
			out.terms.Add(br.Product, t.Weight*br.Weight)
		}
	}
	return out
}

// PlusMinusOperatorToPauli re-expresses a plus-minus operator in the Pauli
// basis, summing coefficients of coinciding target products.
func PlusMinusOperatorToPauli(op *PlusMinusOperator) *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = op.numberSpins
	for _, t := range op.Terms() {
		for _, br := range PlusMinusProductToPauli(t.Product) {
			out.terms.Add(br.Product, t.Weight*br.Weight)
		}
	}
	return out
}
