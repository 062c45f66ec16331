// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// MixedOperator is a weighted sum of MixedProducts over a fixed arity of
// spin, boson and fermion subsystems. The arity is set at construction and
// every stored key must match it.
type MixedOperator struct {
	terms             *core.Coefficients[MixedProduct]
	spinSubsystems    int
	bosonSubsystems   int
	fermionSubsystems int
}

// NewMixedOperator returns an empty operator over the given subsystem
// counts. Negative counts are programmer error and panic.
func NewMixedOperator(spinSubsystems, bosonSubsystems, fermionSubsystems int) *MixedOperator {
	if spinSubsystems < 0 || bosonSubsystems < 0 || fermionSubsystems < 0 {
		panic(fmt.Sprintf("mixed: negative subsystem count (%d,%d,%d)",
			spinSubsystems, bosonSubsystems, fermionSubsystems))
	}
	return &MixedOperator{
		terms:             core.NewCoefficients[MixedProduct](),
		spinSubsystems:    spinSubsystems,
		bosonSubsystems:   bosonSubsystems,
		fermionSubsystems: fermionSubsystems,
	}
}

// NumberSpinSubsystems returns the operator's spin arity.
func (o *MixedOperator) NumberSpinSubsystems() int { return o.spinSubsystems }

// NumberBosonSubsystems returns the operator's boson arity.
func (o *MixedOperator) NumberBosonSubsystems() int { return o.bosonSubsystems }

// NumberFermionSubsystems returns the operator's fermion arity.
func (o *MixedOperator) NumberFermionSubsystems() int { return o.fermionSubsystems }

func (o *MixedOperator) checkArity(p MixedProduct) error {
	if p.NumberSpinSubsystems() != o.spinSubsystems ||
		p.NumberBosonSubsystems() != o.bosonSubsystems ||
		p.NumberFermionSubsystems() != o.fermionSubsystems {
		return fmt.Errorf("mixed: product arity (%d,%d,%d) does not match operator arity (%d,%d,%d): %w",
			p.NumberSpinSubsystems(), p.NumberBosonSubsystems(), p.NumberFermionSubsystems(),
			o.spinSubsystems, o.bosonSubsystems, o.fermionSubsystems, ErrMismatchedSubsystems)
	}
	return nil
}

// Set stores value for product p; zero removes the entry.
func (o *MixedOperator) Set(p MixedProduct, value complex128) error {
	if err := o.checkArity(p); err != nil {
		return err
	}
	o.terms.Set(p, value)
	return nil
}

// Add sums value into the coefficient of p.
func (o *MixedOperator) Add(p MixedProduct, value complex128) error {
	if err := o.checkArity(p); err != nil {
		return err
	}
	o.terms.Add(p, value)
	return nil
}

// Get returns the coefficient of p, zero when absent.
func (o *MixedOperator) Get(p MixedProduct) complex128 { return o.terms.Get(p) }

// Remove deletes the entry for p.
func (o *MixedOperator) Remove(p MixedProduct) { o.terms.Remove(p) }

// Len returns the number of stored products.
func (o *MixedOperator) Len() int { return o.terms.Len() }

// Terms returns all stored terms in insertion order.
func (o *MixedOperator) Terms() []MixedTerm {
	raw := o.terms.Terms()
	out := make([]MixedTerm, len(raw))
	for i, t := range raw {
		out[i] = MixedTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// Scale multiplies every coefficient by factor in place.
func (o *MixedOperator) Scale(factor complex128) { o.terms.Scale(factor) }

// AddOperator sums other into o term-by-term. Arities must match.
func (o *MixedOperator) AddOperator(other *MixedOperator) error {
	if other.spinSubsystems != o.spinSubsystems ||
		other.bosonSubsystems != o.bosonSubsystems ||
		other.fermionSubsystems != o.fermionSubsystems {
		return fmt.Errorf("mixed: add operator arity (%d,%d,%d) to (%d,%d,%d): %w",
			other.spinSubsystems, other.bosonSubsystems, other.fermionSubsystems,
			o.spinSubsystems, o.bosonSubsystems, o.fermionSubsystems, ErrMismatchedSubsystems)
	}
	for _, t := range other.Terms() {
		o.terms.Add(t.Product, t.Weight)
	}
	return nil
}

// Mul returns the operator product o·other, normal-ordering every pairwise
// product and summing branches that land on the same key. Complexity:
// O(|o|·|other|) pairwise products.
func (o *MixedOperator) Mul(other *MixedOperator) (*MixedOperator, error) {
	if other.spinSubsystems != o.spinSubsystems ||
		other.bosonSubsystems != o.bosonSubsystems ||
		other.fermionSubsystems != o.fermionSubsystems {
		return nil, fmt.Errorf("mixed: multiply operator arity (%d,%d,%d) by (%d,%d,%d): %w",
			o.spinSubsystems, o.bosonSubsystems, o.fermionSubsystems,
			other.spinSubsystems, other.bosonSubsystems, other.fermionSubsystems, ErrMismatchedSubsystems)
	}
	out := NewMixedOperator(o.spinSubsystems, o.bosonSubsystems, o.fermionSubsystems)
	for _, a := range o.Terms() {
		for _, b := range other.Terms() {
			branches, err := a.Product.Mul(b.Product)
			if err != nil {
				return nil, err
			}
			for _, br := range branches {
				out.terms.Add(br.Product, a.Weight*b.Weight*br.Weight)
			}
		}
	}
	return out, nil
}

// HermitianConjugate returns the adjoint operator: every key replaced by
// its conjugate and every coefficient by its (sign-adjusted) complex
// conjugate.
func (o *MixedOperator) HermitianConjugate() *MixedOperator {
	out := NewMixedOperator(o.spinSubsystems, o.bosonSubsystems, o.fermionSubsystems)
	for _, t := range o.Terms() {
		conj, sign := t.Product.HermitianConjugate()
		out.terms.Add(conj, complex(sign, 0)*conjugate(t.Weight))
	}
	return out
}

// Clone returns a deep copy of the operator.
func (o *MixedOperator) Clone() *MixedOperator {
	out := NewMixedOperator(o.spinSubsystems, o.bosonSubsystems, o.fermionSubsystems)
	out.terms = o.terms.Clone()
	return out
}

// String renders the operator as "{product: coefficient, ...}".
func (o *MixedOperator) String() string {
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

func conjugate(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
