// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// DecoherencePair keys one Lindblad coupling term: the pair (L, R) stands
// for the dissipator contribution L·ρ·R† in a master equation.
type DecoherencePair struct {
	Left  DecoherenceProduct
	Right DecoherenceProduct
}

// String returns the canonical pair form "(left, right)".
func (p DecoherencePair) String() string {
	return "(" + p.Left.String() + ", " + p.Right.String() + ")"
}

// PauliLindbladNoiseOperator is a weighted sum of pairs of decoherence
// products: the noise part of an open-system Lindblad equation. Same
// container contract as the operators: insertion-ordered, exact-zero
// coefficients removed on write.
type PauliLindbladNoiseOperator struct {
	terms       *core.Coefficients[DecoherencePair]
	numberSpins int
}

// PauliNoiseTerm is one stored (left, right, rate) triple.
type PauliNoiseTerm struct {
	Left   DecoherenceProduct
	Right  DecoherenceProduct
	Weight complex128
}

// NewPauliLindbladNoiseOperator returns an empty noise operator.
func NewPauliLindbladNoiseOperator(opts ...OperatorOption) *PauliLindbladNoiseOperator {
	cfg := gatherOperatorOptions(opts)
	return &PauliLindbladNoiseOperator{
		terms:       core.NewCoefficients[DecoherencePair](),
		numberSpins: cfg.numberSpins,
	}
}

func (o *PauliLindbladNoiseOperator) checkCapacity(left, right DecoherenceProduct) error {
	if o.numberSpins <= 0 {
		return nil
	}
	n := maxInt(left.CurrentNumberSpins(), right.CurrentNumberSpins())
	if n > o.numberSpins {
		return fmt.Errorf("spins: noise pair needs %d spins, container holds %d: %w",
			n, o.numberSpins, ErrNumberSpinsExceeded)
	}
	return nil
}

// NumberSpins returns the declared capacity, or 0 when unbounded.
func (o *PauliLindbladNoiseOperator) NumberSpins() int { return o.numberSpins }

// Set stores value for the pair (left, right); zero removes the entry.
func (o *PauliLindbladNoiseOperator) Set(left, right DecoherenceProduct, value complex128) error {
	if err := o.checkCapacity(left, right); err != nil {
		return err
	}
	o.terms.Set(DecoherencePair{Left: left, Right: right}, value)
	return nil
}

// Add sums value into the coefficient of the pair (left, right).
func (o *PauliLindbladNoiseOperator) Add(left, right DecoherenceProduct, value complex128) error {
	if err := o.checkCapacity(left, right); err != nil {
		return err
	}
	o.terms.Add(DecoherencePair{Left: left, Right: right}, value)
	return nil
}

// Get returns the coefficient of the pair (left, right), zero when absent.
func (o *PauliLindbladNoiseOperator) Get(left, right DecoherenceProduct) complex128 {
	return o.terms.Get(DecoherencePair{Left: left, Right: right})
}

// Remove deletes the entry for the pair (left, right).
func (o *PauliLindbladNoiseOperator) Remove(left, right DecoherenceProduct) {
	o.terms.Remove(DecoherencePair{Left: left, Right: right})
}

// Len returns the number of stored pairs.
func (o *PauliLindbladNoiseOperator) Len() int { return o.terms.Len() }

// Terms returns all stored pairs in insertion order.
func (o *PauliLindbladNoiseOperator) Terms() []PauliNoiseTerm {
	raw := o.terms.Terms()
	out := make([]PauliNoiseTerm, len(raw))
	for i, t := range raw {
		out[i] = PauliNoiseTerm{Left: t.Key.Left, Right: t.Key.Right, Weight: t.Value}
	}
	return out
}

// HermitianConjugate returns the adjoint noise operator: pairs swap sides
// (L·ρ·R† ↦ R·ρ·L†) and rates are complex-conjugated; the per-product iY
// signs cancel between the swapped sides' conjugations.
func (o *PauliLindbladNoiseOperator) HermitianConjugate() *PauliLindbladNoiseOperator {
	out := NewPauliLindbladNoiseOperator()
	out.numberSpins = o.numberSpins
	for _, t := range o.Terms() {
		out.terms.Add(DecoherencePair{Left: t.Right, Right: t.Left}, conjugate(t.Weight))
	}
	return out
}

// String renders the noise operator as "{(left, right): rate, ...}".
func (o *PauliLindbladNoiseOperator) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, t := range o.Terms() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%s, %s): %v", t.Left, t.Right, t.Weight)
	}
	b.WriteString("}")
	return b.String()
}
