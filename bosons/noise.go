// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// BosonPair keys one Lindblad coupling term (L·ρ·R†) of a bosonic noise
// operator.
type BosonPair struct {
	Left  BosonProduct
	Right BosonProduct
}

// String returns the canonical pair form "(left, right)".
func (p BosonPair) String() string {
	return "(" + p.Left.String() + ", " + p.Right.String() + ")"
}

// BosonLindbladNoiseOperator is a weighted sum of pairs of bosonic
// products: the dissipative part of an open-system master equation.
type BosonLindbladNoiseOperator struct {
	terms       *core.Coefficients[BosonPair]
	numberModes int
}

// BosonNoiseTerm is one stored (left, right, rate) triple.
type BosonNoiseTerm struct {
	Left   BosonProduct
	Right  BosonProduct
	Weight complex128
}

// NewBosonLindbladNoiseOperator returns an empty noise operator.
func NewBosonLindbladNoiseOperator(opts ...OperatorOption) *BosonLindbladNoiseOperator {
	cfg := gatherOperatorOptions(opts)
	return &BosonLindbladNoiseOperator{
		terms:       core.NewCoefficients[BosonPair](),
		numberModes: cfg.numberModes,
	}
}

func (o *BosonLindbladNoiseOperator) checkCapacity(left, right BosonProduct) error {
	n := left.CurrentNumberModes()
	if r := right.CurrentNumberModes(); r > n {
		n = r
	}
	return checkModes(o.numberModes, n, "noise pair")
}

// NumberModes returns the declared capacity, or 0 when unbounded.
func (o *BosonLindbladNoiseOperator) NumberModes() int { return o.numberModes }

// Set stores value for the pair (left, right); zero removes the entry.
func (o *BosonLindbladNoiseOperator) Set(left, right BosonProduct, value complex128) error {
	if err := o.checkCapacity(left, right); err != nil {
		return err
	}
	o.terms.Set(BosonPair{Left: left, Right: right}, value)
	return nil
}

// Add sums value into the coefficient of the pair (left, right).
func (o *BosonLindbladNoiseOperator) Add(left, right BosonProduct, value complex128) error {
	if err := o.checkCapacity(left, right); err != nil {
		return err
	}
	o.terms.Add(BosonPair{Left: left, Right: right}, value)
	return nil
}

// Get returns the coefficient of the pair (left, right), zero when absent.
func (o *BosonLindbladNoiseOperator) Get(left, right BosonProduct) complex128 {
	return o.terms.Get(BosonPair{Left: left, Right: right})
}

// Remove deletes the entry for the pair (left, right).
func (o *BosonLindbladNoiseOperator) Remove(left, right BosonProduct) {
	o.terms.Remove(BosonPair{Left: left, Right: right})
}

// Len returns the number of stored pairs.
func (o *BosonLindbladNoiseOperator) Len() int { return o.terms.Len() }

// Terms returns all stored pairs in insertion order.
func (o *BosonLindbladNoiseOperator) Terms() []BosonNoiseTerm {
	raw := o.terms.Terms()
	out := make([]BosonNoiseTerm, len(raw))
	for i, t := range raw {
		out[i] = BosonNoiseTerm{Left: t.Key.Left, Right: t.Key.Right, Weight: t.Value}
	}
	return out
}

// HermitianConjugate returns the adjoint noise operator: pairs swap sides
// (L·ρ·R† ↦ R·ρ·L†) and rates are complex-conjugated.
func (o *BosonLindbladNoiseOperator) HermitianConjugate() *BosonLindbladNoiseOperator {
	out := NewBosonLindbladNoiseOperator()
	out.numberModes = o.numberModes
	for _, t := range o.Terms() {
		out.terms.Add(BosonPair{Left: t.Right, Right: t.Left}, complex(real(t.Weight), -imag(t.Weight)))
	}
	return out
}

// String renders the noise operator as "{(left, right): rate, ...}".
func (o *BosonLindbladNoiseOperator) String() string {
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
