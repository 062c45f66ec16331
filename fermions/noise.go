// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// FermionPair keys one Lindblad coupling term (L·ρ·R†) of a fermionic
// noise operator.
type FermionPair struct {
	Left  FermionProduct
	Right FermionProduct
}

// String returns the canonical pair form "(left, right)".
func (p FermionPair) String() string {
	return "(" + p.Left.String() + ", " + p.Right.String() + ")"
}

// FermionLindbladNoiseOperator is a weighted sum of pairs of fermionic
// products: the dissipative part of an open-system master equation.
type FermionLindbladNoiseOperator struct {
	terms       *core.Coefficients[FermionPair]
	numberModes int
}

// FermionNoiseTerm is one stored (left, right, rate) triple.
type FermionNoiseTerm struct {
	Left   FermionProduct
	Right  FermionProduct
	Weight complex128
}

// NewFermionLindbladNoiseOperator returns an empty noise operator.
func NewFermionLindbladNoiseOperator(opts ...OperatorOption) *FermionLindbladNoiseOperator {
	cfg := gatherOperatorOptions(opts)
	return &FermionLindbladNoiseOperator{
		terms:       core.NewCoefficients[FermionPair](),
		numberModes: cfg.numberModes,
	}
}

func (o *FermionLindbladNoiseOperator) checkCapacity(left, right FermionProduct) error {
	n := left.CurrentNumberModes()
	if r := right.CurrentNumberModes(); r > n {
		n = r
	}
	return checkModes(o.numberModes, n, "noise pair")
}

// NumberModes returns the declared capacity, or 0 when unbounded.
func (o *FermionLindbladNoiseOperator) NumberModes() int { return o.numberModes }

// Set stores value for the pair (left, right); zero removes the entry.
func (o *FermionLindbladNoiseOperator) Set(left, right FermionProduct, value complex128) error {
	if err := o.checkCapacity(left, right); err != nil {
		return err
	}
	o.terms.Set(FermionPair{Left: left, Right: right}, value)
	return nil
}

// Add sums value into the coefficient of the pair (left, right).
func (o *FermionLindbladNoiseOperator) Add(left, right FermionProduct, value complex128) error {
	if err := o.checkCapacity(left, right); err != nil {
		return err
	}
	o.terms.Add(FermionPair{Left: left, Right: right}, value)
	return nil
}

// Get returns the coefficient of the pair (left, right), zero when absent.
func (o *FermionLindbladNoiseOperator) Get(left, right FermionProduct) complex128 {
	return o.terms.Get(FermionPair{Left: left, Right: right})
}

// Remove deletes the entry for the pair (left, right).
func (o *FermionLindbladNoiseOperator) Remove(left, right FermionProduct) {
	o.terms.Remove(FermionPair{Left: left, Right: right})
}

// Len returns the number of stored pairs.
func (o *FermionLindbladNoiseOperator) Len() int { return o.terms.Len() }

// Terms returns all stored pairs in insertion order.
func (o *FermionLindbladNoiseOperator) Terms() []FermionNoiseTerm {
	raw := o.terms.Terms()
	out := make([]FermionNoiseTerm, len(raw))
	for i, t := range raw {
		out[i] = FermionNoiseTerm{Left: t.Key.Left, Right: t.Key.Right, Weight: t.Value}
	}
	return out
}

// HermitianConjugate returns the adjoint noise operator: pairs swap sides
// (L·ρ·R† ↦ R·ρ·L†) and rates are complex-conjugated.
func (o *FermionLindbladNoiseOperator) HermitianConjugate() *FermionLindbladNoiseOperator {
	out := NewFermionLindbladNoiseOperator()
	out.numberModes = o.numberModes
	for _, t := range o.Terms() {
		out.terms.Add(FermionPair{Left: t.Right, Right: t.Left}, complex(real(t.Weight), -imag(t.Weight)))
	}
	return out
}

// String renders the noise operator as "{(left, right): rate, ...}".
func (o *FermionLindbladNoiseOperator) String() string {
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
