// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// OperatorOption configures a bosonic container before creation.
type OperatorOption func(*operatorConfig)

type operatorConfig struct {
	// numberModes is the declared capacity; 0 means unbounded.
	numberModes int
}

// WithNumberModes bounds the container to mode indices < n. Inserting a
// product reaching mode n or beyond fails with ErrNumberModesExceeded.
// Panics if n <= 0 (programmer error, not an input error).
func WithNumberModes(n int) OperatorOption {
	if n <= 0 {
		panic("bosons: WithNumberModes requires n > 0")
	}
	return func(c *operatorConfig) { c.numberModes = n }
}

func gatherOperatorOptions(opts []OperatorOption) operatorConfig {
	var cfg operatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// BosonOperator is a weighted sum of bosonic products: an insertion-ordered
// map from BosonProduct to a complex coefficient, with exact-zero
// coefficients removed on write. Not safe for concurrent use.
type BosonOperator struct {
	terms       *core.Coefficients[BosonProduct]
	numberModes int
}

// NewBosonOperator returns an empty operator; bound the mode range with
// WithNumberModes.
func NewBosonOperator(opts ...OperatorOption) *BosonOperator {
	cfg := gatherOperatorOptions(opts)
	return &BosonOperator{terms: core.NewCoefficients[BosonProduct](), numberModes: cfg.numberModes}
}

func checkModes(numberModes, needed int, kind string) error {
	if numberModes > 0 && needed > numberModes {
		return fmt.Errorf("bosons: %s needs %d modes, container holds %d: %w",
			kind, needed, numberModes, ErrNumberModesExceeded)
	}
	return nil
}

// NumberModes returns the declared capacity, or 0 when unbounded.
func (o *BosonOperator) NumberModes() int { return o.numberModes }

// CurrentNumberModes returns the highest mode index + 1 over stored terms.
func (o *BosonOperator) CurrentNumberModes() int {
	n := 0
	for _, t := range o.terms.Terms() {
		if c := t.Key.CurrentNumberModes(); c > n {
			n = c
		}
	}
	return n
}

// Set stores value for p; zero removes the entry.
func (o *BosonOperator) Set(p BosonProduct, value complex128) error {
	if err := checkModes(o.numberModes, p.CurrentNumberModes(), "product"); err != nil {
		return err
	}
	o.terms.Set(p, value)
	return nil
}

// Add sums value into the coefficient of p.
func (o *BosonOperator) Add(p BosonProduct, value complex128) error {
	if err := checkModes(o.numberModes, p.CurrentNumberModes(), "product"); err != nil {
		return err
	}
	o.terms.Add(p, value)
	return nil
}

// Get returns the coefficient of p, zero when absent.
func (o *BosonOperator) Get(p BosonProduct) complex128 { return o.terms.Get(p) }

// Remove deletes the entry for p.
func (o *BosonOperator) Remove(p BosonProduct) { o.terms.Remove(p) }

// Len returns the number of stored terms.
func (o *BosonOperator) Len() int { return o.terms.Len() }

// Terms returns all stored terms in insertion order.
func (o *BosonOperator) Terms() []BosonTerm {
	raw := o.terms.Terms()
	out := make([]BosonTerm, len(raw))
	for i, t := range raw {
		out[i] = BosonTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// Scale multiplies every coefficient by factor in place.
func (o *BosonOperator) Scale(factor complex128) { o.terms.Scale(factor) }

// AddOperator sums every term of other into o.
func (o *BosonOperator) AddOperator(other *BosonOperator) error {
	for _, t := range other.Terms() {
		if err := o.Add(t.Product, t.Weight); err != nil {
			return err
		}
	}
	return nil
}

// Mul returns the operator product o·other. Complexity: O(|o|·|other|).
func (o *BosonOperator) Mul(other *BosonOperator) *BosonOperator {
	out := NewBosonOperator()
	if o.numberModes > other.numberModes {
		out.numberModes = o.numberModes
	} else {
		out.numberModes = other.numberModes
	}
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			prod, sign := lt.Product.Mul(rt.Product)
			out.terms.Add(prod, lt.Weight*rt.Weight*complex(sign, 0))
		}
	}
	return out
}

// HermitianConjugate returns the adjoint operator.
func (o *BosonOperator) HermitianConjugate() *BosonOperator {
	out := NewBosonOperator()
	out.numberModes = o.numberModes
	for _, t := range o.Terms() {
		conj, sign := t.Product.HermitianConjugate()
		out.terms.Add(conj, complex(sign, 0)*complex(real(t.Weight), -imag(t.Weight)))
	}
	return out
}

// Clone returns an independent copy.
func (o *BosonOperator) Clone() *BosonOperator {
	return &BosonOperator{terms: o.terms.Clone(), numberModes: o.numberModes}
}

// String renders the operator as "{product: coefficient, ...}".
func (o *BosonOperator) String() string {
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
