// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// OperatorOption configures a spin operator container before creation.
type OperatorOption func(*operatorConfig)

type operatorConfig struct {
	// numberSpins is the declared capacity; 0 means unbounded.
	numberSpins int
}

// WithNumberSpins bounds the container to site indices < n. Inserting a
// product reaching index n or beyond fails with ErrNumberSpinsExceeded.
// Panics if n <= 0 (programmer error, not an input error).
func WithNumberSpins(n int) OperatorOption {
	if n <= 0 {
		panic("spins: WithNumberSpins requires n > 0")
	}
	return func(c *operatorConfig) { c.numberSpins = n }
}

func gatherOperatorOptions(opts []OperatorOption) operatorConfig {
	var cfg operatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// PauliOperator is a weighted sum of Pauli products: an insertion-ordered
// map from PauliProduct to a complex coefficient. Exactly-zero coefficients
// are removed on write. Not safe for concurrent use.
type PauliOperator struct {
	terms       *core.Coefficients[PauliProduct]
	numberSpins int
}

// NewPauliOperator returns an empty operator. By default the site range is
// unbounded; bound it with WithNumberSpins.
func NewPauliOperator(opts ...OperatorOption) *PauliOperator {
	cfg := gatherOperatorOptions(opts)
	return &PauliOperator{terms: core.NewCoefficients[PauliProduct](), numberSpins: cfg.numberSpins}
}

func (o *PauliOperator) checkCapacity(n int) error {
	if o.numberSpins > 0 && n > o.numberSpins {
		return fmt.Errorf("spins: product needs %d spins, container holds %d: %w",
			n, o.numberSpins, ErrNumberSpinsExceeded)
	}
	return nil
}

// NumberSpins returns the declared capacity, or 0 when unbounded.
func (o *PauliOperator) NumberSpins() int { return o.numberSpins }

// CurrentNumberSpins returns the highest site index + 1 over all stored
// products.
func (o *PauliOperator) CurrentNumberSpins() int {
	n := 0
	for _, t := range o.terms.Terms() {
		if c := t.Key.CurrentNumberSpins(); c > n {
			n = c
		}
	}
	return n
}

// Set stores value for p, overwriting any previous coefficient; zero
// removes the entry.
func (o *PauliOperator) Set(p PauliProduct, value complex128) error {
	if err := o.checkCapacity(p.CurrentNumberSpins()); err != nil {
		return err
	}
	o.terms.Set(p, value)
	return nil
}

// Add sums value into the coefficient of p, removing the entry when the sum
// vanishes.
func (o *PauliOperator) Add(p PauliProduct, value complex128) error {
	if err := o.checkCapacity(p.CurrentNumberSpins()); err != nil {
		return err
	}
	o.terms.Add(p, value)
	return nil
}

// Get returns the coefficient of p, zero when absent.
func (o *PauliOperator) Get(p PauliProduct) complex128 { return o.terms.Get(p) }

// Remove deletes the entry for p.
func (o *PauliOperator) Remove(p PauliProduct) { o.terms.Remove(p) }

// Len returns the number of stored terms.
func (o *PauliOperator) Len() int { return o.terms.Len() }

// Terms returns all stored terms in insertion order.
func (o *PauliOperator) Terms() []PauliTerm {
	raw := o.terms.Terms()
	out := make([]PauliTerm, len(raw))
	for i, t := range raw {
		out[i] = PauliTerm{Product: t.Key, Weight: t.Value}
	}
	return out
}

// Scale multiplies every coefficient by factor in place.
func (o *PauliOperator) Scale(factor complex128) { o.terms.Scale(factor) }

// AddOperator sums every term of other into o.
func (o *PauliOperator) AddOperator(other *PauliOperator) error {
	for _, t := range other.Terms() {
		if err := o.Add(t.Product, t.Weight); err != nil {
			return err
		}
	}
	return nil
}

// Mul returns the operator product o·other: every pair of stored terms is
// multiplied through the product algebra and accumulated by key.
// Complexity: O(|o|·|other|).
func (o *PauliOperator) Mul(other *PauliOperator) *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = maxInt(o.numberSpins, other.numberSpins)
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			prod, phase := lt.Product.Mul(rt.Product)
			out.terms.Add(prod, lt.Weight*rt.Weight*phase)
		}
	}
	return out
}

// HermitianConjugate returns the adjoint operator: every product is
// conjugated (Pauli products are self-adjoint) and every coefficient is
// complex-conjugated.
func (o *PauliOperator) HermitianConjugate() *PauliOperator {
	out := NewPauliOperator()
	out.numberSpins = o.numberSpins
	for _, t := range o.Terms() {
		conj, sign := t.Product.HermitianConjugate()
		out.terms.Add(conj, complex(sign, 0)*conjugate(t.Weight))
	}
	return out
}

// RemapQubits relabels the sites of every stored product through mapping.
func (o *PauliOperator) RemapQubits(mapping map[int]int) (*PauliOperator, error) {
	out := NewPauliOperator()
	out.numberSpins = o.numberSpins
	for _, t := range o.Terms() {
		remapped, err := t.Product.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}
		out.terms.Add(remapped, t.Weight)
	}
	return out, nil
}

// Clone returns an independent copy.
func (o *PauliOperator) Clone() *PauliOperator {
	return &PauliOperator{terms: o.terms.Clone(), numberSpins: o.numberSpins}
}

// String renders the operator as "{product: coefficient, ...}" in insertion
// order.
func (o *PauliOperator) String() string {
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

func conjugate(c complex128) complex128 { return complex(real(c), -imag(c)) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
