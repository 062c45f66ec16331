// SPDX-License-Identifier: MIT

package symbols

import "fmt"

// Decoherence is a single-site operator symbol in the decoherence alphabet
// I, X, iY, Z. Folding the factor of i into the Y symbol makes every product
// prefactor real, which keeps noise-operator coefficients real.
type Decoherence uint8

const (
	// DecoherenceI is the single-site identity.
	DecoherenceI Decoherence = iota
	// DecoherenceX is the σ_x operator.
	DecoherenceX
	// DecoherenceIY is the operator i·σ_y.
	DecoherenceIY
	// DecoherenceZ is the σ_z operator.
	DecoherenceZ
)

// IsIdentity reports whether d is the identity element.
func (d Decoherence) IsIdentity() bool { return d == DecoherenceI }

// String returns the canonical form of d: "I", "X", "iY" or "Z".
func (d Decoherence) String() string {
	switch d {
	case DecoherenceI:
		return "I"
	case DecoherenceX:
		return "X"
	case DecoherenceIY:
		return "iY"
	case DecoherenceZ:
		return "Z"
	}
	panic(fmt.Sprintf("symbols: invalid Decoherence value %d", uint8(d)))
}

// ParseDecoherence parses the canonical form of a decoherence symbol.
func ParseDecoherence(s string) (Decoherence, error) {
	switch s {
	case "I":
		return DecoherenceI, nil
	case "X":
		return DecoherenceX, nil
	case "iY":
		return DecoherenceIY, nil
	case "Z":
		return DecoherenceZ, nil
	}
	return DecoherenceI, fmt.Errorf("symbols: decoherence token %q: %w", s, ErrUnknownSymbol)
}

// HermitianConjugate returns the adjoint of d with its real prefactor:
// X and Z are self-adjoint, (iY)† = -iY.
func (d Decoherence) HermitianConjugate() (Decoherence, float64) {
	if d == DecoherenceIY {
		return DecoherenceIY, -1
	}
	return d, 1
}

// decoherenceMul indexes [a][b] into (result, sign) for the non-identity,
// non-equal pairs; a·a is handled separately (X²=Z²=I, (iY)²=-I).
var decoherenceMul = map[[2]Decoherence]struct {
	out  Decoherence
	sign float64
}{
	{DecoherenceX, DecoherenceIY}: {DecoherenceZ, -1},
	{DecoherenceIY, DecoherenceX}: {DecoherenceZ, 1},
	{DecoherenceX, DecoherenceZ}:  {DecoherenceIY, -1},
	{DecoherenceZ, DecoherenceX}:  {DecoherenceIY, 1},
	{DecoherenceIY, DecoherenceZ}: {DecoherenceX, -1},
	{DecoherenceZ, DecoherenceIY}: {DecoherenceX, 1},
}

// MulDecoherence multiplies two decoherence symbols. The alphabet is closed
// up to a real sign, so the result is a single (symbol, sign) pair.
func MulDecoherence(a, b Decoherence) (Decoherence, float64) {
	switch {
	case a.IsIdentity():
		return b, 1
	case b.IsIdentity():
		return a, 1
	case a == b:
		if a == DecoherenceIY {
			return DecoherenceI, -1
		}
		return DecoherenceI, 1
	}
	r := decoherenceMul[[2]Decoherence{a, b}]
	return r.out, r.sign
}
