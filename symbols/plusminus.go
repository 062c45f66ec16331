// SPDX-License-Identifier: MIT

package symbols

import "fmt"

// PlusMinus is a single-site raising/lowering operator symbol, with the
// convention Plus ≡ X + iY and Minus ≡ X - iY (so X = ½Plus + ½Minus).
type PlusMinus uint8

const (
	// PlusMinusI is the single-site identity.
	PlusMinusI PlusMinus = iota
	// PlusMinusPlus is the raising operator X + iY.
	PlusMinusPlus
	// PlusMinusMinus is the lowering operator X - iY.
	PlusMinusMinus
	// PlusMinusZ is the σ_z operator.
	PlusMinusZ
)

// WeightedPlusMinus is one branch of a plus-minus product or expansion.
type WeightedPlusMinus struct {
	Op     PlusMinus
	Weight complex128
}

// IsIdentity reports whether p is the identity element.
func (p PlusMinus) IsIdentity() bool { return p == PlusMinusI }

// String returns the canonical form of p: "I", "+", "-" or "Z".
func (p PlusMinus) String() string {
	switch p {
	case PlusMinusI:
		return "I"
	case PlusMinusPlus:
		return "+"
	case PlusMinusMinus:
		return "-"
	case PlusMinusZ:
		return "Z"
	}
	panic(fmt.Sprintf("symbols: invalid PlusMinus value %d", uint8(p)))
}

// ParsePlusMinus parses the canonical form of a plus-minus symbol.
func ParsePlusMinus(s string) (PlusMinus, error) {
	switch s {
	case "I":
		return PlusMinusI, nil
	case "+":
		return PlusMinusPlus, nil
	case "-":
		return PlusMinusMinus, nil
	case "Z":
		return PlusMinusZ, nil
	}
	return PlusMinusI, fmt.Errorf("symbols: plus-minus token %q: %w", s, ErrUnknownSymbol)
}

// HermitianConjugate returns the adjoint of p with its real prefactor:
// Plus and Minus swap, I and Z are self-adjoint, prefactor is always 1.
func (p PlusMinus) HermitianConjugate() (PlusMinus, float64) {
	switch p {
	case PlusMinusPlus:
		return PlusMinusMinus, 1
	case PlusMinusMinus:
		return PlusMinusPlus, 1
	}
	return p, 1
}

// MulPlusMinus multiplies two plus-minus symbols, returning zero, one or two
// weighted branches. The nilpotent pairs (+·+ and -·-) return nil; the
// crossed pairs split over identity and Z:
//
//	+ · - = 2I + 2Z        - · + = 2I - 2Z
//	+ · Z = -(+)           Z · + = +
//	- · Z = -              Z · - = -(-)
//	Z · Z = I
func MulPlusMinus(a, b PlusMinus) []WeightedPlusMinus {
	switch {
	case a.IsIdentity():
		return []WeightedPlusMinus{{Op: b, Weight: 1}}
	case b.IsIdentity():
		return []WeightedPlusMinus{{Op: a, Weight: 1}}
	}
	switch [2]PlusMinus{a, b} {
	case [2]PlusMinus{PlusMinusPlus, PlusMinusPlus},
		[2]PlusMinus{PlusMinusMinus, PlusMinusMinus}:
		return nil
	case [2]PlusMinus{PlusMinusPlus, PlusMinusMinus}:
		return []WeightedPlusMinus{{PlusMinusI, 2}, {PlusMinusZ, 2}}
	case [2]PlusMinus{PlusMinusMinus, PlusMinusPlus}:
		return []WeightedPlusMinus{{PlusMinusI, 2}, {PlusMinusZ, -2}}
	case [2]PlusMinus{PlusMinusPlus, PlusMinusZ}:
		return []WeightedPlusMinus{{PlusMinusPlus, -1}}
	case [2]PlusMinus{PlusMinusZ, PlusMinusPlus}:
		return []WeightedPlusMinus{{PlusMinusPlus, 1}}
	case [2]PlusMinus{PlusMinusMinus, PlusMinusZ}:
		return []WeightedPlusMinus{{PlusMinusMinus, 1}}
	case [2]PlusMinus{PlusMinusZ, PlusMinusMinus}:
		return []WeightedPlusMinus{{PlusMinusMinus, -1}}
	case [2]PlusMinus{PlusMinusZ, PlusMinusZ}:
		return []WeightedPlusMinus{{PlusMinusI, 1}}
	}
	panic(fmt.Sprintf("symbols: invalid PlusMinus pair (%d, %d)", uint8(a), uint8(b)))
}
