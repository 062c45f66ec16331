// SPDX-License-Identifier: MIT

package symbols

import "fmt"

// Pauli is a single-site Pauli operator symbol.
type Pauli uint8

const (
	// PauliI is the single-site identity.
	PauliI Pauli = iota
	// PauliX is the σ_x operator.
	PauliX
	// PauliY is the σ_y operator.
	PauliY
	// PauliZ is the σ_z operator.
	PauliZ
)

// IsIdentity reports whether p is the identity element.
func (p Pauli) IsIdentity() bool { return p == PauliI }

// String returns the canonical one-letter form of p.
func (p Pauli) String() string {
	switch p {
	case PauliI:
		return "I"
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	}
	panic(fmt.Sprintf("symbols: invalid Pauli value %d", uint8(p)))
}

// ParsePauli parses the canonical one-letter form of a Pauli symbol.
func ParsePauli(s string) (Pauli, error) {
	switch s {
	case "I":
		return PauliI, nil
	case "X":
		return PauliX, nil
	case "Y":
		return PauliY, nil
	case "Z":
		return PauliZ, nil
	}
	return PauliI, fmt.Errorf("symbols: pauli token %q: %w", s, ErrUnknownSymbol)
}

// HermitianConjugate returns the adjoint of p with its real prefactor.
// Every Pauli symbol is self-adjoint.
func (p Pauli) HermitianConjugate() (Pauli, float64) { return p, 1 }

// pauliMul indexes [a][b] into (result, phase) for the non-identity,
// non-equal pairs. The standard relations: XY = iZ, YZ = iX, ZX = iY,
// and the reversed orders carry -i.
var pauliMul = map[[2]Pauli]struct {
	out   Pauli
	phase complex128
}{
	{PauliX, PauliY}: {PauliZ, complex(0, 1)},
	{PauliY, PauliX}: {PauliZ, complex(0, -1)},
	{PauliY, PauliZ}: {PauliX, complex(0, 1)},
	{PauliZ, PauliY}: {PauliX, complex(0, -1)},
	{PauliZ, PauliX}: {PauliY, complex(0, 1)},
	{PauliX, PauliZ}: {PauliY, complex(0, -1)},
}

// MulPauli multiplies two Pauli symbols. The Pauli alphabet is closed up to
// a phase, so the result is always a single (symbol, prefactor) pair with
// MulPauli(PauliI, x) == (x, 1) and MulPauli(x, x) == (PauliI, 1).
func MulPauli(a, b Pauli) (Pauli, complex128) {
	switch {
	case a.IsIdentity():
		return b, 1
	case b.IsIdentity():
		return a, 1
	case a == b:
		return PauliI, 1
	}
	r := pauliMul[[2]Pauli{a, b}]
	return r.out, r.phase
}
