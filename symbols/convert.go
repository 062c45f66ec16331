// SPDX-License-Identifier: MIT

// Package symbols: single-site basis-conversion tables.
// Each symbol expands into one or two weighted symbols of the target
// alphabet. Round-tripping any symbol through any other alphabet must
// reproduce it with total prefactor 1; the tables below are fixed by the
// conventions Plus = X + iY, Minus = X - iY, IY = i·Y.

package symbols

// WeightedPauli is one branch of a Pauli-basis expansion.
type WeightedPauli struct {
	Op     Pauli
	Weight complex128
}

// WeightedDecoherence is one branch of a decoherence-basis expansion.
type WeightedDecoherence struct {
	Op     Decoherence
	Weight complex128
}

// PauliToPlusMinus expands a Pauli symbol in the plus-minus alphabet:
//
//	X = ½(+) + ½(-)    Y = -i/2(+) + i/2(-)    Z = Z
func PauliToPlusMinus(p Pauli) []WeightedPlusMinus {
	switch p {
	case PauliX:
		return []WeightedPlusMinus{{PlusMinusPlus, 0.5}, {PlusMinusMinus, 0.5}}
	case PauliY:
		return []WeightedPlusMinus{{PlusMinusPlus, complex(0, -0.5)}, {PlusMinusMinus, complex(0, 0.5)}}
	case PauliZ:
		return []WeightedPlusMinus{{PlusMinusZ, 1}}
	}
	return []WeightedPlusMinus{{PlusMinusI, 1}}
}

// PlusMinusToPauli expands a plus-minus symbol in the Pauli alphabet:
//
//	+ = X + iY    - = X - iY    Z = Z
func PlusMinusToPauli(p PlusMinus) []WeightedPauli {
	switch p {
	case PlusMinusPlus:
		return []WeightedPauli{{PauliX, 1}, {PauliY, complex(0, 1)}}
	case PlusMinusMinus:
		return []WeightedPauli{{PauliX, 1}, {PauliY, complex(0, -1)}}
	case PlusMinusZ:
		return []WeightedPauli{{PauliZ, 1}}
	}
	return []WeightedPauli{{PauliI, 1}}
}

// PauliToDecoherence expands a Pauli symbol in the decoherence alphabet:
//
//	X = X    Y = -i(iY)    Z = Z
func PauliToDecoherence(p Pauli) []WeightedDecoherence {
	switch p {
	case PauliX:
		return []WeightedDecoherence{{DecoherenceX, 1}}
	case PauliY:
		return []WeightedDecoherence{{DecoherenceIY, complex(0, -1)}}
	case PauliZ:
		return []WeightedDecoherence{{DecoherenceZ, 1}}
	}
	return []WeightedDecoherence{{DecoherenceI, 1}}
}

// DecoherenceToPauli expands a decoherence symbol in the Pauli alphabet:
//
//	X = X    iY = i(Y)    Z = Z
func DecoherenceToPauli(d Decoherence) []WeightedPauli {
	switch d {
	case DecoherenceX:
		return []WeightedPauli{{PauliX, 1}}
	case DecoherenceIY:
		return []WeightedPauli{{PauliY, complex(0, 1)}}
	case DecoherenceZ:
		return []WeightedPauli{{PauliZ, 1}}
	}
	return []WeightedPauli{{PauliI, 1}}
}

// PlusMinusToDecoherence expands a plus-minus symbol in the decoherence
// alphabet:
//
//	+ = X + iY    - = X - iY    Z = Z
func PlusMinusToDecoherence(p PlusMinus) []WeightedDecoherence {
	switch p {
	case PlusMinusPlus:
		return []WeightedDecoherence{{DecoherenceX, 1}, {DecoherenceIY, 1}}
	case PlusMinusMinus:
		return []WeightedDecoherence{{DecoherenceX, 1}, {DecoherenceIY, -1}}
	case PlusMinusZ:
		return []WeightedDecoherence{{DecoherenceZ, 1}}
	}
	return []WeightedDecoherence{{DecoherenceI, 1}}
}

// DecoherenceToPlusMinus expands a decoherence symbol in the plus-minus
// alphabet:
//
//	X = ½(+) + ½(-)    iY = ½(+) - ½(-)    Z = Z
func DecoherenceToPlusMinus(d Decoherence) []WeightedPlusMinus {
	switch d {
	case DecoherenceX:
		return []WeightedPlusMinus{{PlusMinusPlus, 0.5}, {PlusMinusMinus, 0.5}}
	case DecoherenceIY:
		return []WeightedPlusMinus{{PlusMinusPlus, 0.5}, {PlusMinusMinus, -0.5}}
	case DecoherenceZ:
		return []WeightedPlusMinus{{PlusMinusZ, 1}}
	}
	return []WeightedPlusMinus{{PlusMinusI, 1}}
}
