// Package symbols defines the three single-site operator alphabets and
// everything that is fixed about them at the single-site level:
// multiplication tables, Hermitian conjugates, string forms and the
// pairwise basis-conversion expansions.
//
// 🚀 The alphabets
//
//	Pauli       — I, X, Y, Z.        XY = iZ and cyclic; closed up to a phase.
//	PlusMinus   — I, +, -, Z with + ≡ X + iY and - ≡ X - iY, so that
//	              X = ½(+) + ½(-). Products of crossed +/- branch into
//	              up to two symbols (+· - = 2I + 2Z).
//	Decoherence — I, X, iY, Z with the factor of i folded into the symbol
//	              itself, so every product carries a real prefactor.
//	              Preferred basis for noise operators.
//
// All types are closed enumerations with an identity element; every table
// is total over its alphabet. Multiplication across different alphabets is
// deliberately not defined — convert first (see the *To* functions).
package symbols
