// Package fermions implements the fermionic-mode product family and its
// containers.
//
// A FermionProduct is a normal-ordered monomial f†_{i1}···f†_{in} f_{j1}···f_{jm}
// stored as two strictly-ascending mode-index lists. Pauli exclusion makes
// repeated indices unphysical: construction rejects them with
// ErrDuplicateIndex, and multiplication whose merge would repeat an index
// is algebraically zero (an empty result, not an error).
//
// Every reordering of fermionic operators pays an anticommutation sign:
// multiplication counts the transpositions needed to interleave the two
// operands' creator blocks, their annihilator blocks, and to move the
// right operand's creators past the left operand's annihilators, and the
// result carries (-1) to that parity. CreateValidPair folds the sign of
// sorting raw input into the accompanying coefficient.
//
// Canonical string form: "c0c1a0a2" (creators then annihilators, indices
// strictly ascending), "I" for the empty product.
package fermions
