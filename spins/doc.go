// Package spins implements the spin-product family and its containers.
//
// 🚀 What lives here?
//
//	Products — immutable, canonically-ordered monomials of single-site
//	symbols, one per distinct site, sorted by ascending site index:
//	  • PauliProduct       — sites carry Pauli X/Y/Z ("0X1Z")
//	  • PlusMinusProduct   — sites carry +/-/Z ("0+2Z")
//	  • DecoherenceProduct — sites carry X/iY/Z ("0X1iY")
//
//	Containers — insertion-ordered maps from a product to a complex
//	coefficient, with exact-zero entries removed on write:
//	  • PauliOperator / PlusMinusOperator
//	  • PauliHamiltonian (real coefficients enforced)
//	  • PauliLindbladNoiseOperator (pairs of decoherence products)
//
// Products are value types: every mutating-looking method (Set, X, Y, Z,
// Concatenate, ...) returns a new product and leaves the receiver intact.
// Equality, hashing and ordering all derive from the canonical string form,
// and Parse(p.String()) == p holds for every valid product.
//
// Multiplication is only defined between products of the same alphabet;
// use the *To* conversion functions to move between alphabets first. The
// Pauli and decoherence alphabets multiply to a single weighted product,
// the plus-minus alphabet may branch (and may annihilate to nothing).
package spins
