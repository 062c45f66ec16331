// Package bosons implements the bosonic-mode product family and its
// containers.
//
// A BosonProduct is a normal-ordered monomial b†_{i1}···b†_{in} b_{j1}···b_{jm}
// stored as two ascending mode-index lists (creators, annihilators).
// Repeated indices are allowed — raising one mode twice is physical for
// bosons — and bosonic reordering carries no sign, so multiplication is a
// plain merge with prefactor 1.
//
// The Hermitian variant maps a term and its adjoint to one canonical
// representative, so that Hermitian containers (Hamiltonians) can store
// half the terms; CreateValidPair folds the orientation flip into the
// coefficient.
//
// Canonical string form: "c0c1a0a2" (creators then annihilators, indices
// ascending), "I" for the empty product.
package bosons
