// Package qualgebra is a symbolic algebra toolkit for quantum-mechanical
// operators built from spin, bosonic-mode and fermionic-mode generators.
//
// 🚀 What is qualgebra?
//
//	A pure-Go library for canonical, hashable, serializable operator terms
//	("products") and weighted sums of terms (operators, Hamiltonians,
//	Lindblad noise operators), with the algebra that keeps them physical:
//	  • Pauli / plus-minus / decoherence spin products with exact
//	    multiplication tables
//	  • Bosonic and fermionic products in normal order, with
//	    anticommutation signs tracked exactly
//	  • Mixed products over several spin / boson / fermion subsystems
//	  • Hermitian conjugation and "naturally Hermitian" detection
//	  • Basis conversion between the three spin alphabets
//	  • The Jordan-Wigner fermion→spin transform
//
// ✨ Why choose qualgebra?
//
//   - Deterministic — every product has exactly one canonical form and a
//     stable string round-trip (`0X1Z`, `c0c1a0a1`, `S0X:Bc0a1:Fc0a0`)
//   - Immutable value types — products are cheap to copy and safe to share
//   - Typed errors — every fallible operation returns a sentinel you can
//     match with errors.Is; nothing panics on user input
//   - Single-threaded by design — purely functional over immutable terms
//
// Everything is organized under small cooperating packages:
//
//	core/      — tolerance policy, index-order utilities, ordered coefficient maps
//	symbols/   — single-site operator alphabets and their multiplication tables
//	spins/     — Pauli, plus-minus and decoherence products and containers
//	bosons/    — bosonic-mode products and containers
//	fermions/  — fermionic-mode products (Pauli exclusion, signs) and containers
//	mixed/     — tensor products across named subsystems
//	mappings/  — the Jordan-Wigner transform
//	matrix/    — dense (gonum) and sparse-triplet operator matrices
//	serialize/ — versioned JSON and msgpack envelopes
//
// Quick example:
//
//	p := spins.NewPauliProduct().X(0)
//	q := spins.NewPauliProduct().Y(0)
//	r, w := p.Mul(q) // r = 0Z, w = i
//
//	go get github.com/qualgebra/qualgebra
package qualgebra
