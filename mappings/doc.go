// Package mappings translates operators between particle types. The only
// mapping implemented is the Jordan-Wigner transform, which encodes
// fermionic modes into qubits:
//
//	c†_i ↦ ½ · Z_0 ⋯ Z_{i-1} · σ⁻_i
//	c_j  ↦ ½ · Z_0 ⋯ Z_{j-1} · σ⁺_j
//
// where σ± are the plus-minus alphabet symbols (σ± = X ± iY) and the Z
// string keeps track of fermionic exchange phases. Products map to
// products of the per-mode images, operators extend linearly, Hamiltonians
// stay Hermitian, and Lindblad noise operators map pairwise with the rate
// of (L, R) transported to every image pair weighted by the conjugated
// right-side coefficients.
package mappings
