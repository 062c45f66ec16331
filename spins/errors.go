// SPDX-License-Identifier: MIT
// Package spins: sentinel error set (unified, consistent).
// All fallible operations return these sentinels, optionally wrapped with
// token context via fmt.Errorf("...: %w", ErrX); tests match with errors.Is.
// No operation panics on user input.

package spins

import "errors"

var (
	// ErrIndexOccupied indicates two products being concatenated or remapped
	// collide on a site index.
	ErrIndexOccupied = errors.New("spins: site index already occupied")

	// ErrFromString indicates a malformed canonical product string: bad index
	// token, out-of-alphabet symbol, duplicate or descending site index.
	ErrFromString = errors.New("spins: malformed product string")

	// ErrNonHermitian indicates a Hamiltonian was given a non-real
	// coefficient for a self-adjoint key.
	ErrNonHermitian = errors.New("spins: non-Hermitian coefficient")

	// ErrNumberSpinsExceeded indicates a product references a site index at
	// or beyond the container's declared number of spins.
	ErrNumberSpinsExceeded = errors.New("spins: number of spins exceeded")
)
