// SPDX-License-Identifier: MIT
// Package fermions: sentinel error set.

package fermions

import "errors"

var (
	// ErrDuplicateIndex indicates a repeated mode index within a creator or
	// annihilator list — forbidden by Pauli exclusion.
	ErrDuplicateIndex = errors.New("fermions: duplicate mode index")

	// ErrFromString indicates a malformed canonical product string.
	ErrFromString = errors.New("fermions: malformed product string")

	// ErrNonHermitian indicates a Hamiltonian was given a non-real
	// coefficient for a self-adjoint key.
	ErrNonHermitian = errors.New("fermions: non-Hermitian coefficient")

	// ErrNumberModesExceeded indicates a product references a mode index at
	// or beyond the container's declared number of modes.
	ErrNumberModesExceeded = errors.New("fermions: number of modes exceeded")
)
