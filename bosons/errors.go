// SPDX-License-Identifier: MIT
// Package bosons: sentinel error set.

package bosons

import "errors"

var (
	// ErrFromString indicates a malformed canonical product string.
	ErrFromString = errors.New("bosons: malformed product string")

	// ErrNonHermitian indicates a Hamiltonian was given a non-real
	// coefficient for a self-adjoint key.
	ErrNonHermitian = errors.New("bosons: non-Hermitian coefficient")

	// ErrNumberModesExceeded indicates a product references a mode index at
	// or beyond the container's declared number of modes.
	ErrNumberModesExceeded = errors.New("bosons: number of modes exceeded")
)
