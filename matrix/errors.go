// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All entry points return these
// sentinels (wrapped with context via fmt.Errorf("...: %w", ...)); tests
// match them with errors.Is.

package matrix

import "errors"

var (
	// ErrTooManyQubits is returned when the requested dimension 2^n would
	// exceed MaxQubits, before any allocation happens.
	ErrTooManyQubits = errors.New("matrix: number of qubits exceeds MaxQubits")

	// ErrInvalidDimension is returned for a non-positive qubit count.
	ErrInvalidDimension = errors.New("matrix: number of qubits must be > 0")

	// ErrProductTooWide is returned when an operator touches a qubit at or
	// beyond the requested dimension.
	ErrProductTooWide = errors.New("matrix: product exceeds requested number of qubits")
)
