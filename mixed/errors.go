// SPDX-License-Identifier: MIT
// Package mixed: sentinel error set.

package mixed

import "errors"

var (
	// ErrMismatchedSubsystems indicates two mixed products or containers
	// with different subsystem counts were combined.
	ErrMismatchedSubsystems = errors.New("mixed: mismatched number of subsystems")

	// ErrFromString indicates a malformed canonical mixed-product string.
	ErrFromString = errors.New("mixed: malformed product string")
)
