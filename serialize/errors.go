// SPDX-License-Identifier: MIT
// Package serialize: sentinel error set.

package serialize

import "errors"

var (
	// ErrInvalidVersion indicates an envelope whose schema_version field is
	// not a parseable semantic version.
	ErrInvalidVersion = errors.New("serialize: invalid schema version")

	// ErrVersionMismatch indicates an envelope written under a schema this
	// build cannot read (newer major version, or older than
	// MinSupportedVersion).
	ErrVersionMismatch = errors.New("serialize: unsupported schema version")

	// ErrTypeMismatch indicates an envelope whose type field names a
	// different container than the decoder expects.
	ErrTypeMismatch = errors.New("serialize: container type mismatch")
)
