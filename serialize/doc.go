// Package serialize persists operator containers as versioned envelopes.
//
// An Envelope is a flat, schema-versioned record: the container type name,
// the canonical string of every stored product, and its coefficient split
// into real and imaginary parts. Envelopes encode to JSON (human-readable
// interchange) and to MessagePack (compact binary), and decoding rebuilds
// the container through the canonical parsers, so any malformed key is
// rejected with the owning package's parse error.
//
// Versioning follows semantic versioning: an envelope written by a newer
// major schema, or older than MinSupportedVersion, fails to decode with
// ErrVersionMismatch rather than being misread.
package serialize
