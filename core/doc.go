// Package core provides the shared plumbing under every qualgebra family:
// the numeric tolerance policy, index-ordering utilities (sorted merges with
// inversion counting, transposition-parity sorts, duplicate scans) and the
// generic insertion-ordered coefficient map used by all operator containers.
//
// All helpers are pure functions over plain slices; Coefficients is the only
// mutable type and is not safe for concurrent use — callers needing
// concurrency must serialize access externally.
package core
