// SPDX-License-Identifier: MIT

// Package core: index-ordering utilities.
// Canonical products keep their mode indices in ascending order; these
// helpers establish that order and account for the bookkeeping it costs
// (inversion counts for fermionic signs, duplicate detection for Pauli
// exclusion and index collisions).

package core

import "sort"

// IsAscending reports whether xs is sorted in non-decreasing order.
func IsAscending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}

// IsStrictlyAscending reports whether xs is sorted with no repeats.
func IsStrictlyAscending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// FirstDuplicate returns the first repeated value in xs and true, scanning a
// sorted slice. The second result is false when all values are distinct.
func FirstDuplicate(xs []int) (int, bool) {
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return xs[i], true
		}
	}
	return 0, false
}

// MergeSorted interleaves two ascending slices into one ascending slice and
// counts the crossings: the number of pairs (x ∈ a, y ∈ b) with y < x, i.e.
// the transpositions needed to move elements of b leftward past elements of
// a. Ties (x == y) are not crossings; b's element is placed after a's.
//
// The crossing count is exactly the anticommutation parity contribution of
// merging two already-ordered fermionic operator blocks.
// Complexity: O(len(a) + len(b)).
func MergeSorted(a, b []int) (merged []int, crossings int) {
	merged = make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			// b[j] jumps the remaining len(a)-i elements of a.
			crossings += len(a) - i
			merged = append(merged, b[j])
			j++
		} else {
			merged = append(merged, a[i])
			i++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged, crossings
}

// SortCounted returns a sorted copy of xs together with the parity of the
// permutation applied: +1 for an even number of transpositions, -1 for odd.
// Complexity: O(n²) — inputs here are short operator index lists.
func SortCounted(xs []int) (sorted []int, parity int) {
	sorted = append([]int(nil), xs...)
	inversions := 0
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				inversions++
			}
		}
	}
	sort.Ints(sorted)
	if inversions%2 == 1 {
		return sorted, -1
	}
	return sorted, 1
}

// SortedCopy returns xs sorted ascending without mutating the input.
func SortedCopy(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

// CompareIndexSlices orders two index slices lexicographically, with a
// shorter slice ordered before any strict extension of it. Returns -1, 0
// or +1. Used by Hermitian product variants to pick the canonical
// orientation between a term and its conjugate.
func CompareIndexSlices(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
