// SPDX-License-Identifier: MIT

// Package spins: shared site-list machinery.
// All three spin product types are the same structure — an ascending,
// duplicate-free list of (site index, non-identity symbol) pairs — over
// different alphabets. The generic helpers below implement the structure
// once; the concrete product types bind them to their alphabet's tables.

package spins

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/qualgebra/qualgebra/core"
)

// site is one (index, symbol) entry of a canonical product.
type site[S any] struct {
	index int
	op    S
}

// weighted is one branch of a single-site multiplication or expansion.
type weighted[S any] struct {
	op S
	w  complex128
}

// weightedSites is one branch of a product-level operation.
type weightedSites[S any] struct {
	sites []site[S]
	w     complex128
}

// setSite returns a copy of sites with index set to op. Identity removes the
// entry. Total function; input slice is never mutated.
func setSite[S any](sites []site[S], index int, op S, identity bool) []site[S] {
	pos := sort.Search(len(sites), func(i int) bool { return sites[i].index >= index })
	found := pos < len(sites) && sites[pos].index == index

	switch {
	case identity && !found:
		return sites
	case identity:
		out := make([]site[S], 0, len(sites)-1)
		out = append(out, sites[:pos]...)
		return append(out, sites[pos+1:]...)
	case found:
		out := append([]site[S](nil), sites...)
		out[pos].op = op
		return out
	default:
		out := make([]site[S], 0, len(sites)+1)
		out = append(out, sites[:pos]...)
		out = append(out, site[S]{index: index, op: op})
		return append(out, sites[pos:]...)
	}
}

// getSite returns the symbol stored at index, or zeroS when absent.
func getSite[S any](sites []site[S], index int, zeroS S) S {
	pos := sort.Search(len(sites), func(i int) bool { return sites[i].index >= index })
	if pos < len(sites) && sites[pos].index == index {
		return sites[pos].op
	}
	return zeroS
}

// formatSites renders the canonical "<index><symbol>" concatenation, or "I"
// for the empty product.
func formatSites[S fmt.Stringer](sites []site[S]) string {
	if len(sites) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, s := range sites {
		b.WriteString(strconv.Itoa(s.index))
		b.WriteString(s.op.String())
	}
	return b.String()
}

// parseSites parses the canonical concatenation form produced by
// formatSites. It rejects anything formatSites would not emit: empty input,
// identity symbols inside a product, duplicate or descending indices,
// malformed index tokens, and out-of-alphabet symbols.
func parseSites[S any](s string, parse func(string) (S, error), identity func(S) bool) ([]site[S], error) {
	if s == "I" {
		return nil, nil
	}
	if s == "" {
		return nil, fmt.Errorf("empty product string: %w", ErrFromString)
	}
	var sites []site[S]
	last := -1
	for pos := 0; pos < len(s); {
		start := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		if pos == start {
			return nil, fmt.Errorf("expected site index at %q: %w", s[pos:], ErrFromString)
		}
		if pos-start > 1 && s[start] == '0' {
			return nil, fmt.Errorf("leading zero in site index %q: %w", s[start:pos], ErrFromString)
		}
		index, err := strconv.Atoi(s[start:pos])
		if err != nil {
			return nil, fmt.Errorf("site index %q: %w", s[start:pos], ErrFromString)
		}
		start = pos
		for pos < len(s) && (s[pos] < '0' || s[pos] > '9') {
			pos++
		}
		if pos == start {
			return nil, fmt.Errorf("missing symbol after index %d: %w", index, ErrFromString)
		}
		op, err := parse(s[start:pos])
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", index, err)
		}
		if identity(op) {
			return nil, fmt.Errorf("identity symbol at site %d: %w", index, ErrFromString)
		}
		if index <= last {
			return nil, fmt.Errorf("site index %d out of order: %w", index, ErrFromString)
		}
		last = index
		sites = append(sites, site[S]{index: index, op: op})
	}
	return sites, nil
}

// mulSites multiplies two canonical site lists index-by-index through the
// alphabet table, defaulting the missing side to identity. The table may
// branch (plus-minus crossed pairs) or annihilate (nilpotent pairs), so the
// result is a list of weighted site lists — possibly empty, never sharing
// storage with the inputs.
// Complexity: O((n+m)·2^k) where k is the number of branching sites.
func mulSites[S any](
	a, b []site[S],
	mul func(x, y S) []weighted[S],
	identity func(S) bool,
) []weightedSites[S] {
	partials := []weightedSites[S]{{w: 1}}
	i, j := 0, 0
	emit := func(index int, branches []weighted[S]) {
		if len(branches) == 0 {
			partials = nil
			return
		}
		next := make([]weightedSites[S], 0, len(partials)*len(branches))
		for _, p := range partials {
			for _, br := range branches {
				ns := p.sites
				if !identity(br.op) {
					ns = append(append([]site[S](nil), p.sites...), site[S]{index: index, op: br.op})
				}
				next = append(next, weightedSites[S]{sites: ns, w: p.w * br.w})
			}
		}
		partials = next
	}
	for (i < len(a) || j < len(b)) && len(partials) > 0 {
		switch {
		case j >= len(b) || (i < len(a) && a[i].index < b[j].index):
			emit(a[i].index, []weighted[S]{{op: a[i].op, w: 1}})
			i++
		case i >= len(a) || b[j].index < a[i].index:
			emit(b[j].index, []weighted[S]{{op: b[j].op, w: 1}})
			j++
		default:
			emit(a[i].index, mul(a[i].op, b[j].op))
			i++
			j++
		}
	}
	return partials
}

// conjSites conjugates every site symbol and accumulates the real prefactor.
func conjSites[S any](sites []site[S], conj func(S) (S, float64)) ([]site[S], float64) {
	out := make([]site[S], len(sites))
	sign := 1.0
	for i, s := range sites {
		op, pre := conj(s.op)
		out[i] = site[S]{index: s.index, op: op}
		sign *= pre
	}
	return out, sign
}

// concatSites merges two canonical site lists with disjoint index sets.
// Returns the colliding index and false when the sets overlap.
func concatSites[S any](a, b []site[S]) ([]site[S], int, bool) {
	out := make([]site[S], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].index < b[j].index:
			out = append(out, a[i])
			i++
		case b[j].index < a[i].index:
			out = append(out, b[j])
			j++
		default:
			return nil, a[i].index, false
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out, 0, true
}

// remapSites relabels site indices through mapping (indices absent from the
// mapping keep their label) and restores ascending order. Returns the
// colliding index and false when two sites land on the same label.
func remapSites[S any](sites []site[S], mapping map[int]int) ([]site[S], int, bool) {
	out := make([]site[S], len(sites))
	for i, s := range sites {
		index := s.index
		if to, ok := mapping[index]; ok {
			index = to
		}
		out[i] = site[S]{index: index, op: s.op}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	for i := 1; i < len(out); i++ {
		if out[i].index == out[i-1].index {
			return nil, out[i].index, false
		}
	}
	return out, 0, true
}

// expandSites converts a site list into another alphabet: the Cartesian
// product over sites of the single-site expansion table. Identity branches
// are dropped from the emitted site lists; branches with coinciding keys do
// not arise at product level (expansions of distinct non-identity symbols
// stay distinct per site), but callers extending linearly over operators
// must still merge keys by summing.
func expandSites[S, T any](
	sites []site[S],
	table func(S) []weighted[T],
	identity func(T) bool,
) []weightedSites[T] {
	partials := []weightedSites[T]{{w: 1}}
	for _, s := range sites {
		branches := table(s.op)
		next := make([]weightedSites[T], 0, len(partials)*len(branches))
		for _, p := range partials {
			for _, br := range branches {
				ns := p.sites
				if !identity(br.op) {
					ns = append(append([]site[T](nil), p.sites...), site[T]{index: s.index, op: br.op})
				}
				next = append(next, weightedSites[T]{sites: ns, w: p.w * br.w})
			}
		}
		partials = next
	}
	out := partials[:0]
	for _, p := range partials {
		if !core.IsZero(p.w) {
			out = append(out, p)
		}
	}
	return out
}

// currentNumberSpins returns highest site index + 1, or 0 for the empty
// product.
func currentNumberSpins[S any](sites []site[S]) int {
	if len(sites) == 0 {
		return 0
	}
	return sites[len(sites)-1].index + 1
}
