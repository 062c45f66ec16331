// SPDX-License-Identifier: MIT

// Package spins: product-level basis conversion.
// A full product expands as the Cartesian product of the single-site
// expansion tables (symbols package) over its sites. The defining
// correctness property is that coefficients of coinciding target keys are
// summed, never overwritten: converting any product to another basis and
// back reproduces it with total prefactor 1.

package spins

import "github.com/qualgebra/qualgebra/symbols"

// PauliProductToPlusMinus expands a Pauli product in the plus-minus basis.
// Each X or Y site doubles the number of branches.
func PauliProductToPlusMinus(p PauliProduct) []PlusMinusTerm {
	branches := expandSites(p.sites,
		func(s symbols.Pauli) []weighted[symbols.PlusMinus] {
			opts := symbols.PauliToPlusMinus(s)
			out := make([]weighted[symbols.PlusMinus], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.PlusMinus]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.PlusMinus.IsIdentity,
	)
	out := make([]PlusMinusTerm, len(branches))
	for i, br := range branches {
		out[i] = PlusMinusTerm{Product: PlusMinusProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}

// PlusMinusProductToPauli expands a plus-minus product in the Pauli basis.
// Each + or - site doubles the number of branches.
func PlusMinusProductToPauli(p PlusMinusProduct) []PauliTerm {
	branches := expandSites(p.sites,
		func(s symbols.PlusMinus) []weighted[symbols.Pauli] {
			opts := symbols.PlusMinusToPauli(s)
			out := make([]weighted[symbols.Pauli], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.Pauli]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.Pauli.IsIdentity,
	)
	out := make([]PauliTerm, len(branches))
	for i, br := range branches {
		out[i] = PauliTerm{Product: PauliProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}

// PauliProductToDecoherence expands a Pauli product in the decoherence
// basis: a one-to-one relabeling where each Y site contributes a factor -i.
func PauliProductToDecoherence(p PauliProduct) []DecoherenceTerm {
	branches := expandSites(p.sites,
		func(s symbols.Pauli) []weighted[symbols.Decoherence] {
			opts := symbols.PauliToDecoherence(s)
			out := make([]weighted[symbols.Decoherence], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.Decoherence]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.Decoherence.IsIdentity,
	)
	out := make([]DecoherenceTerm, len(branches))
	for i, br := range branches {
		out[i] = DecoherenceTerm{Product: DecoherenceProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}

// DecoherenceProductToPauli expands a decoherence product in the Pauli
// basis: the inverse relabeling, each iY site contributing a factor i.
func DecoherenceProductToPauli(p DecoherenceProduct) []PauliTerm {
	branches := expandSites(p.sites,
		func(s symbols.Decoherence) []weighted[symbols.Pauli] {
			opts := symbols.DecoherenceToPauli(s)
			out := make([]weighted[symbols.Pauli], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.Pauli]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.Pauli.IsIdentity,
	)
	out := make([]PauliTerm, len(branches))
	for i, br := range branches {
		out[i] = PauliTerm{Product: PauliProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}

// PlusMinusProductToDecoherence expands a plus-minus product in the
// decoherence basis.
func PlusMinusProductToDecoherence(p PlusMinusProduct) []DecoherenceTerm {
	branches := expandSites(p.sites,
		func(s symbols.PlusMinus) []weighted[symbols.Decoherence] {
			opts := symbols.PlusMinusToDecoherence(s)
			out := make([]weighted[symbols.Decoherence], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.Decoherence]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.Decoherence.IsIdentity,
	)
	out := make([]DecoherenceTerm, len(branches))
	for i, br := range branches {
		out[i] = DecoherenceTerm{Product: DecoherenceProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}

// DecoherenceProductToPlusMinus expands a decoherence product in the
// plus-minus basis.
func DecoherenceProductToPlusMinus(p DecoherenceProduct) []PlusMinusTerm {
	branches := expandSites(p.sites,
		func(s symbols.Decoherence) []weighted[symbols.PlusMinus] {
			opts := symbols.DecoherenceToPlusMinus(s)
			out := make([]weighted[symbols.PlusMinus], len(opts))
			for i, w := range opts {
				out[i] = weighted[symbols.PlusMinus]{op: w.Op, w: w.Weight}
			}
			return out
		},
		symbols.PlusMinus.IsIdentity,
	)
	out := make([]PlusMinusTerm, len(branches))
	for i, br := range branches {
		out[i] = PlusMinusTerm{Product: PlusMinusProduct{sites: br.sites}, Weight: br.w}
	}
	return out
}
