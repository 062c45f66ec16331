package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/symbols"
)

func TestPauliToPlusMinusTables(t *testing.T) {
	// X = ½(+) + ½(-), Y = -½i(+) + ½i(-).
	branches := symbols.PauliToPlusMinus(symbols.PauliX)
	require.Len(t, branches, 2)
	require.Equal(t, symbols.WeightedPlusMinus{Op: symbols.PlusMinusPlus, Weight: 0.5}, branches[0])
	require.Equal(t, symbols.WeightedPlusMinus{Op: symbols.PlusMinusMinus, Weight: 0.5}, branches[1])

	branches = symbols.PauliToPlusMinus(symbols.PauliY)
	require.Len(t, branches, 2)
	require.Equal(t, symbols.WeightedPlusMinus{Op: symbols.PlusMinusPlus, Weight: -0.5i}, branches[0])
	require.Equal(t, symbols.WeightedPlusMinus{Op: symbols.PlusMinusMinus, Weight: 0.5i}, branches[1])

	branches = symbols.PauliToPlusMinus(symbols.PauliZ)
	require.Len(t, branches, 1)
	require.Equal(t, symbols.PlusMinusZ, branches[0].Op)
}

// roundTripPlusMinus expands p through the Pauli table and re-expands each
// Pauli branch back, accumulating total weight per plus-minus symbol.
func roundTripPlusMinus(p symbols.PlusMinus) map[symbols.PlusMinus]complex128 {
	acc := make(map[symbols.PlusMinus]complex128)
	for _, pb := range symbols.PlusMinusToPauli(p) {
		for _, back := range symbols.PauliToPlusMinus(pb.Op) {
			acc[back.Op] += pb.Weight * back.Weight
		}
	}
	return acc
}

func TestPlusMinusPauliRoundTrip(t *testing.T) {
	for _, p := range []symbols.PlusMinus{
		symbols.PlusMinusI, symbols.PlusMinusPlus, symbols.PlusMinusMinus, symbols.PlusMinusZ,
	} {
		acc := roundTripPlusMinus(p)
		require.Equal(t, complex128(1), acc[p], "round trip of %v must reproduce it", p)
		for op, w := range acc {
			if op != p {
				require.Equal(t, complex128(0), w, "round trip of %v leaked onto %v", p, op)
			}
		}
	}
}

func TestPauliDecoherenceRoundTrip(t *testing.T) {
	// Y ↦ -i·iY ↦ (-i)(i)·Y = Y; the other symbols map one-to-one.
	for _, p := range []symbols.Pauli{symbols.PauliI, symbols.PauliX, symbols.PauliY, symbols.PauliZ} {
		branches := symbols.PauliToDecoherence(p)
		require.Len(t, branches, 1, "decoherence relabeling never branches")
		back := symbols.DecoherenceToPauli(branches[0].Op)
		require.Len(t, back, 1)
		require.Equal(t, p, back[0].Op)
		require.Equal(t, complex128(1), branches[0].Weight*back[0].Weight)
	}
}

func TestPlusMinusToDecoherenceTables(t *testing.T) {
	// + = X + iY, - = X - iY (exact in the decoherence alphabet).
	branches := symbols.PlusMinusToDecoherence(symbols.PlusMinusPlus)
	require.Len(t, branches, 2)
	require.Equal(t, symbols.WeightedDecoherence{Op: symbols.DecoherenceX, Weight: 1}, branches[0])
	require.Equal(t, symbols.WeightedDecoherence{Op: symbols.DecoherenceIY, Weight: 1}, branches[1])

	branches = symbols.PlusMinusToDecoherence(symbols.PlusMinusMinus)
	require.Len(t, branches, 2)
	require.Equal(t, symbols.WeightedDecoherence{Op: symbols.DecoherenceIY, Weight: -1}, branches[1])
}

func TestDecoherenceToPlusMinusRoundTrip(t *testing.T) {
	for _, d := range []symbols.Decoherence{
		symbols.DecoherenceI, symbols.DecoherenceX, symbols.DecoherenceIY, symbols.DecoherenceZ,
	} {
		acc := make(map[symbols.Decoherence]complex128)
		for _, pm := range symbols.DecoherenceToPlusMinus(d) {
			for _, back := range symbols.PlusMinusToDecoherence(pm.Op) {
				acc[back.Op] += pm.Weight * back.Weight
			}
		}
		require.Equal(t, complex128(1), acc[d], "round trip of %v must reproduce it", d)
		for op, w := range acc {
			if op != d {
				require.Equal(t, complex128(0), w, "round trip of %v leaked onto %v", d, op)
			}
		}
	}
}
