package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/symbols"
)

func TestDecoherenceStringAndParse(t *testing.T) {
	for _, tc := range []struct {
		d symbols.Decoherence
		s string
	}{
		{symbols.DecoherenceI, "I"},
		{symbols.DecoherenceX, "X"},
		{symbols.DecoherenceIY, "iY"},
		{symbols.DecoherenceZ, "Z"},
	} {
		require.Equal(t, tc.s, tc.d.String())
		parsed, err := symbols.ParseDecoherence(tc.s)
		require.NoError(t, err)
		require.Equal(t, tc.d, parsed)
	}

	_, err := symbols.ParseDecoherence("Y")
	require.ErrorIs(t, err, symbols.ErrUnknownSymbol, "plain Y is not in the decoherence alphabet")
}

func TestMulDecoherenceClosedOverReals(t *testing.T) {
	for _, tc := range []struct {
		a, b, want symbols.Decoherence
		sign       float64
	}{
		{symbols.DecoherenceX, symbols.DecoherenceX, symbols.DecoherenceI, 1},
		{symbols.DecoherenceZ, symbols.DecoherenceZ, symbols.DecoherenceI, 1},
		{symbols.DecoherenceIY, symbols.DecoherenceIY, symbols.DecoherenceI, -1},
		{symbols.DecoherenceX, symbols.DecoherenceIY, symbols.DecoherenceZ, -1},
		{symbols.DecoherenceIY, symbols.DecoherenceX, symbols.DecoherenceZ, 1},
		{symbols.DecoherenceX, symbols.DecoherenceZ, symbols.DecoherenceIY, -1},
		{symbols.DecoherenceZ, symbols.DecoherenceX, symbols.DecoherenceIY, 1},
		{symbols.DecoherenceIY, symbols.DecoherenceZ, symbols.DecoherenceX, -1},
		{symbols.DecoherenceZ, symbols.DecoherenceIY, symbols.DecoherenceX, 1},
		{symbols.DecoherenceI, symbols.DecoherenceIY, symbols.DecoherenceIY, 1},
	} {
		got, sign := symbols.MulDecoherence(tc.a, tc.b)
		require.Equal(t, tc.want, got, "%v * %v", tc.a, tc.b)
		require.Equal(t, tc.sign, sign, "%v * %v sign", tc.a, tc.b)
	}
}

func TestDecoherenceHermitianConjugate(t *testing.T) {
	conj, sign := symbols.DecoherenceIY.HermitianConjugate()
	require.Equal(t, symbols.DecoherenceIY, conj)
	require.Equal(t, -1.0, sign, "(iY)† = -iY")

	for _, d := range []symbols.Decoherence{symbols.DecoherenceI, symbols.DecoherenceX, symbols.DecoherenceZ} {
		conj, sign := d.HermitianConjugate()
		require.Equal(t, d, conj)
		require.Equal(t, 1.0, sign)
	}
}
