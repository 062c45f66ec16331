package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/fermions"
	"github.com/qualgebra/qualgebra/serialize"
	"github.com/qualgebra/qualgebra/spins"
)

func samplePauliOperator(t *testing.T) *spins.PauliOperator {
	t.Helper()
	op := spins.NewPauliOperator()
	require.NoError(t, op.Set(spins.NewPauliProduct().X(0).Z(2), 0.5))
	require.NoError(t, op.Set(spins.NewPauliProduct().Y(1), -1i))
	return op
}

func TestPauliOperatorJSONRoundTrip(t *testing.T) {
	op := samplePauliOperator(t)

	data, err := serialize.PauliOperatorToJSON(op)
	require.NoError(t, err)
	require.Contains(t, string(data), `"schema_version":"1.0.0"`)
	require.Contains(t, string(data), `"0X2Z"`)

	back, err := serialize.PauliOperatorFromJSON(data)
	require.NoError(t, err)
	require.Equal(t, op.Len(), back.Len())
	require.Equal(t, complex128(0.5), back.Get(spins.NewPauliProduct().X(0).Z(2)))
	require.Equal(t, -1i, back.Get(spins.NewPauliProduct().Y(1)))
}

func TestPauliOperatorBinaryRoundTrip(t *testing.T) {
	op := samplePauliOperator(t)

	data, err := serialize.PauliOperatorToBinary(op)
	require.NoError(t, err)

	back, err := serialize.PauliOperatorFromBinary(data)
	require.NoError(t, err)
	require.Equal(t, complex128(0.5), back.Get(spins.NewPauliProduct().X(0).Z(2)))
	require.Equal(t, -1i, back.Get(spins.NewPauliProduct().Y(1)))
}

func TestFermionOperatorRoundTrip(t *testing.T) {
	op := fermions.NewFermionOperator()
	hop, err := fermions.NewFermionProduct([]int{0}, []int{1})
	require.NoError(t, err)
	require.NoError(t, op.Set(hop, 1+2i))

	data, err := serialize.FermionOperatorToBinary(op)
	require.NoError(t, err)
	back, err := serialize.FermionOperatorFromBinary(data)
	require.NoError(t, err)
	require.Equal(t, 1+2i, back.Get(hop))

	jsonData, err := serialize.FermionOperatorToJSON(op)
	require.NoError(t, err)
	back, err = serialize.FermionOperatorFromJSON(jsonData)
	require.NoError(t, err)
	require.Equal(t, 1+2i, back.Get(hop))
}

func TestPauliNoiseRoundTrip(t *testing.T) {
	noise := spins.NewPauliLindbladNoiseOperator()
	left := spins.NewDecoherenceProduct().X(0)
	right := spins.NewDecoherenceProduct().IY(0)
	require.NoError(t, noise.Set(left, right, 0.25i))

	data, err := serialize.PauliNoiseToJSON(noise)
	require.NoError(t, err)
	back, err := serialize.PauliNoiseFromJSON(data)
	require.NoError(t, err)
	require.Equal(t, 0.25i, back.Get(left, right))
	require.Equal(t, 1, back.Len())
}

func TestDecodeRejectsWrongType(t *testing.T) {
	op := samplePauliOperator(t)
	data, err := serialize.PauliOperatorToJSON(op)
	require.NoError(t, err)

	_, err = serialize.FermionOperatorFromJSON(data)
	require.ErrorIs(t, err, serialize.ErrTypeMismatch)
}

func TestDecodeRejectsVersions(t *testing.T) {
	env := serialize.PauliOperatorEnvelope(samplePauliOperator(t))

	env.SchemaVersion = "2.0.0"
	_, err := serialize.EnvelopeToPauliOperator(env)
	require.ErrorIs(t, err, serialize.ErrVersionMismatch, "newer major schema must be refused")

	env.SchemaVersion = "0.9.0"
	_, err = serialize.EnvelopeToPauliOperator(env)
	require.ErrorIs(t, err, serialize.ErrVersionMismatch, "pre-support schema must be refused")

	env.SchemaVersion = "not-a-version"
	_, err = serialize.EnvelopeToPauliOperator(env)
	require.ErrorIs(t, err, serialize.ErrInvalidVersion)

	// Newer minor versions of the current major still decode.
	env.SchemaVersion = "1.3.0"
	_, err = serialize.EnvelopeToPauliOperator(env)
	require.NoError(t, err)
}

func TestDecodeRejectsMalformedKeys(t *testing.T) {
	env := serialize.Envelope{
		SchemaVersion: serialize.SchemaVersion,
		Type:          serialize.TypePauliOperator,
		Terms:         []serialize.Term{{Product: "1Z0X", Re: 1}},
	}
	_, err := serialize.EnvelopeToPauliOperator(env)
	require.ErrorIs(t, err, spins.ErrFromString, "non-canonical keys must not decode")

	_, err = serialize.DecodeJSON([]byte("{not json"))
	require.Error(t, err)
}
