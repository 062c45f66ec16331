// SPDX-License-Identifier: MIT

package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/qualgebra/qualgebra/bosons"
	"github.com/qualgebra/qualgebra/fermions"
	"github.com/qualgebra/qualgebra/spins"
)

// EncodeJSON renders an envelope as JSON.
func EncodeJSON(env Envelope) ([]byte, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("serialize: encode json: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON envelope without interpreting its terms.
func DecodeJSON(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("serialize: decode json: %w", err)
	}
	return env, nil
}

// EncodeBinary renders an envelope as MessagePack.
func EncodeBinary(env Envelope) ([]byte, error) {
	data, err := msgpack.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("serialize: encode binary: %w", err)
	}
	return data, nil
}

// DecodeBinary parses a MessagePack envelope without interpreting its
// terms.
func DecodeBinary(data []byte) (Envelope, error) {
	var env Envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("serialize: decode binary: %w", err)
	}
	return env, nil
}

// PauliOperatorToJSON serializes a Pauli operator to JSON.
func PauliOperatorToJSON(op *spins.PauliOperator) ([]byte, error) {
	return EncodeJSON(PauliOperatorEnvelope(op))
}

// PauliOperatorFromJSON deserializes a Pauli operator from JSON.
func PauliOperatorFromJSON(data []byte) (*spins.PauliOperator, error) {
	env, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToPauliOperator(env)
}

// PauliOperatorToBinary serializes a Pauli operator to MessagePack.
func PauliOperatorToBinary(op *spins.PauliOperator) ([]byte, error) {
	return EncodeBinary(PauliOperatorEnvelope(op))
}

// PauliOperatorFromBinary deserializes a Pauli operator from MessagePack.
func PauliOperatorFromBinary(data []byte) (*spins.PauliOperator, error) {
	env, err := DecodeBinary(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToPauliOperator(env)
}

// BosonOperatorToJSON serializes a boson operator to JSON.
func BosonOperatorToJSON(op *bosons.BosonOperator) ([]byte, error) {
	return EncodeJSON(BosonOperatorEnvelope(op))
}

// BosonOperatorFromJSON deserializes a boson operator from JSON.
func BosonOperatorFromJSON(data []byte) (*bosons.BosonOperator, error) {
	env, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToBosonOperator(env)
}

// BosonOperatorToBinary serializes a boson operator to MessagePack.
func BosonOperatorToBinary(op *bosons.BosonOperator) ([]byte, error) {
	return EncodeBinary(BosonOperatorEnvelope(op))
}

// BosonOperatorFromBinary deserializes a boson operator from MessagePack.
func BosonOperatorFromBinary(data []byte) (*bosons.BosonOperator, error) {
	env, err := DecodeBinary(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToBosonOperator(env)
}

// FermionOperatorToJSON serializes a fermion operator to JSON.
func FermionOperatorToJSON(op *fermions.FermionOperator) ([]byte, error) {
	return EncodeJSON(FermionOperatorEnvelope(op))
}

// FermionOperatorFromJSON deserializes a fermion operator from JSON.
func FermionOperatorFromJSON(data []byte) (*fermions.FermionOperator, error) {
	env, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToFermionOperator(env)
}

// FermionOperatorToBinary serializes a fermion operator to MessagePack.
func FermionOperatorToBinary(op *fermions.FermionOperator) ([]byte, error) {
	return EncodeBinary(FermionOperatorEnvelope(op))
}

// FermionOperatorFromBinary deserializes a fermion operator from
// MessagePack.
func FermionOperatorFromBinary(data []byte) (*fermions.FermionOperator, error) {
	env, err := DecodeBinary(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToFermionOperator(env)
}

// PauliNoiseToJSON serializes a Lindblad noise operator to JSON.
func PauliNoiseToJSON(op *spins.PauliLindbladNoiseOperator) ([]byte, error) {
	return EncodeJSON(PauliNoiseEnvelope(op))
}

// PauliNoiseFromJSON deserializes a Lindblad noise operator from JSON.
func PauliNoiseFromJSON(data []byte) (*spins.PauliLindbladNoiseOperator, error) {
	env, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToPauliNoise(env)
}

// PauliNoiseToBinary serializes a Lindblad noise operator to MessagePack.
func PauliNoiseToBinary(op *spins.PauliLindbladNoiseOperator) ([]byte, error) {
	return EncodeBinary(PauliNoiseEnvelope(op))
}

// PauliNoiseFromBinary deserializes a Lindblad noise operator from
// MessagePack.
func PauliNoiseFromBinary(data []byte) (*spins.PauliLindbladNoiseOperator, error) {
	env, err := DecodeBinary(data)
	if err != nil {
		return nil, err
	}
	return EnvelopeToPauliNoise(env)
}
