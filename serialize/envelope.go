// SPDX-License-Identifier: MIT

package serialize

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/qualgebra/qualgebra/bosons"
	"github.com/qualgebra/qualgebra/fermions"
	"github.com/qualgebra/qualgebra/spins"
)

// SchemaVersion is the schema written by this build.
const SchemaVersion = "1.0.0"

// MinSupportedVersion is the oldest schema this build still reads.
const MinSupportedVersion = "1.0.0"

// Container type tags stored in Envelope.Type.
const (
	TypePauliOperator   = "PauliOperator"
	TypeBosonOperator   = "BosonOperator"
	TypeFermionOperator = "FermionOperator"
	TypePauliNoise      = "PauliLindbladNoiseOperator"
)

// Term is one serialized (product, coefficient) entry. The coefficient is
// split into parts because neither JSON nor MessagePack has a native
// complex type.
type Term struct {
	Product string  `json:"product" msgpack:"product"`
	Re      float64 `json:"re" msgpack:"re"`
	Im      float64 `json:"im,omitempty" msgpack:"im"`
}

// PairTerm is one serialized noise entry: a (left, right) product pair and
// its rate.
type PairTerm struct {
	Left  string  `json:"left" msgpack:"left"`
	Right string  `json:"right" msgpack:"right"`
	Re    float64 `json:"re" msgpack:"re"`
	Im    float64 `json:"im,omitempty" msgpack:"im"`
}

// Envelope is the flat on-wire record for any container.
type Envelope struct {
	SchemaVersion string     `json:"schema_version" msgpack:"schema_version"`
	Type          string     `json:"type" msgpack:"type"`
	Terms         []Term     `json:"terms,omitempty" msgpack:"terms"`
	Pairs         []PairTerm `json:"pairs,omitempty" msgpack:"pairs"`
}

// checkEnvelope gates an envelope on type tag and schema version before
// any key is parsed.
func checkEnvelope(env Envelope, wantType string) error {
	if env.Type != wantType {
		return fmt.Errorf("serialize: envelope holds %q, want %q: %w", env.Type, wantType, ErrTypeMismatch)
	}
	v, err := semver.NewVersion(env.SchemaVersion)
	if err != nil {
		return fmt.Errorf("serialize: schema version %q: %w", env.SchemaVersion, ErrInvalidVersion)
	}
	current := semver.MustParse(SchemaVersion)
	oldest := semver.MustParse(MinSupportedVersion)
	if v.Major() > current.Major() || v.LessThan(oldest) {
		return fmt.Errorf("serialize: schema version %q outside [%s, %d.x]: %w",
			env.SchemaVersion, MinSupportedVersion, current.Major(), ErrVersionMismatch)
	}
	return nil
}

// PauliOperatorEnvelope flattens a Pauli operator.
func PauliOperatorEnvelope(op *spins.PauliOperator) Envelope {
	env := Envelope{SchemaVersion: SchemaVersion, Type: TypePauliOperator}
	for _, t := range op.Terms() {
		env.Terms = append(env.Terms, Term{Product: t.Product.String(), Re: real(t.Weight), Im: imag(t.Weight)})
	}
	return env
}

// EnvelopeToPauliOperator rebuilds a Pauli operator, re-parsing every key.
func EnvelopeToPauliOperator(env Envelope) (*spins.PauliOperator, error) {
	if err := checkEnvelope(env, TypePauliOperator); err != nil {
		return nil, err
	}
	out := spins.NewPauliOperator()
	for _, t := range env.Terms {
		p, err := spins.ParsePauliProduct(t.Product)
		if err != nil {
			return nil, fmt.Errorf("serialize: term %q: %w", t.Product, err)
		}
		if err := out.Add(p, complex(t.Re, t.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// BosonOperatorEnvelope flattens a boson operator.
func BosonOperatorEnvelope(op *bosons.BosonOperator) Envelope {
	env := Envelope{SchemaVersion: SchemaVersion, Type: TypeBosonOperator}
	for _, t := range op.Terms() {
		env.Terms = append(env.Terms, Term{Product: t.Product.String(), Re: real(t.Weight), Im: imag(t.Weight)})
	}
	return env
}

// EnvelopeToBosonOperator rebuilds a boson operator.
func EnvelopeToBosonOperator(env Envelope) (*bosons.BosonOperator, error) {
	if err := checkEnvelope(env, TypeBosonOperator); err != nil {
		return nil, err
	}
	out := bosons.NewBosonOperator()
	for _, t := range env.Terms {
		p, err := bosons.ParseBosonProduct(t.Product)
		if err != nil {
			return nil, fmt.Errorf("serialize: term %q: %w", t.Product, err)
		}
		if err := out.Add(p, complex(t.Re, t.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FermionOperatorEnvelope flattens a fermion operator.
func FermionOperatorEnvelope(op *fermions.FermionOperator) Envelope {
	env := Envelope{SchemaVersion: SchemaVersion, Type: TypeFermionOperator}
	for _, t := range op.Terms() {
		env.Terms = append(env.Terms, Term{Product: t.Product.String(), Re: real(t.Weight), Im: imag(t.Weight)})
	}
	return env
}

// EnvelopeToFermionOperator rebuilds a fermion operator.
func EnvelopeToFermionOperator(env Envelope) (*fermions.FermionOperator, error) {
	if err := checkEnvelope(env, TypeFermionOperator); err != nil {
		return nil, err
	}
	out := fermions.NewFermionOperator()
	for _, t := range env.Terms {
		p, err := fermions.ParseFermionProduct(t.Product)
		if err != nil {
			return nil, fmt.Errorf("serialize: term %q: %w", t.Product, err)
		}
		if err := out.Add(p, complex(t.Re, t.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PauliNoiseEnvelope flattens a Lindblad noise operator as product pairs.
func PauliNoiseEnvelope(op *spins.PauliLindbladNoiseOperator) Envelope {
	env := Envelope{SchemaVersion: SchemaVersion, Type: TypePauliNoise}
	for _, t := range op.Terms() {
		env.Pairs = append(env.Pairs, PairTerm{
			Left:  t.Left.String(),
			Right: t.Right.String(),
			Re:    real(t.Weight),
			Im:    imag(t.Weight),
		})
	}
	return env
}

// EnvelopeToPauliNoise rebuilds a Lindblad noise operator.
func EnvelopeToPauliNoise(env Envelope) (*spins.PauliLindbladNoiseOperator, error) {
	if err := checkEnvelope(env, TypePauliNoise); err != nil {
		return nil, err
	}
	out := spins.NewPauliLindbladNoiseOperator()
	for _, t := range env.Pairs {
		left, err := spins.ParseDecoherenceProduct(t.Left)
		if err != nil {
			return nil, fmt.Errorf("serialize: pair left %q: %w", t.Left, err)
		}
		right, err := spins.ParseDecoherenceProduct(t.Right)
		if err != nil {
			return nil, fmt.Errorf("serialize: pair right %q: %w", t.Right, err)
		}
		if err := out.Add(left, right, complex(t.Re, t.Im)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
