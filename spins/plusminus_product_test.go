package spins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qualgebra/qualgebra/spins"
)

func TestPlusMinusProductParseAndString(t *testing.T) {
	p, err := spins.ParsePlusMinusProduct("0+2Z")
	require.NoError(t, err)
	require.Equal(t, "0+2Z", p.String())
	require.True(t, p.Equal(spins.NewPlusMinusProduct().Plus(0).Z(2)))

	for _, bad := range []string{"", "2Z0+", "0+0-", "0I"} {
		_, err := spins.ParsePlusMinusProduct(bad)
		require.ErrorIs(t, err, spins.ErrFromString, "input %q", bad)
	}
}

func TestPlusMinusProductHermitianConjugate(t *testing.T) {
	p, err := spins.ParsePlusMinusProduct("0+")
	require.NoError(t, err)
	conj, sign := p.HermitianConjugate()
	require.Equal(t, "0-", conj.String())
	require.Equal(t, 1.0, sign)

	// Double conjugation is the identity.
	back, sign := conj.HermitianConjugate()
	require.True(t, back.Equal(p))
	require.Equal(t, 1.0, sign)

	zOnly := spins.NewPlusMinusProduct().Z(0).Z(4)
	require.True(t, zOnly.IsNaturalHermitian())
	require.False(t, p.IsNaturalHermitian())
}

func TestPlusMinusProductMulNilpotent(t *testing.T) {
	plus := spins.NewPlusMinusProduct().Plus(0)
	require.Empty(t, plus.Mul(plus), "0+ · 0+ annihilates")

	// Annihilation at one site kills branches created elsewhere.
	wide := spins.NewPlusMinusProduct().Plus(0).Plus(1)
	other := spins.NewPlusMinusProduct().Minus(0).Plus(1)
	require.Empty(t, wide.Mul(other), "nilpotent site 1 must cancel the site-0 branching")
}

func TestPlusMinusProductMulBranching(t *testing.T) {
	plus := spins.NewPlusMinusProduct().Plus(0)
	minus := spins.NewPlusMinusProduct().Minus(0)

	branches := plus.Mul(minus)
	require.Len(t, branches, 2, "0+ · 0- splits over I and Z")
	require.Equal(t, "I", branches[0].Product.String())
	require.Equal(t, complex128(2), branches[0].Weight)
	require.Equal(t, "0Z", branches[1].Product.String())
	require.Equal(t, complex128(2), branches[1].Weight)

	branches = minus.Mul(plus)
	require.Len(t, branches, 2)
	require.Equal(t, complex128(-2), branches[1].Weight, "0- · 0+ carries -2 on the Z branch")

	// A spectator site rides along every branch.
	spectator := spins.NewPlusMinusProduct().Plus(0).Z(1)
	branches = spectator.Mul(minus)
	require.Len(t, branches, 2)
	require.Equal(t, "1Z", branches[0].Product.String())
	require.Equal(t, "0Z1Z", branches[1].Product.String())
}

func TestPlusMinusProductZMul(t *testing.T) {
	plus := spins.NewPlusMinusProduct().Plus(0)
	z := spins.NewPlusMinusProduct().Z(0)

	branches := plus.Mul(z)
	require.Len(t, branches, 1)
	require.Equal(t, "0+", branches[0].Product.String())
	require.Equal(t, complex128(-1), branches[0].Weight, "+ · Z = -(+)")

	branches = z.Mul(plus)
	require.Len(t, branches, 1)
	require.Equal(t, complex128(1), branches[0].Weight, "Z · + = +")
}

func TestPlusMinusProductMulAssociativity(t *testing.T) {
	pool := []spins.PlusMinusProduct{
		spins.NewPlusMinusProduct().Plus(0),
		spins.NewPlusMinusProduct().Minus(0),
		spins.NewPlusMinusProduct().Z(0).Plus(1),
		spins.NewPlusMinusProduct().Minus(1),
	}
	sum := func(into map[string]complex128, terms []spins.PlusMinusTerm, scale complex128) {
		for _, term := range terms {
			into[term.Product.String()] += scale * term.Weight
		}
	}
	prune := func(m map[string]complex128) {
		for k, v := range m {
			if v == 0 {
				delete(m, k)
			}
		}
	}

	for _, a := range pool {
		for _, b := range pool {
			for _, c := range pool {
				left := map[string]complex128{}
				for _, ab := range a.Mul(b) {
					sum(left, ab.Product.Mul(c), ab.Weight)
				}
				right := map[string]complex128{}
				for _, bc := range b.Mul(c) {
					sum(right, a.Mul(bc.Product), bc.Weight)
				}
				prune(left)
				prune(right)
				require.Equal(t, left, right, "(%s · %s) · %s", a, b, c)
			}
		}
	}
}
