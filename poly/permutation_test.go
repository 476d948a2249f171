package poly

import (
	"testing"

	"github.com/bfix/primpoly/data"
	"github.com/stretchr/testify/require"
)

// TestPermutedTermOrderIsIrrelevant rebuilds the same polynomial from its
// monomials summed in every order data.Permutation produces, and checks
// that the result is always the same Polynomial regardless of summation
// order — Add is commutative and associative mod p, so term order must
// not matter.
func TestPermutedTermOrderIsIrrelevant(t *testing.T) {
	p := uint64(7)
	want, err := New(p, []uint64{3, 5, 0, 2})
	require.NoError(t, err)

	monomials := make([]*Polynomial, 0, 4)
	for deg, c := range []uint64{3, 5, 0, 2} {
		if c == 0 {
			continue
		}
		coeffs := make([]uint64, deg+1)
		coeffs[deg] = c
		m, err := New(p, coeffs)
		require.NoError(t, err)
		monomials = append(monomials, m)
	}

	perm := data.NewPermutation(monomials)
	trials := 0
	for {
		order, done := perm.Next()
		if done {
			break
		}
		sum, err := New(p, []uint64{0})
		require.NoError(t, err)
		for _, m := range order {
			sum, err = sum.Add(m)
			require.NoError(t, err)
		}
		require.True(t, want.Equals(sum))
		trials++
	}
	require.Greater(t, trials, 0)
}
