package primitivity

import (
	"testing"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/poly"
	"github.com/stretchr/testify/require"
)

func mustPoly(t *testing.T, p uint64, coeffs []uint64) *poly.Polynomial {
	t.Helper()
	f, err := poly.New(p, coeffs)
	require.NoError(t, err)
	return f
}

func TestPrimitivePolynomialOverGF5(t *testing.T) {
	// x^4 + x^2 + 2x + 3 over GF(5).
	f := mustPoly(t, 5, []uint64{3, 2, 1, 0, 1})
	po, err := New(f, nil, nil)
	require.NoError(t, err)

	nullity, err := po.Nullity()
	require.NoError(t, err)
	require.Equal(t, 1, nullity)

	irreducible, err := po.IsIrreducible()
	require.NoError(t, err)
	require.True(t, irreducible)

	prim, err := po.IsPrimitive()
	require.NoError(t, err)
	require.True(t, prim)
}

func TestReducibleIsNotPrimitiveOverGF2(t *testing.T) {
	// x^5 + x + 1 over GF(2) is reducible (nullity 2), so it cannot be
	// primitive regardless of the order-of-x test.
	f := mustPoly(t, 2, []uint64{1, 1, 0, 0, 0, 1})
	po, err := New(f, nil, nil)
	require.NoError(t, err)

	nullity, err := po.Nullity()
	require.NoError(t, err)
	require.Equal(t, 2, nullity)

	prim, err := po.IsPrimitive()
	require.NoError(t, err)
	require.False(t, prim)
}

func TestIrreducibleButNotPrimitive(t *testing.T) {
	// x^4+x^3+x^2+x+1 over GF(2) is irreducible (it's the 5th cyclotomic
	// polynomial) but x has order 5, not 2^4-1=15, so it is not primitive.
	f := mustPoly(t, 2, []uint64{1, 1, 1, 1, 1})
	po, err := New(f, nil, nil)
	require.NoError(t, err)

	irreducible, err := po.IsIrreducible()
	require.NoError(t, err)
	require.True(t, irreducible)

	prim, err := po.IsPrimitive()
	require.NoError(t, err)
	require.False(t, prim)
}

func TestDistinctPrimeFactorsOfR(t *testing.T) {
	f := mustPoly(t, 5, []uint64{3, 2, 1, 0, 1})
	po, err := New(f, nil, nil)
	require.NoError(t, err)
	primes, err := po.DistinctPrimeFactorsOfR()
	require.NoError(t, err)
	got := make([]uint64, len(primes))
	for i, q := range primes {
		v, err := q.Uint64()
		require.NoError(t, err)
		got[i] = v
	}
	require.Equal(t, []uint64{2, 3, 13}, got)
}

func TestCountPrimitivePolynomialsGF2Degree36(t *testing.T) {
	f := MonicPolyForTest(t, 36, 2)
	po, err := New(f, nil, nil)
	require.NoError(t, err)
	count, err := po.CountPrimitivePolynomials()
	require.NoError(t, err)
	want := bigint.FromUint64(725594112)
	require.True(t, count.Equals(want))
}

// MonicPolyForTest builds x^n + 1 over GF(p).
func MonicPolyForTest(t *testing.T, n int, p uint64) *poly.Polynomial {
	t.Helper()
	coeffs := make([]uint64, n+1)
	coeffs[n] = 1
	coeffs[0] = 1 // any monic poly of this degree works for r's factorization
	f, err := poly.New(p, coeffs)
	require.NoError(t, err)
	return f
}

func TestResetPolynomialDiscardsCaches(t *testing.T) {
	f := mustPoly(t, 5, []uint64{3, 2, 1, 0, 1})
	po, err := New(f, nil, nil)
	require.NoError(t, err)
	_, err = po.Nullity()
	require.NoError(t, err)

	g := mustPoly(t, 2, []uint64{1, 1, 0, 0, 0, 1})
	require.NoError(t, po.ResetPolynomial(g))
	nullity, err := po.Nullity()
	require.NoError(t, err)
	require.Equal(t, 2, nullity)
}
