package factor

import (
	"testing"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/modular"
	"github.com/stretchr/testify/require"
)

func TestIsProbablyPrimeSmallCases(t *testing.T) {
	cases := []struct {
		n    uint64
		want bool
	}{
		{0, false}, {1, false}, {2, true}, {3, true},
		{4, false}, {5, true}, {6, false}, {9, false},
		{97, true}, {561, false}, // 561 is a Carmichael number
	}
	for _, c := range cases {
		got := IsProbablyPrime(bigint.FromUint64(c.n), bigint.FromUint64(2))
		require.Equal(t, c.want, got, "n=%d", c.n)
	}
}

func TestIsAlmostSurelyPrimeDeterministicSource(t *testing.T) {
	src := modular.NewBlake3Source([]byte("primality-test-seed"))
	primes := []uint64{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		ok, err := isAlmostSurelyPrimeFrom(bigint.FromUint64(p), src)
		require.NoError(t, err)
		require.True(t, ok, "%d should test prime", p)
	}
	composites := []uint64{4, 6, 8, 9, 15, 561, 1105}
	for _, n := range composites {
		ok, err := isAlmostSurelyPrimeFrom(bigint.FromUint64(n), src)
		require.NoError(t, err)
		require.False(t, ok, "%d should test composite", n)
	}
}

func TestIsAlmostSurelyPrimeLargeMersenneLike(t *testing.T) {
	// 2^13 - 1 = 8191 is prime.
	n := bigint.PowUint64(2, 13)
	n, err := n.Sub(bigint.One())
	require.NoError(t, err)
	ok, err := IsAlmostSurelyPrime(n)
	require.NoError(t, err)
	require.True(t, ok)

	// 2^11 - 1 = 2047 = 23 * 89, composite.
	m := bigint.PowUint64(2, 11)
	m, err = m.Sub(bigint.One())
	require.NoError(t, err)
	ok, err = IsAlmostSurelyPrime(m)
	require.NoError(t, err)
	require.False(t, ok)
}
