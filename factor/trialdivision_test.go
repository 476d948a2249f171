package factor

import (
	"testing"

	"github.com/bfix/primpoly/bigint"
	"github.com/stretchr/testify/require"
)

func TestTrialDivisionKnownValue(t *testing.T) {
	// 337500 = 2^2 * 3^3 * 5^5
	n := bigint.FromUint64(337500)
	counters := &Counters{}
	fz := TrialDivision(n, counters)
	require.True(t, fz.Product().Equals(n))

	want := map[uint64]int{2: 2, 3: 3, 5: 5}
	require.Equal(t, len(want), fz.NumDistinctFactors())
	for _, pf := range fz.Factors() {
		v, err := pf.Prime.Uint64()
		require.NoError(t, err)
		require.Equal(t, want[v], pf.Mult)
	}
	require.Greater(t, counters.TrialDivisions, int64(0))
}

func TestTrialDivisionPrimeInput(t *testing.T) {
	n := bigint.FromUint64(7919) // prime
	fz := TrialDivision(n, &Counters{})
	require.Equal(t, 1, fz.NumDistinctFactors())
	require.True(t, fz.Factors()[0].Prime.Equals(n))
	require.Equal(t, 1, fz.Factors()[0].Mult)
}

func TestTrialDivisionOne(t *testing.T) {
	fz := TrialDivision(bigint.One(), &Counters{})
	require.Equal(t, 0, fz.NumDistinctFactors())
}
