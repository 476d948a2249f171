package factor

import (
	"testing"

	"github.com/bfix/primpoly/bigint"
	"github.com/stretchr/testify/require"
)

func TestLoadFactorTableAndLookup(t *testing.T) {
	tbl, err := LoadFactorTable("testdata/c03minus.txt")
	require.NoError(t, err)

	fz, ok := tbl.Lookup(20)
	require.True(t, ok)

	target := bigint.PowUint64(3, 20)
	target, err = target.Sub(bigint.One())
	require.NoError(t, err)
	require.True(t, fz.Product().Equals(target))

	want := map[uint64]int{2: 4, 5: 2, 11: 2, 61: 1, 1181: 1}
	require.Equal(t, len(want), fz.NumDistinctFactors())
	for _, pf := range fz.Factors() {
		v, err := pf.Prime.Uint64()
		require.NoError(t, err)
		require.Equal(t, want[v], pf.Mult)
	}
}

func TestFactorTableLookupVerifiesProduct(t *testing.T) {
	tbl, err := LoadFactorTable("testdata/c03minus.txt")
	require.NoError(t, err)

	target := bigint.PowUint64(3, 20)
	target, err = target.Sub(bigint.One())
	require.NoError(t, err)
	fz, ok, err := tbl.FactorTableLookup(20, target)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, fz.NumDistinctFactors())

	_, ok, err = tbl.FactorTableLookup(20, bigint.FromUint64(1))
	require.False(t, ok)
	require.Error(t, err)
}

func TestFactorTableLookupMissingEntryIsNotAnError(t *testing.T) {
	tbl, err := LoadFactorTable("testdata/c03minus.txt")
	require.NoError(t, err)

	_, ok, err := tbl.FactorTableLookup(999, bigint.FromUint64(42))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFindFactorTables(t *testing.T) {
	merged, err := FindFactorTables("testdata")
	require.NoError(t, err)
	_, ok := merged.Lookup(20)
	require.True(t, ok)
}

func TestFactorAutomaticUsesTable(t *testing.T) {
	tbl, err := LoadFactorTable("testdata/c03minus.txt")
	require.NoError(t, err)

	n := bigint.PowUint64(3, 20)
	n, err = n.Sub(bigint.One())
	require.NoError(t, err)

	counters := &Counters{}
	fz, err := Factor(n, Automatic, tbl, 20, counters)
	require.NoError(t, err)
	require.True(t, fz.Product().Equals(n))
	require.Equal(t, int64(1), counters.FactorTableHits)
}
