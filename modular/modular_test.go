package modular

import (
	"testing"

	"github.com/bfix/primpoly/bigint"
	"github.com/stretchr/testify/require"
)

func TestModP(t *testing.T) {
	v, err := ModP(-3, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(4), v)

	v, err = ModP(10, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(3), v)
}

func TestAddMulPowMod(t *testing.T) {
	require.Equal(t, uint64(2), AddMod(5, 4, 7))
	require.Equal(t, uint64(1), MulMod(3, 5, 7))
	v, err := PowerMod(3, 6, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v) // Fermat: 3^6 = 1 mod 7
}

func TestInverseMod(t *testing.T) {
	inv, err := InverseMod(3, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(5), inv)
	require.Equal(t, uint64(1), MulMod(3, inv, 7))
}

func TestIsPrimitiveRoot(t *testing.T) {
	require.True(t, IsPrimitiveRoot(3, 7))
	require.True(t, IsPrimitiveRoot(2, 11))
	require.True(t, IsPrimitiveRoot(5, 65003))
	require.False(t, IsPrimitiveRoot(3, 11))
	require.False(t, IsPrimitiveRoot(8, 65003))
}

func TestGCDBig(t *testing.T) {
	a := bigint.FromUint64(54)
	b := bigint.FromUint64(24)
	g := GCDBig(a, b)
	want := bigint.FromUint64(6)
	require.True(t, g.Equals(want))
}

func TestPowerModBig(t *testing.T) {
	a := bigint.FromUint64(3)
	k := bigint.FromUint64(6)
	n := bigint.FromUint64(7)
	got, err := PowerModBig(a, k, n)
	require.NoError(t, err)
	require.True(t, got.Equals(bigint.One()))
}

func TestPowerModBigZeroToZero(t *testing.T) {
	_, err := PowerModBig(bigint.Zero(), bigint.Zero(), bigint.FromUint64(7))
	require.Error(t, err)
}

type fixedSource struct {
	vals []uint64
	i    int
}

func (f *fixedSource) Next() (uint64, error) {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v, nil
}

func TestUniformRandomBigStaysInRange(t *testing.T) {
	n := bigint.FromUint64(7)
	src := &fixedSource{vals: []uint64{123456789, 987654321, 42}}
	for i := 0; i < 5; i++ {
		v, err := UniformRandomBig(n, src)
		require.NoError(t, err)
		require.Equal(t, -1, v.Cmp(n))
	}
}

func TestUniformRandomBigRejectsZeroBound(t *testing.T) {
	_, err := UniformRandomBig(bigint.Zero(), &fixedSource{vals: []uint64{1}})
	require.Error(t, err)
}

func TestUniformRandomIntegersFromDeterministic(t *testing.T) {
	src := NewBlake3Source([]byte("seed"))
	v1, err := UniformRandomIntegersFrom(1000, src)
	require.NoError(t, err)
	src2 := NewBlake3Source([]byte("seed"))
	v2, err := UniformRandomIntegersFrom(1000, src2)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	require.Less(t, v1, uint64(1000))
}
