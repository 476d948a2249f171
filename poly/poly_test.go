package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCanonicalForm(t *testing.T) {
	f, err := Parse("2x^2 + 1, 3")
	require.NoError(t, err)
	require.Equal(t, 2, f.Degree())
	require.Equal(t, uint64(3), f.P())
	require.Equal(t, []uint64{1, 0, 2}, f.Coeffs())
}

func TestParseDefaultsModulusTo2(t *testing.T) {
	f, err := Parse("x^3 + x + 1")
	require.NoError(t, err)
	require.Equal(t, uint64(2), f.P())
	require.Equal(t, 3, f.Degree())
	require.Equal(t, []uint64{1, 1, 0, 1}, f.Coeffs())
}

func TestParseRejectsNegative(t *testing.T) {
	_, err := Parse("x^2 - 1, 5")
	require.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	f, err := New(5, []uint64{3, 2, 1, 0, 1})
	require.NoError(t, err)
	s := f.String()
	back, err := Parse(s)
	require.NoError(t, err)
	require.True(t, f.Equals(back))
}

func TestEvalHorner(t *testing.T) {
	f, err := New(5, []uint64{3, 2, 1}) // x^2 + 2x + 3 over GF(5)
	require.NoError(t, err)
	for x := uint64(0); x < 5; x++ {
		want := (x*x + 2*x + 3) % 5
		require.Equal(t, want, f.Eval(x))
	}
}

func TestHasLinearFactor(t *testing.T) {
	f, err := New(5, []uint64{0, 1}) // x, root at 0
	require.NoError(t, err)
	require.True(t, f.HasLinearFactor())

	g, err := New(2, []uint64{1, 1, 1}) // x^2+x+1 over GF(2), irreducible
	require.NoError(t, err)
	require.False(t, g.HasLinearFactor())
}

func TestIsInteger(t *testing.T) {
	f, err := New(5, []uint64{3})
	require.NoError(t, err)
	require.True(t, f.IsInteger())

	g, err := New(5, []uint64{3, 1})
	require.NoError(t, err)
	require.False(t, g.IsInteger())
}

func TestEnumerateVisitsEveryMonicPolynomialOnce(t *testing.T) {
	// degree 2 over GF(3): 3^2 = 9 monic polynomials (c0, c1 free, c2=1).
	seen := map[string]bool{}
	count := 0
	for f := range Enumerate(2, 3) {
		count++
		seen[f.String()] = true
		require.Equal(t, 2, f.Degree())
	}
	require.Equal(t, 9, count)
	require.Equal(t, 9, len(seen))
}

func TestInitialTrialPolyIsXToTheN(t *testing.T) {
	f := InitialTrialPoly(4, 5)
	require.Equal(t, []uint64{0, 0, 0, 0, 1}, f.Coeffs())
}
