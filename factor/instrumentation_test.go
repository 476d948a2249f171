package factor

import (
	"testing"

	"github.com/bfix/primpoly/bigint"
	"github.com/stretchr/testify/require"
)

// TestCountersLogIsReachedOnCompletion exercises the path that calls
// Counters.Log rather than just constructing a Counters value: Decompose
// (and Factor's non-Automatic modes) log on the way out regardless of
// which branch produced the factorization.
func TestCountersLogIsReachedOnCompletion(t *testing.T) {
	n := bigint.FromUint64(25852)
	counters := &Counters{}
	fz, err := Decompose(n, nil, 0, counters)
	require.NoError(t, err)
	require.True(t, fz.Product().Equals(n))
	require.Greater(t, counters.PrimalityTrials, int64(0))

	// Log must be callable directly without panicking, for a caller that
	// wants to report mid-flight counters rather than wait for Decompose.
	require.NotPanics(t, counters.Log)
}

func TestFactorTrialDivisionModeLogs(t *testing.T) {
	n := bigint.FromUint64(337500)
	counters := &Counters{}
	fz, err := Factor(n, TrialDivisionMode, nil, 0, counters)
	require.NoError(t, err)
	require.True(t, fz.Product().Equals(n))
	require.Greater(t, counters.TrialDivisions, int64(0))
}
