package factor

import "github.com/bfix/primpoly/logger"

// Counters tallies the work a factorization performed, purely for
// observational reporting — nothing in this package branches on a
// Counters value.
type Counters struct {
	TrialDivisions  int64
	PollardSteps    int64
	GCDs            int64
	PrimalityTrials int64
	FactorTableHits int64
	StagnationHits  int64
}

// Log reports the tallied counters through the package logger at debug
// level.
func (c *Counters) Log() {
	logger.Printf(logger.DBG, "[factor] trial-divisions=%d pollard-steps=%d gcds=%d primality-trials=%d table-hits=%d stagnation-hits=%d\n",
		c.TrialDivisions, c.PollardSteps, c.GCDs, c.PrimalityTrials, c.FactorTableHits, c.StagnationHits)
}
