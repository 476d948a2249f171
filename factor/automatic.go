package factor

import "github.com/bfix/primpoly/bigint"

// Decompose fully factors n following the Automatic ladder: table, if
// non-nil, is tried first with tableExponent identifying n's place in it;
// then Pollard's rho with c=1, then c=5, then trial division (which
// always succeeds). The tallied
// counters are logged once, on the way out, whatever path got there.
func Decompose(n *bigint.BigInt, table *FactorTable, tableExponent int, counters *Counters) (fz *Factorization, err error) {
	if counters == nil {
		counters = &Counters{}
	}
	defer counters.Log()

	if n.Equals(bigint.One()) {
		return NewFactorization(nil), nil
	}

	if table != nil {
		counters.FactorTableHits++
		tfz, ok, terr := table.FactorTableLookup(tableExponent, n)
		if terr != nil {
			return nil, terr
		}
		if ok {
			return tfz, nil
		}
	}

	if rfz, ok := PollardRho(n, 1, counters); ok {
		return rfz, nil
	}
	if rfz, ok := PollardRho(n, 5, counters); ok {
		return rfz, nil
	}
	return TrialDivision(n, counters), nil
}

// Factor factors n according to mode. FactorTableMode and PollardRhoMode
// run only their named algorithm (no fallback); TrialDivisionMode likewise;
// Automatic runs the full ladder via Decompose.
func Factor(n *bigint.BigInt, mode Mode, table *FactorTable, tableExponent int, counters *Counters) (*Factorization, error) {
	if counters == nil {
		counters = &Counters{}
	}
	switch mode {
	case FactorTableMode:
		defer counters.Log()
		if table == nil {
			return nil, nil
		}
		counters.FactorTableHits++
		fz, ok, err := table.FactorTableLookup(tableExponent, n)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return fz, nil
	case PollardRhoMode:
		defer counters.Log()
		if fz, ok := PollardRho(n, 1, counters); ok {
			return fz, nil
		}
		return nil, nil
	case TrialDivisionMode:
		defer counters.Log()
		return TrialDivision(n, counters), nil
	default:
		// Decompose logs counters itself on the way out.
		return Decompose(n, table, tableExponent, counters)
	}
}
