package factor

import "github.com/bfix/primpoly/bigint"

// removePower divides out every factor of the small prime p from n,
// appending (p, multiplicity) to factors if p divides n at all.
func removePower(n *bigint.BigInt, p uint64, factors []PrimeFactor, counters *Counters) (*bigint.BigInt, []PrimeFactor) {
	pp := bigint.FromUint64(p)
	mult := 0
	for {
		q, r, _ := n.DivMod(pp)
		counters.TrialDivisions++
		if !r.IsZero() {
			break
		}
		n = q
		mult++
	}
	if mult > 0 {
		factors = append(factors, PrimeFactor{Prime: pp, Mult: mult})
	}
	return n, factors
}

// TrialDivision factors n by exhaustive trial division: powers of 2 and 3
// are removed directly, then candidate divisors 5, 7, 11, 13, ... are
// tried (skipping multiples of 2 and 3 via an alternating +2/+4 step).
// Guaranteed to terminate with a complete factorization, but can be
// impractically slow once n's smallest prime factor is large.
func TrialDivision(n *bigint.BigInt, counters *Counters) *Factorization {
	var factors []PrimeFactor
	n, factors = removePower(n, 2, factors, counters)
	n, factors = removePower(n, 3, factors, counters)

	d := uint64(5)
	inc := [2]uint64{2, 4}
	step := 0
	one := bigint.One()
	for !n.Equals(one) {
		dd := bigint.FromUint64(d)
		q, r, _ := n.DivMod(dd)
		counters.TrialDivisions++
		if r.IsZero() {
			mult := 0
			for r.IsZero() {
				n = q
				mult++
				q, r, _ = n.DivMod(dd)
				counters.TrialDivisions++
			}
			factors = append(factors, PrimeFactor{Prime: dd, Mult: mult})
		} else if q.Cmp(dd) < 0 {
			// n itself is smaller than d^2: it has no factor below d,
			// so it is prime.
			factors = append(factors, PrimeFactor{Prime: n.Clone(), Mult: 1})
			break
		}
		d += inc[step]
		step = 1 - step
	}
	return NewFactorization(factors)
}
