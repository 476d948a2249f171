package factor

import (
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/data"
	"github.com/bfix/primpoly/modular"
)

// pollardRhoSession runs one complete Pollard rho attempt against n with
// constant c, peeling off prime factors one at a time until n is fully
// reduced to 1 (success) or the walk hits a dead end (failure, caller
// retries with a different c or falls back to trial division).
//
// State: x = 5, x' = 2, k = 1, l = 1 to start. Each round: if n is already
// (almost surely) prime, it is the last factor — done. Otherwise
// g = gcd(|x - x'|, n). g = 1 means no factor surfaced yet: decrement k
// (resetting x' = x, l = 2l, k = l when k hits 0, the power-of-two
// doubling-batch schedule), then step x <- x^2 + c mod n. g = n is a collision with no
// useful factor: fail outright. Otherwise g must itself be prime to be
// useful; if so, record it, divide n by it, and continue walking the
// reduced problem (x and x' are reduced modulo the new n too — the walk
// only needs to stay consistent with the shrinking modulus, not with an
// exact division of the former state by g).
func pollardRhoSession(n *bigint.BigInt, c uint64, counters *Counters) (*Factorization, bool) {
	var factors []PrimeFactor
	x := bigint.FromUint64(5)
	xp := bigint.FromUint64(2)
	k := uint64(1)
	l := uint64(1)
	one := bigint.One()

	seen := data.NewMemory(64, func(a, b any) bool {
		// Slots not yet written hold nil.
		av, ok := a.(*bigint.BigInt)
		if !ok {
			return false
		}
		return av.Equals(b.(*bigint.BigInt))
	})

	step := func(v *bigint.BigInt) *bigint.BigInt {
		counters.PollardSteps++
		sq := v.Mul(v)
		sq = sq.Add(bigint.FromUint64(c))
		r, _ := sq.Mod(n)
		return r
	}

	for {
		if n.Equals(one) {
			return NewFactorization(factors), true
		}
		prime, err := IsAlmostSurelyPrime(n)
		counters.PrimalityTrials++
		if err != nil {
			return nil, false
		}
		if prime {
			factors = append(factors, PrimeFactor{Prime: n.Clone(), Mult: 1})
			return NewFactorization(factors), true
		}

		g := modular.GCDBig(absDiff(x, xp), n.Clone())
		counters.GCDs++

		if g.Equals(one) {
			if seen.Contains(x.Clone()) != 0 {
				counters.StagnationHits++
			}
			seen.Add(x.Clone())
			k--
			if k == 0 {
				xp = x.Clone()
				l *= 2
				k = l
			}
			x = step(x)
			continue
		}
		if g.Equals(n) {
			return nil, false
		}
		gPrime, err := IsAlmostSurelyPrime(g)
		counters.PrimalityTrials++
		if err != nil || !gPrime {
			return nil, false
		}
		factors = append(factors, PrimeFactor{Prime: g.Clone(), Mult: 1})

		var divErr error
		n, divErr = n.Div(g)
		if divErr != nil {
			return nil, false
		}
		x, _ = x.Mod(n)
		xp, _ = xp.Mod(n)
	}
}

// absDiff returns |a - b| for non-negative BigInts.
func absDiff(a, b *bigint.BigInt) *bigint.BigInt {
	if a.Cmp(b) >= 0 {
		r, _ := a.Sub(b)
		return r
	}
	r, _ := b.Sub(a)
	return r
}

// PollardRho fully factors n using the rho walk above with constant c.
// Following the Automatic ladder, a caller that gets ok=false here should
// retry with c=5 and ultimately fall back to TrialDivision.
func PollardRho(n *bigint.BigInt, c uint64, counters *Counters) (*Factorization, bool) {
	return pollardRhoSession(n, c, counters)
}
