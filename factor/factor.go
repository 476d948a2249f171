// Package factor implements primality testing and integer factorization
// over arbitrary-precision BigInts: Miller-Rabin primality, Pollard's rho
// with a doubling-batch cycle schedule, plain trial division, factor-table
// lookup, and the
// Automatic ladder that tries them in order. Orchestration shape (an
// accumulating prime list, a recursive-reduction decomposition) is grounded
// on bfix-gospel/math/factorizer/factorizer.go.
package factor

import (
	"sort"

	"github.com/bfix/primpoly/bigint"
)

// PrimeFactor pairs a prime with its multiplicity in some factorization.
// The prime itself is a BigInt rather than a machine integer: factoring
// numbers the size of 2^1198-1 can surface primes that do not fit a
// uint64.
type PrimeFactor struct {
	Prime *bigint.BigInt
	Mult  int
}

// Factorization is an ordered sequence of prime factors, sorted by prime
// ascending, whose product (each raised to its multiplicity) equals the
// factored value.
type Factorization struct {
	factors []PrimeFactor
}

// NewFactorization builds a Factorization from an unordered, possibly
// duplicate-containing slice of (prime, multiplicity) pairs, merging
// duplicate primes and sorting ascending.
func NewFactorization(raw []PrimeFactor) *Factorization {
	merged := map[string]*PrimeFactor{}
	var order []string
	for _, pf := range raw {
		key := pf.Prime.String()
		if existing, ok := merged[key]; ok {
			existing.Mult += pf.Mult
			continue
		}
		cp := PrimeFactor{Prime: pf.Prime.Clone(), Mult: pf.Mult}
		merged[key] = &cp
		order = append(order, key)
	}
	sort.Slice(order, func(i, j int) bool {
		return merged[order[i]].Prime.Cmp(merged[order[j]].Prime) < 0
	})
	out := &Factorization{factors: make([]PrimeFactor, 0, len(order))}
	for _, key := range order {
		out.factors = append(out.factors, *merged[key])
	}
	return out
}

// Factors returns the ordered (prime, multiplicity) pairs.
func (f *Factorization) Factors() []PrimeFactor {
	return f.factors
}

// DistinctPrimes returns just the prime values, ascending.
func (f *Factorization) DistinctPrimes() []*bigint.BigInt {
	out := make([]*bigint.BigInt, len(f.factors))
	for i, pf := range f.factors {
		out[i] = pf.Prime
	}
	return out
}

// NumDistinctFactors is the count of distinct primes (not counting
// multiplicity).
func (f *Factorization) NumDistinctFactors() int {
	return len(f.factors)
}

// Product recomputes N = prod(p_i^m_i) from the factor list, used to
// verify a factorization against the value it claims to decompose.
func (f *Factorization) Product() *bigint.BigInt {
	result := bigint.One()
	for _, pf := range f.factors {
		result = result.Mul(bigint.PowBig(pf.Prime, pf.Mult))
	}
	return result
}

// Mode selects which algorithm Factor uses.
type Mode int

const (
	// Automatic tries FactorTable, then PollardRho(c=1), then
	// PollardRho(c=5), then TrialDivision, stopping at the first that
	// fully factors n.
	Automatic Mode = iota
	// FactorTableMode looks n up in a loaded Cunningham-style factor table.
	FactorTableMode
	// PollardRhoMode factors via Pollard's rho walk (both c=1 and c=5
	// attempted by Automatic; PollardRhoMode itself uses c=1).
	PollardRhoMode
	// TrialDivisionMode factors via exhaustive trial division.
	TrialDivisionMode
)
