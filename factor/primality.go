package factor

import (
	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/modular"
)

var (
	two   = bigint.FromUint64(2)
	three = bigint.FromUint64(3)
	four  = bigint.FromUint64(4)
	five  = bigint.FromUint64(5)
)

// isProbablyPrime runs one Miller-Rabin round of n against witness x. It
// reports whether n looks prime to this witness, and whether that verdict
// is conclusive (the small-case branches are certain either way; surviving
// the witness loop is only probable).
func isProbablyPrime(n, x *bigint.BigInt) (prime bool, certain bool) {
	if n.Equals(bigint.Zero()) || n.Equals(bigint.One()) || n.Equals(four) {
		return false, true
	}
	if n.Equals(two) || n.Equals(three) || n.Equals(five) {
		return true, true
	}
	for _, sp := range []*bigint.BigInt{two, three, five} {
		if r, _ := n.Mod(sp); r.IsZero() {
			return false, true
		}
	}

	// n - 1 = 2^k * q, q odd.
	nMinus1, _ := n.Sub(bigint.One())
	q := nMinus1.Clone()
	k := 0
	for {
		r, _ := q.Mod(two)
		if !r.IsZero() {
			break
		}
		q, _ = q.Div(two)
		k++
	}

	y, err := modular.PowerModBig(x, q, n)
	if err != nil {
		return false, true
	}
	for j := 0; j < k; j++ {
		if j == 0 && y.Equals(bigint.One()) {
			return true, false
		}
		if y.Equals(nMinus1) {
			return true, false
		}
		if j > 0 && y.Equals(bigint.One()) {
			return false, false
		}
		y = y.Mul(y)
		y, _ = y.Mod(n)
	}
	return false, false
}

// IsProbablyPrime runs a single Miller-Rabin round of n against witness x,
// reporting only the prime/composite verdict.
func IsProbablyPrime(n, x *bigint.BigInt) bool {
	prime, _ := isProbablyPrime(n, x)
	return prime
}

// numMillerRabinTrials is the number of independent witnesses
// IsAlmostSurelyPrime draws before accepting n as prime.
const numMillerRabinTrials = 14

// IsAlmostSurelyPrime runs numMillerRabinTrials independent Miller-Rabin
// trials against n with witnesses drawn uniformly from crypto/rand. A
// composite verdict on any trial is conclusive; a prime verdict from the
// small-case branch is likewise conclusive. Otherwise, surviving every
// trial returns true (prime beyond reasonable doubt, not proven).
func IsAlmostSurelyPrime(n *bigint.BigInt) (bool, error) {
	return isAlmostSurelyPrimeFrom(n, modular.CryptoRandSource())
}

func isAlmostSurelyPrimeFrom(n *bigint.BigInt, src modular.RandSource) (bool, error) {
	for i := 0; i < numMillerRabinTrials; i++ {
		x, err := modular.UniformRandomBig(n, src)
		if err != nil {
			return false, err
		}
		if x.Cmp(bigint.One()) <= 0 {
			x = three
		}
		prime, certain := isProbablyPrime(n, x)
		if !prime {
			return false, nil
		}
		if certain {
			return true, nil
		}
	}
	return true, nil
}

// IsAlmostSurelyPrimeUint64 is a machine-integer convenience wrapper around
// IsAlmostSurelyPrime.
func IsAlmostSurelyPrimeUint64(n uint64) (bool, error) {
	return IsAlmostSurelyPrime(bigint.FromUint64(n))
}
