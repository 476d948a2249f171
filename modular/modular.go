// Package modular implements the overflow-safe modular arithmetic
// primitives of SPEC_FULL §4.2: residue reduction of signed input,
// modular add/double/multiply/power over machine integers, Euclidean gcd
// (machine and bigint), modular inverse, the primitive-root-of-prime test,
// and a uniform random integer source. It mirrors the arithmetic identities
// the teacher coded against math/big in bfix-gospel/math/int.go
// (ModSign, GCD, ModPow, ModInverse), generalized to the overflow-safe
// machine-word doubling scheme §4.2 specifies instead of delegating to
// math/big.
package modular

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"

	"github.com/bfix/primpoly/bigint"
	gerr "github.com/bfix/primpoly/errors"
	"github.com/zeebo/blake3"
)

// ModP reduces a signed value into [0, p): ((v mod p) + p) mod p. p must
// be >= 1.
func ModP(v int64, p int64) (uint64, error) {
	if p < 1 {
		return 0, gerr.New(gerr.ErrRange, "modulus %d < 1", p)
	}
	r := v % p
	if r < 0 {
		r += p
	}
	return uint64(r), nil
}

// GCD returns the greatest common divisor of two machine integers via the
// Euclidean algorithm.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCDBig returns the greatest common divisor of two BigInts via the
// Euclidean algorithm.
func GCDBig(a, b *bigint.BigInt) *bigint.BigInt {
	for !b.IsZero() {
		r, _ := a.Mod(b)
		a, b = b, r
	}
	return a
}

// AddMod returns (a + b) mod n without risking a+b overflowing the machine
// word, for a, b already reduced into [0, n): if a >= n-b, the sum wraps,
// so subtract (n-b) instead of adding.
func AddMod(a, b, n uint64) uint64 {
	if a >= n-b {
		return a - (n - b)
	}
	return a + b
}

// DoubleMod returns 2a mod n.
func DoubleMod(a, n uint64) uint64 {
	return AddMod(a, a, n)
}

// MulMod returns a*b mod n using Russian-peasant doubling: the accumulator
// is doubled mod n and b's corresponding bit conditionally added mod n, for
// one iteration per bit of b (its bit length), using only AddMod/DoubleMod so the product never
// needs to be formed directly.
func MulMod(a, b, n uint64) uint64 {
	if n == 1 {
		return 0
	}
	a %= n
	var result uint64
	nbits := bits.Len64(b)
	for i := nbits - 1; i >= 0; i-- {
		result = DoubleMod(result, n)
		if (b>>uint(i))&1 == 1 {
			result = AddMod(result, a, n)
		}
	}
	return result
}

// PowerMod computes a^k mod n using standard left-to-right binary
// exponentiation driven by MulMod. 0^0 fails with a domain error.
func PowerMod(a, k, n uint64) (uint64, error) {
	if a == 0 && k == 0 {
		return 0, gerr.New(gerr.ErrDomain, "0^0 is undefined")
	}
	if n == 1 {
		return 0, nil
	}
	result := uint64(1)
	a %= n
	for i := bits.Len64(k) - 1; i >= 0; i-- {
		result = MulMod(result, result, n)
		if (k>>uint(i))&1 == 1 {
			result = MulMod(result, a, n)
		}
	}
	return result, nil
}

// InverseMod finds the multiplicative inverse of a modulo p by brute-force
// search over i in [1, p) with i*a ≡ 1 (mod p) — a reference
// implementation favoring correctness over speed, as the spec mandates.
func InverseMod(a, p uint64) (uint64, error) {
	if p < 1 {
		return 0, gerr.New(gerr.ErrDomain, "modulus %d < 1", p)
	}
	a %= p
	for i := uint64(1); i < p; i++ {
		if MulMod(i, a, p) == 1 {
			return i, nil
		}
	}
	return 0, gerr.New(gerr.ErrDomain, "%d has no inverse mod %d", a, p)
}

// distinctPrimeFactorsTrial factors n by plain trial division. It exists
// so IsPrimitiveRoot does not have to import the factor package (which
// itself depends on modular): per SPEC_FULL's data-flow, modular is a
// dependency leaf, so this stays a small self-contained helper rather
// than a call into the full FactorTable/PollardRho pipeline.
func distinctPrimeFactorsTrial(n uint64) []uint64 {
	var factors []uint64
	for _, p := range []uint64{2, 3} {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	for d := uint64(5); d*d <= n; {
		if n%d == 0 {
			factors = append(factors, d)
			for n%d == 0 {
				n /= d
			}
		}
		if d%6 == 5 {
			d += 2
		} else {
			d += 4
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// IsPrimitiveRoot reports whether a is a primitive root modulo p: the
// multiplicative order of a mod p equals p-1. Verified by factoring p-1
// once and checking a^((p-1)/q) != 1 (mod p) for every distinct prime q | p-1.
func IsPrimitiveRoot(a, p uint64) bool {
	if p < 2 {
		return false
	}
	order := p - 1
	a %= p
	for _, q := range distinctPrimeFactorsTrial(order) {
		v, err := PowerMod(a, order/q, p)
		if err != nil || v == 1 {
			return false
		}
	}
	return true
}

// RandSource yields successive raw 64-bit blocks used to build uniform
// integers in [0, n).
type RandSource interface {
	Next() (uint64, error)
}

type cryptoSource struct{}

func (cryptoSource) Next() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, gerr.New(gerr.ErrIO, "crypto/rand: %v", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// CryptoRandSource returns the default, non-reproducible random source
// backed by crypto/rand, matching the teacher's own math.NewIntRnd.
func CryptoRandSource() RandSource {
	return cryptoSource{}
}

// blake3Source is a deterministic, seedable expansion source: each call
// hashes the seed concatenated with an incrementing counter and takes the
// leading 8 bytes of the digest, following the digest-slicing pattern of
// luxfi-ringtail/primitives/hash.go's PRNGKey/GenerateMAC.
type blake3Source struct {
	seed    []byte
	counter uint64
}

// NewBlake3Source returns a deterministic RandSource: the same seed always
// reproduces the same sequence, for reproducible tests and fuzzing.
func NewBlake3Source(seed []byte) RandSource {
	cp := make([]byte, len(seed))
	copy(cp, seed)
	return &blake3Source{seed: cp}
}

func (s *blake3Source) Next() (uint64, error) {
	h := blake3.New()
	_, _ = h.Write(s.seed)
	var cb [8]byte
	binary.BigEndian.PutUint64(cb[:], s.counter)
	_, _ = h.Write(cb[:])
	s.counter++
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), nil
}

// PowerModBig computes a^k mod n for arbitrary-precision operands, reducing
// after every multiply so intermediate values stay bounded by n^2 rather
// than growing with k. Mirrors PowerMod's left-to-right binary
// exponentiation, driven by BigInt.Bit/CeilLg instead of machine shifts.
func PowerModBig(a, k, n *bigint.BigInt) (*bigint.BigInt, error) {
	if a.IsZero() && k.IsZero() {
		return nil, gerr.New(gerr.ErrDomain, "0^0 is undefined")
	}
	base, err := a.Mod(n)
	if err != nil {
		return nil, err
	}
	result := bigint.One()
	for i := k.CeilLg() - 1; i >= 0; i-- {
		result, err = result.Mul(result).Mod(n)
		if err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			result, err = result.Mul(base).Mod(n)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// UniformRandomBig draws a value uniform on [0, n) for arbitrary-precision
// n, assembling 64-bit blocks from src into an accumulator at least as wide
// as n and reducing modulo n. Unlike UniformRandomIntegersFrom this accepts
// the small modulo bias that comes with not rejection-sampling at bigint
// width; for Miller-Rabin witness selection (the only caller) this is
// immaterial, since witnesses only need to be unpredictable, not exactly
// uniform.
func UniformRandomBig(n *bigint.BigInt, src RandSource) (*bigint.BigInt, error) {
	if n.IsZero() {
		return nil, gerr.New(gerr.ErrRange, "upper bound must be positive")
	}
	blocks := n.CeilLg()/64 + 2
	shift := bigint.PowUint64(2, 64)
	acc := bigint.Zero()
	for i := 0; i < blocks; i++ {
		v, err := src.Next()
		if err != nil {
			return nil, err
		}
		acc = acc.Mul(shift).Add(bigint.FromUint64(v))
	}
	return acc.Mod(n)
}

// UniformRandomIntegers draws one value uniform on [0, n) from the default
// crypto/rand-backed source.
func UniformRandomIntegers(n uint64) (uint64, error) {
	return UniformRandomIntegersFrom(n, CryptoRandSource())
}

// UniformRandomIntegersFrom draws one value uniform on [0, n) from src,
// using rejection sampling to avoid modulo bias.
func UniformRandomIntegersFrom(n uint64, src RandSource) (uint64, error) {
	if n == 0 {
		return 0, gerr.New(gerr.ErrRange, "upper bound must be positive")
	}
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		v, err := src.Next()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return v % n, nil
		}
	}
}
