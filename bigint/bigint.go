// Package bigint implements non-negative arbitrary-precision integers in a
// process-wide configurable radix B, following the teacher's math.Int
// naming conventions (bfix-gospel/math/int.go) but storing digits directly
// instead of delegating to math/big: the whole point of this package is the
// from-scratch digit-vector kernel, including Knuth's Algorithm D for
// division (TAOCP vol. 2 §4.3.1).
package bigint

import (
	"strings"

	gerr "github.com/bfix/primpoly/errors"
)

// defaultRadix is chosen so that two digits multiply into a uint64
// without overflow, while still being decimal-friendly for formatting.
const defaultRadix uint64 = 1_000_000_000

// maxRadix is the largest radix for which a digit still fits a uint32 and
// the product of two digits still fits a uint64 (the "double word" of
// §4.1): (maxRadix-1)^2 < 2^64.
const maxRadix uint64 = 1 << 32

// radix is the process-wide digit base. It must only be changed before any
// BigInt meant to survive the change is constructed (§3, §9) — mixing
// radices within one program run is undefined, exactly as the teacher's own
// math.Int treats its package-global numeric constants as fixed at init.
var radix = defaultRadix

// SetRadix installs a new process-wide digit base. It must be called
// before any long-lived BigInt exists; existing BigInts become invalid.
func SetRadix(b uint64) error {
	if b < 2 || b > maxRadix {
		return gerr.New(gerr.ErrRange, "radix %d outside [2,%d]", b, maxRadix)
	}
	radix = b
	return nil
}

// Radix returns the currently installed digit base.
func Radix() uint64 {
	return radix
}

// BigInt is a non-negative arbitrary-precision integer: digits[0] is the
// least significant digit, digits[len-1] (if any) is the most significant
// and is always non-zero. Zero is the empty slice. Values are immutable by
// convention — every operation below returns a fresh BigInt, except the
// increment/decrement forms Succ, SuccPost, Pred and PredPost, which
// advance the receiver in place.
type BigInt struct {
	digits []uint32
}

// Zero returns the default-constructed integer 0.
func Zero() *BigInt {
	return &BigInt{}
}

// One is the constant 1, re-derived on each call so callers never share
// mutable backing storage with a "constant".
func One() *BigInt {
	return FromUint64(1)
}

// Two is the constant 2.
func Two() *BigInt {
	return FromUint64(2)
}

// FromUint64 converts a machine-word unsigned integer to a BigInt in the
// current radix.
func FromUint64(v uint64) *BigInt {
	var ds []uint32
	for v > 0 {
		ds = append(ds, uint32(v%radix))
		v /= radix
	}
	return &BigInt{digits: ds}
}

// Parse converts a decimal string of digits '0'-'9' into a BigInt. Any
// other character fails with a range error.
func Parse(s string) (*BigInt, error) {
	if len(s) == 0 {
		return nil, gerr.New(gerr.ErrRange, "empty numeral")
	}
	acc := Zero()
	ten := FromUint64(10)
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, gerr.New(gerr.ErrRange, "invalid decimal digit %q", c)
		}
		acc = acc.Mul(ten).Add(FromUint64(uint64(c - '0')))
	}
	return acc, nil
}

// Clone returns an independent copy (defensive copy of the digit slice).
func (a *BigInt) Clone() *BigInt {
	if a.IsZero() {
		return Zero()
	}
	ds := make([]uint32, len(a.digits))
	copy(ds, a.digits)
	return &BigInt{digits: ds}
}

// IsZero reports whether the value is 0.
func (a *BigInt) IsZero() bool {
	return len(a.digits) == 0
}

// NumDigits returns k, the number of digits (0 for zero).
func (a *BigInt) NumDigits() int {
	return len(a.digits)
}

// DigitAt returns digit i (0 for i >= NumDigits()).
func (a *BigInt) DigitAt(i int) uint32 {
	if i < 0 || i >= len(a.digits) {
		return 0
	}
	return a.digits[i]
}

// trim drops leading (most-significant) zero digits.
func trim(ds []uint32) []uint32 {
	n := len(ds)
	for n > 0 && ds[n-1] == 0 {
		n--
	}
	return ds[:n]
}

// Cmp compares two BigInts lexicographically on (k, then digits from most
// to least significant), which for canonical (trimmed) representations is
// ordinary numeric comparison.
func (a *BigInt) Cmp(b *BigInt) int {
	if len(a.digits) != len(b.digits) {
		if len(a.digits) < len(b.digits) {
			return -1
		}
		return 1
	}
	for i := len(a.digits) - 1; i >= 0; i-- {
		if a.digits[i] != b.digits[i] {
			if a.digits[i] < b.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equals reports whether a == b.
func (a *BigInt) Equals(b *BigInt) bool {
	return a.Cmp(b) == 0
}

// Add returns a + b.
func (a *BigInt) Add(b *BigInt) *BigInt {
	n := len(a.digits)
	if len(b.digits) > n {
		n = len(b.digits)
	}
	out := make([]uint32, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(a.digits) {
			x = uint64(a.digits[i])
		}
		if i < len(b.digits) {
			y = uint64(b.digits[i])
		}
		s := x + y + carry
		out[i] = uint32(s % radix)
		carry = s / radix
	}
	out[n] = uint32(carry)
	return &BigInt{digits: trim(out)}
}

// Sub returns a - b. Fails with underflow when a < b.
func (a *BigInt) Sub(b *BigInt) (*BigInt, error) {
	if a.Cmp(b) < 0 {
		return nil, gerr.New(gerr.ErrUnderflow, "%s - %s", a.String(), b.String())
	}
	out := make([]uint32, len(a.digits))
	var borrow int64
	for i := range a.digits {
		var y int64
		if i < len(b.digits) {
			y = int64(b.digits[i])
		}
		d := int64(a.digits[i]) - y - borrow
		if d < 0 {
			d += int64(radix)
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return &BigInt{digits: trim(out)}, nil
}

// MulDigit multiplies by a single machine digit d (0 <= d < radix),
// propagating carry.
func (a *BigInt) MulDigit(d uint32) *BigInt {
	if d == 0 || a.IsZero() {
		return Zero()
	}
	out := make([]uint32, len(a.digits)+1)
	var carry uint64
	dd := uint64(d)
	for i, v := range a.digits {
		p := uint64(v)*dd + carry
		out[i] = uint32(p % radix)
		carry = p / radix
	}
	out[len(a.digits)] = uint32(carry)
	return &BigInt{digits: trim(out)}
}

// Mul returns a * b via schoolbook O(k*m) multiplication, trimming leading
// zero digits from the result.
func (a *BigInt) Mul(b *BigInt) *BigInt {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out := make([]uint64, len(a.digits)+len(b.digits))
	for i, x := range a.digits {
		if x == 0 {
			continue
		}
		var carry uint64
		xx := uint64(x)
		for j, y := range b.digits {
			p := out[i+j] + xx*uint64(y) + carry
			out[i+j] = p % radix
			carry = p / radix
		}
		k := i + len(b.digits)
		for carry > 0 {
			p := out[k] + carry
			out[k] = p % radix
			carry = p / radix
			k++
		}
	}
	ds := make([]uint32, len(out))
	for i, v := range out {
		ds[i] = uint32(v)
	}
	return &BigInt{digits: trim(ds)}
}

// DivMod implements Knuth's Algorithm D (TAOCP vol. 2 §4.3.1): normalize by
// d = floor(radix / (leading digit of b + 1)), form trial quotient digits
// via two-digit-by-one-digit estimation, correct each estimate by at most
// two decrements before the multiply-subtract and at most one add-back
// after it, then denormalize the remainder. Fails on division by zero.
func (a *BigInt) DivMod(b *BigInt) (q, r *BigInt, err error) {
	if b.IsZero() {
		return nil, nil, gerr.New(gerr.ErrDivByZero, "%s / 0", a.String())
	}
	if a.Cmp(b) < 0 {
		return Zero(), a.Clone(), nil
	}
	if len(b.digits) == 1 {
		qq, rr := divModSmall(a.digits, uint64(b.digits[0]))
		return &BigInt{digits: trim(qq)}, FromUint64(rr), nil
	}
	qd, rd := knuthDivMod(a.digits, b.digits)
	return &BigInt{digits: trim(qd)}, &BigInt{digits: trim(rd)}, nil
}

// Div returns a / b (integer division).
func (a *BigInt) Div(b *BigInt) (*BigInt, error) {
	q, _, err := a.DivMod(b)
	return q, err
}

// Mod returns a % b.
func (a *BigInt) Mod(b *BigInt) (*BigInt, error) {
	_, r, err := a.DivMod(b)
	return r, err
}

// divModSmall divides a little-endian digit slice by a single-digit
// divisor (d < radix), returning quotient digits (same length, to be
// trimmed by the caller) and the scalar remainder.
func divModSmall(a []uint32, d uint64) ([]uint32, uint64) {
	q := make([]uint32, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*radix + uint64(a[i])
		q[i] = uint32(cur / d)
		rem = cur % d
	}
	return q, rem
}

// knuthDivMod implements Algorithm D for a divisor of two or more digits.
// Internally it works with most-significant-digit-first slices, which is
// the conventional orientation for the textbook algorithm, then converts
// back to this package's little-endian storage.
func knuthDivMod(aLE, bLE []uint32) (qLE, rLE []uint32) {
	n := len(bLE)
	m := len(aLE) - n

	// Step 1: normalize so the divisor's leading digit is >= radix/2.
	d := radix / (uint64(bLE[n-1]) + 1)
	u := mulSmallLE(aLE, d)
	for len(u) < len(aLE)+1 {
		u = append(u, 0)
	}
	v := trim(mulSmallLE(bLE, d))
	for len(v) < n {
		v = append(v, 0)
	}

	q := make([]uint32, m+1)

	// Step 2: loop over quotient digit positions, most significant first.
	for j := m; j >= 0; j-- {
		// Step 3: estimate qhat using the top three digits of the
		// current remainder window against the top two of v.
		u2 := uint64(0)
		if j+n < len(u) {
			u2 = uint64(u[j+n])
		}
		u1 := uint64(u[j+n-1])
		u0 := uint64(0)
		if j+n-2 >= 0 {
			u0 = uint64(u[j+n-2])
		}
		num := u2*radix + u1
		qhat := num / uint64(v[n-1])
		rhat := num % uint64(v[n-1])
		for qhat >= radix || (n >= 2 && qhat*uint64(v[n-2]) > rhat*radix+u0) {
			qhat--
			rhat += uint64(v[n-1])
			if rhat >= radix {
				break
			}
		}

		// Step 4: multiply and subtract qhat*v from u[j:j+n+1].
		var borrow int64
		var carry uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + carry
			carry = p / radix
			sub := int64(u[j+i]) - int64(p%radix) - borrow
			if sub < 0 {
				sub += int64(radix)
				borrow = 1
			} else {
				borrow = 0
			}
			u[j+i] = uint32(sub)
		}
		sub := int64(u[j+n]) - int64(carry) - borrow
		neg := sub < 0
		if neg {
			sub += int64(radix)
		}
		u[j+n] = uint32(sub)

		// Step 5: if the subtraction went negative, qhat was one too
		// large — add v back once and decrement qhat.
		if neg {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(u[j+i]) + uint64(v[i]) + c
				u[j+i] = uint32(s % radix)
				c = s / radix
			}
			u[j+n] = uint32((uint64(u[j+n]) + c) % radix)
		}
		q[j] = uint32(qhat)
	}

	// Step 6: denormalize the remainder.
	rem, _ := divModSmall(trim(u[:n]), d)
	return q, rem
}

// mulSmallLE multiplies a little-endian digit slice by a machine scalar,
// growing the slice as needed. Used only for Knuth normalization, where
// the scalar is guaranteed to be < radix.
func mulSmallLE(a []uint32, m uint64) []uint32 {
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i, v := range a {
		p := uint64(v)*m + carry
		out[i] = uint32(p % radix)
		carry = p / radix
	}
	out[len(a)] = uint32(carry)
	return out
}

// Uint64 casts a BigInt to a machine word, failing with overflow if the
// value exceeds the word range.
func (a *BigInt) Uint64() (uint64, error) {
	var v uint64
	for i := len(a.digits) - 1; i >= 0; i-- {
		next := v*radix + uint64(a.digits[i])
		if v != 0 && next/radix != v {
			return 0, gerr.New(gerr.ErrOverflow, "%s exceeds uint64 range", a.String())
		}
		v = next
	}
	return v, nil
}

// div2 halves a BigInt, discarding the remainder; used by Bit/CeilLg per
// §4.1 ("the implementation extracts bits by repeatedly halving, since the
// radix is not necessarily a power of two").
func (a *BigInt) div2() *BigInt {
	q, _, _ := a.DivMod(Two())
	return q
}

// isOdd reports whether the value's lowest bit is set.
func (a *BigInt) isOdd() bool {
	_, r, _ := a.DivMod(Two())
	return !r.IsZero()
}

// Bit returns bit i of the represented integer.
func (a *BigInt) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	t := a
	for k := 0; k < i; k++ {
		t = t.div2()
	}
	if t.isOdd() {
		return 1
	}
	return 0
}

// CeilLg returns the number of bits needed to represent N: floor(log2(N))+1
// for N > 0 (so 4 for both 8 and 13), and 0 for N = 0.
func (a *BigInt) CeilLg() int {
	count := 0
	t := a
	for !t.IsZero() {
		t = t.div2()
		count++
	}
	return count
}

// PowUint64 raises machine integer p to power n, producing a BigInt.
func PowUint64(p, n uint64) *BigInt {
	result := One()
	base := FromUint64(p)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// PowBig raises a BigInt base to a non-negative machine-integer power via
// repeated squaring.
func PowBig(base *BigInt, n int) *BigInt {
	result := One()
	b := base.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		n >>= 1
	}
	return result
}

// Succ returns the pre-increment form: it mutates the receiver to a.Add(1)
// in place and returns the (new) receiver.
func (a *BigInt) Succ() *BigInt {
	*a = *a.Add(One())
	return a
}

// SuccPost returns the post-increment form: the value before incrementing,
// while the receiver itself is advanced by one.
func (a *BigInt) SuccPost() *BigInt {
	old := a.Clone()
	*a = *a.Add(One())
	return old
}

// Pred returns the pre-decrement form, mutating the receiver. Decrementing
// zero fails with underflow.
func (a *BigInt) Pred() (*BigInt, error) {
	s, err := a.Sub(One())
	if err != nil {
		return nil, err
	}
	*a = *s
	return a, nil
}

// PredPost returns the post-decrement form: the value before decrementing.
func (a *BigInt) PredPost() (*BigInt, error) {
	old := a.Clone()
	s, err := a.Sub(One())
	if err != nil {
		return nil, err
	}
	*a = *s
	return old, nil
}

// String renders the value in decimal, shortest form, no leading zeros;
// zero renders as "0".
func (a *BigInt) String() string {
	if a.IsZero() {
		return "0"
	}
	var sb strings.Builder
	digits := make([]byte, 0, len(a.digits)*10)
	t := a.Clone()
	ten := FromUint64(10)
	for !t.IsZero() {
		q, r, _ := t.DivMod(ten)
		rv, _ := r.Uint64()
		digits = append(digits, byte('0')+byte(rv))
		t = q
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}
