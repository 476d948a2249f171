// Package poly implements dense polynomials over GF(p): construction,
// canonical text parsing/formatting, addition, scalar multiplication,
// evaluation, linear-factor detection, and successor enumeration over the
// monic polynomials of fixed degree. Formatting style (high-to-low terms,
// "coeffx^deg" such as "2x^3", with the coeff/exponent elided when
// trivial) is grounded on
// other_examples/67377979_akalin-aks-go__aks-bigintpoly.go.go's
// bigIntPoly.Format, adapted from big.Int coefficients mod (N, X^R-1) down
// to GF(p) coefficients with ordinary polynomial addition and degree
// tracking.
package poly

import (
	"fmt"
	"strconv"
	"strings"

	gerr "github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/modular"
)

// Polynomial is a dense polynomial over GF(p): coeffs[i] is the
// coefficient of x^i, 0 <= coeffs[i] < p. The degree is len(coeffs)-1;
// coeffs[len(coeffs)-1] is non-zero unless the polynomial is the zero
// polynomial, which is canonically coeffs = [0].
type Polynomial struct {
	p      uint64
	coeffs []uint64
}

// New builds a polynomial over GF(p) from a coefficient vector indexed by
// exponent (coeffs[i] is the coefficient of x^i). Coefficients are reduced
// mod p and trailing (high-degree) zero coefficients are trimmed.
func New(p uint64, coeffs []uint64) (*Polynomial, error) {
	if p < 2 {
		return nil, gerr.New(gerr.ErrRange, "modulus %d < 2", p)
	}
	cs := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		cs[i] = c % p
	}
	cs = trim(cs)
	return &Polynomial{p: p, coeffs: cs}, nil
}

func trim(cs []uint64) []uint64 {
	n := len(cs)
	for n > 1 && cs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []uint64{0}
	}
	return cs[:n]
}

// P returns the modulus.
func (f *Polynomial) P() uint64 {
	return f.p
}

// Degree returns the highest exponent with a non-zero coefficient (0 for
// the zero polynomial).
func (f *Polynomial) Degree() int {
	return len(f.coeffs) - 1
}

// Coeff returns the coefficient of x^i (0 if i is out of range).
func (f *Polynomial) Coeff(i int) uint64 {
	if i < 0 || i >= len(f.coeffs) {
		return 0
	}
	return f.coeffs[i]
}

// Coeffs returns a defensive copy of the coefficient vector, index =
// exponent.
func (f *Polynomial) Coeffs() []uint64 {
	out := make([]uint64, len(f.coeffs))
	copy(out, f.coeffs)
	return out
}

// Clone returns an independent copy.
func (f *Polynomial) Clone() *Polynomial {
	return &Polynomial{p: f.p, coeffs: f.Coeffs()}
}

// Equals reports whether f and g have the same modulus, degree, and
// coefficients.
func (f *Polynomial) Equals(g *Polynomial) bool {
	if f.p != g.p || len(f.coeffs) != len(g.coeffs) {
		return false
	}
	for i := range f.coeffs {
		if f.coeffs[i] != g.coeffs[i] {
			return false
		}
	}
	return true
}

// Add returns f + g reduced mod p. f and g must share a modulus.
func (f *Polynomial) Add(g *Polynomial) (*Polynomial, error) {
	if f.p != g.p {
		return nil, gerr.New(gerr.ErrDomain, "modulus mismatch %d != %d", f.p, g.p)
	}
	n := len(f.coeffs)
	if len(g.coeffs) > n {
		n = len(g.coeffs)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = modular.AddMod(f.Coeff(i), g.Coeff(i), f.p)
	}
	return &Polynomial{p: f.p, coeffs: trim(out)}, nil
}

// ScalarMul returns c*f with coefficients reduced mod p.
func (f *Polynomial) ScalarMul(c uint64) *Polynomial {
	out := make([]uint64, len(f.coeffs))
	for i, a := range f.coeffs {
		out[i] = modular.MulMod(a, c, f.p)
	}
	return &Polynomial{p: f.p, coeffs: trim(out)}
}

// Eval computes f(x0) in GF(p) via Horner's rule, reducing modulo p after
// every multiply-add.
func (f *Polynomial) Eval(x0 uint64) uint64 {
	x0 %= f.p
	var result uint64
	for i := len(f.coeffs) - 1; i >= 0; i-- {
		result = modular.MulMod(result, x0, f.p)
		result = modular.AddMod(result, f.coeffs[i], f.p)
	}
	return result
}

// HasLinearFactor reports whether f(a) = 0 for some a in [0, p) — i.e.
// whether f has a root in GF(p), equivalently a linear factor (x - a).
func (f *Polynomial) HasLinearFactor() bool {
	for a := uint64(0); a < f.p; a++ {
		if f.Eval(a) == 0 {
			return true
		}
	}
	return false
}

// IsInteger reports whether f has degree 0 (is a constant).
func (f *Polynomial) IsInteger() bool {
	return f.Degree() == 0
}

// String renders f in the canonical textual form
// "a_n x ^ n + ... + a_1 x + a_0, p", omitting zero terms, the coefficient
// 1 on non-constant terms, and the exponent on the linear term.
func (f *Polynomial) String() string {
	if f.Degree() == 0 {
		return fmt.Sprintf("%d, %d", f.coeffs[0], f.p)
	}
	var sb strings.Builder
	first := true
	for i := len(f.coeffs) - 1; i >= 0; i-- {
		c := f.coeffs[i]
		if c == 0 {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		writeMonomial(&sb, c, i)
	}
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatUint(f.p, 10))
	return sb.String()
}

func writeMonomial(sb *strings.Builder, c uint64, deg int) {
	if c != 1 || deg == 0 {
		sb.WriteString(strconv.FormatUint(c, 10))
	}
	if deg != 0 {
		sb.WriteString("x")
		if deg > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(deg))
		}
	}
}
