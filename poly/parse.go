package poly

import (
	"strconv"
	"strings"

	gerr "github.com/bfix/primpoly/errors"
)

// Parse converts the canonical textual form "a_n x ^ n + ... + a_1 x +
// a_0, p" into a Polynomial. Whitespace around operators is ignored;
// operators '+', '^', '*' are accepted, '-' is rejected with a range
// error. A missing trailing ", p" defaults the modulus to 2.
func Parse(s string) (*Polynomial, error) {
	if strings.ContainsRune(s, '-') {
		return nil, gerr.New(gerr.ErrRange, "negative coefficients are not supported: %q", s)
	}

	body := s
	p := uint64(2)
	if idx := strings.LastIndex(s, ","); idx >= 0 {
		body = s[:idx]
		modStr := strings.TrimSpace(s[idx+1:])
		v, err := strconv.ParseUint(modStr, 10, 64)
		if err != nil {
			return nil, gerr.New(gerr.ErrRange, "bad modulus %q", modStr)
		}
		p = v
	}

	var coeffs []uint64
	for _, term := range strings.Split(body, "+") {
		term = strings.ReplaceAll(term, " ", "")
		term = strings.ReplaceAll(term, "*", "")
		if term == "" {
			continue
		}
		coeff, deg, err := parseTerm(term)
		if err != nil {
			return nil, err
		}
		for len(coeffs) <= deg {
			coeffs = append(coeffs, 0)
		}
		coeffs[deg] += coeff
	}
	if len(coeffs) == 0 {
		coeffs = []uint64{0}
	}
	return New(p, coeffs)
}

// parseTerm parses one whitespace-stripped monomial: a bare integer
// (degree 0), "x" or "x^n" (coefficient 1), or "a x" / "a x^n".
func parseTerm(term string) (coeff uint64, deg int, err error) {
	xi := strings.IndexByte(term, 'x')
	if xi < 0 {
		v, perr := strconv.ParseUint(term, 10, 64)
		if perr != nil {
			return 0, 0, gerr.New(gerr.ErrRange, "bad term %q", term)
		}
		return v, 0, nil
	}

	coeffStr := term[:xi]
	coeff = 1
	if coeffStr != "" {
		v, perr := strconv.ParseUint(coeffStr, 10, 64)
		if perr != nil {
			return 0, 0, gerr.New(gerr.ErrRange, "bad coefficient in term %q", term)
		}
		coeff = v
	}

	rest := term[xi+1:]
	deg = 1
	if rest != "" {
		if !strings.HasPrefix(rest, "^") {
			return 0, 0, gerr.New(gerr.ErrRange, "bad exponent in term %q", term)
		}
		v, perr := strconv.Atoi(rest[1:])
		if perr != nil || v < 0 {
			return 0, 0, gerr.New(gerr.ErrRange, "bad exponent in term %q", term)
		}
		deg = v
	}
	return coeff, deg, nil
}
