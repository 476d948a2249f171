package poly

import "github.com/bfix/primpoly/data"

// InitialTrialPoly returns x^n over GF(p): the coefficient vector
// (0, ..., 0, 1) with the 1 at index n. This is the pinned starting point
// for successor enumeration (not x^n + 1).
func InitialTrialPoly(n int, p uint64) *Polynomial {
	coeffs := make([]uint64, n+1)
	coeffs[n] = 1
	f, _ := New(p, coeffs)
	return f
}

// NextTrialPoly advances f in place to the next monic polynomial of the
// same degree over GF(p), treating coefficients c_0, ..., c_{n-1} as an
// n-digit little-endian radix-p counter with the leading c_n held fixed
// at 1. It reports whether a successor exists: once the counter overflows
// back to all zero (a full cycle of every monic polynomial of this degree
// visited), it returns false and leaves f at x^n again.
func (f *Polynomial) NextTrialPoly() bool {
	n := f.Degree()
	if n == 0 {
		return false
	}
	cs := f.Coeffs()
	for i := 0; i < n; i++ {
		cs[i]++
		if cs[i] < f.p {
			f.coeffs = trim(cs)
			return true
		}
		cs[i] = 0
	}
	// Every lower coefficient wrapped: the full cycle is complete.
	f.coeffs = trim(cs)
	return false
}

// Enumerate yields every monic polynomial of degree n over GF(p) exactly
// once, starting from InitialTrialPoly, as a convenience wrapper around
// the synchronous NextTrialPoly step — grounded on data.Generator/
// data.GeneratorChannel. It is pure sugar: every polynomial sent is
// produced by one synchronous step call, and no primitivity computation
// uses this path.
func Enumerate(n int, p uint64) <-chan *Polynomial {
	gen := data.NewGenerator(func(out data.GeneratorChannel[*Polynomial]) {
		f := InitialTrialPoly(n, p)
		for {
			if !out.Yield(f.Clone()) {
				out.Done()
				return
			}
			if !f.NextTrialPoly() {
				out.Done()
				return
			}
		}
	})
	return gen.Run()
}
