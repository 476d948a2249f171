// Package polymod implements residue classes modulo a fixed polynomial
// f(x) over GF(p): construction by long division, multiply-by-x, square,
// multiply, and fast exponentiation by repeated squaring. The
// convolution-then-reduce-via-precomputed-table shape mirrors
// other_examples/67377979_akalin-aks-go__aks-bigintpoly.go.go's
// bigIntPoly.mul/Pow (temp-buffer multiply, then fold high-degree terms
// back down, then a bit-driven left-to-right exponentiation loop), adapted
// from reduction mod (N, X^R-1) to reduction mod a general f(x) via the
// precomputed table of x^j mod f for j = n, ..., 2n-2.
package polymod

import (
	"github.com/bfix/primpoly/bigint"
	gerr "github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/modular"
	"github.com/bfix/primpoly/poly"
)

// PolyMod is a residue g(x) mod f(x) over GF(p), deg(g) < deg(f) = n. f is
// immutable for the life of the PolyMod; every operation mutates only the
// receiver's residue, never observable through another PolyMod sharing
// the same f.
type PolyMod struct {
	p     uint64
	f     *poly.Polynomial
	g     []uint64 // residue coefficients, length n
	table [][]uint64
}

// New builds the PolyMod for residue g reduced modulo f (deg f = n > 0).
func New(g, f *poly.Polynomial) (*PolyMod, error) {
	if f.P() != g.P() {
		return nil, gerr.New(gerr.ErrDomain, "modulus mismatch %d != %d", f.P(), g.P())
	}
	n := f.Degree()
	if n < 1 {
		return nil, gerr.New(gerr.ErrRange, "modulus polynomial must have degree >= 1")
	}
	pm := &PolyMod{p: f.P(), f: f.Clone(), table: reductionTable(f)}
	pm.g = reduceByLongDivision(g.Coeffs(), f)
	return pm, nil
}

// reductionTable precomputes x^j mod f for j = n, ..., 2n-2 by plain long
// division of the monomial x^j, one row per j (row index j-n), each row
// an n-vector over GF(p). Used to fold the high-degree half of a
// convolution product back into range.
func reductionTable(f *poly.Polynomial) [][]uint64 {
	n := f.Degree()
	rows := make([][]uint64, 0, max(0, n-1))
	for j := n; j <= 2*n-2; j++ {
		c := make([]uint64, j+1)
		c[j] = 1
		rows = append(rows, reduceByLongDivision(c, f))
	}
	return rows
}

// reduceByLongDivision reduces an arbitrary-degree coefficient vector
// modulo f by plain polynomial long division in GF(p)[x] (synthetic
// division, since f is monic in every caller of this package but the
// general leading-coefficient case is handled too), returning the
// length-n residue vector.
func reduceByLongDivision(c []uint64, f *poly.Polynomial) []uint64 {
	n := f.Degree()
	p := f.P()
	work := make([]uint64, len(c))
	copy(work, c)
	leadInv, _ := modular.InverseMod(f.Coeff(n), p)

	for deg := len(work) - 1; deg >= n; deg-- {
		lead := work[deg]
		if lead == 0 {
			continue
		}
		q := modular.MulMod(lead, leadInv, p)
		for i := 0; i <= n; i++ {
			fc := f.Coeff(i)
			if fc == 0 {
				continue
			}
			idx := deg - n + i
			sub := modular.MulMod(q, fc, p)
			work[idx] = modular.AddMod(work[idx], p-sub%p, p)
		}
	}
	out := make([]uint64, n)
	copy(out, work[:min(n, len(work))])
	return out
}

// P returns the field modulus.
func (pm *PolyMod) P() uint64 {
	return pm.p
}

// F returns the (shared, immutable) modulus polynomial.
func (pm *PolyMod) F() *poly.Polynomial {
	return pm.f
}

// Residue returns the residue as a Polynomial of degree < deg(f).
func (pm *PolyMod) Residue() (*poly.Polynomial, error) {
	return poly.New(pm.p, append([]uint64(nil), pm.g...))
}

// String renders the residue's canonical textual form.
func (pm *PolyMod) String() string {
	r, err := pm.Residue()
	if err != nil {
		return "<invalid>"
	}
	return r.String()
}

// Clone returns an independent copy sharing the same (immutable) f and
// reduction table, with its own residue slice.
func (pm *PolyMod) Clone() *PolyMod {
	g := make([]uint64, len(pm.g))
	copy(g, pm.g)
	return &PolyMod{p: pm.p, f: pm.f, table: pm.table, g: g}
}

// TimesX multiplies the residue by x in place: shift coefficients up by
// one, and if the new degree would equal n = deg(f), cancel the overflow
// term by subtracting (overflow coefficient) * f.
func (pm *PolyMod) TimesX() {
	n := pm.f.Degree()
	overflow := pm.g[n-1]
	for i := n - 1; i > 0; i-- {
		pm.g[i] = pm.g[i-1]
	}
	pm.g[0] = 0
	if overflow != 0 {
		for i := 0; i < n; i++ {
			sub := modular.MulMod(overflow, pm.f.Coeff(i), pm.p)
			pm.g[i] = modular.AddMod(pm.g[i], pm.p-sub%pm.p, pm.p)
		}
	}
}

// convolve computes the full (possibly degree 2n-2) product of two
// length-n coefficient vectors mod p via schoolbook convolution:
// coefficient k of the product is sum_{i+j=k} a_i b_j mod p.
func convolve(a, b []uint64, p uint64) []uint64 {
	n := len(a)
	out := make([]uint64, 2*n-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if bv == 0 {
				continue
			}
			out[i+j] = modular.AddMod(out[i+j], modular.MulMod(av, bv, p), p)
		}
	}
	return out
}

// reduceConvolution folds a (possibly degree up to 2n-2) convolution
// result down to an n-vector using the precomputed table of x^j mod f for
// j = n, ..., 2n-2.
func (pm *PolyMod) reduceConvolution(conv []uint64) []uint64 {
	n := pm.f.Degree()
	out := make([]uint64, n)
	copy(out, conv[:n])
	for k := n; k < len(conv); k++ {
		c := conv[k]
		if c == 0 {
			continue
		}
		row := pm.table[k-n]
		for i := 0; i < n; i++ {
			out[i] = modular.AddMod(out[i], modular.MulMod(c, row[i], pm.p), pm.p)
		}
	}
	return out
}

// Multiply sets the receiver's residue to g*h mod f, where h is another
// PolyMod sharing the same f.
func (pm *PolyMod) Multiply(h *PolyMod) {
	conv := convolve(pm.g, h.g, pm.p)
	pm.g = pm.reduceConvolution(conv)
}

// Square sets the receiver's residue to g^2 mod f.
func (pm *PolyMod) Square() {
	pm.Multiply(pm.Clone())
}

// Pow sets the receiver's residue to g^N mod f for a BigInt exponent N,
// via left-to-right binary exponentiation driven by N.Bit/N.CeilLg.
func (pm *PolyMod) Pow(nExp *bigint.BigInt) {
	base := pm.Clone()
	one, _ := poly.New(pm.p, []uint64{1})
	result, _ := New(one, pm.f)
	for i := nExp.CeilLg() - 1; i >= 0; i-- {
		result.Square()
		if nExp.Bit(i) == 1 {
			result.Multiply(base)
		}
	}
	pm.g = result.g
}
