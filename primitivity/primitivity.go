// Package primitivity implements the primitivity test for a monic
// polynomial over GF(p): irreducibility via the nullity of the reduced
// Q−I (Berlekamp) matrix, followed by the order-of-x test driven by the
// factorization of r = (p^n−1)/(p−1). The numbered-step commentary style
// and the "compute once, cache, resetPolynomial discards" state shape are
// grounded on bfix-gospel/math/sqrt.go's SqrtModP, which is the pack's
// only other hand-rolled modular-algebra routine with the same
// compute-then-verify structure.
package primitivity

import (
	"github.com/bfix/primpoly/bigint"
	gerr "github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/factor"
	"github.com/bfix/primpoly/modular"
	"github.com/bfix/primpoly/poly"
	"github.com/bfix/primpoly/polymod"
)

// PolyOrder owns a monic polynomial f of degree n over GF(p) and the
// caches needed to test it for primitivity: the reduced Berlekamp matrix
// Q−I and the factorization of r = (p^n−1)/(p−1). Both caches are built
// lazily on first use and invalidated wholesale by ResetPolynomial.
type PolyOrder struct {
	f       *poly.Polynomial
	qMinusI [][]uint64

	r        *bigint.BigInt
	rFactors *factor.Factorization

	table    *factor.FactorTable
	counters *factor.Counters
}

// New builds a PolyOrder for f. f must be monic of degree >= 1; table and
// counters (either may be nil) are threaded through to the factorization
// of r, so a loaded Cunningham table can short-circuit the r = p^n−1 case
// (p = 2).
func New(f *poly.Polynomial, table *factor.FactorTable, counters *factor.Counters) (*PolyOrder, error) {
	if f.Degree() < 1 {
		return nil, gerr.New(gerr.ErrRange, "modulus polynomial must have degree >= 1")
	}
	if f.Coeff(f.Degree()) != 1 {
		return nil, gerr.New(gerr.ErrDomain, "polynomial must be monic")
	}
	return &PolyOrder{f: f.Clone(), table: table, counters: counters}, nil
}

// ResetPolynomial discards every cache and re-initializes PolyOrder for a
// new polynomial g, reusing the same table/counters.
func (po *PolyOrder) ResetPolynomial(g *poly.Polynomial) error {
	fresh, err := New(g, po.table, po.counters)
	if err != nil {
		return err
	}
	*po = *fresh
	return nil
}

// Polynomial returns the polynomial under test.
func (po *PolyOrder) Polynomial() *poly.Polynomial {
	return po.f.Clone()
}

func (po *PolyOrder) ensureQMinusI() error {
	if po.qMinusI != nil {
		return nil
	}
	q, err := buildQMinusI(po.f)
	if err != nil {
		return err
	}
	po.qMinusI = q
	return nil
}

// buildQMinusI forms the n x n matrix Q - I over GF(p), row i the
// coefficient vector of x^{p*i} mod f: row 0 is the constant 1, and row i
// is row (i-1) times x^p mod f, so the whole matrix is built with n
// PolyMod multiplications instead of n independent exponentiations.
func buildQMinusI(f *poly.Polynomial) ([][]uint64, error) {
	n := f.Degree()
	p := f.P()

	one, err := poly.New(p, []uint64{1})
	if err != nil {
		return nil, err
	}
	x, err := poly.New(p, []uint64{0, 1})
	if err != nil {
		return nil, err
	}
	xToP, err := polymod.New(x, f)
	if err != nil {
		return nil, err
	}
	xToP.Pow(bigint.FromUint64(p))

	row, err := polymod.New(one, f)
	if err != nil {
		return nil, err
	}

	q := make([][]uint64, n)
	for i := 0; i < n; i++ {
		r, err := row.Residue()
		if err != nil {
			return nil, err
		}
		vec := make([]uint64, n)
		copy(vec, r.Coeffs())
		q[i] = vec
		row.Multiply(xToP)
	}
	for i := 0; i < n; i++ {
		q[i][i] = modular.AddMod(q[i][i], p-1, p)
	}
	return q, nil
}

func cloneMatrix(m [][]uint64) [][]uint64 {
	out := make([][]uint64, len(m))
	for i, row := range m {
		out[i] = append([]uint64(nil), row...)
	}
	return out
}

// computeNullity reduces mat (n x n over GF(p)) to row-echelon form in
// place by elimination with modular pivot normalization, and returns the
// nullity n - rank. If stopAt > 0, the reduction returns as soon as the
// count of pivot-less columns reaches stopAt, handing back that count
// (a true lower bound on the final nullity, sufficient for a caller that
// only needs to know whether nullity >= stopAt).
func computeNullity(mat [][]uint64, n int, p uint64, stopAt int) int {
	pivotRow := 0
	skipped := 0
	for col := 0; col < n; col++ {
		if pivotRow >= n {
			skipped += n - col
			break
		}
		sel := -1
		for r := pivotRow; r < n; r++ {
			if mat[r][col] != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			skipped++
			if stopAt > 0 && skipped >= stopAt {
				return skipped
			}
			continue
		}
		mat[pivotRow], mat[sel] = mat[sel], mat[pivotRow]
		inv, _ := modular.InverseMod(mat[pivotRow][col], p)
		for i := col; i < n; i++ {
			mat[pivotRow][i] = modular.MulMod(mat[pivotRow][i], inv, p)
		}
		for r := 0; r < n; r++ {
			if r == pivotRow {
				continue
			}
			factor := mat[r][col]
			if factor == 0 {
				continue
			}
			for i := col; i < n; i++ {
				sub := modular.MulMod(factor, mat[pivotRow][i], p)
				mat[r][i] = modular.AddMod(mat[r][i], p-sub%p, p)
			}
		}
		pivotRow++
	}
	return n - pivotRow
}

// Nullity computes the exact nullity of Q - I: the number of distinct
// irreducible factors of f over GF(p).
func (po *PolyOrder) Nullity() (int, error) {
	if err := po.ensureQMinusI(); err != nil {
		return 0, err
	}
	mat := cloneMatrix(po.qMinusI)
	return computeNullity(mat, po.f.Degree(), po.f.P(), 0), nil
}

// IsIrreducible reports whether f is irreducible over GF(p), via the
// early-out nullity >= 2 optimization: elimination stops the moment a
// second pivot-less column is found, without finishing the reduction.
func (po *PolyOrder) IsIrreducible() (bool, error) {
	if err := po.ensureQMinusI(); err != nil {
		return false, err
	}
	mat := cloneMatrix(po.qMinusI)
	nullity := computeNullity(mat, po.f.Degree(), po.f.P(), 2)
	return nullity == 1, nil
}

func (po *PolyOrder) ensureR() error {
	if po.r != nil {
		return nil
	}
	n := po.f.Degree()
	p := po.f.P()
	pn := bigint.PowUint64(p, uint64(n))
	pn1, err := pn.Pred()
	if err != nil {
		return err
	}
	r, err := pn1.Div(bigint.FromUint64(p - 1))
	if err != nil {
		return err
	}
	po.r = r
	return nil
}

func (po *PolyOrder) ensureRFactorization() error {
	if po.rFactors != nil {
		return nil
	}
	if err := po.ensureR(); err != nil {
		return err
	}
	fz, err := factor.Decompose(po.r, po.table, po.f.Degree(), po.counters)
	if err != nil {
		return err
	}
	po.rFactors = fz
	return nil
}

// DistinctPrimeFactorsOfR factors r = (p^n-1)/(p-1) (caching the result)
// and returns its distinct prime factors, ascending.
func (po *PolyOrder) DistinctPrimeFactorsOfR() ([]*bigint.BigInt, error) {
	if err := po.ensureRFactorization(); err != nil {
		return nil, err
	}
	return po.rFactors.DistinctPrimes(), nil
}

// orderOfXHolds runs step 2 of the primitivity test: x^{r/q} mod f must
// not be 1 for any distinct prime q | r, and x^r mod f must equal
// (-1)^n * a0 in GF(p), a0 the constant term of f.
func (po *PolyOrder) orderOfXHolds() (bool, error) {
	if err := po.ensureRFactorization(); err != nil {
		return false, err
	}
	n := po.f.Degree()
	p := po.f.P()
	x, err := poly.New(p, []uint64{0, 1})
	if err != nil {
		return false, err
	}

	for _, q := range po.rFactors.DistinctPrimes() {
		exp, err := po.r.Div(q)
		if err != nil {
			return false, err
		}
		pm, err := polymod.New(x, po.f)
		if err != nil {
			return false, err
		}
		pm.Pow(exp)
		res, err := pm.Residue()
		if err != nil {
			return false, err
		}
		if res.IsInteger() && res.Coeff(0) == 1 {
			return false, nil
		}
	}

	pm, err := polymod.New(x, po.f)
	if err != nil {
		return false, err
	}
	pm.Pow(po.r)
	res, err := pm.Residue()
	if err != nil {
		return false, err
	}

	a0 := po.f.Coeff(0)
	want := a0
	if n%2 != 0 {
		want = (p - a0) % p
	}
	return res.IsInteger() && res.Coeff(0) == want, nil
}

// IsPrimitive decides whether f is primitive over GF(p): irreducible
// (nullity of Q-I equal to 1) and x has order p^n-1 modulo f, tested via
// the r = (p^n-1)/(p-1) order conditions.
func (po *PolyOrder) IsPrimitive() (bool, error) {
	irreducible, err := po.IsIrreducible()
	if err != nil {
		return false, err
	}
	if !irreducible {
		return false, nil
	}
	return po.orderOfXHolds()
}

// CountPrimitivePolynomials returns phi(p^n-1)/n, the number of primitive
// polynomials of degree n over GF(p).
func (po *PolyOrder) CountPrimitivePolynomials() (*bigint.BigInt, error) {
	n := po.f.Degree()
	p := po.f.P()
	m := bigint.PowUint64(p, uint64(n))
	m, err := m.Pred()
	if err != nil {
		return nil, err
	}

	fz, err := factor.Decompose(m, po.table, n, po.counters)
	if err != nil {
		return nil, err
	}

	phi := m
	for _, q := range fz.DistinctPrimes() {
		phi, err = phi.Div(q)
		if err != nil {
			return nil, err
		}
		qMinus1, err := q.Clone().Pred()
		if err != nil {
			return nil, err
		}
		phi = phi.Mul(qMinus1)
	}
	return phi.Div(bigint.FromUint64(uint64(n)))
}
