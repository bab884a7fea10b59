// Package poly implements dense arithmetic for polynomials in three
// variables (x, y, z) of total degree at most three. Coefficients are stored
// against a fixed ordering of the twenty possible monomials; the five-point
// solver depends on that ordering when it assembles its elimination matrix,
// so it is part of the package contract and must not be reordered.
package poly

import "fmt"

// Size is the number of monomials of degree <= 3 in three variables.
const Size = 20

// MaxDegree is the highest total degree a Poly can represent.
const MaxDegree = 3

// Exponents lists the (x, y, z) powers of each monomial in the canonical
// ordering. Indices 0..9 are the degree-3 monomials, 10..15 the degree-2
// monomials, 16..18 the linear ones and 19 the constant term:
//
//	x3 x2y xy2 y3 x2z xyz y2z xz2 yz2 z3 x2 xy y2 xz yz z2 x y z 1
var Exponents = [Size][3]int{
	{3, 0, 0}, {2, 1, 0}, {1, 2, 0}, {0, 3, 0}, {2, 0, 1},
	{1, 1, 1}, {0, 2, 1}, {1, 0, 2}, {0, 1, 2}, {0, 0, 3},
	{2, 0, 0}, {1, 1, 0}, {0, 2, 0}, {1, 0, 1}, {0, 1, 1}, {0, 0, 2},
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{0, 0, 0},
}

// indexOf maps an exponent triple to its monomial index, or -1.
var indexOf [MaxDegree + 1][MaxDegree + 1][MaxDegree + 1]int

func init() {
	for a := 0; a <= MaxDegree; a++ {
		for b := 0; b <= MaxDegree; b++ {
			for c := 0; c <= MaxDegree; c++ {
				indexOf[a][b][c] = -1
			}
		}
	}
	for i, e := range Exponents {
		indexOf[e[0]][e[1]][e[2]] = i
	}
}

// MonomialIndex returns the canonical index of the monomial x^a * y^b * z^c,
// or -1 if the exponents are negative or exceed total degree 3.
func MonomialIndex(a, b, c int) int {
	if a < 0 || b < 0 || c < 0 || a+b+c > MaxDegree {
		return -1
	}
	return indexOf[a][b][c]
}

// Poly holds one coefficient per monomial in the canonical ordering.
// The zero value is the zero polynomial.
type Poly [Size]float64

// Linear builds the degree-1 polynomial cx*x + cy*y + cz*z + c1.
func Linear(cx, cy, cz, c1 float64) Poly {
	var p Poly
	p[MonomialIndex(1, 0, 0)] = cx
	p[MonomialIndex(0, 1, 0)] = cy
	p[MonomialIndex(0, 0, 1)] = cz
	p[MonomialIndex(0, 0, 0)] = c1
	return p
}

// Coeff returns the coefficient of x^a * y^b * z^c. Monomials that cannot
// appear in a cubic, and monomials absent from p, both report zero.
func (p Poly) Coeff(a, b, c int) float64 {
	i := MonomialIndex(a, b, c)
	if i < 0 {
		return 0
	}
	return p[i]
}

// Degree returns the total degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i, coeff := range p {
		if coeff != 0 {
			e := Exponents[i]
			return e[0] + e[1] + e[2]
		}
	}
	return -1
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	for i := range p {
		p[i] += q[i]
	}
	return p
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	for i := range p {
		p[i] -= q[i]
	}
	return p
}

// Scale returns s * p.
func (p Poly) Scale(s float64) Poly {
	for i := range p {
		p[i] *= s
	}
	return p
}

// Mul returns the product p * q. The solver only ever multiplies a linear
// polynomial by one of degree two or less; a product whose support would
// exceed degree three panics, since no such product is representable.
func (p Poly) Mul(q Poly) Poly {
	var out Poly
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		pe := Exponents[i]
		for j, qc := range q {
			if qc == 0 {
				continue
			}
			qe := Exponents[j]
			k := MonomialIndex(pe[0]+qe[0], pe[1]+qe[1], pe[2]+qe[2])
			if k < 0 {
				panic(fmt.Sprintf("poly: product term x^%d y^%d z^%d exceeds degree %d",
					pe[0]+qe[0], pe[1]+qe[1], pe[2]+qe[2], MaxDegree))
			}
			out[k] += pc * qc
		}
	}
	return out
}

// Eval evaluates p at the point (x, y, z).
func (p Poly) Eval(x, y, z float64) float64 {
	sum := 0.0
	for i, coeff := range p {
		if coeff == 0 {
			continue
		}
		e := Exponents[i]
		term := coeff
		for n := 0; n < e[0]; n++ {
			term *= x
		}
		for n := 0; n < e[1]; n++ {
			term *= y
		}
		for n := 0; n < e[2]; n++ {
			term *= z
		}
		sum += term
	}
	return sum
}
