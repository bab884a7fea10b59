package fivepoint

import (
	"github.com/MeKo-Tech/fivepoint/internal/poly"
)

// constraintPolynomials expands the parametric essential matrix
//
//	E = x*B0 + y*B1 + z*B2 + B3
//
// (the fourth mixing coefficient fixed to 1 to remove the scale freedom)
// and returns the ten cubic polynomials in (x, y, z) that a valid essential
// matrix must satisfy: det(E) = 0 followed by the nine entries of
// 2*E*E'*E - trace(E*E')*E = 0.
func constraintPolynomials(basis [4][9]float64) [10]poly.Poly {
	// One linear polynomial per entry of E, indexed
	//
	//	[ e0 e1 e2 ]
	//	[ e3 e4 e5 ]
	//	[ e6 e7 e8 ]
	var e [9]poly.Poly
	for k := range e {
		e[k] = poly.Linear(basis[0][k], basis[1][k], basis[2][k], basis[3][k])
	}

	var constraints [10]poly.Poly

	// det(E) = e4*(e0*e8 - e6*e2) + e5*(e1*e6 - e0*e7) + e3*(e2*e7 - e1*e8)
	constraints[0] = e[4].Mul(e[0].Mul(e[8]).Sub(e[6].Mul(e[2]))).
		Add(e[5].Mul(e[1].Mul(e[6]).Sub(e[0].Mul(e[7])))).
		Add(e[3].Mul(e[2].Mul(e[7]).Sub(e[1].Mul(e[8]))))

	// Sum of squares of all nine entries, shared by every trace constraint.
	squares := e[0].Mul(e[0])
	for k := 1; k < 9; k++ {
		squares = squares.Add(e[k].Mul(e[k]))
	}

	// Entry (r, c) of 2*E*E'*E expands as
	//
	//	sum_k 2*(row_r . row_k) * e[3k+c]
	//
	// so each constraint couples the three row products of row r with the
	// three entries of column c.
	for i := 0; i < 9; i++ {
		r, c := i/3, i%3
		constraints[i+1] = e[c].Mul(rowProduct(&e, r, 0)).
			Add(e[c+3].Mul(rowProduct(&e, r, 1))).
			Add(e[c+6].Mul(rowProduct(&e, r, 2))).
			Sub(e[i].Mul(squares))
	}

	return constraints
}

// rowProduct forms 2*(E[row,0]*E[col,0] + E[row,1]*E[col,1] + E[row,2]*E[col,2]),
// the (row, col) entry of 2*E*E' as a quadratic polynomial.
func rowProduct(e *[9]poly.Poly, row, col int) poly.Poly {
	p := e[3*row].Mul(e[3*col]).
		Add(e[3*row+1].Mul(e[3*col+1])).
		Add(e[3*row+2].Mul(e[3*col+2]))
	return p.Scale(2)
}
