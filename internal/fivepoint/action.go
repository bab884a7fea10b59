package fivepoint

import "gonum.org/v1/gonum/mat"

// actionRows maps the first six rows of the action matrix to rows of the
// reduced basis: multiplying the leading quotient-ring monomials
// x2, xy, y2, xz, yz, z2 by the acting indeterminate produces the degree-3
// monomials x3, x2y, xy2, x2z, xyz, xz2, which are rows 0, 1, 2, 4, 5, 7
// of the reduction.
var actionRows = [6]int{0, 1, 2, 4, 5, 7}

// actionMatrix assembles the 10x10 matrix representing multiplication by
// one indeterminate on the quotient-ring basis
//
//	x2 xy y2 xz yz z2 x y z 1
//
// Rows 0..5 are negated rows of the reduced basis (the leading term moves
// to the other side of the reduction equation). Rows 6..9 handle the basis
// monomials x, y, z, 1, whose products x2, xy, xz, x are basis monomials
// already, as unit rows.
func actionMatrix(g [10][10]float64) *mat.Dense {
	a := mat.NewDense(10, 10, nil)

	for i, row := range actionRows {
		for j := 0; j < 10; j++ {
			a.Set(i, j, -g[row][j])
		}
	}

	a.Set(6, 0, 1)
	a.Set(7, 1, 1)
	a.Set(8, 3, 1)
	a.Set(9, 6, 1)

	return a
}
