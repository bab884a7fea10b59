package fivepoint

import (
	"errors"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// nullspaceBasis builds the 5x9 epipolar constraint matrix from the point
// pairs and returns four 9-vectors spanning its right nullspace.
//
// Row i encodes right[i]_h' * E * left[i]_h = 0 with the nine entries of E
// unrolled column-major across the columns. Five rows over a nine-column
// space leave a generic nullspace of dimension four; it is taken as the
// last four right singular vectors by index, not by singular-value
// thresholding.
func nullspaceBasis(right, left []r2.Point) ([4][9]float64, error) {
	var basis [4][9]float64

	a := mat.NewDense(pointCount, 9, nil)
	for i := 0; i < pointCount; i++ {
		r, l := right[i], left[i]
		a.SetRow(i, []float64{
			r.X * l.X, r.Y * l.X, l.X,
			r.X * l.Y, r.Y * l.Y, l.Y,
			r.X, r.Y, 1,
		})
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return basis, errors.New("fivepoint: svd of epipolar constraint matrix did not converge")
	}

	var v mat.Dense
	svd.VTo(&v)

	for j := range basis {
		for k := 0; k < 9; k++ {
			basis[j][k] = v.At(k, pointCount+j)
		}
	}
	return basis, nil
}
