package epipolar

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// Residual evaluates the epipolar constraint left_h' * E * right_h for one
// correspondence, with both points lifted to homogeneous coordinates, and
// returns its absolute value. A perfect essential matrix for the pair gives
// zero.
//
// The argument order matches the convention of the five-point solver, whose
// candidates contract the left point on the left side.
func Residual(e mat.Matrix, left, right r2.Point) float64 {
	l := [3]float64{left.X, left.Y, 1}
	r := [3]float64{right.X, right.Y, 1}

	sum := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += l[i] * e.At(i, j) * r[j]
		}
	}
	return math.Abs(sum)
}

// MaxResidual returns the largest epipolar residual of e over all pairs.
func MaxResidual(e mat.Matrix, c *Correspondences) float64 {
	worst := 0.0
	for i := range c.Right {
		if r := Residual(e, c.Left[i], c.Right[i]); r > worst {
			worst = r
		}
	}
	return worst
}

// SingularDefect measures how far e is from having two equal nonzero
// singular values and one zero singular value, as the Frobenius norm of
// 2*E*E'*E - trace(E*E')*E divided by ||E||^3. Zero for an exact essential
// matrix; scale invariant.
func SingularDefect(e mat.Matrix) float64 {
	norm := mat.Norm(e, 2)
	if norm == 0 {
		return 0
	}

	var eet, defect mat.Dense
	eet.Mul(e, e.T())

	defect.Mul(&eet, e)
	defect.Scale(2, &defect)

	var traced mat.Dense
	traced.Scale(mat.Trace(&eet), e)
	defect.Sub(&defect, &traced)

	return mat.Norm(&defect, 2) / (norm * norm * norm)
}

// DetRatio returns |det(E)| / ||E||^3, a scale-invariant measure of the
// rank-deficiency constraint. Zero for an exact essential matrix.
func DetRatio(e mat.Matrix) float64 {
	norm := mat.Norm(e, 2)
	if norm == 0 {
		return 0
	}
	return math.Abs(mat.Det(e)) / (norm * norm * norm)
}

// NormalizedDistance compares two matrices modulo scale and sign: both are
// scaled to unit Frobenius norm and the smaller of the two sign-choice
// Frobenius distances is returned. Zero means a and b are scalar-colinear.
func NormalizedDistance(a, b mat.Matrix) float64 {
	var an, bn mat.Dense
	an.Scale(1/mat.Norm(a, 2), a)
	bn.Scale(1/mat.Norm(b, 2), b)

	var diff, sum mat.Dense
	diff.Sub(&an, &bn)
	sum.Add(&an, &bn)

	return math.Min(mat.Norm(&diff, 2), mat.Norm(&sum, 2))
}
