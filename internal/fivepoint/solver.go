// Package fivepoint estimates the essential matrix between two calibrated
// views from exactly five point correspondences, following Nister's
// five-point algorithm. One call yields up to ten algebraically valid
// candidate matrices; callers are expected to score them against further
// correspondences (typically inside a RANSAC loop) and to handle chirality
// and decomposition themselves.
//
// Input points must be in normalized image coordinates (principal point at
// the origin, unit focal length). The solver is a pure function of its
// inputs and is safe for concurrent use from multiple goroutines.
package fivepoint

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance bounds the imaginary-part filter on eigenvalues and the
// divisor guards during candidate recovery.
const DefaultTolerance = 1e-4

// pointCount is the exact number of correspondences the algorithm consumes.
const pointCount = 5

// ErrPointCount reports that an input slice did not hold exactly five points.
var ErrPointCount = errors.New("exactly five point correspondences are required")

// Solver runs the five-point pipeline. The zero value is not ready for use;
// construct with New.
type Solver struct {
	// Verbose gates diagnostic logging for rejected inputs and skipped
	// candidates.
	Verbose bool

	// Tolerance bounds the imaginary-part filter in the eigenvalue sweep
	// and the near-zero divisor guards.
	Tolerance float64
}

// New returns a Solver with the default tolerance.
func New() *Solver {
	return &Solver{Tolerance: DefaultTolerance}
}

// Solve computes candidate essential matrices from five correspondences.
// right[i] and left[i] are the projections of the same world point in the
// right and left view. Each returned 3x3 matrix E satisfies the epipolar
// constraint left_h' * E * right_h = 0 (homogeneous points) for all five
// pairs, det(E) = 0, and the equal-singular-value constraint, up to
// floating-point error. Between zero and ten candidates are returned; ten
// is the generic case.
//
// A nil error means the pipeline ran to completion. Solve fails with
// ErrPointCount when either slice is not exactly length five, and with an
// error of its own if the SVD or eigendecomposition does not converge.
func (s *Solver) Solve(right, left []r2.Point) ([]*mat.Dense, error) {
	if len(right) != pointCount || len(left) != pointCount {
		if s.Verbose {
			slog.Warn("wrong number of input points",
				"right", len(right), "left", len(left))
		}
		return nil, fmt.Errorf("%w: got %d right and %d left points",
			ErrPointCount, len(right), len(left))
	}

	// Basis of the right nullspace of the epipolar constraint matrix.
	basis, err := nullspaceBasis(right, left)
	if err != nil {
		return nil, err
	}

	// Ten cubic constraints on the mixing coefficients (x, y, z).
	constraints := constraintPolynomials(basis)

	// Eliminate the degree-3 monomials to obtain the reduced basis.
	g := groebnerBasis(constraints)

	// Multiplication operator on the quotient ring.
	action := actionMatrix(g)

	// One candidate per sufficiently real eigenvalue.
	return s.recoverMatrices(basis, action)
}
