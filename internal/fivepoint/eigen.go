package fivepoint

import (
	"errors"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

// recoverMatrices eigendecomposes the action matrix and reconstructs one
// essential matrix per sufficiently real eigenvalue.
//
// The right eigenvectors are the columns of the eigenvector matrix. An
// eigenvector for a root of the constraint system is proportional to the
// quotient-ring basis monomials evaluated at that root, so its x, y, z and
// 1 components sit at rows 6..9; dividing by the 1 component recovers the
// mixing coefficients directly.
func (s *Solver) recoverMatrices(basis [4][9]float64, action *mat.Dense) ([]*mat.Dense, error) {
	var eig mat.Eigen
	if !eig.Factorize(action, mat.EigenRight) {
		return nil, errors.New("fivepoint: eigendecomposition of action matrix did not converge")
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	ems := make([]*mat.Dense, 0, len(values))
	for j, lambda := range values {
		if math.Abs(imag(lambda)) > s.Tolerance {
			continue
		}

		unit := real(vectors.At(9, j))
		if math.Abs(unit) < s.Tolerance {
			// The root sits at infinity in the w = 1 chart; the mixing
			// coefficients cannot be recovered.
			if s.Verbose {
				slog.Debug("skipping candidate with vanishing unit component",
					"eigenvalue", real(lambda))
			}
			continue
		}

		wInv := 1 / unit
		x := real(vectors.At(6, j)) * wInv
		y := real(vectors.At(7, j)) * wInv
		z := real(vectors.At(8, j)) * wInv

		var e [9]float64
		for k := range e {
			e[k] = x*basis[0][k] + y*basis[1][k] + z*basis[2][k] + basis[3][k]
		}

		normalize(&e, s.Tolerance)
		ems = append(ems, mat.NewDense(3, 3, e[:]))
	}

	return ems, nil
}

// normalize fixes the scale of a reconstructed 9-vector. The usual
// convention divides by the last entry so the bottom-right element of the
// matrix becomes 1; when that entry is near zero the candidate is scaled to
// unit Frobenius norm instead of being discarded.
func normalize(e *[9]float64, tolerance float64) {
	if math.Abs(e[8]) >= tolerance {
		scale := 1 / e[8]
		for k := range e {
			e[k] *= scale
		}
		return
	}

	var norm float64
	for _, v := range e {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for k := range e {
		e[k] /= norm
	}
}
