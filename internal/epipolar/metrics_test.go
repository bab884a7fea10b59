package epipolar

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// exactEssential builds an exact essential matrix from a unit translation
// along x and a rotation about the z axis.
func exactEssential(angle float64) *mat.Dense {
	// [t]x for t = (1, 0, 0)
	skew := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 0, -1,
		0, 1, 0,
	})
	rot := mat.NewDense(3, 3, []float64{
		math.Cos(angle), -math.Sin(angle), 0,
		math.Sin(angle), math.Cos(angle), 0,
		0, 0, 1,
	})

	e := mat.NewDense(3, 3, nil)
	e.Mul(skew, rot)
	return e
}

func TestResidual(t *testing.T) {
	e := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	left := r2.Point{X: 1, Y: 2}
	right := r2.Point{X: 3, Y: 4}

	// (1 2 1) * E * (3 4 1)' computed by hand: l'E = (16, 20, 24),
	// dotted with (3, 4, 1) gives 48 + 80 + 24 = 152.
	assert.InDelta(t, 152.0, Residual(e, left, right), 1e-12)
}

func TestResidualZeroForExactGeometry(t *testing.T) {
	// Pure translation t = (1, 0, 0): the world point (1, 2, 4) projects
	// to (0.25, 0.5) in the first view and (0.5, 0.5) in the second.
	// Residual contracts the left point on the left, so the textbook
	// matrix [t]x * R enters transposed.
	e := exactEssential(0)
	left := r2.Point{X: 0.25, Y: 0.5}
	right := r2.Point{X: 0.5, Y: 0.5}

	assert.Less(t, Residual(e.T(), left, right), 1e-12)
}

func TestSingularDefectAndDetRatio(t *testing.T) {
	exact := exactEssential(0.3)
	assert.Less(t, SingularDefect(exact), 1e-12)
	assert.Less(t, DetRatio(exact), 1e-12)

	// A full-rank matrix with distinct singular values violates both.
	bad := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	})
	assert.Greater(t, SingularDefect(bad), 0.01)
	assert.Greater(t, DetRatio(bad), 0.01)
}

func TestMetricsScaleInvariant(t *testing.T) {
	e := exactEssential(1.1)
	var scaled mat.Dense
	scaled.Scale(37.5, e)

	assert.InDelta(t, SingularDefect(e), SingularDefect(&scaled), 1e-12)
	assert.InDelta(t, DetRatio(e), DetRatio(&scaled), 1e-12)
}

func TestNormalizedDistance(t *testing.T) {
	e := exactEssential(0.7)

	var scaled, negated mat.Dense
	scaled.Scale(-12.0, e)
	negated.Scale(-1, e)

	// Scalar multiples, including negative ones, compare as identical.
	assert.Less(t, NormalizedDistance(e, &scaled), 1e-12)
	assert.Less(t, NormalizedDistance(e, &negated), 1e-12)

	other := exactEssential(2.5)
	assert.Greater(t, NormalizedDistance(e, other), 0.01)
}

func TestMaxResidual(t *testing.T) {
	e := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 0, -1,
		0, 1, 0,
	})
	c := &Correspondences{
		Right: []r2.Point{{X: 0.5, Y: 0.5}, {X: 1, Y: 0}},
		Left:  []r2.Point{{X: 0.25, Y: 0.5}, {X: 0.5, Y: 0.25}},
	}

	worst := 0.0
	for i := range c.Right {
		if r := Residual(e, c.Left[i], c.Right[i]); r > worst {
			worst = r
		}
	}
	assert.InDelta(t, worst, MaxResidual(e, c), 1e-15)
}
