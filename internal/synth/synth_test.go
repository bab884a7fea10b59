package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGenerateSceneShape(t *testing.T) {
	scene, err := Generate(rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Len(t, scene.Right, 5)
	assert.Len(t, scene.Left, 5)
	assert.InDelta(t, 1.0, scene.Translation.Norm(), 1e-12)
}

func TestGenerateSatisfiesEpipolarIdentity(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 1000} {
		scene, err := Generate(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		for i := range scene.Left {
			l := [3]float64{scene.Left[i].X, scene.Left[i].Y, 1}
			r := [3]float64{scene.Right[i].X, scene.Right[i].Y, 1}

			sum := 0.0
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					sum += l[a] * scene.Essential.At(a, b) * r[b]
				}
			}
			assert.Less(t, math.Abs(sum), 1e-12, "seed %d pair %d", seed, i)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, a.Left, b.Left)
	assert.Equal(t, a.Right, b.Right)
	assert.Equal(t, a.Translation, b.Translation)
}

func TestRotationMatrixIsOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		r := rotationMatrix(randomUnitVector(rng), rng.Float64()-0.5)

		var rtr mat.Dense
		rtr.Mul(r.T(), r)
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				want := 0.0
				if a == b {
					want = 1.0
				}
				assert.InDelta(t, want, rtr.At(a, b), 1e-12)
			}
		}
		assert.InDelta(t, 1.0, mat.Det(r), 1e-12)
	}
}

func TestRotationMatrixRotatesAboutAxis(t *testing.T) {
	// Rotation about z by pi/2 sends (1, 0, 0) to (0, 1, 0).
	r := rotationMatrix(r3.Vector{Z: 1}, math.Pi/2)
	rotated := apply(r, r3.Vector{X: 1})

	assert.InDelta(t, 0.0, rotated.X, 1e-12)
	assert.InDelta(t, 1.0, rotated.Y, 1e-12)
	assert.InDelta(t, 0.0, rotated.Z, 1e-12)
}

func TestSkewMatchesCrossProduct(t *testing.T) {
	v := r3.Vector{X: 0.3, Y: -0.7, Z: 1.1}
	w := r3.Vector{X: -0.2, Y: 0.5, Z: 0.9}

	got := apply(skew(v), w)
	want := v.Cross(w)

	assert.InDelta(t, want.X, got.X, 1e-12)
	assert.InDelta(t, want.Y, got.Y, 1e-12)
	assert.InDelta(t, want.Z, got.Z, 1e-12)
}

func TestSceneProjectionsAreFinite(t *testing.T) {
	scene, err := Generate(rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	for i := range scene.Left {
		assert.False(t, math.IsNaN(scene.Left[i].X) || math.IsNaN(scene.Left[i].Y))
		assert.False(t, math.IsNaN(scene.Right[i].X) || math.IsNaN(scene.Right[i].Y))
	}
}
