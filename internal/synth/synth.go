// Package synth generates synthetic two-view scenes with known relative
// geometry. It exists for the generate command and for ground-truth tests:
// a scene carries five correspondences together with the essential matrix
// that produced them.
package synth

import (
	"errors"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

const (
	numPairs = 5

	// maxAttempts bounds the rejection sampling of world points that must
	// project with positive depth in both views.
	maxAttempts = 1000

	// minDepth is the smallest depth accepted in the second view.
	minDepth = 0.1
)

// Scene is a synthetic two-view configuration. The left camera sits at the
// world origin looking down +Z; the right camera is displaced by the rigid
// motion (Rotation, Translation).
type Scene struct {
	// Rotation and Translation move left-camera coordinates into the
	// right camera frame; Translation has unit norm.
	Rotation    *mat.Dense
	Translation r3.Vector

	// Essential is the ground-truth essential matrix in the solver's
	// output convention: left_h' * Essential * right_h = 0 for every pair.
	Essential *mat.Dense

	// Right and Left are the five projected correspondences in normalized
	// image coordinates.
	Right []r2.Point
	Left  []r2.Point
}

// Generate samples a random scene: a moderate rotation, a unit-norm
// translation, and five world points visible in both views. It fails only
// if rejection sampling cannot place a point in front of both cameras,
// which does not happen for the motion range used here unless the caller's
// source is pathological.
func Generate(rng *rand.Rand) (*Scene, error) {
	axis := randomUnitVector(rng)
	angle := (rng.Float64() - 0.5) // radians, +-0.5 keeps the views overlapping
	rotation := rotationMatrix(axis, angle)
	translation := randomUnitVector(rng)

	scene := &Scene{
		Rotation:    rotation,
		Translation: translation,
		Essential:   essentialMatrix(rotation, translation),
		Right:       make([]r2.Point, 0, numPairs),
		Left:        make([]r2.Point, 0, numPairs),
	}

	for len(scene.Left) < numPairs {
		world, ok := sampleVisiblePoint(rng, rotation, translation)
		if !ok {
			return nil, errors.New("synth: could not place a world point in front of both cameras")
		}
		moved := apply(rotation, world).Add(translation)

		scene.Left = append(scene.Left, project(world))
		scene.Right = append(scene.Right, project(moved))
	}

	return scene, nil
}

// sampleVisiblePoint draws world points until one has positive depth in
// both camera frames.
func sampleVisiblePoint(rng *rand.Rand, rotation *mat.Dense, translation r3.Vector) (r3.Vector, bool) {
	for i := 0; i < maxAttempts; i++ {
		world := r3.Vector{
			X: 4 * (rng.Float64() - 0.5),
			Y: 4 * (rng.Float64() - 0.5),
			Z: 4 + 4*rng.Float64(),
		}
		if apply(rotation, world).Add(translation).Z > minDepth {
			return world, true
		}
	}
	return r3.Vector{}, false
}

// project maps a camera-frame point to normalized image coordinates.
func project(p r3.Vector) r2.Point {
	return r2.Point{X: p.X / p.Z, Y: p.Y / p.Z}
}

// essentialMatrix forms the ground-truth matrix for the motion (r, t).
//
// With right_h' * ([t]x * r) * left_h = 0 as the textbook identity, the
// solver's convention contracts the left point on the left side, so the
// transpose is returned.
func essentialMatrix(r *mat.Dense, t r3.Vector) *mat.Dense {
	e := mat.NewDense(3, 3, nil)
	e.Mul(skew(t), r)

	var et mat.Dense
	et.CloneFrom(e.T())
	return &et
}

// rotationMatrix builds the rotation of angle radians about the unit axis
// via the Rodrigues formula.
func rotationMatrix(axis r3.Vector, angle float64) *mat.Dense {
	k := skew(axis)

	var k2 mat.Dense
	k2.Mul(k, k)

	r := eye()
	var term mat.Dense
	term.Scale(math.Sin(angle), k)
	r.Add(r, &term)
	term.Scale(1-math.Cos(angle), &k2)
	r.Add(r, &term)
	return r
}

// skew returns the cross-product matrix [v]x.
func skew(v r3.Vector) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}

func eye() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// apply multiplies a 3x3 matrix with a vector.
func apply(m *mat.Dense, v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// randomUnitVector samples a direction uniformly on the unit sphere.
func randomUnitVector(rng *rand.Rand) r3.Vector {
	for {
		v := r3.Vector{
			X: rng.NormFloat64(),
			Y: rng.NormFloat64(),
			Z: rng.NormFloat64(),
		}
		if n := v.Norm(); n > 1e-9 {
			return v.Mul(1 / n)
		}
	}
}
