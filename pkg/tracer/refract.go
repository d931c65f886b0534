package tracer

import (
	"math"

	"github.com/embeddr/raytracer-go/pkg/vec"
)

// refractDirection bends an incoming direction through a surface using a
// single-scalar refractivity: the index ratio is 1/(1+refractivity) when
// entering the shape and (1+refractivity) when exiting. A refractivity of
// zero leaves the direction unchanged.
func refractDirection(incoming, normal vec.Vec3, refractivity float64) vec.Vec3 {
	if refractivity <= 0 {
		return incoming
	}

	in := incoming.Normalize()
	n := normal.Normalize()

	// Entering or exiting is decided by which side of the surface the ray
	// arrives on; the normal is flipped to face the ray when exiting.
	ratio := 1 / (1 + refractivity)
	if in.Dot(n) > 0 {
		ratio = 1 + refractivity
		n = n.Negate()
	}

	cosTheta := math.Min(-in.Dot(n), 1.0)
	radicand := 1 - ratio*ratio*(1-cosTheta*cosTheta)

	// Check for total internal reflection
	if radicand < 0 {
		return reflectAcross(in.Negate(), n)
	}

	return in.Multiply(ratio).Add(n.Multiply(ratio*cosTheta - math.Sqrt(radicand)))
}
