package geometry

import (
	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// Shape is implemented by every primitive the tracer can intersect.
type Shape interface {
	// Intersect returns the ray parameters of every crossing with the
	// shape: zero, one, or two real roots, in no particular order.
	Intersect(ray vec.Ray) []float64

	// NormalAt returns the surface normal at a point on the shape.
	NormalAt(point vec.Vec3) vec.Vec3

	// Material returns the shape's material.
	Material() core.Material
}
