package geometry

import (
	"math"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center vec.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a new sphere
func NewSphere(center vec.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    material,
	}
}

// Intersect solves the ray-sphere quadratic and returns both roots whenever
// the discriminant allows them. A tangent hit yields two equal roots.
func (s *Sphere) Intersect(ray vec.Ray) []float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s *Sphere) NormalAt(point vec.Vec3) vec.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() core.Material {
	return s.Mat
}
