package geometry

import (
	"math"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  vec.Vec3
	Normal vec.Vec3 // unit length, normalized on construction
	Mat    core.Material
}

// NewPlane creates a new plane. The normal is normalized on construction.
func NewPlane(point, normal vec.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Mat:    material,
	}
}

// Intersect returns the single ray parameter where the ray crosses the
// plane. Rays parallel to the plane, or crossing behind their origin,
// yield no roots.
func (p *Plane) Intersect(ray vec.Ray) []float64 {
	denominator := ray.Direction.Dot(p.Normal)

	// If denominator is close to zero, ray is parallel to plane
	if math.Abs(denominator) < 1e-8 {
		return nil
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return nil
	}

	return []float64{t}
}

// NormalAt returns the plane normal, which is the same at every point
func (p *Plane) NormalAt(vec.Vec3) vec.Vec3 {
	return p.Normal
}

// Material returns the plane's material
func (p *Plane) Material() core.Material {
	return p.Mat
}
