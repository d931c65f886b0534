package tracer

import (
	"math"

	"github.com/embeddr/raytracer-go/pkg/lights"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// reflectAcross reflects a vector across a unit-length normal. The vector
// is expected to point away from the surface.
func reflectAcross(v, normal vec.Vec3) vec.Vec3 {
	return normal.Multiply(2 * v.Dot(normal)).Subtract(v)
}

// lighting computes the illumination intensity at a surface point. Ambient
// lights always contribute. Point and directional lights contribute diffuse
// and specular terms only when an any-mode probe toward the light finds
// nothing in the way: point lights can be occluded anywhere before the
// light itself (t in (epsilon, 1)), directional lights anywhere at all.
// The sum is unclamped.
func (tr *Tracer) lighting(point, normal, rayDir vec.Vec3, specularity float64) float64 {
	intensity := 0.0

	for _, light := range tr.Scene.Lights {
		var direction vec.Vec3
		var maxT float64

		switch l := light.(type) {
		case lights.Ambient:
			intensity += l.Level
			continue
		case lights.Point:
			direction = l.Position.Subtract(point)
			maxT = 1.0
		case lights.Directional:
			direction = l.Direction
			maxT = math.Inf(1)
		default:
			continue
		}

		// Check for a clear line of sight to the light source
		if _, blocked := tr.findHit(vec.NewRay(point, direction), tr.Config.Epsilon, maxT, findAny); blocked {
			continue
		}

		// Diffuse shading by angle of incidence
		if normalDotDir := normal.Dot(direction); normalDotDir > 0 {
			intensity += light.Intensity() * normalDotDir / (normal.Length() * direction.Length())
		}

		// Specular highlight: cos(alpha)^specularity, where alpha is the
		// angle between the light's reflection and the viewing direction.
		if specularity > 0 {
			reflection := reflectAcross(direction, normal)
			if reflectionDotView := reflection.Dot(rayDir.Negate()); reflectionDotView > 0 {
				cosAlpha := reflectionDotView / (reflection.Length() * rayDir.Length())
				intensity += light.Intensity() * math.Pow(cosAlpha, specularity)
			}
		}
	}

	return intensity
}
