package lights

import "github.com/embeddr/raytracer-go/pkg/vec"

// Light is the closed set of variants the shading model understands:
// Ambient, Point, and Directional. Consumers dispatch with a type switch.
type Light interface {
	Intensity() float64
}

// Ambient contributes its intensity everywhere, unaffected by occlusion.
type Ambient struct {
	Level float64
}

// Point radiates from a position. Occluders strictly between the surface
// and the position block its contribution.
type Point struct {
	Level    float64
	Position vec.Vec3
}

// Directional arrives along a fixed direction from infinitely far away.
type Directional struct {
	Level     float64
	Direction vec.Vec3
}

// NewAmbient creates an ambient light
func NewAmbient(intensity float64) Ambient {
	return Ambient{Level: intensity}
}

// NewPoint creates a point light at the given position
func NewPoint(intensity float64, position vec.Vec3) Point {
	return Point{Level: intensity, Position: position}
}

// NewDirectional creates a directional light shining along direction
func NewDirectional(intensity float64, direction vec.Vec3) Directional {
	return Directional{Level: intensity, Direction: direction}
}

// Intensity returns the light's base intensity
func (l Ambient) Intensity() float64 { return l.Level }

// Intensity returns the light's base intensity
func (l Point) Intensity() float64 { return l.Level }

// Intensity returns the light's base intensity
func (l Directional) Intensity() float64 { return l.Level }
