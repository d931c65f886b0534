package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/embeddr/raytracer-go/pkg/vec"
)

// Camera is a rigid transform from viewport space into world space: a 3x3
// orientation applied to the viewport point, with the camera position as
// the ray origin.
type Camera struct {
	Orientation mgl64.Mat3
	Position    vec.Vec3
}

// NewCamera creates a camera from an orientation matrix and a position
func NewCamera(orientation mgl64.Mat3, position vec.Vec3) Camera {
	return Camera{Orientation: orientation, Position: position}
}

// NewAngledCamera creates a camera rotated yawDeg about the Y axis and
// pitchDeg about the X axis, placed at position.
func NewAngledCamera(yawDeg, pitchDeg float64, position vec.Vec3) Camera {
	orientation := mgl64.Rotate3DY(mgl64.DegToRad(yawDeg)).
		Mul3(mgl64.Rotate3DX(mgl64.DegToRad(pitchDeg)))
	return Camera{Orientation: orientation, Position: position}
}

// Ray maps a viewport-space point to the world-space ray through it
func (c Camera) Ray(viewportPoint vec.Vec3) vec.Ray {
	rotated := c.Orientation.Mul3x1(mgl64.Vec3{viewportPoint.X, viewportPoint.Y, viewportPoint.Z})
	direction := vec.NewVec3(rotated.X(), rotated.Y(), rotated.Z())
	return vec.NewRay(c.Position, direction)
}
