package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/lights"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// NewCornell creates a closed room in the classic Cornell colors: white
// floor, ceiling, and end walls, a red left wall and a green right wall,
// with a mirror sphere and a glass sphere inside, lit from near the
// ceiling.
func NewCornell() *Scene {
	materials := map[string]core.Material{
		"white wall": core.NewMaterial(core.NewColor(186, 186, 186), 10, 0, 0, 0),
		"red wall":   core.NewMaterial(core.NewColor(166, 13, 13), 10, 0, 0, 0),
		"green wall": core.NewMaterial(core.NewColor(31, 115, 38), 10, 0, 0, 0),
		"mirror":     core.NewMaterial(core.White, 1000, 0.8, 0, 0),
		"glass":      core.NewMaterial(core.White, 125, 0.1, 0.8, 0.3),
	}

	const roomHalfWidth = 2.5 // Room spans [-roomHalfWidth, roomHalfWidth] in x

	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(vec.NewVec3(-1.2, 1, 3.2), 1.0, materials["mirror"]),
			geometry.NewSphere(vec.NewVec3(1.2, 1, 1.8), 1.0, materials["glass"]),
		},
		Planes: []*geometry.Plane{
			// Wall normals all face into the room
			geometry.NewPlane(vec.NewVec3(0, 0, 0), vec.NewVec3(0, 1, 0), materials["white wall"]),  // floor
			geometry.NewPlane(vec.NewVec3(0, 5, 0), vec.NewVec3(0, -1, 0), materials["white wall"]), // ceiling
			geometry.NewPlane(vec.NewVec3(0, 0, 5), vec.NewVec3(0, 0, -1), materials["white wall"]), // back
			geometry.NewPlane(vec.NewVec3(0, 0, -5), vec.NewVec3(0, 0, 1), materials["white wall"]), // behind the camera
			geometry.NewPlane(vec.NewVec3(-roomHalfWidth, 0, 0), vec.NewVec3(1, 0, 0), materials["red wall"]),
			geometry.NewPlane(vec.NewVec3(roomHalfWidth, 0, 0), vec.NewVec3(-1, 0, 0), materials["green wall"]),
		},
		Lights: []lights.Light{
			lights.NewAmbient(0.1),
			lights.NewPoint(0.9, vec.NewVec3(0, 4.6, 0.5)),
		},
		Cameras: []Camera{
			NewCamera(mgl64.Ident3(), vec.NewVec3(0, 2.5, -4.5)),
			NewAngledCamera(25, 15, vec.NewVec3(-1.8, 3.8, -3.5)),
		},
		Materials:  materials,
		Background: core.Black,
	}
}
