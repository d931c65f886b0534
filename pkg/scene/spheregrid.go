package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/lights"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// NewSphereGrid creates a 5x5 grid of small spheres over a gray ground
// plane. Reflectivity grows along rows and specularity along columns, so
// one frame sweeps the material space.
func NewSphereGrid() *Scene {
	palette := []core.Color{core.Red, core.Green, core.Blue, core.Yellow, core.White}

	const gridSize = 5
	const spacing = 1.2
	const radius = 0.4

	materials := map[string]core.Material{
		"brushed gray": core.NewMaterial(core.NewColor(128, 128, 128), 100, 0.3, 0, 0),
	}
	spheres := make([]*geometry.Sphere, 0, gridSize*gridSize)
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			material := core.NewMaterial(
				palette[(row*gridSize+col)%len(palette)],
				math.Pow(10, float64(col)),
				0.1*float64(row),
				0, 0,
			)
			materials[fmt.Sprintf("grid %d,%d", row, col)] = material

			center := vec.NewVec3(
				spacing*(float64(col)-float64(gridSize-1)/2),
				radius-1, // Resting on the ground plane
				4+spacing*float64(row),
			)
			spheres = append(spheres, geometry.NewSphere(center, radius, material))
		}
	}

	return &Scene{
		Spheres: spheres,
		Planes: []*geometry.Plane{
			geometry.NewPlane(vec.NewVec3(0, -1, 0), vec.NewVec3(0, 1, 0), materials["brushed gray"]),
		},
		Lights: []lights.Light{
			lights.NewAmbient(0.2),
			lights.NewPoint(0.5, vec.NewVec3(2, 3, 0)),
			lights.NewDirectional(0.3, vec.NewVec3(-1, 4, 2)),
		},
		Cameras: []Camera{
			NewAngledCamera(0, 20, vec.NewVec3(0, 2, 0)),
			NewCamera(mgl64.Ident3(), vec.NewVec3(0, 0, 0)),
			NewAngledCamera(-35, 10, vec.NewVec3(4.5, 1, 2)),
		},
		Materials:  materials,
		Background: core.White,
	}
}
