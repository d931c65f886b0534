package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/lights"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// NewDefault creates the standard demonstration scene: three colored
// spheres above a yellow ground plane, one of them transparent, lit by an
// ambient, a point, and a directional light, with three cameras to switch
// between.
func NewDefault() *Scene {
	materials := map[string]core.Material{
		"matte red":       core.NewMaterial(core.Red, 500, 0.2, 0, 0),
		"shiny blue":      core.NewMaterial(core.Blue, 500, 0.3, 0, 0),
		"glass green":     core.NewMaterial(core.Green, 10, 0.3, 0.6, 0.2),
		"polished yellow": core.NewMaterial(core.Yellow, 1000, 0.2, 0, 0),
	}

	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(vec.NewVec3(0, -1, 3), 1.0, materials["matte red"]),
			geometry.NewSphere(vec.NewVec3(2, 0, 4), 1.0, materials["shiny blue"]),
			geometry.NewSphere(vec.NewVec3(-2, 0, 4), 1.0, materials["glass green"]),
		},
		Planes: []*geometry.Plane{
			geometry.NewPlane(vec.NewVec3(0, -1, 0), vec.NewVec3(0, 1, 0), materials["polished yellow"]),
		},
		Lights: []lights.Light{
			lights.NewAmbient(0.2),
			lights.NewPoint(0.6, vec.NewVec3(2.1, 1, 0)),
			lights.NewDirectional(0.2, vec.NewVec3(1, 4, 4)),
		},
		Cameras: []Camera{
			NewCamera(mgl64.Ident3(), vec.NewVec3(0, 0, 0)),
			NewAngledCamera(-30, 0, vec.NewVec3(3, 0, 1)),
			NewAngledCamera(0, 25, vec.NewVec3(0, 2.5, 0.5)),
		},
		Materials:  materials,
		Background: core.White,
	}
}

// NewSpheresOnly creates the historical all-sphere variant of the
// demonstration scene, where the ground is a giant sphere rather than a
// plane and nothing is transparent.
func NewSpheresOnly() *Scene {
	materials := map[string]core.Material{
		"matte red":       core.NewMaterial(core.Red, 500, 0.2, 0, 0),
		"shiny blue":      core.NewMaterial(core.Blue, 500, 0.3, 0, 0),
		"matte green":     core.NewMaterial(core.Green, 10, 0.3, 0, 0),
		"polished yellow": core.NewMaterial(core.Yellow, 1000, 0.2, 0, 0),
	}

	return &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(vec.NewVec3(0, -1, 3), 1.0, materials["matte red"]),
			geometry.NewSphere(vec.NewVec3(2, 0, 4), 1.0, materials["shiny blue"]),
			geometry.NewSphere(vec.NewVec3(-2, 0, 4), 1.0, materials["matte green"]),
			geometry.NewSphere(vec.NewVec3(0, -5001, 0), 5000.0, materials["polished yellow"]),
		},
		Lights: []lights.Light{
			lights.NewAmbient(0.2),
			lights.NewPoint(0.6, vec.NewVec3(2.1, 1, 0)),
			lights.NewDirectional(0.2, vec.NewVec3(1, 4, 4)),
		},
		Cameras: []Camera{
			NewCamera(mgl64.Ident3(), vec.NewVec3(0, 0, 0)),
		},
		Materials:  materials,
		Background: core.White,
	}
}

// Names lists the built-in scene names accepted by ByName
func Names() []string {
	return []string{"default", "spheres", "cornell", "grid"}
}

// ByName returns the built-in scene with the given name
func ByName(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefault(), nil
	case "spheres":
		return NewSpheresOnly(), nil
	case "cornell":
		return NewCornell(), nil
	case "grid":
		return NewSphereGrid(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
}
