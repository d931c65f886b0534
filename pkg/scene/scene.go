package scene

import (
	"fmt"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/lights"
)

// Scene contains everything needed for rendering: shape collections kept by
// type, lights, cameras, and the named materials the shapes were built from.
// A scene is built once by a factory and only read afterward, so render
// workers share it without locking.
type Scene struct {
	Spheres    []*geometry.Sphere
	Planes     []*geometry.Plane
	Lights     []lights.Light
	Cameras    []Camera
	Materials  map[string]core.Material
	Background core.Color
}

// Validate checks the material invariants scene construction is responsible
// for: blend weights within range and their sum not exceeding one.
func (s *Scene) Validate() error {
	for name, mat := range s.Materials {
		if mat.Reflectivity < 0 || mat.Reflectivity > 1 {
			return fmt.Errorf("material %q: reflectivity %v out of range", name, mat.Reflectivity)
		}
		if mat.Transparency < 0 || mat.Transparency > 1 {
			return fmt.Errorf("material %q: transparency %v out of range", name, mat.Transparency)
		}
		if sum := mat.Reflectivity + mat.Transparency; sum > 1 {
			return fmt.Errorf("material %q: reflectivity + transparency = %v exceeds 1", name, sum)
		}
	}
	if len(s.Cameras) == 0 {
		return fmt.Errorf("scene has no cameras")
	}
	return nil
}
