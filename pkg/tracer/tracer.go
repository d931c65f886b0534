package tracer

import (
	"math"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/scene"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// Config holds the tracing knobs supplied by the caller
type Config struct {
	MaxDepth int     // recursion bound shared by reflection and transmission
	Epsilon  float64 // surface offset for shadow probes and secondary rays
}

// DefaultConfig returns the standard tracing configuration
func DefaultConfig() Config {
	return Config{
		MaxDepth: 2,
		Epsilon:  0.001,
	}
}

// Tracer resolves rays against a scene: nearest-intersection search, local
// lighting, and bounded recursive reflection and transmission.
type Tracer struct {
	Scene  *scene.Scene
	Config Config

	// Flattened view across the scene's per-type shape collections,
	// built once so the per-ray scan does not allocate.
	shapes []geometry.Shape
}

// New creates a tracer for the given scene
func New(s *scene.Scene, config Config) *Tracer {
	shapes := make([]geometry.Shape, 0, len(s.Spheres)+len(s.Planes))
	for _, sphere := range s.Spheres {
		shapes = append(shapes, sphere)
	}
	for _, plane := range s.Planes {
		shapes = append(shapes, plane)
	}
	return &Tracer{Scene: s, Config: config, shapes: shapes}
}

type searchMode int

const (
	findClosest searchMode = iota
	findAny
)

// hit pairs an intersection parameter with the shape that owns it
type hit struct {
	t     float64
	shape geometry.Shape
}

// findHit scans every shape for intersection roots strictly inside
// (tMin, tMax). In closest mode it keeps the minimum qualifying root; in
// any mode it returns on the first qualifying root, which is all an
// occlusion test needs. A miss is a normal outcome.
func (tr *Tracer) findHit(ray vec.Ray, tMin, tMax float64, mode searchMode) (hit, bool) {
	closest := hit{t: math.Inf(1)}
	found := false

	for _, shape := range tr.shapes {
		for _, root := range shape.Intersect(ray) {
			// The positive form also rejects NaN roots, which degenerate
			// rays (zero-length direction) can produce.
			if !(root > tMin && root < tMax) {
				continue
			}
			if mode == findAny {
				return hit{t: root, shape: shape}, true
			}
			if root < closest.t {
				closest = hit{t: root, shape: shape}
				found = true
			}
		}
	}

	return closest, found
}

// Trace follows a ray into the scene and returns its color. A ray that
// escapes the scene yields the background color. At a hit, the local
// surface color is blended with recursively traced reflection and
// transmission contributions, then scaled by the lighting intensity at
// this level and clamped per channel.
func (tr *Tracer) Trace(ray vec.Ray, tMin, tMax float64, depth int) core.Color {
	closest, ok := tr.findHit(ray, tMin, tMax, findClosest)
	if !ok {
		return tr.Scene.Background
	}

	point := ray.At(closest.t)
	normal := closest.shape.NormalAt(point)
	material := closest.shape.Material()

	// The local surface keeps whatever weight reflection and transmission
	// leave behind.
	blend := material.Color.Scale(1 - material.Reflectivity - material.Transparency)

	if depth > 0 && material.Reflectivity > 0 {
		reflected := vec.NewRay(point, reflectAcross(ray.Direction.Negate(), normal))
		reflectedColor := tr.Trace(reflected, tr.Config.Epsilon*closest.t, math.Inf(1), depth-1)
		blend = blend.Add(reflectedColor.Scale(material.Reflectivity))
	}

	if depth > 0 && material.Transparency > 0 {
		transmitted := vec.NewRay(point, refractDirection(ray.Direction, normal, material.Refractivity))
		transmittedColor := tr.Trace(transmitted, tr.Config.Epsilon, math.Inf(1), depth-1)
		blend = blend.Add(transmittedColor.Scale(material.Transparency))
	}

	intensity := tr.lighting(point, normal, ray.Direction, material.Specularity)
	return blend.Scale(intensity).Clamp()
}
