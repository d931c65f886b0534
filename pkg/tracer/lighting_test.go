package tracer

import (
	"math"
	"testing"

	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/lights"
	"github.com/embeddr/raytracer-go/pkg/scene"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

func newTestTracer(s *scene.Scene) *Tracer {
	return New(s, DefaultConfig())
}

func TestLighting_AmbientIgnoresOcclusion(t *testing.T) {
	// The shading point sits inside a surrounding sphere, so every probe
	// in every direction would hit something. Ambient must not care.
	s := &scene.Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(vec.NewVec3(0, 0, 0), 10, core.Matte(core.Red)),
		},
		Lights:     []lights.Light{lights.NewAmbient(0.2)},
		Background: core.White,
	}
	tr := newTestTracer(s)

	got := tr.lighting(vec.NewVec3(0, 0, 0), vec.NewVec3(0, 1, 0), vec.NewVec3(0, 0, 1), 0)
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Expected ambient intensity 0.2, got %v", got)
	}
}

func TestLighting_PointLightOcclusion(t *testing.T) {
	point := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, 1, 0)
	light := lights.NewPoint(0.6, vec.NewVec3(0, 5, 0))

	tests := []struct {
		name     string
		occluder *geometry.Sphere
		expected float64
	}{
		{
			name:     "occluder between point and light blocks it",
			occluder: geometry.NewSphere(vec.NewVec3(0, 2.5, 0), 0.5, core.Matte(core.Red)),
			expected: 0,
		},
		{
			name: "occluder beyond the light does not block",
			// The probe's direction reaches the light at t=1, so the
			// sphere past it is outside the occlusion range.
			occluder: geometry.NewSphere(vec.NewVec3(0, 12, 0), 0.5, core.Matte(core.Red)),
			expected: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scene.Scene{
				Spheres:    []*geometry.Sphere{tt.occluder},
				Lights:     []lights.Light{light},
				Background: core.White,
			}
			tr := newTestTracer(s)

			got := tr.lighting(point, normal, vec.NewVec3(0, 0, 1), 0)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected intensity %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_DirectionalLightOcclusion(t *testing.T) {
	point := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, 1, 0)
	light := lights.NewDirectional(0.3, vec.NewVec3(0, 1, 0))

	tests := []struct {
		name     string
		spheres  []*geometry.Sphere
		expected float64
	}{
		{
			name: "distant occluder still blocks a directional light",
			spheres: []*geometry.Sphere{
				geometry.NewSphere(vec.NewVec3(0, 30, 0), 1, core.Matte(core.Red)),
			},
			expected: 0,
		},
		{
			name:     "clear sky contributes full incidence",
			spheres:  nil,
			expected: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scene.Scene{
				Spheres:    tt.spheres,
				Lights:     []lights.Light{light},
				Background: core.White,
			}
			tr := newTestTracer(s)

			got := tr.lighting(point, normal, vec.NewVec3(0, 0, 1), 0)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected intensity %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_DiffuseCosineFalloff(t *testing.T) {
	s := &scene.Scene{
		Lights:     []lights.Light{lights.NewDirectional(1.0, vec.NewVec3(1, 1, 0))},
		Background: core.White,
	}
	tr := newTestTracer(s)
	normal := vec.NewVec3(0, 1, 0)

	got := tr.lighting(vec.NewVec3(0, 0, 0), normal, vec.NewVec3(0, 0, 1), 0)
	expected := 1 / math.Sqrt2
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected intensity %v at 45 degrees, got %v", expected, got)
	}
}

func TestLighting_DiffuseIgnoresLightBehindSurface(t *testing.T) {
	s := &scene.Scene{
		Lights:     []lights.Light{lights.NewDirectional(1.0, vec.NewVec3(0, -1, 0))},
		Background: core.White,
	}
	tr := newTestTracer(s)

	got := tr.lighting(vec.NewVec3(0, 0, 0), vec.NewVec3(0, 1, 0), vec.NewVec3(0, 0, 1), 0)
	if got != 0 {
		t.Errorf("Expected zero intensity for a light behind the surface, got %v", got)
	}
}

func TestLighting_SpecularHighlight(t *testing.T) {
	// The viewing ray arrives exactly along the light's mirror
	// reflection, so cos(alpha) is 1 and the highlight contributes the
	// light's full intensity on top of the diffuse term.
	s := &scene.Scene{
		Lights:     []lights.Light{lights.NewDirectional(0.6, vec.NewVec3(1, 1, 0))},
		Background: core.White,
	}
	tr := newTestTracer(s)

	point := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, 1, 0)
	rayDir := vec.NewVec3(1, -1, 0)

	diffuseOnly := tr.lighting(point, normal, rayDir, 0)
	withSpecular := tr.lighting(point, normal, rayDir, 500)

	expectedDiffuse := 0.6 / math.Sqrt2
	if math.Abs(diffuseOnly-expectedDiffuse) > 1e-9 {
		t.Errorf("Expected diffuse intensity %v, got %v", expectedDiffuse, diffuseOnly)
	}
	if math.Abs(withSpecular-(expectedDiffuse+0.6)) > 1e-9 {
		t.Errorf("Expected specular to add 0.6, got total %v", withSpecular)
	}
}

func TestLighting_SumsAllLightsUnclamped(t *testing.T) {
	s := &scene.Scene{
		Lights: []lights.Light{
			lights.NewAmbient(0.9),
			lights.NewDirectional(0.8, vec.NewVec3(0, 1, 0)),
		},
		Background: core.White,
	}
	tr := newTestTracer(s)

	got := tr.lighting(vec.NewVec3(0, 0, 0), vec.NewVec3(0, 1, 0), vec.NewVec3(0, 0, 1), 0)
	if math.Abs(got-1.7) > 1e-9 {
		t.Errorf("Expected unclamped sum 1.7, got %v", got)
	}
}
