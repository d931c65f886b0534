package renderer

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/embeddr/raytracer-go/pkg/canvas"
	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/geometry"
	"github.com/embeddr/raytracer-go/pkg/lights"
	"github.com/embeddr/raytracer-go/pkg/scene"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

func TestColumnSegments_PartitionProperty(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		workers int
	}{
		{"even split", 800, 4},
		{"remainder absorbed by last", 800, 3},
		{"small canvas", 10, 3},
		{"odd width", 7, 2},
		{"more workers than columns", 4, 8},
		{"single worker", 16, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := columnSegments(tt.width, tt.workers)

			if len(segments) != tt.workers {
				t.Fatalf("Expected %d segments, got %d", tt.workers, len(segments))
			}
			if segments[0].Start != -(tt.width / 2) {
				t.Errorf("Expected first segment to start at %d, got %d", -(tt.width / 2), segments[0].Start)
			}
			if segments[len(segments)-1].End != tt.width/2 {
				t.Errorf("Expected last segment to end at %d, got %d", tt.width/2, segments[len(segments)-1].End)
			}

			per := tt.width / tt.workers
			for i, seg := range segments {
				if seg.End < seg.Start {
					t.Errorf("Segment %d is inverted: [%d, %d)", i, seg.Start, seg.End)
				}
				if i > 0 && seg.Start != segments[i-1].End {
					t.Errorf("Segment %d starts at %d but previous ended at %d", i, seg.Start, segments[i-1].End)
				}
				if i < len(segments)-1 && seg.End-seg.Start != per {
					t.Errorf("Segment %d has %d columns, expected %d", i, seg.End-seg.Start, per)
				}
			}

			// Every column in [-width/2, width/2) must be covered exactly once
			covered := make(map[int]int)
			for _, seg := range segments {
				for x := seg.Start; x < seg.End; x++ {
					covered[x]++
				}
			}
			for x := -(tt.width / 2); x < tt.width/2; x++ {
				if covered[x] != 1 {
					t.Errorf("Column %d covered %d times, expected exactly once", x, covered[x])
				}
			}
			if len(covered) != tt.width/2+tt.width/2 {
				t.Errorf("Expected %d covered columns, got %d", tt.width/2+tt.width/2, len(covered))
			}
		})
	}
}

// countingCanvas records every PutPixel call so tests can verify coverage.
// It must be safe for concurrent writers, unlike the image canvas whose
// workers write disjoint columns.
type countingCanvas struct {
	mu     sync.Mutex
	width  int
	height int
	writes map[[2]int]int
}

func newCountingCanvas(width, height int) *countingCanvas {
	return &countingCanvas{
		width:  width,
		height: height,
		writes: make(map[[2]int]int),
	}
}

func (c *countingCanvas) PutPixel(x, y int, _ core.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes[[2]int{x, y}]++
}

func (c *countingCanvas) Width() int  { return c.width }
func (c *countingCanvas) Height() int { return c.height }

func TestRenderer_Render_CoversEveryPixelExactlyOnce(t *testing.T) {
	sc := scene.NewDefault()
	opts := DefaultOptions()
	opts.Workers = 5 // Does not divide the width evenly

	r := New(sc, opts, nil)
	dst := newCountingCanvas(16, 12)
	stats := r.Render(sc.Cameras[0], dst)

	if stats.Pixels != 16*12 {
		t.Errorf("Expected stats for %d pixels, got %d", 16*12, stats.Pixels)
	}
	if stats.Workers != 5 {
		t.Errorf("Expected 5 workers, got %d", stats.Workers)
	}
	if stats.Width != 16 || stats.Height != 12 {
		t.Errorf("Expected 16x12 stats, got %dx%d", stats.Width, stats.Height)
	}

	if len(dst.writes) != 16*12 {
		t.Fatalf("Expected %d distinct pixels written, got %d", 16*12, len(dst.writes))
	}
	for x := -8; x < 8; x++ {
		for y := -6; y < 6; y++ {
			if count := dst.writes[[2]int{x, y}]; count != 1 {
				t.Errorf("Pixel (%d, %d) written %d times, expected exactly once", x, y, count)
			}
		}
	}
}

func TestRenderer_Render_TracesThroughCamera(t *testing.T) {
	// Single ambient-lit sphere straight ahead of the camera. The center
	// pixel must hit it and miss rays must return the background color.
	sc := &scene.Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(vec.NewVec3(0, 0, 3), 1.0, core.NewMaterial(core.Red, 0, 0, 0, 0)),
		},
		Lights:     []lights.Light{lights.NewAmbient(0.2)},
		Cameras:    []scene.Camera{scene.NewCamera(mgl64.Ident3(), vec.NewVec3(0, 0, 0))},
		Background: core.White,
	}

	opts := DefaultOptions()
	opts.Workers = 2
	r := New(sc, opts, nil)

	dst := canvas.NewImage(4, 4)
	r.Render(sc.Cameras[0], dst)

	img := dst.RGBA()
	center := img.RGBAAt(2, 1) // Canvas coordinates (0, 0)
	if center.R != 51 || center.G != 0 || center.B != 0 {
		t.Errorf("Expected center pixel (51, 0, 0), got (%d, %d, %d)", center.R, center.G, center.B)
	}
	corner := img.RGBAAt(0, 3) // Canvas coordinates (-2, -2)
	if corner.R != 255 || corner.G != 255 || corner.B != 255 {
		t.Errorf("Expected corner pixel to show the background, got (%d, %d, %d)", corner.R, corner.G, corner.B)
	}
}

func TestRenderer_CanvasToViewport(t *testing.T) {
	opts := DefaultOptions()
	r := New(scene.NewDefault(), opts, nil)
	dst := newCountingCanvas(800, 600)

	tests := []struct {
		name     string
		x, y     int
		expected vec.Vec3
	}{
		{"center", 0, 0, vec.NewVec3(0, 0, 0.75)},
		{"right edge", 400, 0, vec.NewVec3(0.5, 0, 0.75)},
		{"top edge", 0, 300, vec.NewVec3(0, 0.375, 0.75)},
		{"bottom left", -400, -300, vec.NewVec3(-0.5, -0.375, 0.75)},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.canvasToViewport(tt.x, tt.y, dst)
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
