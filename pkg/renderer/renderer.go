package renderer

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/embeddr/raytracer-go/pkg/canvas"
	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/scene"
	"github.com/embeddr/raytracer-go/pkg/tracer"
	"github.com/embeddr/raytracer-go/pkg/vec"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Options contains configuration for a render pass
type Options struct {
	Workers        int     // Number of parallel column workers (0 = use CPU count)
	MaxDepth       int     // Reflection/transmission recursion limit
	Epsilon        float64 // Origin offset for secondary and shadow rays
	ViewportWidth  float64 // Viewport width in world units
	ViewportHeight float64 // Viewport height in world units
	ViewportDepth  float64 // Distance from camera to viewport plane
	TMin           float64 // Nearest counted distance along primary rays
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Workers:        0, // Auto-detect CPU count
		MaxDepth:       2,
		Epsilon:        0.001,
		ViewportWidth:  1.0,
		ViewportHeight: 0.75,
		ViewportDepth:  0.75,
		TMin:           1.0, // Start counting hits at the viewport plane
	}
}

// Renderer drives full-frame render passes over a canvas
type Renderer struct {
	scene  *scene.Scene
	tracer *tracer.Tracer
	opts   Options
	logger core.Logger
}

// New creates a renderer for the given scene
func New(sc *scene.Scene, opts Options, logger core.Logger) *Renderer {
	cfg := tracer.Config{
		MaxDepth: opts.MaxDepth,
		Epsilon:  opts.Epsilon,
	}
	return &Renderer{
		scene:  sc,
		tracer: tracer.New(sc, cfg),
		opts:   opts,
		logger: logger,
	}
}

// segment is a half-open range of centered canvas columns [Start, End).
type segment struct {
	Start, End int
}

// columnSegments splits the centered column range [-width/2, width/2) into
// count contiguous segments. Each segment gets width/count columns and the
// final segment absorbs the remainder, so the segments tile the range with
// no gap or overlap.
func columnSegments(width, count int) []segment {
	if count < 1 {
		count = 1
	}
	per := width / count
	segments := make([]segment, count)
	start := -(width / 2)
	for i := range segments {
		end := start + per
		if i == count-1 {
			end = width / 2
		}
		segments[i] = segment{Start: start, End: end}
		start = end
	}
	return segments
}

// Render traces every canvas pixel through the given camera and writes the
// results via dst.PutPixel. Columns are partitioned across workers, each
// writing a disjoint region of the canvas. Render blocks until every worker
// has finished, so the frame is complete when it returns.
func (r *Renderer) Render(camera scene.Camera, dst canvas.Canvas) RenderStats {
	start := time.Now()
	width, height := dst.Width(), dst.Height()

	workers := r.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	segments := columnSegments(width, workers)
	var wg sync.WaitGroup
	for _, seg := range segments {
		wg.Add(1)
		go func(seg segment) {
			defer wg.Done()
			r.renderColumns(camera, dst, seg)
		}(seg)
	}
	wg.Wait()

	elapsed := time.Since(start)
	stats := RenderStats{
		Width:   width,
		Height:  height,
		Workers: workers,
		Pixels:  (width/2 + width/2) * (height/2 + height/2),
		Elapsed: elapsed,
	}
	if r.logger != nil {
		r.logger.Printf("Rendered %dx%d with %d workers in %v\n", width, height, workers, elapsed)
	}
	return stats
}

// renderColumns traces every pixel in one column segment.
func (r *Renderer) renderColumns(camera scene.Camera, dst canvas.Canvas, seg segment) {
	height := dst.Height()
	for x := seg.Start; x < seg.End; x++ {
		for y := -(height / 2); y < height/2; y++ {
			point := r.canvasToViewport(x, y, dst)
			ray := camera.Ray(point)
			color := r.tracer.Trace(ray, r.opts.TMin, math.Inf(1), r.opts.MaxDepth)
			dst.PutPixel(x, y, color)
		}
	}
}

// canvasToViewport maps centered canvas coordinates onto the viewport plane
// sitting ViewportDepth in front of the camera.
func (r *Renderer) canvasToViewport(x, y int, dst canvas.Canvas) vec.Vec3 {
	return vec.NewVec3(
		float64(x)*r.opts.ViewportWidth/float64(dst.Width()),
		float64(y)*r.opts.ViewportHeight/float64(dst.Height()),
		r.opts.ViewportDepth,
	)
}
