package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	Width   int           // Canvas width in pixels
	Height  int           // Canvas height in pixels
	Workers int           // Number of column workers used
	Pixels  int           // Total number of pixels traced
	Elapsed time.Duration // Wall-clock duration of the pass
}
