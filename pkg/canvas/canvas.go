package canvas

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/embeddr/raytracer-go/pkg/core"
)

// Canvas is the pixel sink a render pass fills. Coordinates are centered:
// x in [-W/2, W/2) grows rightward and y in [-H/2, H/2) grows upward, with
// (0,0) at the middle of the frame.
type Canvas interface {
	PutPixel(x, y int, c core.Color)
	Width() int
	Height() int
}

// Image is a Canvas backed by an in-memory RGBA buffer. Writes to distinct
// pixels touch distinct bytes, so workers filling disjoint regions share an
// Image without locking.
type Image struct {
	img *image.RGBA
}

// NewImage creates a canvas of the given size
func NewImage(width, height int) *Image {
	return &Image{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// PutPixel writes a color at centered canvas coordinates. Coordinates
// outside the canvas are ignored.
func (c *Image) PutPixel(x, y int, col core.Color) {
	c.img.SetRGBA(c.Width()/2+x, c.Height()/2-y-1, col.RGBA())
}

// Width returns the canvas width in pixels
func (c *Image) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels
func (c *Image) Height() int { return c.img.Rect.Dy() }

// RGBA exposes the backing image for display or compositing
func (c *Image) RGBA() *image.RGBA { return c.img }

// EncodePNG writes the canvas to w as PNG
func (c *Image) EncodePNG(w io.Writer) error {
	return gg.NewContextForRGBA(c.img).EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file
func (c *Image) SavePNG(path string) error {
	return gg.SavePNG(path, c.img)
}
