package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/embeddr/raytracer-go/pkg/canvas"
	"github.com/embeddr/raytracer-go/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Camera  int    `json:"camera"`  // Camera index within the scene
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Column workers (0 = CPU count)
	Depth   int    `json:"depth"`   // Recursion depth for reflections
}

// parseRenderRequest parses and validates request parameters
func parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	req := &RenderRequest{}
	values := c.QueryParams()

	// Scene name needs no validation here; the factory lookup rejects
	// unknown names with the available list
	if name := values.Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Camera, err = parseIntParam(values, "camera", 0, 0, 99); err != nil {
		return nil, err
	}
	if req.Width, err = parseIntParam(values, "width", 800, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 600, 16, 2000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", 2, 0, 16); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// handleRender renders one full pass and responds with the PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	selected, err := createScene(req.Scene)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if req.Camera >= len(selected.Cameras) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("camera %d out of range: scene %q has %d cameras",
				req.Camera, req.Scene, len(selected.Cameras)),
		})
	}

	opts := renderer.DefaultOptions()
	opts.Workers = req.Workers
	opts.MaxDepth = req.Depth
	r := renderer.New(selected, opts, nil)

	dst := canvas.NewImage(req.Width, req.Height)
	stats := r.Render(selected.Cameras[req.Camera], dst)
	log.Printf("Rendered %s camera %d at %dx%d in %v",
		req.Scene, req.Camera, req.Width, req.Height, stats.Elapsed)

	var buf bytes.Buffer
	if err := dst.EncodePNG(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode PNG"})
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
