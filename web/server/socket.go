package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/embeddr/raytracer-go/pkg/canvas"
	"github.com/embeddr/raytracer-go/pkg/renderer"
	"github.com/embeddr/raytracer-go/pkg/scene"
)

// Frame is one completed render pass pushed to the viewer
type Frame struct {
	Type      string `json:"type"` // Always "frame"
	Camera    int    `json:"camera"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ElapsedMs int64  `json:"elapsedMs"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
}

// cameraCommand selects the camera for the next render pass
type cameraCommand struct {
	Camera int `json:"camera"`
}

// handleSocket streams full render passes over a websocket. The first pass
// renders immediately; afterwards each {"camera":n} command triggers one
// pass. Commands are read and served on a single loop, so passes on a
// connection never overlap.
func (s *Server) handleSocket(c echo.Context) error {
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

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Printf("Websocket upgrade error: %v", err)
		return nil
	}
	defer conn.Close()

	// Render log lines are buffered here during a pass and flushed to the
	// client between frames, keeping conn writes on this goroutine only
	consoleChan := make(chan ConsoleMessage, 16)
	logger := NewWebLogger(c.RealIP(), consoleChan)

	opts := renderer.DefaultOptions()
	opts.Workers = req.Workers
	opts.MaxDepth = req.Depth
	r := renderer.New(selected, opts, logger)

	camera := req.Camera
	for {
		frame, err := renderFrame(r, selected, camera, req.Width, req.Height)
		if err != nil {
			log.Printf("Websocket render error: %v", err)
			return nil
		}
		if err := conn.WriteJSON(frame); err != nil {
			return nil
		}
		if err := flushConsole(conn, consoleChan); err != nil {
			return nil
		}

		camera, err = nextCamera(conn, len(selected.Cameras))
		if err != nil {
			return nil // Client went away
		}
	}
}

// nextCamera blocks until the client sends a valid camera selection.
func nextCamera(conn *websocket.Conn, cameraCount int) (int, error) {
	for {
		var cmd cameraCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			return 0, err
		}
		if cmd.Camera < 0 || cmd.Camera >= cameraCount {
			msg := ConsoleMessage{
				Message:   fmt.Sprintf("camera %d out of range: scene has %d cameras", cmd.Camera, cameraCount),
				Timestamp: time.Now(),
				Level:     "warning",
			}
			if err := writeConsole(conn, msg); err != nil {
				return 0, err
			}
			continue
		}
		return cmd.Camera, nil
	}
}

// renderFrame runs one blocking render pass and packages it for the wire.
func renderFrame(r *renderer.Renderer, selected *scene.Scene, camera, width, height int) (Frame, error) {
	dst := canvas.NewImage(width, height)
	stats := r.Render(selected.Cameras[camera], dst)

	var buf bytes.Buffer
	if err := dst.EncodePNG(&buf); err != nil {
		return Frame{}, err
	}
	return Frame{
		Type:      "frame",
		Camera:    camera,
		Width:     width,
		Height:    height,
		ElapsedMs: stats.Elapsed.Milliseconds(),
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// flushConsole forwards any buffered console messages without blocking.
func flushConsole(conn *websocket.Conn, console <-chan ConsoleMessage) error {
	for {
		select {
		case msg := <-console:
			if err := writeConsole(conn, msg); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func writeConsole(conn *websocket.Conn, msg ConsoleMessage) error {
	event := struct {
		Type string `json:"type"` // Always "log"
		ConsoleMessage
	}{Type: "log", ConsoleMessage: msg}
	return conn.WriteJSON(event)
}
