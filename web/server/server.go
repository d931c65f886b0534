package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/embeddr/raytracer-go/pkg/scene"
)

// Server handles web requests for the raytracer viewer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// New creates a new web server
func New(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // The viewer is a local tool, accept any origin
			},
		},
	}
}

// Start registers the routes and serves until the listener fails
func (s *Server) Start() error {
	return s.routes().Start(fmt.Sprintf(":%d", s.port))
}

// routes wires up the echo instance for Start and for handler tests
func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.Use(corsMiddleware)

	// Serve the static viewer page
	e.Static("/", "static")

	// API endpoints
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scene", s.handleScene)
	e.GET("/api/render", s.handleRender)
	e.GET("/ws", s.handleSocket)

	return e
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == "OPTIONS" {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SceneSummary describes a scene for the viewer UI
type SceneSummary struct {
	Name            string   `json:"name"`
	Spheres         int      `json:"spheres"`
	Planes          int      `json:"planes"`
	Lights          int      `json:"lights"`
	Cameras         int      `json:"cameras"`
	Materials       []string `json:"materials"`
	AvailableScenes []string `json:"availableScenes"`
}

// handleScene reports the shape of the requested scene so the UI can build
// its camera controls
func (s *Server) handleScene(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		name = "default"
	}

	selected, err := createScene(name)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	materials := make([]string, 0, len(selected.Materials))
	for materialName := range selected.Materials {
		materials = append(materials, materialName)
	}
	sort.Strings(materials)

	return c.JSON(http.StatusOK, SceneSummary{
		Name:            name,
		Spheres:         len(selected.Spheres),
		Planes:          len(selected.Planes),
		Lights:          len(selected.Lights),
		Cameras:         len(selected.Cameras),
		Materials:       materials,
		AvailableScenes: scene.Names(),
	})
}

// createScene loads a scene factory by name and checks its invariants.
func createScene(name string) (*scene.Scene, error) {
	selected, err := scene.ByName(name)
	if err != nil {
		return nil, err
	}
	if err := selected.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q is invalid: %w", name, err)
	}
	return selected, nil
}
