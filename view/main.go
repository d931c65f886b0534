package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/embeddr/raytracer-go/pkg/canvas"
	"github.com/embeddr/raytracer-go/pkg/renderer"
	"github.com/embeddr/raytracer-go/pkg/scene"
)

// cameraKeys map the digit row to camera indexes.
var cameraKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// completedPass carries one finished render from its worker goroutine back
// to the game loop.
type completedPass struct {
	camera int
	image  *image.RGBA
	stats  renderer.RenderStats
}

// Game displays the latest completed render pass and re-renders when the
// keyboard selects another camera.
type Game struct {
	sceneName     string
	selectedScene *scene.Scene
	renderer      *renderer.Renderer
	width, height int

	camera int           // Camera of the frame on screen
	frame  *ebiten.Image // Last completed pass
	stats  renderer.RenderStats

	mu        sync.Mutex
	rendering bool // At most one pass runs at a time
	completed *completedPass
}

// startRender kicks off one full render pass in the background. While a
// pass is in flight further requests are dropped, so passes never overlap.
func (g *Game) startRender(camera int) {
	g.mu.Lock()
	if g.rendering {
		g.mu.Unlock()
		return
	}
	g.rendering = true
	g.mu.Unlock()

	go func() {
		dst := canvas.NewImage(g.width, g.height)
		stats := g.renderer.Render(g.selectedScene.Cameras[camera], dst)

		g.mu.Lock()
		g.completed = &completedPass{camera: camera, image: dst.RGBA(), stats: stats}
		g.rendering = false
		g.mu.Unlock()
	}()
}

func (g *Game) Update() error {
	// Keys 1-9 select a camera directly, Tab cycles to the next one
	for i, key := range cameraKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(g.selectedScene.Cameras) {
			g.startRender(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.startRender((g.camera + 1) % len(g.selectedScene.Cameras))
	}

	// Blit a freshly completed pass onto the displayed frame
	g.mu.Lock()
	completed := g.completed
	g.completed = nil
	g.mu.Unlock()
	if completed != nil {
		g.camera = completed.camera
		g.stats = completed.stats
		g.frame.WritePixels(completed.image.Pix)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)

	g.mu.Lock()
	rendering := g.rendering
	g.mu.Unlock()

	status := fmt.Sprintf("scene %s | camera %d of %d | pass %v | 1-9 select, tab cycles",
		g.sceneName, g.camera, len(g.selectedScene.Cameras),
		g.stats.Elapsed.Round(time.Millisecond))
	if rendering {
		status += " | rendering..."
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func main() {
	sceneName := flag.String("scene", "default", "Scene to render (default, spheres, cornell, grid)")
	width := flag.Int("width", 800, "Canvas width in pixels")
	height := flag.Int("height", 600, "Canvas height in pixels")
	workers := flag.Int("workers", 0, "Parallel column workers (0 = CPU count)")
	depth := flag.Int("depth", 2, "Reflection/transmission recursion depth")
	flag.Parse()

	selected, err := scene.ByName(*sceneName)
	if err != nil {
		log.Printf("Error loading scene: %v", err)
		os.Exit(1)
	}
	if err := selected.Validate(); err != nil {
		log.Printf("Scene %q is invalid: %v", *sceneName, err)
		os.Exit(1)
	}

	opts := renderer.DefaultOptions()
	opts.Workers = *workers
	opts.MaxDepth = *depth

	game := &Game{
		sceneName:     *sceneName,
		selectedScene: selected,
		renderer:      renderer.New(selected, opts, renderer.NewDefaultLogger()),
		width:         *width,
		height:        *height,
		frame:         ebiten.NewImage(*width, *height),
	}
	game.startRender(0)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Raytracer")
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Error running viewer: %v", err)
		os.Exit(1)
	}
}
