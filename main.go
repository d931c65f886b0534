package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/fogleman/gg"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/embeddr/raytracer-go/pkg/canvas"
	"github.com/embeddr/raytracer-go/pkg/core"
	"github.com/embeddr/raytracer-go/pkg/renderer"
	"github.com/embeddr/raytracer-go/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene to render (see -help for the list)")
	cameraIndex := flag.Int("camera", 0, "Camera index within the selected scene")
	width := flag.Int("width", 800, "Canvas width in pixels")
	height := flag.Int("height", 600, "Canvas height in pixels")
	workers := flag.Int("workers", 0, "Parallel column workers (0 = CPU count)")
	depth := flag.Int("depth", 2, "Reflection/transmission recursion depth")
	out := flag.String("out", "render.png", "Output PNG path")
	sheet := flag.Bool("sheet", false, "Render every camera and composite a contact sheet")
	sysinfo := flag.Bool("sysinfo", false, "Print CPU and memory details before rendering")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres over a reflective ground plane")
		fmt.Println("  spheres - The all-sphere variant with a giant ground sphere")
		fmt.Println("  cornell - Closed room with a mirror and a glass sphere")
		fmt.Println("  grid    - 5x5 sphere grid sweeping the material space")
		return
	}

	logger := renderer.NewDefaultLogger()
	if *sysinfo {
		printSystemInfo(logger)
	}

	selectedScene, err := createScene(*sceneName)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	opts := renderer.DefaultOptions()
	opts.Workers = *workers
	opts.MaxDepth = *depth
	r := renderer.New(selectedScene, opts, logger)

	if *sheet {
		if err := renderSheet(r, selectedScene, *width, *height, *out); err != nil {
			fmt.Printf("Error rendering contact sheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Contact sheet saved as %s\n", *out)
		return
	}

	if *cameraIndex < 0 || *cameraIndex >= len(selectedScene.Cameras) {
		fmt.Printf("Camera %d out of range: scene %q has %d cameras\n",
			*cameraIndex, *sceneName, len(selectedScene.Cameras))
		os.Exit(1)
	}

	dst := canvas.NewImage(*width, *height)
	r.Render(selectedScene.Cameras[*cameraIndex], dst)

	if err := dst.SavePNG(*out); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *out)
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

// renderSheet renders every camera in the scene and composites the frames
// side by side into a single contact sheet image.
func renderSheet(r *renderer.Renderer, selectedScene *scene.Scene, width, height int, path string) error {
	dc := gg.NewContext(width*len(selectedScene.Cameras), height)
	for i, cam := range selectedScene.Cameras {
		frame := canvas.NewImage(width, height)
		r.Render(cam, frame)
		dc.DrawImage(frame.RGBA(), i*width, 0)
	}
	return dc.SavePNG(path)
}

// printSystemInfo logs CPU and memory details so render timings have context.
func printSystemInfo(logger core.Logger) {
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		logger.Printf("CPU: %s, %.2f GHz, %d logical cores\n",
			info[0].ModelName, info[0].Mhz/1000, runtime.NumCPU())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Printf("Memory: %d GB total, %.1f%% used\n",
			vm.Total/(1024*1024*1024), vm.UsedPercent)
	}
}
