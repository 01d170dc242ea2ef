// Command spritetext-demo opens a window and draws bitmap-font text every frame.
//
//	go run ./cmd/spritetext-demo -atlas ./fonts/monogram_6x10.png
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/spritetext"
	"github.com/go-theft-auto/spritetext/backend/opengl"
)

const (
	windowTitle = "spritetext demo"
	sampleText  = "This is a test! Hello, world."
)

var (
	atlasPath  = flag.String("atlas", "./fonts/monogram_6x10.png", "path to the font atlas image")
	width      = flag.Int("width", 1920, "window width")
	height     = flag.Int("height", 1080, "window height")
	cellSize   = flag.Float64("cell", 18, "on-screen glyph cell size in pixels")
	spacing    = flag.Float64("spacing", 0, "extra pixels between glyphs")
	batched    = flag.Bool("batched", false, "draw each string with a single draw call")
	substitute = flag.Bool("substitute", false, "draw '?' for unsupported characters instead of skipping them")
	vsync      = flag.Bool("vsync", true, "enable vsync")
	verbose    = flag.Bool("verbose", false, "enable debug logging")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	spritetext.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	log := spritetext.Logger()
	metrics := spritetext.MonogramMetrics()

	// The atlas is loaded before any window exists: without it there is
	// nothing to render.
	atlas, err := spritetext.LoadAtlasImage(*atlasPath)
	if err != nil {
		return err
	}
	if err := spritetext.CheckAtlasImage(atlas, metrics); err != nil {
		log.Warn("atlas does not match metrics, glyphs will look wrong", "err", err)
	}

	var device *opengl.Device
	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  *width,
		Height: *height,
		Title:  windowTitle,
		VSync:  *vsync,
		OnResize: func(w, h int) {
			if device != nil {
				device.Resize(w, h)
			}
		},
	})
	defer glfw.Terminate()
	if err != nil {
		return err
	}

	device, err = opengl.NewDevice(atlas, *width, *height)
	if err != nil {
		return fmt.Errorf("text device: %w", err)
	}
	defer device.Delete()
	if fw, fh := window.GetFramebufferSize(); fw != *width || fh != *height {
		gl.Viewport(0, 0, int32(fw), int32(fh))
		device.Resize(fw, fh)
	}

	opts := []spritetext.Option{
		spritetext.WithMetrics(metrics),
		spritetext.WithSpacing(float32(*spacing)),
	}
	if *substitute {
		opts = append(opts, spritetext.WithFallback(spritetext.DefaultFallback))
	}
	renderer, err := spritetext.NewRenderer(device, opts...)
	if err != nil {
		return fmt.Errorf("text renderer: %w", err)
	}

	draw := renderer.DrawText
	if *batched {
		draw = renderer.DrawTextBatched
	}

	cell := float32(*cellSize)
	var last spritetext.RenderStats
	for !window.ShouldClose() {
		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.ResetStats()
		for _, y := range []float32{100, 300, 400, 500} {
			draw(20.5, y+0.5, cell, cell, sampleText)
		}
		draw(20.5, 40.5, cell, cell, fmt.Sprintf("glyphs %d draws %d", last.Glyphs, last.DrawCalls))
		last = renderer.Stats()

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}
