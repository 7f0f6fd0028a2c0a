package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/kurs/internal/app"
	"github.com/irfansharif/kurs/internal/config"
	"github.com/irfansharif/kurs/internal/display"
	"github.com/irfansharif/kurs/internal/palette"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("KURS_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(msg string) string {
	if msg == "" {
		return "Kurs"
	}
	return fmt.Sprintf("Kurs (%s)", msg)
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, makeTitle(""), nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}
	runtimeLogger.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	outline, fill := cfg.Colors()
	prompt := newWindowPrompter(window, palette.NewCycler(cfg.Swatches, cfg.Seed))
	application := app.NewApp(app.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Outline:        outline,
		Fill:           fill,
		StrokeWidth:    cfg.StrokeWidth,
		BezierSegments: cfg.BezierSegments,
		HitTolerance:   cfg.HitTolerance,
	}, prompt)

	view := app.NewView(cfg.Width, cfg.Height)
	view.SetViewport(window.GetSize())

	surface := display.NewSurface(cfg.Width, cfg.Height)
	defer surface.Delete()

	NewEventHandlers(window, application, view, prompt)

	frameCount, frameTimeSum := 0, 0.0
	lastStatsUpdate := time.Now()

	// Main loop.
	for !window.ShouldClose() {
		frameStart := time.Now()

		if application.Dirty() {
			surface.Upload(application.Buffer())
			application.MarkPresented()
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		surface.Draw()
		window.SwapBuffers()
		glfw.WaitEventsTimeout(0.25)

		frameCount++
		frameTimeSum += time.Since(frameStart).Seconds() * 1000.0 // ms

		now := time.Now()
		if now.Sub(lastStatsUpdate) >= time.Second {
			stats := surface.Stats()
			runtimeLogger.Println("=== Statistics ===")
			runtimeLogger.Printf("Frames:  %d (%.2f ms/frame)", frameCount, frameTimeSum/float64(frameCount))
			runtimeLogger.Printf("Uploads: %d total, %.2f µs (last)", stats.Uploads, stats.LastUploadTimeUs)
			runtimeLogger.Printf("Scene:   %d objects, mode %s", application.Scene.Len(), application.Mode())
			runtimeLogger.Println("==================")
			frameCount, frameTimeSum = 0, 0.0
			lastStatsUpdate = now
		}
	}
}
