package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/bloxown/bo3-camera/engine/camera"
	"github.com/bloxown/bo3-camera/engine/input"
	"github.com/bloxown/bo3-camera/engine/logger"
	"github.com/bloxown/bo3-camera/engine/renderer"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "camera config file (YAML)")
	width := flag.Int("width", 1024, "window width")
	height := flag.Int("height", 768, "window height")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Log.Sync()

	if err := run(*configPath, *width, *height); err != nil {
		logger.Log.Error("glviewer failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(configPath string, width, height int) error {
	cfg := camera.DefaultConfig()
	cfg.Position = camera.Vec3{0, 3, 10}
	cfg.Pitch = -15
	cfg.Far = 500
	if configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(configPath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, "bo3 camera viewer", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.12, 1.0)

	target := mgl32.Vec3{0, 1, 0}
	view, err := renderer.NewGLView(10, target)
	if err != nil {
		return err
	}
	defer view.Destroy()

	cam := camera.New(camera.WithConfig(cfg))
	ctl := input.NewController(cam)
	ctl.SetTarget(target)
	src := input.AttachGLFW(window)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		if h > 0 {
			cam.SetAspect(float32(w) / float32(h))
		}
	})
	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	if fbh > 0 {
		cam.SetAspect(float32(fbw) / float32(fbh))
	}

	logger.Log.Info("viewer started", zap.Object("camera", cam))

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		ctl.Apply(src.Frame(dt))
		view.Draw(cam)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	logger.Log.Info("viewer closed", zap.Object("camera", cam))
	return nil
}
