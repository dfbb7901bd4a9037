package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/bloxown/bo3-camera/engine/camera"
	"github.com/bloxown/bo3-camera/engine/input"
	"github.com/bloxown/bo3-camera/engine/logger"
	"github.com/bloxown/bo3-camera/engine/renderer"
)

const (
	width  = 800
	height = 600
)

func init() {
	// raylib requires OS thread for window and OpenGL
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "camera config file (YAML)")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Log.Sync()

	cfg := camera.DefaultConfig()
	cfg.Position = camera.Vec3{0, 2, 8}
	if *configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(*configPath); err != nil {
			logger.Log.Fatal("Failed to load camera config", zap.String("path", *configPath), zap.Error(err))
		}
		logger.Log.Info("Camera config loaded", zap.String("path", *configPath))
	}

	rl.InitWindow(width, height, "bo3 camera demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.DisableCursor()

	rend := renderer.NewRenderer(width, height)
	defer rend.Destroy()

	cam := camera.New(camera.WithConfig(cfg))
	cam.SetAspect(rend.Aspect())

	ctl := input.NewController(cam)
	target := mgl32.Vec3{0, 0.5, 0}
	ctl.SetTarget(target)

	white := mgl32.Vec4{1, 1, 1, 1}
	for !rl.WindowShouldClose() {
		ctl.Apply(input.PollRaylib())
		if rl.IsKeyPressed(rl.KeyP) {
			cam.PrintInfo(os.Stdout)
		}

		rend.BeginFrame()

		rend.PushCube(target, mgl32.Vec3{1, 1, 1}, mgl32.Vec4{0.8, 0.2, 0.2, 1})
		for x := -2; x <= 2; x++ {
			for z := -2; z <= 2; z++ {
				if x == 0 && z == 0 {
					continue
				}
				pos := mgl32.Vec3{float32(x) * 4, 0.5, float32(z) * 4}
				color := mgl32.Vec4{float32(x+2) / 4, 0.6, float32(z+2) / 4, 1}
				rend.PushWireCube(pos, mgl32.Vec3{1, 1, 1}, color)
			}
		}

		pos := cam.Position()
		rend.PushUIText(10, 10, white, fmt.Sprintf("Mode: %s (Tab)", ctl.Mode()))
		rend.PushUIText(10, 30, white, fmt.Sprintf("Pos: %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()))
		rend.PushUIText(10, 50, white, fmt.Sprintf("Yaw %.1f  Pitch %.1f  Zoom %.0f", cam.Yaw(), cam.Pitch(), cam.Zoom()))

		rend.EndFrame(cam)
	}
}
