package input

import (
	"fmt"

	"github.com/bloxown/bo3-camera/engine/camera"
	"github.com/bloxown/bo3-camera/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Mode selects what pointer motion does to the camera.
type Mode int

const (
	ModeFly Mode = iota
	ModeOrbit
	ModeEllipsoid
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeFly:
		return "fly"
	case ModeOrbit:
		return "orbit"
	case ModeEllipsoid:
		return "ellipsoid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Frame is one frame's worth of sampled input.
type Frame struct {
	Forward, Backward, Left, Right bool

	DX, DY float32 // pointer delta, window coordinates (y grows downward)
	Scroll float32 // vertical wheel delta

	DT float32 // seconds since last frame

	CycleMode bool
}

// Controller feeds input into a camera.
type Controller struct {
	cam    *camera.Camera
	mode   Mode
	target mgl32.Vec3

	// InvertY flips the pointer's vertical axis before it reaches the camera.
	// Window systems report y growing downward, so the default is true.
	InvertY bool
}

func NewController(cam *camera.Camera) *Controller {
	return &Controller{cam: cam, InvertY: true}
}

func (c *Controller) Camera() *camera.Camera { return c.cam }
func (c *Controller) Mode() Mode             { return c.mode }
func (c *Controller) Target() mgl32.Vec3     { return c.target }

// SetTarget sets the point the orbit modes circle around.
func (c *Controller) SetTarget(target mgl32.Vec3) {
	c.target = target
}

// SetMode switches modes. Entering an orbit mode turns the camera toward the target.
func (c *Controller) SetMode(m Mode) {
	if m < 0 || m >= modeCount {
		return
	}
	if m == c.mode {
		return
	}
	c.mode = m
	if m != ModeFly {
		c.cam.LookAt(c.target)
	}
	logger.Log.Info("camera mode changed", zap.Stringer("mode", m), zap.Object("camera", c.cam))
}

// CycleMode advances fly -> orbit -> ellipsoid -> fly.
func (c *Controller) CycleMode() {
	c.SetMode((c.mode + 1) % modeCount)
}

// Key moves the camera one step in direction. Orbit modes ignore it.
func (c *Controller) Key(direction camera.Movement, dt float32) {
	if c.mode != ModeFly {
		return
	}
	c.cam.ProcessKeyboard(direction, dt)
}

// Pointer applies a pointer delta in window coordinates.
func (c *Controller) Pointer(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	if c.InvertY {
		dy = -dy
	}
	switch c.mode {
	case ModeFly:
		c.cam.ProcessMouseLook(dx, dy)
	case ModeOrbit:
		c.cam.MoveInSphere(dx, dy, c.target)
	case ModeEllipsoid:
		c.cam.MoveInEllipsoid(dx, dy, c.target)
	}
}

func (c *Controller) Scroll(delta float32) {
	if delta == 0 {
		return
	}
	c.cam.ProcessMouseScroll(delta)
}

// Apply runs a sampled frame. Each held direction is its own keyboard step.
func (c *Controller) Apply(f Frame) {
	if f.CycleMode {
		c.CycleMode()
	}
	if f.Forward {
		c.Key(camera.Forward, f.DT)
	}
	if f.Backward {
		c.Key(camera.Backward, f.DT)
	}
	if f.Left {
		c.Key(camera.Left, f.DT)
	}
	if f.Right {
		c.Key(camera.Right, f.DT)
	}
	c.Pointer(f.DX, f.DY)
	c.Scroll(f.Scroll)
}
