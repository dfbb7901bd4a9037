package input

import (
	"os"
	"testing"

	"github.com/bloxown/bo3-camera/engine/camera"
	"github.com/bloxown/bo3-camera/engine/logger"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

func TestControllerFlyKeys(t *testing.T) {
	ctl := NewController(camera.New())

	ctl.Apply(Frame{Forward: true, Right: true, DT: 1})

	pos := ctl.Camera().Position()
	assert.InDelta(t, camera.DefaultSpeed, pos.X(), 1e-4)
	assert.InDelta(t, -camera.DefaultSpeed, pos.Z(), 1e-4)
}

func TestControllerFlyPointerInvertsY(t *testing.T) {
	ctl := NewController(camera.New())

	// pointer moved up the screen: negative window dy, camera pitches up
	ctl.Pointer(0, -100)
	assert.InDelta(t, 10, ctl.Camera().Pitch(), 1e-4)

	ctl.InvertY = false
	ctl.Pointer(0, -100)
	assert.InDelta(t, 0, ctl.Camera().Pitch(), 1e-4)
}

func TestControllerOrbitMode(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 1, 0}, 0, 0)
	ctl := NewController(cam)
	ctl.SetTarget(mgl32.Vec3{0, 0, 0})

	ctl.SetMode(ModeOrbit)
	assert.Equal(t, ModeOrbit, ctl.Mode())
	assert.InDelta(t, -1, cam.Front().Z(), 1e-4)

	start := cam.Position()
	ctl.Apply(Frame{Forward: true, DT: 1})
	assert.Equal(t, start, cam.Position(), "keys are ignored while orbiting")

	ctl.Apply(Frame{DX: 300, DY: 120})
	assert.InDelta(t, 5, cam.Position().Len(), 1e-3)
}

func TestControllerEllipsoidMode(t *testing.T) {
	cam := camera.New(
		camera.WithPosition(mgl32.Vec3{0, 0, 2}),
		camera.WithEllipsoidAxes(mgl32.Vec3{3, 2, 2}),
	)
	ctl := NewController(cam)
	ctl.SetMode(ModeEllipsoid)

	ctl.Pointer(-9000, 0)
	assert.InDelta(t, -3, cam.Position().X(), 1e-3)
}

func TestControllerCycleMode(t *testing.T) {
	ctl := NewController(camera.NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0))

	want := []Mode{ModeOrbit, ModeEllipsoid, ModeFly, ModeOrbit}
	for _, m := range want {
		ctl.Apply(Frame{CycleMode: true})
		assert.Equal(t, m, ctl.Mode())
	}

	ctl.SetMode(Mode(7))
	assert.Equal(t, ModeOrbit, ctl.Mode())
}

func TestControllerScroll(t *testing.T) {
	ctl := NewController(camera.New())
	ctl.Apply(Frame{Scroll: 50})
	assert.Equal(t, camera.MinZoom, ctl.Camera().Zoom())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "fly", ModeFly.String())
	assert.Equal(t, "orbit", ModeOrbit.String())
	assert.Equal(t, "ellipsoid", ModeEllipsoid.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
