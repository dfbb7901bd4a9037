package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/bloxown/bo3-camera/engine/camera"
)

func TestToRaylib(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0)
	cam.ProcessMouseScroll(15)

	rlCam := ToRaylib(cam)

	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 3}, rlCam.Position)
	assert.InDelta(t, 2, rlCam.Target.Z, 1e-4)
	assert.InDelta(t, 1, rlCam.Up.Y, 1e-4)
	assert.Equal(t, float32(30), rlCam.Fovy)
	assert.Equal(t, rl.CameraPerspective, rlCam.Projection)
}

func TestToLinmathColumnMajor(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)

	lm := ToLinmath(m)

	// translation lives in the last column
	assert.Equal(t, float32(1), lm[3][0])
	assert.Equal(t, float32(2), lm[3][1])
	assert.Equal(t, float32(3), lm[3][2])
	assert.Equal(t, float32(1), lm[3][3])
	assert.Equal(t, float32(0), lm[0][3])
}

func TestViewMatrixLinmath(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 1, 0}, -90, 0)

	lm := ViewMatrixLinmath(cam)
	view := cam.ViewMatrix()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.Equal(t, view.At(row, col), lm[col][row])
		}
	}

	vp := ViewProjectionLinmath(cam)
	assert.Equal(t, cam.ViewProjection().At(3, 2), vp[2][3])
}

func TestLineScene(t *testing.T) {
	verts := lineScene(2, mgl32.Vec3{0, 1, 0})

	// (2*2+1)*2 grid lines, 3 axes, 3 marker strokes; 2 vertices of 6 floats each
	lines := 5*2 + 3 + 3
	assert.Len(t, verts, lines*2*6)

	// last marker stroke runs along z through the target
	last := verts[len(verts)-12:]
	assert.Equal(t, []float32{0, 1, -0.25, 1, 1, 0, 0, 1, 0.25, 1, 1, 0}, last)
}

func TestVec4ToColorClamps(t *testing.T) {
	c := vec4ToColor(mgl32.Vec4{2, 0.5, -1, 1})
	assert.Equal(t, rl.NewColor(255, 127, 0, 255), c)
}
