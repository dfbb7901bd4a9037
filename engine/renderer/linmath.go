package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/linmath"

	"github.com/bloxown/bo3-camera/engine/camera"
)

// ToLinmath copies an mgl32 matrix into linmath's column-major layout,
// for Vulkan-side code built on linmath.
func ToLinmath(m mgl32.Mat4) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col][row] = m.At(row, col)
		}
	}
	return out
}

func ViewMatrixLinmath(cam *camera.Camera) linmath.Mat4x4 {
	return ToLinmath(cam.ViewMatrix())
}

func ViewProjectionLinmath(cam *camera.Camera) linmath.Mat4x4 {
	return ToLinmath(cam.ViewProjection())
}
