package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitSensitivityScale damps pointer deltas in the orbit modes relative to mouse-look.
const OrbitSensitivityScale float32 = 0.1

// MoveInSphere orbits the camera around target at its current distance.
// Offsets are applied with the opposite sign of mouse-look and the pitch is
// not clamped. Afterwards front points at target.
func (c *Camera) MoveInSphere(xoffset, yoffset float32, target mgl32.Vec3) {
	c.orbit(xoffset, yoffset, target, mgl32.Vec3{1, 1, 1})
}

// MoveInEllipsoid orbits the camera around target on an ellipsoid whose
// semi-axes are the camera's ellipsoid axes times the current radius. The
// radius is measured in axis-normalized space so repeated calls stay on the
// same surface. With the default axes (1,1,1) this is MoveInSphere.
func (c *Camera) MoveInEllipsoid(xoffset, yoffset float32, target mgl32.Vec3) {
	c.orbit(xoffset, yoffset, target, c.ellipsoidAxes)
}

func (c *Camera) orbit(xoffset, yoffset float32, target, axes mgl32.Vec3) {
	scale := c.mouseSensitivity * OrbitSensitivityScale
	c.yaw -= xoffset * scale
	c.pitch -= yoffset * scale

	offset := c.position.Sub(target)
	radius := mgl32.Vec3{
		offset.X() / axes.X(),
		offset.Y() / axes.Y(),
		offset.Z() / axes.Z(),
	}.Len()

	alpha := float64(mgl32.DegToRad(c.yaw))
	beta := float64(mgl32.DegToRad(c.pitch))

	c.position = mgl32.Vec3{
		target.X() - radius*axes.X()*float32(math.Cos(alpha)*math.Cos(beta)),
		target.Y() - radius*axes.Y()*float32(math.Sin(beta)),
		target.Z() - radius*axes.Z()*float32(math.Sin(alpha)*math.Cos(beta)),
	}

	c.updateCameraVectors()
}
