package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default camera values.
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MinZoom    float32 = 1.0
	MaxZoom    float32 = 45.0
	PitchLimit float32 = 89.0

	DefaultAspect float32 = 4.0 / 3.0
	DefaultNear   float32 = 0.1
	DefaultFar    float32 = 100.0
)

// Camera is a fly/orbit camera driven by Euler angles.
// front, right and up are derived from yaw, pitch and worldUp and are
// recomputed by every method that changes those.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32

	// per-axis scale for MoveInEllipsoid
	ellipsoidAxes mgl32.Vec3

	// projection params
	aspect float32
	near   float32
	far    float32
}

// New creates a camera from the default values, overridden by opts.
func New(opts ...Option) *Camera {
	c := &Camera{
		position:         mgl32.Vec3{0, 0, 0},
		front:            mgl32.Vec3{0, 0, -1},
		worldUp:          mgl32.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		movementSpeed:    DefaultSpeed,
		mouseSensitivity: DefaultSensitivity,
		zoom:             DefaultZoom,
		ellipsoidAxes:    mgl32.Vec3{1, 1, 1},
		aspect:           DefaultAspect,
		near:             DefaultNear,
		far:              DefaultFar,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateCameraVectors()
	return c
}

// NewCamera creates a camera positioned at pos, looking with yaw/pitch (degrees).
// up is usually mgl32.Vec3{0,1,0}.
func NewCamera(pos, up mgl32.Vec3, yaw, pitch float32) *Camera {
	return New(WithPosition(pos), WithWorldUp(up), WithYaw(yaw), WithPitch(pitch))
}

// NewCameraFromScalars is NewCamera with the vectors spelled out.
func NewCameraFromScalars(posX, posY, posZ, upX, upY, upZ, yaw, pitch float32) *Camera {
	return NewCamera(mgl32.Vec3{posX, posY, posZ}, mgl32.Vec3{upX, upY, upZ}, yaw, pitch)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) WorldUp() mgl32.Vec3  { return c.worldUp }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }

func (c *Camera) MovementSpeed() float32    { return c.movementSpeed }
func (c *Camera) MouseSensitivity() float32 { return c.mouseSensitivity }
func (c *Camera) EllipsoidAxes() mgl32.Vec3 { return c.ellipsoidAxes }

// SetPosition moves the camera without changing where it looks.
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// SetWorldUp changes the up reference and rebuilds the basis.
func (c *Camera) SetWorldUp(up mgl32.Vec3) {
	c.worldUp = up
	c.updateCameraVectors()
}

// SetYawPitch sets both angles (degrees) as given, without clamping.
func (c *Camera) SetYawPitch(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
	c.updateCameraVectors()
}

func (c *Camera) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// SetZoom sets the field of view in degrees, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.zoom = mgl32.Clamp(zoom, MinZoom, MaxZoom)
}

// SetEllipsoidAxes sets the x/y/z scale used by MoveInEllipsoid.
func (c *Camera) SetEllipsoidAxes(axes mgl32.Vec3) {
	c.ellipsoidAxes = axes
}

// SetAspect updates the projection aspect ratio (call on window resize).
func (c *Camera) SetAspect(aspect float32) {
	c.aspect = aspect
}

// SetClipPlanes sets the near and far projection distances.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
}

// ViewMatrix returns the view matrix (mgl32.Mat4) for the current camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	target := c.position.Add(c.front)
	return mgl32.LookAtV(c.position, target, c.up)
}

// ProjectionMatrix returns a perspective projection matrix using the zoom
// as vertical FOV (degrees) and the current aspect, near and far.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), c.aspect, c.near, c.far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// ProcessKeyboard moves the camera one step in direction, scaled by delta time (seconds).
// Call once per held direction; diagonal steps are not normalized.
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement adjusts yaw/pitch from a pointer delta.
// With constrainPitch the pitch is held within ±PitchLimit so the view
// never flips over the pole.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.yaw += xoffset * c.mouseSensitivity
	c.pitch += yoffset * c.mouseSensitivity

	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -PitchLimit, PitchLimit)
	}

	c.updateCameraVectors()
}

// ProcessMouseLook is ProcessMouseMovement with the pitch constraint on.
func (c *Camera) ProcessMouseLook(xoffset, yoffset float32) {
	c.ProcessMouseMovement(xoffset, yoffset, true)
}

// ProcessMouseScroll zooms by the vertical wheel delta.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.SetZoom(c.zoom - yoffset)
}

// LookAt turns the camera so that front points at target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1)))))
	c.updateCameraVectors()
}

// internal: recompute front/right/up vectors from yaw/pitch
func (c *Camera) updateCameraVectors() {
	c.front = frontFromAngles(c.yaw, c.pitch)
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// frontFromAngles returns the unit view direction for yaw/pitch in degrees.
func frontFromAngles(yaw, pitch float32) mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(yaw))
	pitchRad := float64(mgl32.DegToRad(pitch))

	return mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()
}
