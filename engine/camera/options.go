package camera

import "github.com/go-gl/mathgl/mgl32"

// Option overrides one default in New.
type Option func(*Camera)

func WithPosition(pos mgl32.Vec3) Option {
	return func(c *Camera) { c.position = pos }
}

func WithWorldUp(up mgl32.Vec3) Option {
	return func(c *Camera) { c.worldUp = up }
}

func WithYaw(yaw float32) Option {
	return func(c *Camera) { c.yaw = yaw }
}

func WithPitch(pitch float32) Option {
	return func(c *Camera) { c.pitch = pitch }
}

func WithMovementSpeed(speed float32) Option {
	return func(c *Camera) { c.movementSpeed = speed }
}

func WithMouseSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.mouseSensitivity = sensitivity }
}

// WithZoom sets the initial zoom, clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float32) Option {
	return func(c *Camera) { c.zoom = mgl32.Clamp(zoom, MinZoom, MaxZoom) }
}

func WithEllipsoidAxes(axes mgl32.Vec3) Option {
	return func(c *Camera) { c.ellipsoidAxes = axes }
}

// WithConfig applies every field of cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Camera) {
		if cfg == nil {
			return
		}
		c.position = cfg.Position.vec()
		c.worldUp = cfg.WorldUp.vec()
		c.yaw = cfg.Yaw
		c.pitch = cfg.Pitch
		c.movementSpeed = cfg.MovementSpeed
		c.mouseSensitivity = cfg.MouseSensitivity
		c.zoom = mgl32.Clamp(cfg.Zoom, MinZoom, MaxZoom)
		c.ellipsoidAxes = cfg.EllipsoidAxes.vec()
		c.near = cfg.Near
		c.far = cfg.Far
	}
}
