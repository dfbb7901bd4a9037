package camera

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

func (v Vec3) vec() mgl32.Vec3 { return mgl32.Vec3(v) }

// Config holds the tunable camera values.
type Config struct {
	Position         Vec3    `yaml:"position"`
	WorldUp          Vec3    `yaml:"world_up"`
	Yaw              float32 `yaml:"yaw"`
	Pitch            float32 `yaml:"pitch"`
	MovementSpeed    float32 `yaml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	Zoom             float32 `yaml:"zoom"`
	EllipsoidAxes    Vec3    `yaml:"ellipsoid_axes"` // x, y, z scale for ellipsoidal orbit
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
}

type configFile struct {
	Camera Config `yaml:"camera"`
}

// DefaultConfig returns the values New uses when no options are given.
func DefaultConfig() *Config {
	return &Config{
		WorldUp:          Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		EllipsoidAxes:    Vec3{1, 1, 1},
		Near:             DefaultNear,
		Far:              DefaultFar,
	}
}

// ParseConfig reads the `camera` section of a YAML document. Keys that are
// absent keep their default values.
func ParseConfig(data []byte) (*Config, error) {
	f := configFile{Camera: *DefaultConfig()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse camera config: %w", err)
	}
	cfg := f.Camera
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads and validates a camera config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read camera config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MustLoadConfig is LoadConfig that panics on error.
func MustLoadConfig(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

var (
	ErrInvalidSpeed       = errors.New("movement_speed must be positive")
	ErrInvalidSensitivity = errors.New("mouse_sensitivity must be positive")
	ErrInvalidWorldUp     = errors.New("world_up must be non-zero")
	ErrInvalidAxes        = errors.New("ellipsoid_axes must all be non-zero")
	ErrInvalidClipPlanes  = errors.New("near must be positive and less than far")
)

// Validate checks the values a camera cannot recover from. Zoom is not
// checked; it is clamped when applied.
func (c *Config) Validate() error {
	if c.MovementSpeed <= 0 {
		return ErrInvalidSpeed
	}
	if c.MouseSensitivity <= 0 {
		return ErrInvalidSensitivity
	}
	if c.WorldUp.vec().Len() == 0 {
		return ErrInvalidWorldUp
	}
	for _, a := range c.EllipsoidAxes {
		if a == 0 {
			return ErrInvalidAxes
		}
	}
	if c.Near <= 0 || c.Near >= c.Far {
		return ErrInvalidClipPlanes
	}
	return nil
}
