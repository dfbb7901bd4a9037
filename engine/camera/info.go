package camera

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap/zapcore"
)

// PrintInfo writes position, world-up, yaw and pitch to w.
func (c *Camera) PrintInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Position: %g, %g, %g\nWorldUp: %g, %g, %g\nYaw: %g\nPitch: %g\n",
		c.position.X(), c.position.Y(), c.position.Z(),
		c.worldUp.X(), c.worldUp.Y(), c.worldUp.Z(),
		c.yaw, c.pitch,
	)
	return err
}

// MarshalLogObject lets a camera be passed to zap.Object.
func (c *Camera) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddArray("position", vec3Array(c.position)); err != nil {
		return err
	}
	if err := enc.AddArray("front", vec3Array(c.front)); err != nil {
		return err
	}
	if err := enc.AddArray("worldUp", vec3Array(c.worldUp)); err != nil {
		return err
	}
	enc.AddFloat32("yaw", c.yaw)
	enc.AddFloat32("pitch", c.pitch)
	enc.AddFloat32("zoom", c.zoom)
	return nil
}

type vec3Array mgl32.Vec3

func (v vec3Array) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range v {
		enc.AppendFloat32(f)
	}
	return nil
}
