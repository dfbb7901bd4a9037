package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMoveInSphereZeroOffsetKeepsPosition(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)

	c.MoveInSphere(0, 0, mgl32.Vec3{0, 0, 0})

	assertVecInDelta(t, mgl32.Vec3{0, 0, 3}, c.Position())
	assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, c.Front())
}

func TestMoveInSphereInvertedAndDamped(t *testing.T) {
	c := New()
	c.MoveInSphere(100, 50, mgl32.Vec3{0, 0, -1})

	// 0.1 sensitivity * 0.1 orbit scale, subtracted
	assert.InDelta(t, -91, c.Yaw(), eps)
	assert.InDelta(t, -0.5, c.Pitch(), eps)
}

func TestMoveInSpherePreservesDistance(t *testing.T) {
	target := mgl32.Vec3{2, -1, 4}
	c := NewCamera(mgl32.Vec3{5, 3, -2}, mgl32.Vec3{0, 1, 0}, 10, 20)
	want := c.Position().Sub(target).Len()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		c.MoveInSphere(rng.Float32()*200-100, rng.Float32()*200-100, target)

		assert.InDelta(t, want, c.Position().Sub(target).Len(), 1e-3)
		assertVecInDelta(t, target.Sub(c.Position()).Normalize(), c.Front())
		assertOrthonormal(t, c)
	}
}

func TestMoveInSphereDoesNotClampPitch(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)

	c.MoveInSphere(0, -10000, mgl32.Vec3{})

	assert.InDelta(t, 100, c.Pitch(), eps)
}

func TestMoveInEllipsoidDefaultMatchesSphere(t *testing.T) {
	target := mgl32.Vec3{1, 1, 1}
	sphere := NewCamera(mgl32.Vec3{4, 2, -3}, mgl32.Vec3{0, 1, 0}, 45, -10)
	ellipsoid := NewCamera(mgl32.Vec3{4, 2, -3}, mgl32.Vec3{0, 1, 0}, 45, -10)

	offsets := [][2]float32{{30, 10}, {-80, 45}, {0, -200}, {500, 0}}
	for _, o := range offsets {
		sphere.MoveInSphere(o[0], o[1], target)
		ellipsoid.MoveInEllipsoid(o[0], o[1], target)

		assert.Equal(t, sphere.Position(), ellipsoid.Position())
		assert.Equal(t, sphere.Yaw(), ellipsoid.Yaw())
		assert.Equal(t, sphere.Pitch(), ellipsoid.Pitch())
	}
}

func TestMoveInEllipsoidStaysOnSurface(t *testing.T) {
	axes := mgl32.Vec3{3, 2, 2}
	target := mgl32.Vec3{0, 1, 0}
	c := New(WithPosition(mgl32.Vec3{0, 1, 4}), WithEllipsoidAxes(axes))

	normalized := func(p mgl32.Vec3) float32 {
		d := p.Sub(target)
		return mgl32.Vec3{d.X() / axes.X(), d.Y() / axes.Y(), d.Z() / axes.Z()}.Len()
	}
	want := normalized(c.Position())

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		c.MoveInEllipsoid(rng.Float32()*200-100, rng.Float32()*200-100, target)
		assert.InDelta(t, want, normalized(c.Position()), 1e-3)
		assertOrthonormal(t, c)
	}
}

func TestMoveInEllipsoidStretchesAlongAxes(t *testing.T) {
	axes := mgl32.Vec3{3, 2, 2}
	c := New(WithPosition(mgl32.Vec3{0, 0, 2}), WithEllipsoidAxes(axes))

	// yaw -90 -> 0 swings the camera from +z onto -x
	c.MoveInEllipsoid(-9000, 0, mgl32.Vec3{})

	assert.InDelta(t, 0, c.Yaw(), eps)
	assertVecInDelta(t, mgl32.Vec3{-3, 0, 0}, c.Position())
}
