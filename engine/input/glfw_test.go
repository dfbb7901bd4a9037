package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGLFWSourceAccumulates(t *testing.T) {
	held := map[glfw.Key]glfw.Action{glfw.KeyW: glfw.Press, glfw.KeyD: glfw.Repeat}
	s := newGLFWSource(func(k glfw.Key) glfw.Action { return held[k] })

	s.cursorPos(100, 100)
	s.cursorPos(110, 95)
	s.cursorPos(115, 90)
	s.scrolled(1)
	s.scrolled(0.5)
	s.key(glfw.KeyTab, glfw.Press)

	f := s.Frame(0.016)
	assert.Equal(t, Frame{
		Forward:   true,
		Right:     true,
		DX:        15,
		DY:        -10,
		Scroll:    1.5,
		DT:        0.016,
		CycleMode: true,
	}, f)

	f = s.Frame(0.016)
	assert.Equal(t, Frame{Forward: true, Right: true, DT: 0.016}, f)
}

func TestGLFWSourceIgnoresTabRelease(t *testing.T) {
	s := newGLFWSource(func(glfw.Key) glfw.Action { return glfw.Release })
	s.key(glfw.KeyTab, glfw.Release)

	assert.False(t, s.Frame(0).CycleMode)
}
