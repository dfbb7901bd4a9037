package input

import "github.com/go-gl/glfw/v3.3/glfw"

// GLFWSource accumulates GLFW callback input between frames.
// Callbacks run inside glfw.PollEvents, on the main thread.
type GLFWSource struct {
	keyState func(glfw.Key) glfw.Action

	lastX, lastY float64
	firstMouse   bool

	dx, dy    float64
	scroll    float64
	cycleMode bool
}

// AttachGLFW installs cursor, scroll and key callbacks on win.
func AttachGLFW(win *glfw.Window) *GLFWSource {
	s := newGLFWSource(win.GetKey)
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s.cursorPos(x, y)
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		s.scrolled(yoff)
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		s.key(key, action)
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return s
}

func newGLFWSource(keyState func(glfw.Key) glfw.Action) *GLFWSource {
	return &GLFWSource{keyState: keyState, firstMouse: true}
}

func (s *GLFWSource) cursorPos(x, y float64) {
	if s.firstMouse {
		s.lastX, s.lastY = x, y
		s.firstMouse = false
		return
	}
	s.dx += x - s.lastX
	s.dy += y - s.lastY
	s.lastX, s.lastY = x, y
}

func (s *GLFWSource) scrolled(yoff float64) {
	s.scroll += yoff
}

func (s *GLFWSource) key(key glfw.Key, action glfw.Action) {
	if key == glfw.KeyTab && action == glfw.Press {
		s.cycleMode = true
	}
}

// Frame returns the input gathered since the previous call and resets it.
func (s *GLFWSource) Frame(dt float32) Frame {
	f := Frame{
		Forward:   s.down(glfw.KeyW),
		Backward:  s.down(glfw.KeyS),
		Left:      s.down(glfw.KeyA),
		Right:     s.down(glfw.KeyD),
		DX:        float32(s.dx),
		DY:        float32(s.dy),
		Scroll:    float32(s.scroll),
		DT:        dt,
		CycleMode: s.cycleMode,
	}
	s.dx, s.dy, s.scroll = 0, 0, 0
	s.cycleMode = false
	return f
}

func (s *GLFWSource) down(k glfw.Key) bool {
	a := s.keyState(k)
	return a == glfw.Press || a == glfw.Repeat
}
