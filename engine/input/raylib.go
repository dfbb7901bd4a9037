package input

import rl "github.com/gen2brain/raylib-go/raylib"

// PollRaylib samples raylib's keyboard and mouse state for the current frame.
// WASD moves, Tab cycles the mode.
func PollRaylib() Frame {
	delta := rl.GetMouseDelta()
	return Frame{
		Forward:   rl.IsKeyDown(rl.KeyW),
		Backward:  rl.IsKeyDown(rl.KeyS),
		Left:      rl.IsKeyDown(rl.KeyA),
		Right:     rl.IsKeyDown(rl.KeyD),
		DX:        delta.X,
		DY:        delta.Y,
		Scroll:    rl.GetMouseWheelMove(),
		DT:        rl.GetFrameTime(),
		CycleMode: rl.IsKeyPressed(rl.KeyTab),
	}
}
