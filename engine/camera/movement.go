package camera

import "fmt"

// Movement is a keyboard direction, kept separate from any window system's key codes.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Movement(%d)", int(m))
	}
}
