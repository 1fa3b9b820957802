package inject

import "fmt"

// Event is a synthetic input value that a Source can turn into a platform event.
type Event interface {
	fmt.Stringer
	event()
}

// KeyEvent presses or releases a single virtual key.
type KeyEvent struct {
	Code KeyCode
	Down bool
}

func (KeyEvent) event() {}

func (e KeyEvent) String() string {
	if e.Down {
		return "key-down " + e.Code.String()
	}
	return "key-up " + e.Code.String()
}

// MouseKind enumerates the mouse actions used for a click.
type MouseKind int

const (
	MouseMove MouseKind = iota
	MouseLeftDown
	MouseLeftUp
)

func (k MouseKind) String() string {
	switch k {
	case MouseMove:
		return "move"
	case MouseLeftDown:
		return "left-down"
	case MouseLeftUp:
		return "left-up"
	default:
		return fmt.Sprintf("mouse(%d)", int(k))
	}
}

// MouseEvent positions or clicks the pointer. X and Y are window-relative.
// A positive Window targets that window number; zero leaves it unset.
type MouseEvent struct {
	Kind   MouseKind
	X      float64
	Y      float64
	Window int
}

func (MouseEvent) event() {}

func (e MouseEvent) String() string {
	if e.Window > 0 {
		return fmt.Sprintf("mouse %s (%.1f,%.1f) window=%d", e.Kind, e.X, e.Y, e.Window)
	}
	return fmt.Sprintf("mouse %s (%.1f,%.1f)", e.Kind, e.X, e.Y)
}
