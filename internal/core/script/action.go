package script

import "fmt"

// Key is a normalized key name from the key table, e.g. "a", "f12",
// "control". The injection backend maps names to platform key codes.
type Key string

// MoveMode selects absolute or relative pointer coordinates
type MoveMode int

const (
	MoveAbsolute MoveMode = iota
	MoveRelative
)

func (m MoveMode) String() string {
	if m == MoveRelative {
		return "rel"
	}
	return "abs"
}

// Transition is the press/release direction of a button or key action
type Transition int

const (
	Down Transition = iota
	Up
)

func (t Transition) String() string {
	if t == Up {
		return "up"
	}
	return "down"
}

// ReleaseTarget selects which held inputs a release action drains
type ReleaseTarget int

const (
	ReleaseMouse ReleaseTarget = iota
	ReleaseKeys
	ReleaseBoth
)

func (rt ReleaseTarget) String() string {
	switch rt {
	case ReleaseMouse:
		return "mouse"
	case ReleaseKeys:
		return "key"
	default:
		return "both"
	}
}

// Action is one primitive input operation. The variant set is closed;
// the scheduler dispatches with a type switch.
type Action interface {
	isAction()
	String() string
}

// MouseMove moves the pointer, optionally interpolated over DurationMs
type MouseMove struct {
	Mode       MoveMode
	X, Y       int
	DurationMs int64
}

// MouseButton presses or releases a mouse button (1..5)
type MouseButton struct {
	Transition Transition
	Button     int
}

// KeyAction presses or releases a named key
type KeyAction struct {
	Transition Transition
	Key        Key
}

// Release drains currently-held inputs matching the target
type Release struct {
	Target ReleaseTarget
}

// Text types a string as balanced per-character down/up pairs
type Text struct {
	Content string
}

func (MouseMove) isAction()   {}
func (MouseButton) isAction() {}
func (KeyAction) isAction()   {}
func (Release) isAction()     {}
func (Text) isAction()        {}

func (a MouseMove) String() string {
	if a.DurationMs > 0 {
		return fmt.Sprintf("mousemove %s %d %d over %dms", a.Mode, a.X, a.Y, a.DurationMs)
	}
	return fmt.Sprintf("mousemove %s %d %d", a.Mode, a.X, a.Y)
}

func (a MouseButton) String() string {
	return fmt.Sprintf("mouse%s %d", a.Transition, a.Button)
}

func (a KeyAction) String() string {
	return fmt.Sprintf("key%s %s", a.Transition, a.Key)
}

func (a Release) String() string {
	return fmt.Sprintf("release %s", a.Target)
}

func (a Text) String() string {
	return fmt.Sprintf("text %q", a.Content)
}
