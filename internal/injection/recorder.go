package injection

import (
	"fmt"

	"github.com/soni801/go-tatata/internal/core/script"
)

// Recorder is a backend that records every call as a formatted string.
// Used by scheduler tests to assert exact dispatch sequences; FailOn can
// be set to make a specific call fail with a DeviceError.
type Recorder struct {
	Calls  []string
	FailOn string
}

// NewRecorder returns an empty recording backend
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(op string, format string, args ...interface{}) error {
	call := op + " " + fmt.Sprintf(format, args...)
	r.Calls = append(r.Calls, call)
	if r.FailOn != "" && op == r.FailOn {
		return deviceErrorf(op, "forced failure")
	}
	return nil
}

func (r *Recorder) MoveAbsolute(x, y int) error {
	return r.record("moveAbsolute", "%d,%d", x, y)
}

func (r *Recorder) MoveRelative(dx, dy int) error {
	return r.record("moveRelative", "%d,%d", dx, dy)
}

func (r *Recorder) ButtonDown(button int) error {
	return r.record("buttonDown", "%d", button)
}

func (r *Recorder) ButtonUp(button int) error {
	return r.record("buttonUp", "%d", button)
}

func (r *Recorder) KeyDown(key script.Key) error {
	return r.record("keyDown", "%s", key)
}

func (r *Recorder) KeyUp(key script.Key) error {
	return r.record("keyUp", "%s", key)
}

func (r *Recorder) TypeCharacter(c rune) error {
	return r.record("typeCharacter", "%c", c)
}
