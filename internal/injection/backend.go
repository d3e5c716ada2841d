// Package injection performs the actual pointer and keyboard operations
// behind the scheduler. Implementations are not safe for concurrent use;
// the scheduler calls them from a single goroutine.
package injection

import (
	"fmt"

	"github.com/soni801/go-tatata/internal/core/script"
)

// Backend is the capability that injects input into the host. Every call
// may fail with a *DeviceError; the scheduler treats any failure as fatal
// to the run.
type Backend interface {
	MoveAbsolute(x, y int) error
	MoveRelative(dx, dy int) error
	ButtonDown(button int) error
	ButtonUp(button int) error
	KeyDown(key script.Key) error
	KeyUp(key script.Key) error
	TypeCharacter(c rune) error
}

// DeviceError reports a failed injection call. It signals an
// unrecoverable device or environment condition, not something to retry.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("injection %s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// deviceErrorf wraps a failure from a platform call
func deviceErrorf(op string, format string, args ...interface{}) *DeviceError {
	return &DeviceError{Op: op, Err: fmt.Errorf(format, args...)}
}
