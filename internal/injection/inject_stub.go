//go:build !windows

package injection

import "github.com/soni801/go-tatata/internal/core/script"

// Injector is the stub backend for platforms without a native injector.
// Every call fails; use the dry-run backend to exercise scripts here.
type Injector struct{}

// NewBackend returns the platform injection backend
func NewBackend() Backend {
	return &Injector{}
}

func (i *Injector) unsupported(op string) error {
	return deviceErrorf(op, "input injection is not supported on this platform")
}

func (i *Injector) MoveAbsolute(x, y int) error {
	return i.unsupported("moveAbsolute")
}

func (i *Injector) MoveRelative(dx, dy int) error {
	return i.unsupported("moveRelative")
}

func (i *Injector) ButtonDown(button int) error {
	return i.unsupported("buttonDown")
}

func (i *Injector) ButtonUp(button int) error {
	return i.unsupported("buttonUp")
}

func (i *Injector) KeyDown(key script.Key) error {
	return i.unsupported("keyDown")
}

func (i *Injector) KeyUp(key script.Key) error {
	return i.unsupported("keyUp")
}

func (i *Injector) TypeCharacter(c rune) error {
	return i.unsupported("typeCharacter")
}
