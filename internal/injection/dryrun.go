package injection

import "github.com/soni801/go-tatata/internal/core/script"

// DryRun is a backend that accepts every call without touching the host.
// The scheduler's action trace does the printing, so a dry run shows the
// exact dispatch sequence a real run would perform.
type DryRun struct{}

// NewDryRun returns a no-op backend
func NewDryRun() *DryRun {
	return &DryRun{}
}

func (d *DryRun) MoveAbsolute(x, y int) error { return nil }
func (d *DryRun) MoveRelative(dx, dy int) error { return nil }
func (d *DryRun) ButtonDown(button int) error { return nil }
func (d *DryRun) ButtonUp(button int) error { return nil }
func (d *DryRun) KeyDown(key script.Key) error { return nil }
func (d *DryRun) KeyUp(key script.Key) error { return nil }
func (d *DryRun) TypeCharacter(c rune) error { return nil }
