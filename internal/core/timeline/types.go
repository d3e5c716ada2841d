package timeline

import (
	"github.com/soni801/go-tatata/internal/core/script"
)

// Event is one dispatchable action with its resolved time. OriginSeq is
// the global source-encounter order, used only to break time ties so two
// events at the same millisecond run in the order they were written.
type Event struct {
	TimeMs    int64
	Action    script.Action
	Line      int
	OriginSeq int
}

// Timeline is the fully resolved, chronologically sorted event sequence.
// It is built once and never mutated during execution.
type Timeline struct {
	events []Event
}

// Events returns the ordered event sequence
func (t *Timeline) Events() []Event {
	return t.events
}

// Len returns the number of events
func (t *Timeline) Len() int {
	return len(t.events)
}

// DurationMs returns the timeline time of the last event, zero when empty.
// Interpolated moves may run past this point.
func (t *Timeline) DurationMs() int64 {
	if len(t.events) == 0 {
		return 0
	}
	return t.events[len(t.events)-1].TimeMs
}
