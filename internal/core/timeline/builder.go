package timeline

import (
	"sort"

	"github.com/soni801/go-tatata/internal/core/script"
)

// Build flattens a compiled program into a single sorted timeline. Every
// action becomes exactly one event; nothing is merged or dropped. The
// sort key is (time, origin sequence), so lines that resolved out of
// chronological order are placed correctly while ties keep source order.
func Build(program *script.Program) *Timeline {
	var events []Event

	seq := 0
	for _, line := range program.Lines {
		for _, action := range line.Actions {
			events = append(events, Event{
				TimeMs:    line.TimeMs,
				Action:    action,
				Line:      line.Number,
				OriginSeq: seq,
			})
			seq++
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].TimeMs != events[j].TimeMs {
			return events[i].TimeMs < events[j].TimeMs
		}
		return events[i].OriginSeq < events[j].OriginSeq
	})

	return &Timeline{events: events}
}
