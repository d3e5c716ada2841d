package formatter

import (
	"fmt"
	"io"

	"github.com/soni801/go-tatata/internal/core/timeline"
	"github.com/soni801/go-tatata/internal/util"
)

// TimelineFormatter renders a compiled timeline as an aligned table so a
// script's dispatch order can be inspected without running it
type TimelineFormatter struct{}

// NewTimelineFormatter creates a timeline table renderer
func NewTimelineFormatter() *TimelineFormatter {
	return &TimelineFormatter{}
}

// Format writes a TIME/LINE/ACTION table in dispatch order
func (f *TimelineFormatter) Format(w io.Writer, tl *timeline.Timeline) error {
	timeWidth := util.GetDisplayWidth("TIME")
	lineWidth := util.GetDisplayWidth("LINE")
	for _, e := range tl.Events() {
		if w := util.GetDisplayWidth(util.FormatMillis(e.TimeMs)); w > timeWidth {
			timeWidth = w
		}
		if w := util.GetDisplayWidth(fmt.Sprintf("%d", e.Line)); w > lineWidth {
			lineWidth = w
		}
	}

	if _, err := fmt.Fprintf(w, "%s  %s  ACTION\n",
		util.PadString("TIME", timeWidth, false),
		util.PadString("LINE", lineWidth, false)); err != nil {
		return err
	}

	for _, e := range tl.Events() {
		_, err := fmt.Fprintf(w, "%s  %s  %s\n",
			util.PadString(util.FormatMillis(e.TimeMs), timeWidth, false),
			util.PadString(fmt.Sprintf("%d", e.Line), lineWidth, false),
			e.Action)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d %s over %s\n",
		tl.Len(), util.Pluralize("event", tl.Len()), util.FormatMillis(tl.DurationMs()))
	return err
}
