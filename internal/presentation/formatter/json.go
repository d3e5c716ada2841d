package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/core/timeline"
)

// CheckReport is the machine-readable result of a compile pass
type CheckReport struct {
	File        string                `json:"file"`
	OK          bool                  `json:"ok"`
	Errors      int                   `json:"errors"`
	Warnings    int                   `json:"warnings"`
	Diagnostics script.DiagnosticList `json:"diagnostics,omitempty"`
	Timeline    []TimelineEventJSON   `json:"timeline,omitempty"`
}

// TimelineEventJSON is one timeline event in the JSON dump
type TimelineEventJSON struct {
	TimeMs int64  `json:"time_ms"`
	Line   int    `json:"line"`
	Action string `json:"action"`
}

// JSONFormatter renders check results with sonic
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON renderer
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the report as indented JSON. The timeline is included
// only when one was built (compile succeeded and the dump was requested).
func (f *JSONFormatter) Format(w io.Writer, file string, diags script.DiagnosticList, tl *timeline.Timeline) error {
	report := CheckReport{
		File:        file,
		OK:          !diags.HasErrors(),
		Errors:      len(diags.Errors()),
		Warnings:    len(diags.Warnings()),
		Diagnostics: diags,
	}

	if tl != nil {
		report.Timeline = make([]TimelineEventJSON, 0, tl.Len())
		for _, e := range tl.Events() {
			report.Timeline = append(report.Timeline, TimelineEventJSON{
				TimeMs: e.TimeMs,
				Line:   e.Line,
				Action: e.Action.String(),
			})
		}
	}

	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
