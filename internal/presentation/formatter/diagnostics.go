package formatter

import (
	"fmt"
	"io"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/util"
)

// DiagnosticsFormatter renders compile diagnostics for humans
type DiagnosticsFormatter struct {
	color bool
	width int
}

// NewDiagnosticsFormatter creates a text renderer; color is only used
// when stdout is a terminal
func NewDiagnosticsFormatter() *DiagnosticsFormatter {
	return &DiagnosticsFormatter{
		color: util.IsTerminal(),
		width: util.TerminalWidth(),
	}
}

// Format writes one line per diagnostic plus a summary line
func (f *DiagnosticsFormatter) Format(w io.Writer, file string, diags script.DiagnosticList) error {
	for _, d := range diags {
		label := string(d.Severity)
		color := util.ColorRed
		if d.Severity == script.SeverityWarning {
			color = util.ColorYellow
		}

		line := fmt.Sprintf("%s:%d: %s: %s [%s]",
			file, d.Line, util.Colorize(color, label, f.color), d.Message, d.Category)
		if _, err := fmt.Fprintln(w, util.TruncateString(line, f.width)); err != nil {
			return err
		}
	}

	errs := len(diags.Errors())
	warns := len(diags.Warnings())
	var summary string
	switch {
	case errs == 0 && warns == 0:
		summary = util.Colorize(util.ColorGreen, "no problems found", f.color)
	case errs == 0:
		summary = fmt.Sprintf("%d %s", warns, util.Pluralize("warning", warns))
	default:
		summary = fmt.Sprintf("%d %s, %d %s",
			errs, util.Pluralize("error", errs), warns, util.Pluralize("warning", warns))
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
