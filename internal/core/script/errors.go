package script

import (
	"fmt"
	"strings"
)

// Category classifies a compile diagnostic
type Category string

const (
	CategorySyntax        Category = "syntax"
	CategoryUnknownVerb   Category = "unknown-verb"
	CategoryArgumentCount Category = "argument-count"
	CategoryArgumentValue Category = "argument-value"
	CategoryUnsupported   Category = "unsupported-on-platform"
)

// Severity distinguishes hard errors from warnings
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single line-addressed compile problem
type Diagnostic struct {
	Line     int      `json:"line"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Category, d.Message)
}

// DiagnosticList collects every diagnostic found in one compile pass.
// Compilation never stops at the first problem; the whole script is
// checked so a single run reports every defect.
type DiagnosticList []Diagnostic

// HasErrors reports whether any error-severity diagnostic is present.
// Warnings alone do not block execution.
func (dl DiagnosticList) HasErrors() bool {
	for _, d := range dl {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity diagnostics
func (dl DiagnosticList) Errors() DiagnosticList {
	var out DiagnosticList
	for _, d := range dl {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the warning-severity diagnostics
func (dl DiagnosticList) Warnings() DiagnosticList {
	var out DiagnosticList
	for _, d := range dl {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

func (dl DiagnosticList) Error() string {
	if len(dl) == 0 {
		return "no diagnostics"
	}
	msgs := make([]string, 0, len(dl))
	for _, d := range dl {
		msgs = append(msgs, d.String())
	}
	return strings.Join(msgs, "; ")
}

// errorf appends an error-severity diagnostic
func (dl *DiagnosticList) errorf(line int, cat Category, format string, args ...interface{}) {
	*dl = append(*dl, Diagnostic{
		Line:     line,
		Category: cat,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
	})
}

// warnf appends a warning-severity diagnostic
func (dl *DiagnosticList) warnf(line int, cat Category, format string, args ...interface{}) {
	*dl = append(*dl, Diagnostic{
		Line:     line,
		Category: cat,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}
