package script

import "strings"

// SourceLine is a non-blank script line with its original 1-based number,
// comments already stripped
type SourceLine struct {
	Number int
	Text   string
}

// Lex strips comments and splits the source into addressable lines.
// Block comments are removed first: the span from each /* to the first
// subsequent */ is discarded, newlines inside the span are kept so line
// numbers stay stable. An unterminated block comment consumes to end of
// input and is reported as a warning, not an error. Line comments (// to
// end of line) are stripped afterwards.
func Lex(source string) ([]SourceLine, DiagnosticList) {
	var diags DiagnosticList

	stripped := stripBlockComments(source, &diags)

	var lines []SourceLine
	for i, raw := range strings.Split(stripped, "\n") {
		if idx := strings.Index(raw, "//"); idx >= 0 {
			raw = raw[:idx]
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		lines = append(lines, SourceLine{Number: i + 1, Text: text})
	}
	return lines, diags
}

// stripBlockComments removes /* ... */ spans. Nested openings are not
// special: the first closer terminates the comment.
func stripBlockComments(source string, diags *DiagnosticList) string {
	var b strings.Builder
	b.Grow(len(source))

	line := 1
	inComment := false
	openLine := 0

	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == '\n' {
			line++
			b.WriteByte('\n')
			continue
		}

		if inComment {
			if c == '*' && i+1 < len(source) && source[i+1] == '/' {
				inComment = false
				i++
			}
			continue
		}

		if c == '/' && i+1 < len(source) && source[i+1] == '*' {
			inComment = true
			openLine = line
			i++
			continue
		}

		b.WriteByte(c)
	}

	if inComment {
		diags.warnf(openLine, CategorySyntax,
			"unterminated block comment discards everything after it")
	}

	return b.String()
}
