package script

// Line is one compiled script line: its resolved time on the script
// timeline and the actions to dispatch at that time, in clause order.
type Line struct {
	Number  int
	TimeMs  int64
	Actions []Action
}

// Program is a fully compiled script. It is only produced when the
// source compiled without a single error; a program in hand means
// execution cannot encounter a parse-level problem.
type Program struct {
	Lines []Line
}

// ActionCount returns the total number of actions across all lines
func (p *Program) ActionCount() int {
	n := 0
	for _, line := range p.Lines {
		n += len(line.Actions)
	}
	return n
}

// Compile runs the whole front end over the source: lexing, timestamp
// resolution in source order, and action parsing. Diagnostics are
// collected across the entire script. The returned program is nil when
// any error-severity diagnostic was found; warnings alone still yield a
// runnable program.
func Compile(source string, caps Capabilities) (*Program, DiagnosticList) {
	lines, diags := Lex(source)

	resolver := &timestampResolver{}
	parser := &actionParser{caps: caps, diags: &diags}

	program := &Program{}
	for _, line := range lines {
		tsToken, actionText, ok := splitLine(line.Text)
		if !ok {
			diags.errorf(line.Number, CategorySyntax,
				"missing '>' separator between timestamp and actions")
			continue
		}

		timeMs, tsOK := resolver.resolve(tsToken)
		if !tsOK {
			diags.errorf(line.Number, CategorySyntax,
				"invalid timestamp %q", tsToken)
			// Still parse the actions so their problems are reported too
			parser.parseLine(line.Number, actionText)
			continue
		}

		actions := parser.parseLine(line.Number, actionText)
		program.Lines = append(program.Lines, Line{
			Number:  line.Number,
			TimeMs:  timeMs,
			Actions: actions,
		})
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return program, diags
}
