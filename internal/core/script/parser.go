package script

import (
	"strconv"
	"strings"
)

// actionParser validates the clause text of one line against the verb,
// argument and capability tables. It never stops at the first problem;
// every clause is checked and every diagnostic recorded.
type actionParser struct {
	caps  Capabilities
	diags *DiagnosticList
}

// parseLine splits the action text on ';' and parses each clause. A text
// clause's payload runs to the next ';' or end of line, so text can still
// be followed by further clauses.
func (p *actionParser) parseLine(lineNo int, text string) []Action {
	clauses := strings.Split(text, ";")

	var actions []Action
	sawClause := false
	for _, clause := range clauses {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		sawClause = true
		if action := p.parseClause(lineNo, clause); action != nil {
			actions = append(actions, action)
		}
	}

	if !sawClause {
		p.diags.errorf(lineNo, CategorySyntax, "line has no actions")
	}
	return actions
}

// parseClause parses a single action clause, returning nil when the
// clause is invalid (the diagnostic is already recorded).
func (p *actionParser) parseClause(lineNo int, clause string) Action {
	trimmed := strings.TrimSpace(clause)
	fields := strings.Fields(trimmed)
	verb := strings.ToLower(fields[0])

	switch verb {
	case "mousemove":
		return p.parseMouseMove(lineNo, fields[1:])
	case "mousedown":
		return p.parseMouseButton(lineNo, Down, fields[1:])
	case "mouseup":
		return p.parseMouseButton(lineNo, Up, fields[1:])
	case "keydown":
		return p.parseKey(lineNo, Down, fields[1:])
	case "keyup":
		return p.parseKey(lineNo, Up, fields[1:])
	case "release":
		return p.parseRelease(lineNo, fields[1:])
	case "text":
		return p.parseText(lineNo, trimmed)
	default:
		p.diags.errorf(lineNo, CategoryUnknownVerb, "unknown action %q", fields[0])
		return nil
	}
}

func (p *actionParser) parseMouseMove(lineNo int, args []string) Action {
	if len(args) < 3 || len(args) > 4 {
		p.diags.errorf(lineNo, CategoryArgumentCount,
			"mousemove takes a mode, two coordinates and an optional duration, got %d arguments", len(args))
		return nil
	}

	var mode MoveMode
	switch strings.ToLower(args[0]) {
	case "abs":
		mode = MoveAbsolute
	case "rel":
		mode = MoveRelative
	default:
		p.diags.errorf(lineNo, CategoryArgumentValue,
			"mousemove mode must be abs or rel, got %q", args[0])
		return nil
	}

	x, okX := p.parseCoordinate(lineNo, "X", args[1], mode)
	y, okY := p.parseCoordinate(lineNo, "Y", args[2], mode)

	var duration int64
	if len(args) == 4 {
		d, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil || d < 0 {
			p.diags.errorf(lineNo, CategoryArgumentValue,
				"mousemove duration must be a non-negative integer, got %q", args[3])
			return nil
		}
		duration = d
	}

	if !okX || !okY {
		return nil
	}
	return MouseMove{Mode: mode, X: x, Y: y, DurationMs: duration}
}

func (p *actionParser) parseCoordinate(lineNo int, axis, arg string, mode MoveMode) (int, bool) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		p.diags.errorf(lineNo, CategoryArgumentValue,
			"invalid %s position %q", axis, arg)
		return 0, false
	}
	if mode == MoveAbsolute && v < 0 {
		p.diags.errorf(lineNo, CategoryArgumentValue,
			"absolute %s position cannot be negative, got %d", axis, v)
		return 0, false
	}
	return v, true
}

func (p *actionParser) parseMouseButton(lineNo int, t Transition, args []string) Action {
	verb := "mouse" + t.String()
	if len(args) != 1 {
		p.diags.errorf(lineNo, CategoryArgumentCount,
			"%s takes exactly one button argument, got %d", verb, len(args))
		return nil
	}

	button, err := strconv.Atoi(args[0])
	if err != nil || button < 1 || button > 5 {
		p.diags.errorf(lineNo, CategoryArgumentValue,
			"%s button must be 1-5, got %q", verb, args[0])
		return nil
	}

	if !p.caps.SupportsButton(button) {
		p.diags.errorf(lineNo, CategoryUnsupported,
			"button %d is not supported on %s", button, p.caps.Platform())
		return nil
	}
	return MouseButton{Transition: t, Button: button}
}

func (p *actionParser) parseKey(lineNo int, t Transition, args []string) Action {
	verb := "key" + t.String()
	if len(args) != 1 {
		p.diags.errorf(lineNo, CategoryArgumentCount,
			"%s takes exactly one key argument, got %d", verb, len(args))
		return nil
	}

	key, ok := LookupKey(strings.ToLower(args[0]))
	if !ok {
		p.diags.errorf(lineNo, CategoryArgumentValue,
			"unknown key %q", args[0])
		return nil
	}

	if !p.caps.SupportsKey(key) {
		p.diags.errorf(lineNo, CategoryUnsupported,
			"key %q is not supported on %s", key, p.caps.Platform())
		return nil
	}
	return KeyAction{Transition: t, Key: key}
}

func (p *actionParser) parseRelease(lineNo int, args []string) Action {
	if len(args) != 1 {
		p.diags.errorf(lineNo, CategoryArgumentCount,
			"release takes exactly one target argument, got %d", len(args))
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "mouse":
		return Release{Target: ReleaseMouse}
	case "key":
		return Release{Target: ReleaseKeys}
	case "both":
		return Release{Target: ReleaseBoth}
	default:
		p.diags.errorf(lineNo, CategoryArgumentValue,
			"release target must be mouse, key or both, got %q", args[0])
		return nil
	}
}

// parseText takes its payload verbatim from the clause: everything after
// the verb and one separating space, with no quoting or escaping.
func (p *actionParser) parseText(lineNo int, clause string) Action {
	rest := clause[len("text"):]
	if rest == "" || !strings.HasPrefix(rest, " ") {
		p.diags.errorf(lineNo, CategoryArgumentCount, "text needs a payload")
		return nil
	}
	content := rest[1:]
	if content == "" {
		p.diags.errorf(lineNo, CategoryArgumentCount, "text needs a payload")
		return nil
	}
	if strings.Contains(content, ">") {
		p.diags.errorf(lineNo, CategoryArgumentValue, "text cannot contain '>'")
		return nil
	}
	return Text{Content: content}
}
