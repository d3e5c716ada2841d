package script

import (
	"strconv"
	"strings"
)

// timestampResolver turns per-line timestamp tokens into absolute times on
// the script timeline. Relative timestamps (+N) resolve against the most
// recently resolved time in source order, which is not necessarily
// chronological order; the timeline builder sorts afterwards.
type timestampResolver struct {
	lastResolved int64
}

// resolve parses one timestamp token and advances the resolver. The token
// is everything left of the line's first '>'.
func (r *timestampResolver) resolve(token string) (int64, bool) {
	token = strings.TrimSpace(token)

	relative := false
	if strings.HasPrefix(token, "+") {
		relative = true
		token = token[1:]
	}

	if token == "" || strings.IndexFunc(token, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, false
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}

	resolved := value
	if relative {
		resolved = r.lastResolved + value
	}
	r.lastResolved = resolved
	return resolved, true
}

// splitLine separates a line into its timestamp token and action text at
// the first '>'. ok is false when the separator is missing.
func splitLine(text string) (timestamp, actions string, ok bool) {
	idx := strings.Index(text, ">")
	if idx < 0 {
		return "", "", false
	}
	return text[:idx], text[idx+1:], true
}
