package script

// keyTable is the full set of key names the language accepts. Whether a
// name works on the active platform is a separate capability question.
var keyTable = buildKeyTable()

func buildKeyTable() map[Key]struct{} {
	table := make(map[Key]struct{})

	add := func(names ...string) {
		for _, n := range names {
			table[Key(n)] = struct{}{}
		}
	}

	// Letters and digits
	for c := 'a'; c <= 'z'; c++ {
		add(string(c))
	}
	for c := '0'; c <= '9'; c++ {
		add(string(c))
	}

	// Base-layer symbols
	add("`", "-", "=", "[", "]", "\\", ";", "'", ",", ".", "/")

	// Function keys f1..f20
	for _, n := range []string{
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10",
		"f11", "f12", "f13", "f14", "f15", "f16", "f17", "f18", "f19", "f20",
	} {
		add(n)
	}

	// Modifiers
	add("control", "shift", "alt", "super", "capslock")

	// Arrows
	add("up", "down", "left", "right")

	// Named specials
	add("backspace", "delete", "end", "enter", "escape", "home",
		"insert", "pagedown", "pageup", "space", "tab")

	return table
}

// LookupKey reports whether name is a known key in the language,
// returning its normalized form
func LookupKey(name string) (Key, bool) {
	k := Key(name)
	_, ok := keyTable[k]
	return k, ok
}

// KeyForRune maps a single character to its key-table entry when one
// exists; used by text dispatch to keep type-through-keys balanced.
func KeyForRune(r rune) (Key, bool) {
	if r == ' ' {
		return "space", true
	}
	return LookupKey(string(r))
}
