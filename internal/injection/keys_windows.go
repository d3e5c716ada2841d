//go:build windows

package injection

import "github.com/soni801/go-tatata/internal/core/script"

// virtualKeys maps script key names to Win32 virtual-key codes
var virtualKeys = buildVirtualKeys()

func buildVirtualKeys() map[script.Key]uint16 {
	m := map[script.Key]uint16{
		"`":  0xC0, // VK_OEM_3
		"-":  0xBD, // VK_OEM_MINUS
		"=":  0xBB, // VK_OEM_PLUS
		"[":  0xDB, // VK_OEM_4
		"]":  0xDD, // VK_OEM_6
		"\\": 0xDC, // VK_OEM_5
		";":  0xBA, // VK_OEM_1
		"'":  0xDE, // VK_OEM_7
		",":  0xBC, // VK_OEM_COMMA
		".":  0xBE, // VK_OEM_PERIOD
		"/":  0xBF, // VK_OEM_2

		"control":  0x11, // VK_CONTROL
		"shift":    0x10, // VK_SHIFT
		"alt":      0x12, // VK_MENU
		"super":    0x5B, // VK_LWIN
		"capslock": 0x14, // VK_CAPITAL

		"up":    0x26,
		"down":  0x28,
		"left":  0x25,
		"right": 0x27,

		"backspace": 0x08,
		"delete":    0x2E,
		"end":       0x23,
		"enter":     0x0D,
		"escape":    0x1B,
		"home":      0x24,
		"insert":    0x2D,
		"pagedown":  0x22,
		"pageup":    0x21,
		"space":     0x20,
		"tab":       0x09,
	}

	// Letters and digits map to their ASCII uppercase/digit codes
	for c := 'a'; c <= 'z'; c++ {
		m[script.Key(string(c))] = uint16(c - 'a' + 0x41)
	}
	for c := '0'; c <= '9'; c++ {
		m[script.Key(string(c))] = uint16(c)
	}

	// F1..F20 are contiguous from VK_F1
	fnames := []script.Key{
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10",
		"f11", "f12", "f13", "f14", "f15", "f16", "f17", "f18", "f19", "f20",
	}
	for i, name := range fnames {
		m[name] = uint16(0x70 + i)
	}

	return m
}
