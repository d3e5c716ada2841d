//go:build windows

package injection

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/soni801/go-tatata/internal/core/script"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procSendInput        = user32.NewProc("SendInput")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	mouseEventfMove       = 0x0001
	mouseEventfLeftDown   = 0x0002
	mouseEventfLeftUp     = 0x0004
	mouseEventfRightDown  = 0x0008
	mouseEventfRightUp    = 0x0010
	mouseEventfMiddleDown = 0x0020
	mouseEventfMiddleUp   = 0x0040
	mouseEventfXDown      = 0x0080
	mouseEventfXUp        = 0x0100
	mouseEventfAbsolute   = 0x8000

	xButton1 = 0x0001
	xButton2 = 0x0002

	keyEventfKeyUp   = 0x0002
	keyEventfUnicode = 0x0004

	smCxScreen = 0
	smCyScreen = 1
)

type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// winInput mirrors the Win32 INPUT struct; mi is the largest union member
type winInput struct {
	Type uint32
	_    uint32
	mi   mouseInput
}

// Injector sends events through the Win32 SendInput API
type Injector struct{}

// NewBackend returns the platform injection backend
func NewBackend() Backend {
	return &Injector{}
}

func sendInput(in winInput) bool {
	n, _, _ := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	return n == 1
}

func sendMouse(op string, mi mouseInput) error {
	in := winInput{Type: inputMouse, mi: mi}
	if !sendInput(in) {
		return deviceErrorf(op, "SendInput rejected the event")
	}
	return nil
}

func sendKeybd(op string, ki keybdInput) error {
	in := winInput{Type: inputKeyboard}
	*(*keybdInput)(unsafe.Pointer(&in.mi)) = ki
	if !sendInput(in) {
		return deviceErrorf(op, "SendInput rejected the event")
	}
	return nil
}

// MoveAbsolute positions the pointer at virtual-screen pixel coordinates
func (i *Injector) MoveAbsolute(x, y int) error {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w <= 1 || h <= 1 {
		return deviceErrorf("moveAbsolute", "could not read screen dimensions")
	}

	// SendInput takes absolute coordinates normalized to 0..65535
	return sendMouse("moveAbsolute", mouseInput{
		Dx:    int32(x * 65535 / (int(w) - 1)),
		Dy:    int32(y * 65535 / (int(h) - 1)),
		Flags: mouseEventfMove | mouseEventfAbsolute,
	})
}

// MoveRelative offsets the pointer by a pixel delta
func (i *Injector) MoveRelative(dx, dy int) error {
	return sendMouse("moveRelative", mouseInput{
		Dx:    int32(dx),
		Dy:    int32(dy),
		Flags: mouseEventfMove,
	})
}

func buttonFlags(button int, up bool) (flags, data uint32, ok bool) {
	switch button {
	case 1:
		if up {
			return mouseEventfLeftUp, 0, true
		}
		return mouseEventfLeftDown, 0, true
	case 2:
		if up {
			return mouseEventfRightUp, 0, true
		}
		return mouseEventfRightDown, 0, true
	case 3:
		if up {
			return mouseEventfMiddleUp, 0, true
		}
		return mouseEventfMiddleDown, 0, true
	case 4, 5:
		data = xButton1
		if button == 5 {
			data = xButton2
		}
		if up {
			return mouseEventfXUp, data, true
		}
		return mouseEventfXDown, data, true
	}
	return 0, 0, false
}

func (i *Injector) button(op string, button int, up bool) error {
	flags, data, ok := buttonFlags(button, up)
	if !ok {
		return deviceErrorf(op, "no such button %d", button)
	}
	return sendMouse(op, mouseInput{Flags: flags, MouseData: data})
}

// ButtonDown presses a mouse button
func (i *Injector) ButtonDown(button int) error {
	return i.button("buttonDown", button, false)
}

// ButtonUp releases a mouse button
func (i *Injector) ButtonUp(button int) error {
	return i.button("buttonUp", button, true)
}

func (i *Injector) key(op string, key script.Key, up bool) error {
	vk, ok := virtualKeys[key]
	if !ok {
		return deviceErrorf(op, "no virtual-key mapping for %q", key)
	}
	ki := keybdInput{Vk: vk}
	if up {
		ki.Flags = keyEventfKeyUp
	}
	return sendKeybd(op, ki)
}

// KeyDown presses a named key
func (i *Injector) KeyDown(key script.Key) error {
	return i.key("keyDown", key, false)
}

// KeyUp releases a named key
func (i *Injector) KeyUp(key script.Key) error {
	return i.key("keyUp", key, true)
}

// TypeCharacter synthesizes a balanced unicode key pair for one character
func (i *Injector) TypeCharacter(c rune) error {
	for _, unit := range utf16.Encode([]rune{c}) {
		down := keybdInput{Scan: unit, Flags: keyEventfUnicode}
		if err := sendKeybd("typeCharacter", down); err != nil {
			return err
		}
		up := keybdInput{Scan: unit, Flags: keyEventfUnicode | keyEventfKeyUp}
		if err := sendKeybd("typeCharacter", up); err != nil {
			return err
		}
	}
	return nil
}
