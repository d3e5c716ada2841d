package runtime

import "github.com/soni801/go-tatata/internal/core/script"

// DeviceState tracks which keys and buttons are currently held during one
// run. It is created when a run starts, owned exclusively by the
// scheduler goroutine, and drained at every terminal transition. Held
// entries keep press order so draining is deterministic.
type DeviceState struct {
	heldKeys    []script.Key
	keySet      map[script.Key]struct{}
	heldButtons []int
	buttonSet   map[int]struct{}
}

// NewDeviceState returns an empty device state
func NewDeviceState() *DeviceState {
	return &DeviceState{
		keySet:    make(map[script.Key]struct{}),
		buttonSet: make(map[int]struct{}),
	}
}

// PressKey marks a key held, reporting false when it already was.
// Callers skip the backend call in that case, making key-down idempotent.
func (ds *DeviceState) PressKey(key script.Key) bool {
	if _, held := ds.keySet[key]; held {
		return false
	}
	ds.keySet[key] = struct{}{}
	ds.heldKeys = append(ds.heldKeys, key)
	return true
}

// ReleaseKey clears a held key, reporting false when it wasn't held
func (ds *DeviceState) ReleaseKey(key script.Key) bool {
	if _, held := ds.keySet[key]; !held {
		return false
	}
	delete(ds.keySet, key)
	for i, k := range ds.heldKeys {
		if k == key {
			ds.heldKeys = append(ds.heldKeys[:i], ds.heldKeys[i+1:]...)
			break
		}
	}
	return true
}

// PressButton marks a button held, reporting false when it already was
func (ds *DeviceState) PressButton(button int) bool {
	if _, held := ds.buttonSet[button]; held {
		return false
	}
	ds.buttonSet[button] = struct{}{}
	ds.heldButtons = append(ds.heldButtons, button)
	return true
}

// ReleaseButton clears a held button, reporting false when it wasn't held
func (ds *DeviceState) ReleaseButton(button int) bool {
	if _, held := ds.buttonSet[button]; !held {
		return false
	}
	delete(ds.buttonSet, button)
	for i, b := range ds.heldButtons {
		if b == button {
			ds.heldButtons = append(ds.heldButtons[:i], ds.heldButtons[i+1:]...)
			break
		}
	}
	return true
}

// HeldKeys returns the held keys in press order
func (ds *DeviceState) HeldKeys() []script.Key {
	out := make([]script.Key, len(ds.heldKeys))
	copy(out, ds.heldKeys)
	return out
}

// HeldButtons returns the held buttons in press order
func (ds *DeviceState) HeldButtons() []int {
	out := make([]int, len(ds.heldButtons))
	copy(out, ds.heldButtons)
	return out
}

// Empty reports whether nothing is held
func (ds *DeviceState) Empty() bool {
	return len(ds.heldKeys) == 0 && len(ds.heldButtons) == 0
}
