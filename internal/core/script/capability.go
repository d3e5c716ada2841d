package script

import "runtime"

// Capabilities answers whether a button code or key name can be injected
// on a platform. Consulted once during compilation so unsupported entries
// become compile errors instead of silent skips at dispatch time.
type Capabilities struct {
	platform string
}

// NewCapabilities returns the capability table for the given GOOS value
func NewCapabilities(platform string) Capabilities {
	return Capabilities{platform: platform}
}

// HostCapabilities returns the capability table for the running platform
func HostCapabilities() Capabilities {
	return NewCapabilities(runtime.GOOS)
}

// Platform returns the platform this table describes
func (c Capabilities) Platform() string {
	return c.platform
}

// SupportsButton reports whether the button code can be injected.
// Buttons 4 (back) and 5 (forward) have no darwin event type.
func (c Capabilities) SupportsButton(button int) bool {
	if c.platform == "darwin" && button >= 4 {
		return false
	}
	return true
}

// SupportsKey reports whether the key can be injected. The insert key
// does not exist on darwin keyboards.
func (c Capabilities) SupportsKey(key Key) bool {
	if c.platform == "darwin" && key == "insert" {
		return false
	}
	return true
}
