package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyCoversTable(t *testing.T) {
	for _, name := range []string{
		"a", "z", "0", "9", "`", "/", "f1", "f20",
		"control", "super", "up", "pagedown", "space",
	} {
		_, ok := LookupKey(name)
		assert.True(t, ok, "key %q should be known", name)
	}

	for _, name := range []string{"", "aa", "f21", "meta", "spacebar", ">"} {
		_, ok := LookupKey(name)
		assert.False(t, ok, "key %q should be unknown", name)
	}
}

func TestKeyForRune(t *testing.T) {
	key, ok := KeyForRune('a')
	assert.True(t, ok)
	assert.Equal(t, Key("a"), key)

	key, ok = KeyForRune(' ')
	assert.True(t, ok)
	assert.Equal(t, Key("space"), key)

	_, ok = KeyForRune('A')
	assert.False(t, ok)

	_, ok = KeyForRune('€')
	assert.False(t, ok)
}

func TestCapabilities(t *testing.T) {
	linux := NewCapabilities("linux")
	assert.True(t, linux.SupportsButton(4))
	assert.True(t, linux.SupportsKey("insert"))

	darwin := NewCapabilities("darwin")
	assert.True(t, darwin.SupportsButton(3))
	assert.False(t, darwin.SupportsButton(4))
	assert.False(t, darwin.SupportsButton(5))
	assert.False(t, darwin.SupportsKey("insert"))
	assert.True(t, darwin.SupportsKey("a"))
}
