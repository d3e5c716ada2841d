package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAbsoluteAndRelative(t *testing.T) {
	r := &timestampResolver{}

	resolved, ok := r.resolve("100")
	require.True(t, ok)
	assert.Equal(t, int64(100), resolved)

	resolved, ok = r.resolve("+50")
	require.True(t, ok)
	assert.Equal(t, int64(150), resolved)

	resolved, ok = r.resolve("+0")
	require.True(t, ok)
	assert.Equal(t, int64(150), resolved)
}

func TestResolveRelativeBeforeAnyAbsolute(t *testing.T) {
	r := &timestampResolver{}

	resolved, ok := r.resolve("+25")
	require.True(t, ok)
	assert.Equal(t, int64(25), resolved)
}

func TestResolveRelativeAgainstSourceOrderNotChronology(t *testing.T) {
	// An absolute jump backwards still becomes the new reference point
	r := &timestampResolver{}

	resolved, _ := r.resolve("500")
	assert.Equal(t, int64(500), resolved)

	resolved, _ = r.resolve("100")
	assert.Equal(t, int64(100), resolved)

	resolved, ok := r.resolve("+10")
	require.True(t, ok)
	assert.Equal(t, int64(110), resolved)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	for _, token := range []string{"", "abc", "-5", "+-5", "++5", "1.5", "+"} {
		r := &timestampResolver{}
		_, ok := r.resolve(token)
		assert.False(t, ok, "token %q should be rejected", token)
	}
}

func TestSplitLine(t *testing.T) {
	ts, actions, ok := splitLine("100>keydown a;keyup a")
	require.True(t, ok)
	assert.Equal(t, "100", ts)
	assert.Equal(t, "keydown a;keyup a", actions)

	// Only the first '>' separates; the rest belongs to the action text
	ts, actions, ok = splitLine("0>text a>b")
	require.True(t, ok)
	assert.Equal(t, "0", ts)
	assert.Equal(t, "text a>b", actions)

	_, _, ok = splitLine("keydown a")
	assert.False(t, ok)
}
