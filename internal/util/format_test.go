package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "0ms", FormatMillis(0))
	assert.Equal(t, "1250ms", FormatMillis(1250))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "error", Pluralize("error", 1))
	assert.Equal(t, "errors", Pluralize("error", 0))
	assert.Equal(t, "errors", Pluralize("error", 2))
}

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab   ", PadString("ab", 5, true))
	assert.Equal(t, "   ab", PadString("ab", 5, false))
	assert.Equal(t, "abcdef", PadString("abcdef", 5, true))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	truncated := TruncateString("a long line that will not fit", 10)
	assert.LessOrEqual(t, GetDisplayWidth(truncated), 10)
}
