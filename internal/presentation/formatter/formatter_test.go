package formatter

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/core/timeline"
)

func compileAndBuild(t *testing.T, source string) (*timeline.Timeline, script.DiagnosticList) {
	t.Helper()
	program, diags := script.Compile(source, script.NewCapabilities("linux"))
	if program == nil {
		return nil, diags
	}
	return timeline.Build(program), diags
}

func TestDiagnosticsFormatterListsProblems(t *testing.T) {
	_, diags := compileAndBuild(t, "abc>keydown x2\n")
	require.True(t, diags.HasErrors())

	var buf strings.Builder
	err := NewDiagnosticsFormatter().Format(&buf, "demo.tatata", diags)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "demo.tatata:1:")
	assert.Contains(t, out, "invalid timestamp")
	assert.Contains(t, out, "unknown key")
	assert.Contains(t, out, "2 errors, 0 warnings")
}

func TestDiagnosticsFormatterCleanScript(t *testing.T) {
	_, diags := compileAndBuild(t, "0>keydown a\n")

	var buf strings.Builder
	err := NewDiagnosticsFormatter().Format(&buf, "demo.tatata", diags)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "no problems found")
}

func TestTimelineFormatterAlignsColumns(t *testing.T) {
	tl, diags := compileAndBuild(t, "0>mousemove abs 10 10\n1000>keydown a;keyup a\n")
	require.False(t, diags.HasErrors())

	var buf strings.Builder
	err := NewTimelineFormatter().Format(&buf, tl)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "TIME")
	assert.Contains(t, lines[0], "ACTION")
	assert.Contains(t, lines[1], "0ms")
	assert.Contains(t, lines[1], "mousemove abs 10 10")
	assert.Contains(t, lines[3], "1000ms")
	assert.Contains(t, lines[4], "3 events over 1000ms")

	// The ACTION column starts at the same offset on every row
	offset := strings.Index(lines[0], "ACTION")
	assert.Equal(t, offset, strings.Index(lines[1], "mousemove"))
}

func TestJSONFormatterReport(t *testing.T) {
	tl, diags := compileAndBuild(t, "0>keydown a\n/* open\n")

	var buf strings.Builder
	err := NewJSONFormatter().Format(&buf, "demo.tatata", diags, tl)
	require.NoError(t, err)

	var report CheckReport
	require.NoError(t, sonic.Unmarshal([]byte(buf.String()), &report))

	assert.Equal(t, "demo.tatata", report.File)
	assert.True(t, report.OK)
	assert.Equal(t, 0, report.Errors)
	assert.Equal(t, 1, report.Warnings)
	require.Len(t, report.Timeline, 1)
	assert.Equal(t, int64(0), report.Timeline[0].TimeMs)
	assert.Equal(t, "keydown a", report.Timeline[0].Action)
}

func TestJSONFormatterErrorsWithoutTimeline(t *testing.T) {
	_, diags := compileAndBuild(t, "nope\n")

	var buf strings.Builder
	err := NewJSONFormatter().Format(&buf, "demo.tatata", diags, nil)
	require.NoError(t, err)

	var report CheckReport
	require.NoError(t, sonic.Unmarshal([]byte(buf.String()), &report))

	assert.False(t, report.OK)
	assert.Equal(t, 1, report.Errors)
	assert.Empty(t, report.Timeline)
}
