package runtime

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/core/timeline"
	"github.com/soni801/go-tatata/internal/injection"
)

func buildTimeline(t *testing.T, source string) *timeline.Timeline {
	t.Helper()
	program, diags := script.Compile(source, script.NewCapabilities("linux"))
	require.NotNil(t, program, "compile failed: %v", diags)
	return timeline.Build(program)
}

func runScript(t *testing.T, source string, backend Backend) Outcome {
	t.Helper()
	run := Start(buildTimeline(t, source), backend, Options{})
	return run.Wait()
}

func TestRunDispatchesInTimelineOrder(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, `0>mousemove abs 10 10
20>keydown a;keyup a
+10>release key
`, rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.NoError(t, outcome.Err)
	// The release at 30ms issues nothing: 'a' is already released
	assert.Equal(t, []string{
		"moveAbsolute 10,10",
		"keyDown a",
		"keyUp a",
	}, rec.Calls)
}

func TestRunKeyDownIsIdempotent(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>keydown a;keydown a\n10>release key\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, []string{"keyDown a", "keyUp a"}, rec.Calls)
}

func TestRunKeyUpWithoutDownIsNoop(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>keyup a;mouseup 1\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Empty(t, rec.Calls)
}

func TestRunReleaseBothOnEmptyStateIssuesNothing(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>release both\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Empty(t, rec.Calls)
}

func TestRunReleaseTargetsOnlyMatchingInputs(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>keydown a;mousedown 1\n10>release key\n20>release both\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, []string{
		"keyDown a",
		"buttonDown 1",
		"keyUp a",
		"buttonUp 1",
	}, rec.Calls)
}

func TestRunInterpolationStepCountAndExactTarget(t *testing.T) {
	rec := injection.NewRecorder()

	// ceil(200/16) = 13 steps; displacement must sum to exactly (0, 570)
	outcome := runScript(t, "0>mousemove rel 0 570 200\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	require.Len(t, rec.Calls, 13)

	sumY := 0
	for _, call := range rec.Calls {
		var dx, dy int
		n, err := fmt.Sscanf(call, "moveRelative %d,%d", &dx, &dy)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		assert.Equal(t, 0, dx)
		sumY += dy
	}
	assert.Equal(t, 570, sumY)
}

func TestRunInterpolationAbsoluteLandsOnTarget(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>mousemove abs 100 100\n10>mousemove abs 10 37 50\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	// 1 immediate move + ceil(50/16) = 4 interpolation steps
	require.Len(t, rec.Calls, 5)
	assert.Equal(t, "moveAbsolute 10,37", rec.Calls[len(rec.Calls)-1])
}

func TestRunShortDurationStillMovesOnce(t *testing.T) {
	rec := injection.NewRecorder()

	// Duration below one tick collapses to a single step on the target
	outcome := runScript(t, "0>mousemove rel 3 4 5\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, []string{"moveRelative 3,4"}, rec.Calls)
}

func TestRunTextTypesBalancedPairs(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>text ab A\n10>release key\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	// 'A' has no key-table entry and falls back to character synthesis;
	// the trailing release sees nothing held
	assert.Equal(t, []string{
		"keyDown a",
		"keyUp a",
		"keyDown b",
		"keyUp b",
		"keyDown space",
		"keyUp space",
		"typeCharacter A",
	}, rec.Calls)
}

func TestRunTextReleasesKeyHeldBeforehand(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "0>keydown a\n10>text a\n20>release key\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	// The text 'a' finds the key already held: no second down, one up.
	// The release then has nothing left to do.
	assert.Equal(t, []string{"keyDown a", "keyUp a"}, rec.Calls)
}

func TestRunCancellationMidInterpolationDrainsState(t *testing.T) {
	rec := injection.NewRecorder()

	run := Start(buildTimeline(t, `0>keydown control;mousedown 1
10>mousemove rel 0 1000 5000
`), rec, Options{})

	time.Sleep(100 * time.Millisecond)
	run.Cancel()
	outcome := run.Wait()

	assert.Equal(t, StateCancelled, outcome.State)
	assert.NoError(t, outcome.Err)

	// Everything held was released on the way out
	assert.Contains(t, rec.Calls, "buttonUp 1")
	assert.Contains(t, rec.Calls, "keyUp control")
	assert.Equal(t, "keyUp control", rec.Calls[len(rec.Calls)-1])
}

func TestRunCancelBeforeFirstEvent(t *testing.T) {
	rec := injection.NewRecorder()

	run := Start(buildTimeline(t, "1000>keydown a\n"), rec, Options{})
	run.Cancel()
	outcome := run.Wait()

	assert.Equal(t, StateCancelled, outcome.State)
	assert.Empty(t, rec.Calls)
}

func TestRunCancelIsIdempotent(t *testing.T) {
	rec := injection.NewRecorder()

	run := Start(buildTimeline(t, "500>keydown a\n"), rec, Options{})
	run.Cancel()
	run.Cancel()
	outcome := run.Wait()

	assert.Equal(t, StateCancelled, outcome.State)
}

func TestRunDeviceErrorFailsRunAndDrains(t *testing.T) {
	rec := injection.NewRecorder()
	rec.FailOn = "keyDown"

	outcome := runScript(t, "0>mousedown 2\n10>keydown a\n", rec)

	assert.Equal(t, StateFailed, outcome.State)
	require.Error(t, outcome.Err)

	var devErr *injection.DeviceError
	require.ErrorAs(t, outcome.Err, &devErr)
	assert.Equal(t, "keyDown", devErr.Op)

	// The held button was released best-effort on the way out
	assert.Equal(t, "buttonUp 2", rec.Calls[len(rec.Calls)-1])
}

func TestRunLateEventsAreDispatchedNotSkipped(t *testing.T) {
	rec := injection.NewRecorder()

	// Both events are due at the same instant; neither may be dropped
	outcome := runScript(t, "0>keydown a\n0>keyup a\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, []string{"keyDown a", "keyUp a"}, rec.Calls)
}

func TestRunEmptyTimelineCompletes(t *testing.T) {
	rec := injection.NewRecorder()

	outcome := runScript(t, "// nothing\n", rec)

	assert.Equal(t, StateCompleted, outcome.State)
	assert.Empty(t, rec.Calls)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
	assert.Equal(t, "failed", StateFailed.String())
}
