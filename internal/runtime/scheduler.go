// Package runtime executes a compiled timeline against an injection
// backend on a real-time clock.
package runtime

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/soni801/go-tatata/internal/core/script"
	"github.com/soni801/go-tatata/internal/core/timeline"
	"github.com/soni801/go-tatata/internal/util"
)

// State is the scheduler's run state
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a run. Cancellation is a normal
// outcome, not an error; Err is set only for failed runs.
type Outcome struct {
	State State
	Err   error
}

// DefaultTickMs is the interpolation tick interval. It is an
// implementation constant, not a contract; Options.TickMs overrides it.
const DefaultTickMs = 16

// Options tune one run
type Options struct {
	TickMs int64                // interpolation tick interval, default 16
	Trace  bool                 // log every dispatched action with its timeline time
	Logger util.LoggerInterface // defaults to the global logger
}

// errCancelled is the internal signal that the cancellation flag was
// observed at a suspension point
var errCancelled = errors.New("cancellation requested")

// Run is a handle to one executing timeline
type Run struct {
	cancel     chan struct{}
	cancelOnce sync.Once
	done       chan struct{}

	mu      sync.Mutex
	state   State
	outcome Outcome
}

// Start begins executing the timeline and returns immediately with a run
// handle. The caller must only pass a timeline built from a program that
// compiled without errors; that is what keeps execution free of partial,
// inconsistent side effects.
func Start(tl *timeline.Timeline, backend Backend, opts Options) *Run {
	if opts.TickMs <= 0 {
		opts.TickMs = DefaultTickMs
	}
	if opts.Logger == nil {
		opts.Logger = util.GetLogger()
	}

	r := &Run{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
		state:  StateRunning,
	}
	go r.loop(tl, backend, opts)
	return r
}

// Cancel requests cancellation. The scheduler observes the request at its
// next suspension point, releases everything still held, and finishes
// with a Cancelled outcome. Safe to call more than once.
func (r *Run) Cancel() {
	r.cancelOnce.Do(func() {
		close(r.cancel)
	})
}

// Wait blocks until the run reaches a terminal state
func (r *Run) Wait() Outcome {
	<-r.done
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// State returns the current run state
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Run) finish(outcome Outcome) {
	r.mu.Lock()
	r.state = outcome.State
	r.outcome = outcome
	r.mu.Unlock()
	close(r.done)
}

func (r *Run) loop(tl *timeline.Timeline, backend Backend, opts Options) {
	x := &executor{
		backend: backend,
		state:   NewDeviceState(),
		cancel:  r.cancel,
		tickMs:  opts.TickMs,
		trace:   opts.Trace,
		logger:  opts.Logger,
		start:   time.Now(),
	}

	for _, event := range tl.Events() {
		due := x.start.Add(time.Duration(event.TimeMs) * time.Millisecond)
		if !x.waitUntil(due) {
			x.drain(script.ReleaseBoth)
			r.finish(Outcome{State: StateCancelled})
			return
		}

		if err := x.dispatch(event); err != nil {
			x.drain(script.ReleaseBoth)
			if errors.Is(err, errCancelled) {
				r.finish(Outcome{State: StateCancelled})
				return
			}
			r.finish(Outcome{State: StateFailed, Err: err})
			return
		}
	}

	r.finish(Outcome{State: StateCompleted})
}

// Backend is the injection capability the executor dispatches through.
// It matches injection.Backend; declared here so the runtime package has
// no dependency direction on a concrete backend.
type Backend interface {
	MoveAbsolute(x, y int) error
	MoveRelative(dx, dy int) error
	ButtonDown(button int) error
	ButtonUp(button int) error
	KeyDown(key script.Key) error
	KeyUp(key script.Key) error
	TypeCharacter(c rune) error
}

// executor holds the single-goroutine dispatch state for one run
type executor struct {
	backend Backend
	state   *DeviceState
	cancel  <-chan struct{}
	tickMs  int64
	trace   bool
	logger  util.LoggerInterface
	start   time.Time

	// last known pointer position, origin until the first absolute move
	posX, posY int
}

// waitUntil blocks until due or cancellation. A due time already in the
// past dispatches immediately; actions are never skipped to catch up,
// only executed late. Returns false when cancellation was observed.
func (x *executor) waitUntil(due time.Time) bool {
	select {
	case <-x.cancel:
		return false
	default:
	}

	d := time.Until(due)
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-x.cancel:
		return false
	}
}

func (x *executor) tracef(event timeline.Event, format string, args ...interface{}) {
	if !x.trace {
		return
	}
	x.logger.Infof("At %s: %s", util.FormatMillis(event.TimeMs), fmt.Sprintf(format, args...))
}

func (x *executor) dispatch(event timeline.Event) error {
	switch action := event.Action.(type) {
	case script.MouseMove:
		return x.dispatchMove(event, action)
	case script.MouseButton:
		return x.dispatchButton(event, action)
	case script.KeyAction:
		return x.dispatchKey(event, action)
	case script.Release:
		return x.dispatchRelease(event, action)
	case script.Text:
		return x.dispatchText(event, action)
	default:
		return fmt.Errorf("unhandled action type %T", event.Action)
	}
}

func (x *executor) dispatchMove(event timeline.Event, mv script.MouseMove) error {
	if mv.DurationMs > 0 {
		return x.interpolateMove(event, mv)
	}

	x.tracef(event, "move pointer %s %d,%d", mv.Mode, mv.X, mv.Y)
	return x.move(mv.Mode, mv.X, mv.Y)
}

// move issues a single pointer move and updates the tracked position
func (x *executor) move(mode script.MoveMode, a, b int) error {
	if mode == script.MoveAbsolute {
		if err := x.backend.MoveAbsolute(a, b); err != nil {
			return err
		}
		x.posX, x.posY = a, b
		return nil
	}
	if err := x.backend.MoveRelative(a, b); err != nil {
		return err
	}
	x.posX += a
	x.posY += b
	return nil
}

// interpolateMove subdivides a timed move into evenly spaced steps. Step
// positions are computed from the endpoints each time so the final step
// always lands exactly on the target, whatever the intermediate rounding
// did. The cancellation flag is polled at every tick.
func (x *executor) interpolateMove(event timeline.Event, mv script.MouseMove) error {
	steps := int((mv.DurationMs + x.tickMs - 1) / x.tickMs)
	if steps < 1 {
		steps = 1
	}

	x.tracef(event, "move pointer %s %d,%d over %dms in %d steps",
		mv.Mode, mv.X, mv.Y, mv.DurationMs, steps)

	due := x.start.Add(time.Duration(event.TimeMs) * time.Millisecond)
	startX, startY := x.posX, x.posY
	sentX, sentY := 0, 0

	for i := 1; i <= steps; i++ {
		stepDue := due.Add(time.Duration(mv.DurationMs*int64(i)/int64(steps)) * time.Millisecond)
		if !x.waitUntil(stepDue) {
			return errCancelled
		}

		if mv.Mode == script.MoveAbsolute {
			stepX := startX + (mv.X-startX)*i/steps
			stepY := startY + (mv.Y-startY)*i/steps
			if err := x.move(script.MoveAbsolute, stepX, stepY); err != nil {
				return err
			}
		} else {
			dx := mv.X*i/steps - sentX
			dy := mv.Y*i/steps - sentY
			if err := x.move(script.MoveRelative, dx, dy); err != nil {
				return err
			}
			sentX += dx
			sentY += dy
		}
	}
	return nil
}

func (x *executor) dispatchButton(event timeline.Event, mb script.MouseButton) error {
	if mb.Transition == script.Down {
		if !x.state.PressButton(mb.Button) {
			x.tracef(event, "button %d already held, skipping", mb.Button)
			return nil
		}
		x.tracef(event, "press button %d", mb.Button)
		if err := x.backend.ButtonDown(mb.Button); err != nil {
			x.state.ReleaseButton(mb.Button)
			return err
		}
		return nil
	}

	if !x.state.ReleaseButton(mb.Button) {
		x.tracef(event, "button %d not held, skipping", mb.Button)
		return nil
	}
	x.tracef(event, "release button %d", mb.Button)
	return x.backend.ButtonUp(mb.Button)
}

func (x *executor) dispatchKey(event timeline.Event, ka script.KeyAction) error {
	if ka.Transition == script.Down {
		if !x.state.PressKey(ka.Key) {
			x.tracef(event, "key %s already held, skipping", ka.Key)
			return nil
		}
		x.tracef(event, "press key %s", ka.Key)
		if err := x.backend.KeyDown(ka.Key); err != nil {
			x.state.ReleaseKey(ka.Key)
			return err
		}
		return nil
	}

	if !x.state.ReleaseKey(ka.Key) {
		x.tracef(event, "key %s not held, skipping", ka.Key)
		return nil
	}
	x.tracef(event, "release key %s", ka.Key)
	return x.backend.KeyUp(ka.Key)
}

// dispatchRelease drains held inputs matching the target. Nothing held
// means zero backend calls.
func (x *executor) dispatchRelease(event timeline.Event, rel script.Release) error {
	if rel.Target == script.ReleaseMouse || rel.Target == script.ReleaseBoth {
		for _, button := range x.state.HeldButtons() {
			x.tracef(event, "release button %d", button)
			x.state.ReleaseButton(button)
			if err := x.backend.ButtonUp(button); err != nil {
				return err
			}
		}
	}
	if rel.Target == script.ReleaseKeys || rel.Target == script.ReleaseBoth {
		for _, key := range x.state.HeldKeys() {
			x.tracef(event, "release key %s", key)
			x.state.ReleaseKey(key)
			if err := x.backend.KeyUp(key); err != nil {
				return err
			}
		}
	}
	return nil
}

// dispatchText types the content as balanced per-character pairs.
// Characters with a key-table entry go through the idempotent down/up
// path, so a later release observes nothing held from this action;
// anything else is delegated to the backend's character synthesis.
func (x *executor) dispatchText(event timeline.Event, txt script.Text) error {
	x.tracef(event, "type %q", txt.Content)
	for _, c := range txt.Content {
		key, ok := script.KeyForRune(c)
		if !ok {
			if err := x.backend.TypeCharacter(c); err != nil {
				return err
			}
			continue
		}

		if x.state.PressKey(key) {
			if err := x.backend.KeyDown(key); err != nil {
				x.state.ReleaseKey(key)
				return err
			}
		}
		if x.state.ReleaseKey(key) {
			if err := x.backend.KeyUp(key); err != nil {
				return err
			}
		}
	}
	return nil
}

// drain releases everything still held, best effort. Used at terminal
// transitions; injection errors here cannot change the outcome.
func (x *executor) drain(target script.ReleaseTarget) {
	if target == script.ReleaseMouse || target == script.ReleaseBoth {
		for _, button := range x.state.HeldButtons() {
			x.state.ReleaseButton(button)
			_ = x.backend.ButtonUp(button)
		}
	}
	if target == script.ReleaseKeys || target == script.ReleaseBoth {
		for _, key := range x.state.HeldKeys() {
			x.state.ReleaseKey(key)
			_ = x.backend.KeyUp(key)
		}
	}
}
