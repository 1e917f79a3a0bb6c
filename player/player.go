// Package player drives a guided workout session: a linear pass through a
// workout's exercises with a countdown per exercise.
package player

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pacefit/pace/internal/events"
	"github.com/pacefit/pace/internal/models"
)

const (
	defaultTransitionDelay = time.Second
	defaultTickInterval    = time.Second
	defaultStallFactor     = 3
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the timing source. The default is a SystemClock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithTransitionDelay sets the pause between finishing an exercise and the
// next one becoming ready. Zero advances immediately.
func WithTransitionDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = max(d, 0)
	}
}

// WithTickInterval sets the period of the countdown timer. Each firing
// removes one second from the countdown.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithStallFactor sets how many intervals may pass between two firings of
// the countdown timer before the gap is treated as a stall.
func WithStallFactor(n int) Option {
	return func(e *Engine) {
		if n > 1 {
			e.stallFactor = n
		}
	}
}

// WithLogger sets the logger for session diagnostics. The default is
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns the state of one session. All methods are safe for concurrent
// use. Intents and timer callbacks are serialized. Events, hooks and the
// final Result are delivered after the engine's lock is released, in the
// order the state changes happened, so listeners may call back into the
// engine. An intent made from a listener is delivered once that listener
// returns.
type Engine struct {
	startedAt time.Time
	lastTick  time.Time
	clock     Clock
	workout   *models.Workout
	logger    *slog.Logger
	feed      *events.Feed[Event]
	done      chan Result
	hooks     Hooks
	completed []bool
	skipped   []bool

	index       int
	remaining   int
	stallFactor int
	delay       time.Duration
	interval    time.Duration

	tick       Handle
	watchdog   Handle
	tickGen    uint64
	pending    Handle
	pendingGen uint64

	// queue holds effects waiting for delivery. Only the goroutine that
	// set draining delivers them.
	queue []effects

	mu                sync.Mutex
	phase             Phase
	ticking           bool
	rearmed           bool
	transitionPending bool
	exited            bool
	draining          bool
}

// effects collects what must happen once the lock is released.
type effects struct {
	result  *Result
	summary *Summary
	events  []Event
	exit    bool
}

// New validates w and returns an engine ready to start its first exercise.
// The workout is copied; later changes to w do not affect the session.
func New(w *models.Workout, hooks Hooks, opts ...Option) (*Engine, error) {
	if w == nil {
		return nil, ErrInvalidWorkout.Wrap(errNilWorkout)
	}

	if err := w.Validate(); err != nil {
		return nil, ErrInvalidWorkout.Wrap(err)
	}

	cp := *w
	cp.Exercises = make([]models.Exercise, len(w.Exercises))
	copy(cp.Exercises, w.Exercises)

	e := &Engine{
		workout:     &cp,
		hooks:       hooks,
		feed:        events.NewFeed[Event](false),
		done:        make(chan Result, 1),
		completed:   make([]bool, len(cp.Exercises)),
		skipped:     make([]bool, len(cp.Exercises)),
		delay:       defaultTransitionDelay,
		interval:    defaultTickInterval,
		stallFactor: defaultStallFactor,
		phase:       Idle,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.clock == nil {
		e.clock = NewSystemClock()
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	e.logger = e.logger.With(
		slog.String("workout_id", cp.ID),
	)

	return e, nil
}

// Workout returns the session's copy of the workout.
func (e *Engine) Workout() *models.Workout {
	return e.workout
}

// Start begins the current exercise from its nominal duration. From Paused
// it continues the countdown like Resume.
func (e *Engine) Start() error {
	return e.do(func(fx *effects) error {
		if e.terminal() || (e.phase != Idle && e.phase != Paused) {
			return e.invalid("start")
		}

		return e.run(fx)
	})
}

// Resume continues a paused countdown from where it stopped.
func (e *Engine) Resume() error {
	return e.do(func(fx *effects) error {
		if e.terminal() || e.phase != Paused {
			return e.invalid("resume")
		}

		return e.run(fx)
	})
}

// Pause stops the countdown. No tick is applied after Pause returns.
func (e *Engine) Pause() error {
	return e.do(func(fx *effects) error {
		if e.terminal() || e.phase != Running {
			return e.invalid("pause")
		}

		e.releaseTick()
		e.phase = Paused
		e.emit(fx, EventPhase)

		return nil
	})
}

// Skip finishes the current exercise regardless of the time left. The
// exercise is recorded as completed and skipped. Callers confirm the skip
// with the user before calling.
func (e *Engine) Skip() error {
	return e.do(func(fx *effects) error {
		if !e.active() {
			return e.invalid("skip")
		}

		e.completeExercise(fx, true)

		return nil
	})
}

// CompleteCurrent finishes the current exercise early, exactly as if the
// countdown had reached zero.
func (e *Engine) CompleteCurrent() error {
	return e.do(func(fx *effects) error {
		if !e.active() {
			return e.invalid("complete")
		}

		e.completeExercise(fx, false)

		return nil
	})
}

// Exit aborts the session. The countdown and any pending transition are
// cancelled and Hooks.OnExit runs once. The engine accepts no intents
// afterwards.
func (e *Engine) Exit() error {
	return e.do(func(fx *effects) error {
		if e.terminal() {
			return e.invalid("exit")
		}

		e.abort(fx, nil)

		return nil
	})
}

// Tick applies one countdown step. It is what the clock calls once per
// interval and may be called directly to drive the engine by hand. A tick
// outside Running is a timer fault: the timer is released and the state is
// left as it was.
func (e *Engine) Tick() error {
	return e.do(func(fx *effects) error {
		if e.terminal() {
			return e.invalid("tick")
		}

		if e.phase != Running {
			e.releaseTick()

			err := ErrTimerFault.Fmt("tick while " + e.phase.String())

			e.logger.Warn(
				"rejected tick",
				slog.String("phase", e.phase.String()),
			)

			return err
		}

		e.countdown(fx, 1)

		return nil
	})
}

// State returns a copy of the current session state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot()
}

// Progress returns the renderer's view of the current state.
func (e *Engine) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Project(e.snapshot(), e.workout)
}

// Subscribe registers fn for every state change and returns a func that
// removes it.
func (e *Engine) Subscribe(fn func(Event)) func() {
	return e.feed.Subscribe(fn)
}

// Listen forwards every state change to ch without blocking. A full channel
// misses the event.
func (e *Engine) Listen(ch chan<- Event) func() {
	return e.feed.Listen(ch)
}

// Done delivers exactly one Result when the session completes or exits and
// is closed afterwards.
func (e *Engine) Done() <-chan Result {
	return e.done
}

func (e *Engine) do(fn func(fx *effects) error) error {
	var fx effects

	e.mu.Lock()
	err := fn(&fx)
	e.unlock(&fx)

	return err
}

// unlock releases e.mu and delivers fx after every effect queued before it.
// When another goroutine is already delivering, fx is left to it.
func (e *Engine) unlock(fx *effects) {
	if fx.empty() {
		e.mu.Unlock()
		return
	}

	e.queue = append(e.queue, *fx)

	if e.draining {
		e.mu.Unlock()
		return
	}

	e.draining = true

	for {
		next := e.queue[0]
		e.queue[0] = effects{}
		e.queue = e.queue[1:]

		e.mu.Unlock()

		e.dispatch(&next)

		e.mu.Lock()

		if len(e.queue) == 0 {
			e.draining = false
			e.mu.Unlock()

			return
		}
	}
}

func (fx *effects) empty() bool {
	return len(fx.events) == 0 && fx.summary == nil && !fx.exit &&
		fx.result == nil
}

func (e *Engine) dispatch(fx *effects) {
	for i := range fx.events {
		e.feed.Publish(fx.events[i])
	}

	if fx.summary != nil && e.hooks.OnComplete != nil {
		e.hooks.OnComplete(*fx.summary)
	}

	if fx.exit && e.hooks.OnExit != nil {
		e.hooks.OnExit()
	}

	if fx.result != nil {
		e.done <- *fx.result
		close(e.done)
	}
}

// The following helpers expect e.mu to be held.

func (e *Engine) terminal() bool {
	return e.exited || e.phase == Complete
}

func (e *Engine) active() bool {
	return !e.terminal() && (e.phase == Running || e.phase == Paused)
}

func (e *Engine) invalid(op string) error {
	state := e.phase.String()
	if e.exited {
		state = "exited"
	}

	return ErrInvalidTransition.Fmt(op, state)
}

func (e *Engine) snapshot() State {
	s := State{
		StartedAt:        e.startedAt,
		ExerciseIndex:    e.index,
		RemainingSeconds: e.remaining,
		Phase:            e.phase,
		Exited:           e.exited,
	}

	for i := range e.completed {
		if e.completed[i] {
			s.Completed = append(s.Completed, i)
		}

		if e.skipped[i] {
			s.Skipped = append(s.Skipped, i)
		}
	}

	return s
}

func (e *Engine) emit(fx *effects, t EventType) {
	fx.events = append(fx.events, Event{
		Type:     t,
		Progress: Project(e.snapshot(), e.workout),
	})
}

// run moves an Idle or Paused session to Running.
func (e *Engine) run(fx *effects) error {
	now := e.clock.Now()

	if e.phase == Idle {
		e.remaining = e.workout.Exercises[e.index].Duration
	}

	if e.startedAt.IsZero() {
		e.startedAt = now
	}

	e.rearmed = false

	if err := e.acquireTick(); err != nil {
		e.abort(fx, err)
		return err
	}

	e.lastTick = now
	e.phase = Running

	e.logger.Debug(
		"exercise running",
		slog.Int("index", e.index),
		slog.Int("remaining", e.remaining),
	)

	e.emit(fx, EventPhase)

	return nil
}

// countdown removes n seconds from the current exercise.
func (e *Engine) countdown(fx *effects, n int) {
	e.remaining -= n
	if e.remaining > 0 {
		e.emit(fx, EventTick)
		return
	}

	e.remaining = 0
	e.completeExercise(fx, false)
}

func (e *Engine) completeExercise(fx *effects, skipped bool) {
	e.releaseTick()
	e.cancelTransition()

	e.completed[e.index] = true
	if skipped {
		e.skipped[e.index] = true
	}

	e.logger.Debug(
		"exercise finished",
		slog.Int("index", e.index),
		slog.Bool("skipped", skipped),
	)

	if e.index == len(e.workout.Exercises)-1 {
		e.phase = Complete

		s := e.buildSummary(e.clock.Now())
		fx.summary = &s
		fx.result = &Result{Summary: &s}

		e.logger.Info(
			"session complete",
			slog.Int("completed", s.CompletedCount),
			slog.Int("skipped", s.SkippedCount),
			slog.Duration("duration", s.TotalDuration),
		)

		e.emit(fx, EventPhase)

		return
	}

	if e.delay == 0 {
		e.advance()
		e.emit(fx, EventPhase)

		return
	}

	e.phase = Transitioning
	e.emit(fx, EventPhase)

	e.pendingGen++
	gen := e.pendingGen
	e.transitionPending = true
	e.pending = e.clock.After(e.delay, func() {
		e.finishTransition(gen)
	})
}

func (e *Engine) advance() {
	e.index++
	e.remaining = 0
	e.phase = Idle
}

func (e *Engine) finishTransition(gen uint64) {
	var fx effects

	e.mu.Lock()

	if !e.transitionPending || gen != e.pendingGen || e.terminal() {
		e.mu.Unlock()
		return
	}

	e.transitionPending = false
	e.advance()
	e.emit(&fx, EventPhase)

	e.unlock(&fx)
}

// clockTick is the callback armed on the clock. gen identifies the timer
// that fired so a callback racing with its own release is dropped.
func (e *Engine) clockTick(gen uint64) {
	var fx effects

	e.mu.Lock()

	if !e.ticking || gen != e.tickGen {
		e.mu.Unlock()
		e.logger.Debug("dropped stale tick", slog.Uint64("gen", gen))

		return
	}

	if e.phase != Running {
		err := ErrTimerFault.Fmt("tick while " + e.phase.String())
		e.abort(&fx, err)
		e.unlock(&fx)

		return
	}

	now := e.clock.Now()
	steps := 1

	if gap := now.Sub(e.lastTick); gap > e.stallWindow() {
		steps = int(gap / e.interval)

		e.logger.Warn(
			"countdown stalled",
			slog.Duration("gap", gap),
			slog.Int("steps", steps),
		)
	}

	e.lastTick = now
	e.rearmed = false
	e.countdown(&fx, steps)

	switch {
	case e.ticking && steps > 1:
		e.releaseTick()

		if err := e.acquireTick(); err != nil {
			e.abort(&fx, err)
		}
	case e.ticking:
		e.clock.Disarm(e.watchdog)
		e.armWatchdog()
	}

	e.unlock(&fx)
}

// watchdogFired runs when the countdown timer has been silent for a whole
// stall window. The timer is re-armed once; a second silent window ends the
// session with a timer fault.
func (e *Engine) watchdogFired(gen uint64) {
	var fx effects

	e.mu.Lock()

	if !e.ticking || gen != e.tickGen || e.phase != Running {
		e.mu.Unlock()
		return
	}

	if e.rearmed {
		e.abort(&fx, ErrTimerFault.Fmt("countdown timer stopped firing"))
		e.unlock(&fx)

		return
	}

	e.logger.Warn(
		"countdown timer silent, re-arming",
		slog.Duration("window", e.stallWindow()),
	)

	e.rearmed = true
	e.releaseTick()

	if err := e.acquireTick(); err != nil {
		e.abort(&fx, err)
	}

	e.unlock(&fx)
}

func (e *Engine) acquireTick() error {
	if e.ticking {
		return ErrTimerFault.Fmt("countdown timer already armed")
	}

	e.tickGen++
	gen := e.tickGen

	h, err := e.clock.Arm(e.interval, func() {
		e.clockTick(gen)
	})
	if err != nil {
		return ErrTimerFault.Fmt("arm countdown timer").Wrap(err)
	}

	e.tick = h
	e.ticking = true
	e.armWatchdog()

	return nil
}

func (e *Engine) armWatchdog() {
	gen := e.tickGen

	e.watchdog = e.clock.After(e.stallWindow(), func() {
		e.watchdogFired(gen)
	})
}

// stallWindow is the longest gap between two firings of a healthy
// countdown timer.
func (e *Engine) stallWindow() time.Duration {
	return time.Duration(e.stallFactor) * e.interval
}

func (e *Engine) releaseTick() {
	if !e.ticking {
		return
	}

	e.clock.Disarm(e.tick)
	e.clock.Disarm(e.watchdog)
	e.ticking = false
	e.tickGen++
}

func (e *Engine) cancelTransition() {
	if !e.transitionPending {
		return
	}

	e.clock.Disarm(e.pending)
	e.transitionPending = false
	e.pendingGen++
}

// abort ends the session with exit semantics. cause is nil for a user exit.
func (e *Engine) abort(fx *effects, cause error) {
	e.releaseTick()
	e.cancelTransition()
	e.exited = true

	if cause != nil {
		e.logger.Error("session aborted", slog.Any("error", cause))
	} else {
		e.logger.Info("session exited", slog.Int("index", e.index))
	}

	e.emit(fx, EventExit)
	fx.exit = true
	fx.result = &Result{Exited: true, Err: cause}
}
