package player

import (
	"sync"
	"time"
)

type manualTimer struct {
	due      time.Time
	fn       func()
	interval time.Duration
	handle   Handle
}

// ManualClock is a deterministic Clock whose time only moves when Advance is
// called. It is meant for tests and simulations.
type ManualClock struct {
	now     time.Time
	timers  map[Handle]*manualTimer
	armErr  error
	mu      sync.Mutex
	next    Handle
	armCall int
}

// NewManualClock returns a ManualClock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{
		now:    start,
		timers: make(map[Handle]*manualTimer),
	}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *ManualClock) Arm(
	interval time.Duration,
	onTick func(),
) (Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armCall++

	if c.armErr != nil {
		err := c.armErr
		c.armErr = nil

		return 0, err
	}

	if interval <= 0 {
		return 0, errInvalidInterval.Fmt(interval)
	}

	return c.add(interval, interval, onTick), nil
}

func (c *ManualClock) After(d time.Duration, fn func()) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(d, 0, fn)
}

func (c *ManualClock) Disarm(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.timers, h)
}

// FailNextArm makes the next call to Arm return err.
func (c *ManualClock) FailNextArm(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armErr = err
}

// Armed returns the number of live timers.
func (c *ManualClock) Armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

// ArmCalls returns how many times Arm has been called.
func (c *ManualClock) ArmCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.armCall
}

// Set moves the clock to t without firing any timer, simulating a process
// that was suspended. Timers that fell due in the meantime are collapsed into
// a single firing at t, the way a runtime ticker behaves after a suspend.
// Call Advance to deliver them.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, timer := range c.timers {
		if timer.due.Before(t) {
			timer.due = t
		}
	}

	c.now = t
}

// Advance moves the clock forward by d, firing every timer that falls due
// in order. Callbacks run on the calling goroutine without the clock's lock
// held.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()

		t := c.earliest(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()

			return
		}

		c.now = t.due

		if t.interval > 0 {
			t.due = t.due.Add(t.interval)
		} else {
			delete(c.timers, t.handle)
		}

		fn := t.fn

		c.mu.Unlock()

		fn()
	}
}

// earliest returns the next timer due at or before target. Callers hold mu.
func (c *ManualClock) earliest(target time.Time) *manualTimer {
	var next *manualTimer

	for _, t := range c.timers {
		if t.due.After(target) {
			continue
		}

		if next == nil ||
			t.due.Before(next.due) ||
			(t.due.Equal(next.due) && t.handle < next.handle) {
			next = t
		}
	}

	return next
}

// add registers a timer. Callers hold mu.
func (c *ManualClock) add(
	d, interval time.Duration,
	fn func(),
) Handle {
	c.next++

	c.timers[c.next] = &manualTimer{
		due:      c.now.Add(d),
		fn:       fn,
		interval: interval,
		handle:   c.next,
	}

	return c.next
}
