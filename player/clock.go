package player

import (
	"sync"
	"time"
)

// Handle identifies a timer armed on a Clock.
type Handle uint64

// Clock is the timing capability injected into an Engine. Arm starts a
// periodic timer, After schedules a one-shot callback, and Disarm cancels
// either kind. Callbacks may run on any goroutine.
type Clock interface {
	Arm(interval time.Duration, onTick func()) (Handle, error)
	After(d time.Duration, fn func()) Handle
	Disarm(h Handle)
	Now() time.Time
}

// SystemClock is a Clock backed by the runtime timers.
type SystemClock struct {
	stops map[Handle]func()
	mu    sync.Mutex
	next  Handle
}

// NewSystemClock returns a ready to use SystemClock.
func NewSystemClock() *SystemClock {
	return &SystemClock{
		stops: make(map[Handle]func()),
	}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

func (c *SystemClock) Arm(
	interval time.Duration,
	onTick func(),
) (Handle, error) {
	if interval <= 0 {
		return 0, errInvalidInterval.Fmt(interval)
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	c.mu.Lock()
	c.next++
	h := c.next
	c.stops[h] = func() {
		ticker.Stop()
		close(done)
	}
	c.mu.Unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}

				onTick()
			}
		}
	}()

	return h, nil
}

func (c *SystemClock) After(d time.Duration, fn func()) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	h := c.next

	t := time.AfterFunc(d, func() {
		// a timer disarmed after it fired but before it ran must not run
		if c.release(h) == nil {
			return
		}

		fn()
	})

	c.stops[h] = func() {
		t.Stop()
	}

	return h
}

func (c *SystemClock) Disarm(h Handle) {
	if stop := c.release(h); stop != nil {
		stop()
	}
}

// release forgets h and returns its stop func, or nil if h is not live.
func (c *SystemClock) release(h Handle) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	stop, ok := c.stops[h]
	if !ok {
		return nil
	}

	delete(c.stops, h)

	return stop
}

// Armed returns the number of live timers.
func (c *SystemClock) Armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.stops)
}
