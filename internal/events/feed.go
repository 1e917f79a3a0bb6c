// Package events provides a typed publish/subscribe feed
package events

import "sync"

// Feed fans a value out to callback and channel listeners. Listeners are
// invoked outside the feed's lock so they may unsubscribe or publish from
// within a callback.
type Feed[T any] struct {
	mu        sync.RWMutex
	callbacks map[uint64]func(T)
	channels  map[uint64]chan<- T
	last      *T
	nextID    uint64
	replay    bool
}

// NewFeed creates a Feed. When replay is true, a new listener immediately
// receives the most recently published value, if any.
func NewFeed[T any](replay bool) *Feed[T] {
	return &Feed[T]{
		callbacks: make(map[uint64]func(T)),
		channels:  make(map[uint64]chan<- T),
		replay:    replay,
	}
}

// Subscribe registers fn and returns a func that removes it. The returned
// func is safe to call more than once.
func (f *Feed[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		panic("events: nil callback")
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.callbacks[id] = fn
	last := f.lastValue()
	f.mu.Unlock()

	if last != nil {
		fn(*last)
	}

	return func() {
		f.mu.Lock()
		delete(f.callbacks, id)
		f.mu.Unlock()
	}
}

// Listen registers ch. Sends never block: a full channel misses the value.
func (f *Feed[T]) Listen(ch chan<- T) func() {
	if ch == nil {
		panic("events: nil channel")
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.channels[id] = ch
	last := f.lastValue()
	f.mu.Unlock()

	if last != nil {
		select {
		case ch <- *last:
		default:
		}
	}

	return func() {
		f.mu.Lock()
		delete(f.channels, id)
		f.mu.Unlock()
	}
}

// Publish delivers v to every listener.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()

	if f.replay {
		f.last = &v
	}

	callbacks := make([]func(T), 0, len(f.callbacks))
	for _, fn := range f.callbacks {
		callbacks = append(callbacks, fn)
	}

	channels := make([]chan<- T, 0, len(f.channels))
	for _, ch := range f.channels {
		channels = append(channels, ch)
	}

	f.mu.Unlock()

	for _, fn := range callbacks {
		fn(v)
	}

	for _, ch := range channels {
		select {
		case ch <- v:
		default:
		}
	}
}

// Len returns the number of registered listeners.
func (f *Feed[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.callbacks) + len(f.channels)
}

// lastValue returns a copy of the replay value. Callers hold mu.
func (f *Feed[T]) lastValue() *T {
	if !f.replay || f.last == nil {
		return nil
	}

	v := *f.last

	return &v
}
