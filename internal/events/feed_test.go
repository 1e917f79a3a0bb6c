package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedSubscribePublish(t *testing.T) {
	feed := NewFeed[string](false)

	var got []string

	unsubscribe := feed.Subscribe(func(v string) {
		got = append(got, v)
	})

	require.Equal(t, 1, feed.Len())

	feed.Publish("a")
	feed.Publish("b")

	unsubscribe()
	feed.Publish("c")

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 0, feed.Len())

	// unsubscribing twice is harmless
	unsubscribe()
	assert.Equal(t, 0, feed.Len())
}

func TestFeedListenNonBlocking(t *testing.T) {
	feed := NewFeed[int](false)

	ch := make(chan int, 1)
	unsubscribe := feed.Listen(ch)

	defer unsubscribe()

	feed.Publish(1)
	feed.Publish(2)

	require.Len(t, ch, 1)
	assert.Equal(t, 1, <-ch)

	feed.Publish(3)
	assert.Equal(t, 3, <-ch)
}

func TestFeedReplay(t *testing.T) {
	feed := NewFeed[int](true)

	var got []int

	feed.Subscribe(func(v int) { got = append(got, v) })
	assert.Empty(t, got, "nothing to replay before the first publish")

	feed.Publish(7)

	var late []int

	feed.Subscribe(func(v int) { late = append(late, v) })

	assert.Equal(t, []int{7}, got)
	assert.Equal(t, []int{7}, late)

	ch := make(chan int, 1)
	feed.Listen(ch)
	assert.Equal(t, 7, <-ch)
}

func TestFeedUnsubscribeDuringPublish(t *testing.T) {
	feed := NewFeed[string](false)

	var (
		got         []string
		unsubscribe func()
	)

	unsubscribe = feed.Subscribe(func(v string) {
		got = append(got, v)
		if v == "stop" {
			unsubscribe()
		}
	})

	feed.Publish("go")
	feed.Publish("stop")
	feed.Publish("ignored")

	assert.Equal(t, []string{"go", "stop"}, got)
}

func TestFeedConcurrentPublish(t *testing.T) {
	feed := NewFeed[int](false)

	var (
		mu    sync.Mutex
		count int
		wg    sync.WaitGroup
	)

	for range 5 {
		feed.Subscribe(func(int) {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}

	for i := range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			feed.Publish(i)
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, count)
}

func TestFeedNilListenerPanics(t *testing.T) {
	feed := NewFeed[string](false)

	assert.Panics(t, func() { feed.Subscribe(nil) })
	assert.Panics(t, func() { feed.Listen(nil) })
}
