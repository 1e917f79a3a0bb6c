package player

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClockOrdering(t *testing.T) {
	clk := NewManualClock(epoch)

	var got []string

	clk.After(3*time.Second, func() { got = append(got, "after3") })

	h, err := clk.Arm(time.Second, func() { got = append(got, "tick") })
	require.NoError(t, err)

	clk.After(2*time.Second, func() { got = append(got, "after2") })

	clk.Advance(3 * time.Second)

	assert.Equal(t, []string{"tick", "tick", "after2", "after3", "tick"}, got)
	assert.Equal(t, epoch.Add(3*time.Second), clk.Now())
	assert.Equal(t, 1, clk.Armed())

	clk.Disarm(h)
	clk.Advance(time.Minute)

	assert.Len(t, got, 5)
	assert.Equal(t, 0, clk.Armed())
}

func TestManualClockDisarmFromCallback(t *testing.T) {
	clk := NewManualClock(epoch)

	var (
		fired int
		h     Handle
	)

	h, _ = clk.Arm(time.Second, func() {
		fired++
		if fired == 2 {
			clk.Disarm(h)
		}
	})

	clk.Advance(10 * time.Second)

	assert.Equal(t, 2, fired)
}

func TestManualClockFailNextArm(t *testing.T) {
	clk := NewManualClock(epoch)
	clk.FailNextArm(assert.AnError)

	_, err := clk.Arm(time.Second, func() {})
	require.ErrorIs(t, err, assert.AnError)

	_, err = clk.Arm(time.Second, func() {})
	require.NoError(t, err)

	_, err = clk.Arm(0, func() {})
	require.Error(t, err)

	assert.Equal(t, 3, clk.ArmCalls())
}

func TestSystemClockArm(t *testing.T) {
	clk := NewSystemClock()

	_, err := clk.Arm(0, func() {})
	require.Error(t, err)

	var n atomic.Int32

	h, err := clk.Arm(time.Millisecond, func() { n.Add(1) })
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return n.Load() >= 3
	}, time.Second, time.Millisecond)

	clk.Disarm(h)
	assert.Equal(t, 0, clk.Armed())

	stopped := n.Load()

	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, n.Load(), stopped+1, "a disarmed timer stops firing")
}

func TestSystemClockAfter(t *testing.T) {
	clk := NewSystemClock()

	var fired, cancelled atomic.Bool

	clk.After(time.Millisecond, func() { fired.Store(true) })
	h := clk.After(50*time.Millisecond, func() { cancelled.Store(true) })
	clk.Disarm(h)

	require.Eventually(t, fired.Load, time.Second, time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.False(t, cancelled.Load())
	assert.Equal(t, 0, clk.Armed())
}
