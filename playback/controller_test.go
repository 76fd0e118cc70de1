package playback_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/backtrack"
	"github.com/katalvlaran/lvtrace/playback"
)

type seq int

func (s seq) Len() int { return int(s) }

func TestController_Initial(t *testing.T) {
	c := playback.New(seq(5))
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Running())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, playback.DefaultInterval, c.Interval())
}

func TestController_SeekClamps(t *testing.T) {
	c := playback.New(seq(5))

	assert.False(t, c.Seek(-5), "already at 0")
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.Seek(5+5))
	assert.Equal(t, 4, c.Index())

	assert.True(t, c.Seek(2))
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.Running())
}

func TestController_SeekPausesPlayback(t *testing.T) {
	c := playback.New(seq(5))
	require.True(t, c.Play())
	assert.True(t, c.Seek(0), "pausing counts as a change")
	assert.False(t, c.Running())
}

func TestController_StepBounds(t *testing.T) {
	c := playback.New(seq(3))

	assert.False(t, c.StepBackward())
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.StepForward())
	assert.True(t, c.StepForward())
	assert.False(t, c.StepForward())
	assert.Equal(t, 2, c.Index())

	assert.True(t, c.StepBackward())
	assert.Equal(t, 1, c.Index())
}

func TestController_StepIgnoredWhileRunning(t *testing.T) {
	c := playback.New(seq(4))
	require.True(t, c.Play())
	ticket := c.Ticket()

	assert.False(t, c.StepForward())
	assert.False(t, c.StepBackward())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, ticket, c.Ticket(), "no-ops keep the pending tick valid")
}

func TestController_AutoStop(t *testing.T) {
	const n = 6
	c := playback.New(seq(n))
	c.Seek(n - 2)
	require.True(t, c.Play())

	assert.True(t, c.Tick(c.Ticket()))
	assert.Equal(t, n-1, c.Index())
	assert.False(t, c.Running())
}

func TestController_PlayToEnd(t *testing.T) {
	c := playback.New(seq(4))
	require.True(t, c.Play())

	ticks := 0
	for c.Running() {
		require.True(t, c.Tick(c.Ticket()))
		ticks++
	}
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 3, c.Index())
}

func TestController_PlayAtLastIndexIsNoop(t *testing.T) {
	c := playback.New(seq(3))
	c.Seek(2)
	assert.False(t, c.Play())
	assert.False(t, c.Running())

	single := playback.New(seq(1))
	assert.False(t, single.Play())
}

func TestController_StaleTickAfterPause(t *testing.T) {
	c := playback.New(seq(10))
	require.True(t, c.Play())
	stale := c.Ticket()

	require.True(t, c.Pause())
	assert.False(t, c.Tick(stale))
	assert.Equal(t, 0, c.Index())

	// Resuming issues a fresh ticket; the old one stays dead.
	require.True(t, c.Play())
	assert.False(t, c.Tick(stale))
	assert.Equal(t, 0, c.Index())
}

func TestController_StaleTickAfterSeek(t *testing.T) {
	c := playback.New(seq(10))
	require.True(t, c.Play())
	stale := c.Ticket()

	c.Seek(4)
	require.True(t, c.Play())
	assert.False(t, c.Tick(stale))
	assert.Equal(t, 4, c.Index())
}

func TestController_DuplicateTickIgnored(t *testing.T) {
	c := playback.New(seq(10))
	require.True(t, c.Play())
	ticket := c.Ticket()

	assert.True(t, c.Tick(ticket))
	assert.False(t, c.Tick(ticket))
	assert.Equal(t, 1, c.Index())
	assert.True(t, c.Running())
}

func TestController_TickWhenIdle(t *testing.T) {
	c := playback.New(seq(10))
	assert.False(t, c.Tick(c.Ticket()))
	assert.Equal(t, 0, c.Index())
}

func TestController_Reset(t *testing.T) {
	c := playback.New(seq(5))
	assert.False(t, c.Reset())

	c.Seek(3)
	require.True(t, c.Play())
	assert.True(t, c.Reset())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Running())
}

func TestController_LoadResets(t *testing.T) {
	c := playback.New(seq(5))
	c.Seek(3)
	require.True(t, c.Play())
	stale := c.Ticket()

	c.Load(seq(8))
	assert.Equal(t, 8, c.Len())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Running())
	assert.False(t, c.Tick(stale))
}

func TestController_LoadEmptyCoerced(t *testing.T) {
	c := playback.New(seq(0))
	assert.Equal(t, 1, c.Len())

	c.Load(nil)
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Seek(7))
	assert.Equal(t, 0, c.Index())
}

func TestController_Speed(t *testing.T) {
	c := playback.New(seq(5), playback.WithInterval(time.Second))
	assert.Equal(t, time.Second, c.Interval())

	assert.True(t, c.SetSpeed(4))
	assert.Equal(t, 250*time.Millisecond, c.Interval())
	assert.Equal(t, 4.0, c.Speed())

	assert.False(t, c.SetSpeed(0))
	assert.False(t, c.SetSpeed(-2))
	assert.False(t, c.SetSpeed(4))
	assert.Equal(t, 250*time.Millisecond, c.Interval())
}

func TestController_SlowSpeedSaturates(t *testing.T) {
	c := playback.New(seq(5), playback.WithInterval(time.Second))

	require.True(t, c.SetSpeed(1e-15))
	assert.Equal(t, time.Duration(math.MaxInt64), c.Interval())

	// slower never plays faster
	require.True(t, c.SetSpeed(1e-3))
	slow := c.Interval()
	assert.Equal(t, 1000*time.Second, slow)
	require.True(t, c.SetSpeed(1e-9))
	assert.GreaterOrEqual(t, c.Interval(), slow)
}

func TestController_SpeedKeepsTicket(t *testing.T) {
	c := playback.New(seq(5))
	require.True(t, c.Play())
	ticket := c.Ticket()
	require.True(t, c.SetSpeed(2))
	assert.True(t, c.Tick(ticket))
}

func TestController_WithIntervalIgnoresNonPositive(t *testing.T) {
	c := playback.New(seq(2), playback.WithInterval(-time.Second))
	assert.Equal(t, playback.DefaultInterval, c.Interval())
}

func TestCurrent(t *testing.T) {
	tr, err := backtrack.Build(backtrack.CombinationSum([]int{2, 3, 6, 7}, 7))
	require.NoError(t, err)

	c := playback.New(tr)
	assert.Equal(t, tr.Len(), c.Len())

	c.Seek(tr.Len())
	last := playback.Current(c, tr)
	assert.Equal(t, tr.Last(), last)

	c.Reset()
	first := playback.Current(c, tr)
	assert.Equal(t, "start search", first.Label)
}
