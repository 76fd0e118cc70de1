package playback

import (
	"math"
	"time"

	"github.com/katalvlaran/lvtrace/trace"
)

// DefaultInterval is the tick period at speed 1.
const DefaultInterval = 500 * time.Millisecond

// Sequence is anything with a length; *trace.Trace[S] satisfies it for every S.
type Sequence interface {
	Len() int
}

// Ticket identifies the controller state a tick was scheduled under.
type Ticket uint64

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the tick period at speed 1. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.base = d
		}
	}
}

// Controller is the playback state machine over a fixed-length sequence.
type Controller struct {
	n       int
	index   int
	running bool
	epoch   Ticket
	base    time.Duration
	speed   float64
}

// New returns a Controller in Idle@0 over seq.
func New(seq Sequence, opts ...Option) *Controller {
	c := &Controller{base: DefaultInterval, speed: 1}
	for _, opt := range opts {
		opt(c)
	}
	c.Load(seq)

	return c
}

// Load replaces the sequence and unconditionally resets to Idle@0.
// A nil or empty sequence is treated as length 1.
func (c *Controller) Load(seq Sequence) {
	n := 1
	if seq != nil && seq.Len() > 1 {
		n = seq.Len()
	}
	c.n = n
	c.index = 0
	c.running = false
	c.epoch++
}

// Len returns the length of the current sequence.
func (c *Controller) Len() int { return c.n }

// Index returns the current position, always in [0, Len-1].
func (c *Controller) Index() int { return c.index }

// Running reports whether playback is advancing on ticks.
func (c *Controller) Running() bool { return c.running }

// Ticket returns the ticket a tick scheduled now must carry.
func (c *Controller) Ticket() Ticket { return c.epoch }

// Seek moves to clamp(j) and pauses.
func (c *Controller) Seek(j int) bool {
	j = max(0, min(j, c.n-1))
	changed := j != c.index || c.running
	c.index = j
	c.running = false
	c.epoch++

	return changed
}

// StepForward advances one step while idle; no-op at the last index.
func (c *Controller) StepForward() bool {
	if c.running || c.index >= c.n-1 {
		return false
	}
	c.index++
	c.epoch++

	return true
}

// StepBackward retreats one step while idle; no-op at index 0.
func (c *Controller) StepBackward() bool {
	if c.running || c.index <= 0 {
		return false
	}
	c.index--
	c.epoch++

	return true
}

// Play starts playback; no-op when running or already at the last index.
func (c *Controller) Play() bool {
	if c.running || c.index >= c.n-1 {
		return false
	}
	c.running = true
	c.epoch++

	return true
}

// Pause stops playback at the current index.
func (c *Controller) Pause() bool {
	if !c.running {
		return false
	}
	c.running = false
	c.epoch++

	return true
}

// Reset moves to Idle@0.
func (c *Controller) Reset() bool {
	changed := c.index != 0 || c.running
	c.index = 0
	c.running = false
	c.epoch++

	return changed
}

// Tick advances a running controller by one step if t is the current ticket.
// Reaching the last index stops playback.
func (c *Controller) Tick(t Ticket) bool {
	if !c.running || t != c.epoch {
		return false
	}
	c.index = min(c.index+1, c.n-1)
	if c.index == c.n-1 {
		c.running = false
	}
	c.epoch++

	return true
}

// SetSpeed sets the playback speed multiplier; f must be positive and finite.
// A change of speed does not invalidate the pending tick.
func (c *Controller) SetSpeed(f float64) bool {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) || f == c.speed {
		return false
	}
	c.speed = f

	return true
}

// Speed returns the current speed multiplier.
func (c *Controller) Speed() float64 { return c.speed }

// Interval returns the tick period at the current speed, at least 1ms and
// at most the largest time.Duration.
func (c *Controller) Interval() time.Duration {
	q := float64(c.base) / c.speed
	if q >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return max(time.Duration(q), time.Millisecond)
}

// Current returns the step of tr the controller points at. tr must be the
// sequence last loaded into c.
func Current[S any](c *Controller, tr *trace.Trace[S]) trace.Step[S] {
	s, err := tr.At(c.index)
	if err != nil {
		return tr.Last()
	}

	return s
}
