package playback

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Op names a command accepted by Runner.
type Op int

// Runner commands.
const (
	OpPlay Op = iota + 1
	OpPause
	OpStepForward
	OpStepBackward
	OpSeek // uses Command.Index
	OpReset
	OpSpeed // uses Command.Speed
	OpLoad  // uses Command.Seq
)

var opNames = map[Op]string{
	OpPlay:         "play",
	OpPause:        "pause",
	OpStepForward:  "step-forward",
	OpStepBackward: "step-backward",
	OpSeek:         "seek",
	OpReset:        "reset",
	OpSpeed:        "speed",
	OpLoad:         "load",
}

// String returns the command name.
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}

	return "unknown"
}

// Command is a request delivered to a Runner.
type Command struct {
	Op    Op
	Index int
	Speed float64
	Seq   Sequence
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the Runner's logger. Nil is ignored.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOnChange registers fn to be called, on the Runner goroutine, after
// every state change and once when Run starts.
func WithOnChange(fn func(index int, running bool)) RunnerOption {
	return func(r *Runner) {
		r.onChange = fn
	}
}

// Runner owns a Controller and drives it from a timer. All access to the
// Controller happens on the goroutine executing Run.
type Runner struct {
	ctrl     *Controller
	cmds     <-chan Command
	log      *slog.Logger
	onChange func(index int, running bool)

	timer   *time.Timer
	fire    <-chan time.Time
	pending Ticket
}

// NewRunner returns a Runner over ctrl reading commands from cmds.
func NewRunner(ctrl *Controller, cmds <-chan Command, opts ...RunnerOption) *Runner {
	r := &Runner{
		ctrl: ctrl,
		cmds: cmds,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("component", "playback")

	return r
}

// Run processes commands and ticks until ctx is done or cmds is closed.
// It returns ctx.Err() in the first case and nil in the second.
func (r *Runner) Run(ctx context.Context) error {
	defer r.disarm()
	r.notify()
	r.arm()

	for {
		select {
		case <-ctx.Done():
			r.log.Debug("runner stopped", "reason", ctx.Err())
			return ctx.Err()

		case cmd, ok := <-r.cmds:
			if !ok {
				r.log.Debug("runner stopped", "reason", "commands closed")
				return nil
			}
			before := r.ctrl.Ticket()
			changed := r.apply(cmd)
			r.log.Debug("command", "op", cmd.Op, "changed", changed,
				"index", r.ctrl.Index(), "running", r.ctrl.Running())
			// Any transition invalidates the pending tick; a speed change
			// keeps the ticket but needs a new period.
			if r.ctrl.Ticket() != before || (cmd.Op == OpSpeed && changed) {
				r.disarm()
				r.arm()
			}
			if changed {
				r.notify()
			}

		case <-r.fire:
			r.timer, r.fire = nil, nil
			if r.ctrl.Tick(r.pending) {
				r.notify()
			} else {
				r.log.Debug("stale tick dropped", "ticket", r.pending)
			}
			r.arm()
		}
	}
}

func (r *Runner) apply(cmd Command) bool {
	switch cmd.Op {
	case OpPlay:
		return r.ctrl.Play()
	case OpPause:
		return r.ctrl.Pause()
	case OpStepForward:
		return r.ctrl.StepForward()
	case OpStepBackward:
		return r.ctrl.StepBackward()
	case OpSeek:
		return r.ctrl.Seek(cmd.Index)
	case OpReset:
		return r.ctrl.Reset()
	case OpSpeed:
		return r.ctrl.SetSpeed(cmd.Speed)
	case OpLoad:
		r.ctrl.Load(cmd.Seq)
		return true
	default:
		r.log.Warn("unknown command ignored", "op", int(cmd.Op))
		return false
	}
}

// arm schedules one tick under the current ticket if the controller is running.
func (r *Runner) arm() {
	if !r.ctrl.Running() || r.timer != nil {
		return
	}
	r.pending = r.ctrl.Ticket()
	r.timer = time.NewTimer(r.ctrl.Interval())
	r.fire = r.timer.C
}

func (r *Runner) disarm() {
	if r.timer == nil {
		return
	}
	r.timer.Stop()
	r.timer, r.fire = nil, nil
}

func (r *Runner) notify() {
	if r.onChange != nil {
		r.onChange(r.ctrl.Index(), r.ctrl.Running())
	}
}
