package scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrNilScanner is returned when Build receives a nil Scanner.
	ErrNilScanner = errors.New("scan: scanner is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scan: invalid option supplied")

	// ErrStepLimit is returned when the trace would exceed MaxSteps.
	ErrStepLimit = errors.New("scan: step limit exceeded")
)

// NotFound is the index sentinel carried by terminal snapshots when a search
// has no answer.
const NotFound = -1

// Move describes one pointer movement reported by Advance.
// Kind must be trace.KindExpand or trace.KindContract.
type Move struct {
	Kind  trace.Kind
	Label string
}

// Scanner is the capability set Build drives. A Scanner serves one Build:
// its pointers are consumed by the scan, and an aborted Build leaves them
// wherever it stopped. Construct a new one to scan again.
type Scanner[S any] interface {
	// Begin sets the starting pointer configuration and labels it.
	Begin() string
	// Advance performs exactly one movement. ok is false once the scan is over
	// and no movement happened.
	Advance() (m Move, ok bool)
	// Improved reports, once, whether the last movement improved the best result.
	Improved() (label string, ok bool)
	// Finish finalizes the result and labels the terminal state.
	Finish() string
	// Capture returns a view of the working state; it may alias it.
	Capture() S
	// Clone returns a copy of s sharing no mutable memory with it.
	Clone(s S) S
}

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for Build.
type Options struct {
	// Ctx allows cancellation; checked once per movement.
	Ctx context.Context

	// MaxSteps, if positive, caps the trace length.
	MaxSteps int

	// OnStep, if non-nil, runs after each recorded step; an error aborts.
	OnStep func(index int, kind trace.Kind, label string) error

	err error
}

// DefaultOptions returns Options with a background context, no step cap and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps aborts with ErrStepLimit once n steps are recorded; n <= 0 is invalid.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep installs fn as a post-record hook.
func WithOnStep(fn func(index int, kind trace.Kind, label string) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
