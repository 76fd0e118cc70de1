package backtrack

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrNilSpace is returned when Build receives a nil Space.
	ErrNilSpace = errors.New("backtrack: space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("backtrack: invalid option supplied")

	// ErrStepLimit is returned when the trace would exceed MaxSteps.
	ErrStepLimit = errors.New("backtrack: step limit exceeded")
)

// Branch identifies one candidate extension of the partial solution.
// Index is problem-defined (usually the candidate's array position); Label is
// used verbatim in the descend/ascend step labels.
type Branch struct {
	Index int
	Label string
}

// Space is the capability set Build drives. Implementations own a mutable
// working state; Build never reads it except through Capture. A Space serves
// one Build: an aborted Build leaves it mid-search, so construct a new one
// to search again.
type Space[S any] interface {
	// Goal reports whether the current partial solution is complete.
	Goal() bool
	// Bound reports whether a local bound is violated (prune here).
	Bound() bool
	// Branches lists the candidate extensions in a fixed, deterministic order.
	Branches() []Branch
	// Extend applies b to the working state.
	Extend(b Branch)
	// Retract undoes the matching Extend.
	Retract(b Branch)
	// Capture returns a view of the working state; it may alias it.
	Capture() S
	// Clone returns a copy of s sharing no mutable memory with it.
	Clone(s S) S
}

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for Build.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, rejects every subproblem at that depth.
	// Default is -1 (no limit).
	MaxDepth int

	// MaxSteps, if positive, caps the trace length. Default 0 (no cap).
	MaxSteps int

	// OnStep, if non-nil, is invoked after each step is recorded with its
	// index. Returning an error aborts the build.
	OnStep func(index int, kind trace.Kind, depth int, label string) error

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no step cap and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxSteps: 0,
		OnStep:   nil,
	}
}

// WithContext sets the context checked at every subproblem.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits recursion: subproblems at depth d are rejected.
// d == 0 rejects the root; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithMaxSteps aborts the build with ErrStepLimit once n steps are recorded.
// n <= 0 is an ErrOptionViolation.
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
func WithOnStep(fn func(index int, kind trace.Kind, depth int, label string) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
