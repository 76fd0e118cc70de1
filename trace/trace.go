package trace

import "fmt"

// NoopLabel labels the synthetic Step of a run that never entered its main loop.
const NoopLabel = "nothing to do"

// Step is one immutable snapshot of an algorithm run.
// Snapshot is a value copy owned by the Step; consumers must treat it as read-only.
type Step[S any] struct {
	Kind     Kind
	Depth    int
	Snapshot S
	Label    string
}

// String renders the step on one line, indented by depth.
func (s Step[S]) String() string {
	return fmt.Sprintf("%*s%-8s %s", 2*s.Depth, "", s.Kind, s.Label)
}

// Trace is the finite ordered sequence of Steps recorded for one input.
// A Trace holds at least one Step and is read-only after construction, so it
// is safe to share between any number of readers.
type Trace[S any] struct {
	family Family
	steps  []Step[S]
}

// Family reports which builder family produced t.
func (t *Trace[S]) Family() Family { return t.family }

// Len returns the number of steps; always ≥ 1.
func (t *Trace[S]) Len() int { return len(t.steps) }

// At returns the i-th step.
func (t *Trace[S]) At(i int) (Step[S], error) {
	if i < 0 || i >= len(t.steps) {
		var zero Step[S]

		return zero, fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfRange, i, len(t.steps)-1)
	}

	return t.steps[i], nil
}

// Last returns the final step.
func (t *Trace[S]) Last() Step[S] { return t.steps[len(t.steps)-1] }

// Steps returns a copy of the step slice. Snapshots are shared, not cloned.
func (t *Trace[S]) Steps() []Step[S] {
	out := make([]Step[S], len(t.steps))
	copy(out, t.steps)

	return out
}

// Count returns how many steps carry kind k.
func (t *Trace[S]) Count(k Kind) int {
	n := 0
	for i := range t.steps {
		if t.steps[i].Kind == k {
			n++
		}
	}

	return n
}

// Indices returns the positions of all steps of kind k, in order.
func (t *Trace[S]) Indices(k Kind) []int {
	var out []int
	for i := range t.steps {
		if t.steps[i].Kind == k {
			out = append(out, i)
		}
	}

	return out
}

// FromSteps builds a Trace from already-recorded steps, validating every kind
// against f. It is used when decoding a persisted trace.
func FromSteps[S any](f Family, steps []Step[S]) (*Trace[S], error) {
	if len(steps) == 0 {
		return nil, ErrEmptyTrace
	}
	for i, s := range steps {
		if s.Kind.Family() != f {
			return nil, fmt.Errorf("%w: step %d kind %q in %s trace", ErrKindViolation, i, s.Kind, f)
		}
		if s.Depth < 0 {
			return nil, fmt.Errorf("%w: step %d", ErrNegativeDepth, i)
		}
	}
	out := make([]Step[S], len(steps))
	copy(out, steps)

	return &Trace[S]{family: f, steps: out}, nil
}

// Recorder accumulates Steps for a single run and produces its Trace.
// Every snapshot is passed through the clone function before it is stored.
type Recorder[S any] struct {
	family   Family
	clone    func(S) S
	steps    []Step[S]
	finished bool
}

// NewRecorder returns a Recorder for family f. clone must return a value copy
// that shares no mutable memory with its argument; a nil clone is only
// correct for snapshot types without reference fields (slices, maps, pointers).
func NewRecorder[S any](f Family, clone func(S) S) *Recorder[S] {
	if clone == nil {
		clone = func(s S) S { return s }
	}

	return &Recorder[S]{family: f, clone: clone}
}

// Record copies snap and appends a Step. The returned Step is the stored one.
func (r *Recorder[S]) Record(kind Kind, depth int, snap S, label string) (Step[S], error) {
	if r.finished {
		return Step[S]{}, ErrFinished
	}
	if kind.Family() != r.family {
		return Step[S]{}, fmt.Errorf("%w: %q in %s trace", ErrKindViolation, kind, r.family)
	}
	if depth < 0 {
		return Step[S]{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	s := Step[S]{Kind: kind, Depth: depth, Snapshot: r.clone(snap), Label: label}
	r.steps = append(r.steps, s)

	return s, nil
}

// Len returns the number of recorded steps so far.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Finish seals the recorder and returns the Trace. When nothing was recorded a
// synthetic no-op Step holding noop is emitted so the Trace is never empty.
// Finish is idempotent.
func (r *Recorder[S]) Finish(noop S) *Trace[S] {
	if len(r.steps) == 0 {
		r.steps = append(r.steps, Step[S]{
			Kind:     noopKind(r.family),
			Snapshot: r.clone(noop),
			Label:    NoopLabel,
		})
	}
	r.finished = true

	return &Trace[S]{family: r.family, steps: r.steps}
}
