package backtrack

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/trace"
)

// walker encapsulates state during one Build.
type walker[S any] struct {
	space Space[S]
	opts  Options
	rec   *trace.Recorder[S]
}

// Build runs the search described by space and returns its trace.
// On cancellation, step-limit or hook errors the partial trace recorded so far
// is returned together with the error. space is consumed by the call.
func Build[S any](space Space[S], opts ...Option) (*trace.Trace[S], error) {
	// 1. Validate input
	if space == nil {
		return nil, ErrNilSpace
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		space: space,
		opts:  o,
		rec:   trace.NewRecorder(trace.Backtracking, space.Clone),
	}

	// 3. Root step, then the search itself
	err := w.emit(trace.KindStart, 0, "start search")
	if err == nil {
		err = w.explore(0)
	}

	return w.rec.Finish(space.Capture()), err
}

// explore handles the subproblem at depth.
func (w *walker[S]) explore(depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Terminal leaf
	if w.space.Goal() {
		return w.emit(trace.KindAccept, depth, fmt.Sprintf("accept %v", w.space.Capture()))
	}

	// 3. Pruned leaf; runs before any branch is generated
	if w.space.Bound() {
		return w.emit(trace.KindReject, depth, fmt.Sprintf("reject %v", w.space.Capture()))
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return w.emit(trace.KindReject, depth, fmt.Sprintf("depth limit %d", w.opts.MaxDepth))
	}

	// 4. Branch in fixed order
	var err error
	for _, b := range w.space.Branches() {
		w.space.Extend(b)
		if err = w.emit(trace.KindDescend, depth+1, b.Label); err != nil {
			return err
		}
		if err = w.explore(depth + 1); err != nil {
			return err
		}
		w.space.Retract(b)
		if err = w.emit(trace.KindAscend, depth+1, "undo "+b.Label); err != nil {
			return err
		}
	}

	return nil
}

// emit records the current snapshot and runs the hook.
func (w *walker[S]) emit(kind trace.Kind, depth int, label string) error {
	if w.opts.MaxSteps > 0 && w.rec.Len() >= w.opts.MaxSteps {
		return fmt.Errorf("%w: %d", ErrStepLimit, w.opts.MaxSteps)
	}
	if _, err := w.rec.Record(kind, depth, w.space.Capture(), label); err != nil {
		return err
	}
	if w.opts.OnStep != nil {
		if err := w.opts.OnStep(w.rec.Len()-1, kind, depth, label); err != nil {
			return fmt.Errorf("backtrack: OnStep hook at step %d: %w", w.rec.Len()-1, err)
		}
	}

	return nil
}

// Solutions returns the snapshots of every accept step in trace order.
func Solutions[S any](tr *trace.Trace[S]) []S {
	var out []S
	for _, i := range tr.Indices(trace.KindAccept) {
		s, _ := tr.At(i)
		out = append(out, s.Snapshot)
	}

	return out
}
