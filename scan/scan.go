package scan

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/trace"
)

// runner encapsulates state during one Build.
type runner[S any] struct {
	sc   Scanner[S]
	opts Options
	rec  *trace.Recorder[S]
}

// Build drives sc to completion and returns its trace. On cancellation,
// step-limit, kind or hook errors the partial trace is returned with the error.
// sc is consumed by the call.
func Build[S any](sc Scanner[S], opts ...Option) (*trace.Trace[S], error) {
	if sc == nil {
		return nil, ErrNilScanner
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner[S]{sc: sc, opts: o, rec: trace.NewRecorder(trace.Scan, sc.Clone)}
	err := r.run()

	return r.rec.Finish(sc.Capture()), err
}

func (r *runner[S]) run() error {
	// 1. Starting configuration
	if err := r.emit(trace.KindExpand, r.sc.Begin()); err != nil {
		return err
	}

	// 2. One step per movement, plus an update step per improvement
	for {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		m, ok := r.sc.Advance()
		if !ok {
			break
		}
		if m.Kind != trace.KindExpand && m.Kind != trace.KindContract {
			return fmt.Errorf("%w: movement kind %q", trace.ErrKindViolation, m.Kind)
		}
		if err := r.emit(m.Kind, m.Label); err != nil {
			return err
		}
		if label, improved := r.sc.Improved(); improved {
			if err := r.emit(trace.KindUpdate, label); err != nil {
				return err
			}
		}
	}

	// 3. Exactly one terminal step
	return r.emit(trace.KindTerminal, r.sc.Finish())
}

func (r *runner[S]) emit(kind trace.Kind, label string) error {
	if r.opts.MaxSteps > 0 && r.rec.Len() >= r.opts.MaxSteps {
		return fmt.Errorf("%w: %d", ErrStepLimit, r.opts.MaxSteps)
	}
	if _, err := r.rec.Record(kind, 0, r.sc.Capture(), label); err != nil {
		return err
	}
	if r.opts.OnStep != nil {
		if err := r.opts.OnStep(r.rec.Len()-1, kind, label); err != nil {
			return fmt.Errorf("scan: OnStep hook at step %d: %w", r.rec.Len()-1, err)
		}
	}

	return nil
}

// Result returns the snapshot of the terminal step, which carries the final answer.
func Result[S any](tr *trace.Trace[S]) S {
	return tr.Last().Snapshot
}
