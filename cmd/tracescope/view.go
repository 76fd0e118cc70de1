package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtrace/backtrack"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/katalvlaran/lvtrace/traceio"
)

// line is one step rendered for display.
type line struct {
	Kind     trace.Kind
	Depth    int
	Label    string
	Snapshot string
}

// view erases the snapshot type of a trace so every problem can share the
// printers, the encoders and the player.
type view interface {
	Len() int
	Family() trace.Family
	Line(i int) line
	Summary() string
	Encode(w io.Writer, format string) error
}

type traceView[S any] struct {
	tr *trace.Trace[S]
}

func newView[S any](tr *trace.Trace[S]) view { return traceView[S]{tr: tr} }

func (v traceView[S]) Len() int             { return v.tr.Len() }
func (v traceView[S]) Family() trace.Family { return v.tr.Family() }

func (v traceView[S]) Line(i int) line {
	s, err := v.tr.At(i)
	if err != nil {
		s = v.tr.Last()
	}

	return line{Kind: s.Kind, Depth: s.Depth, Label: s.Label, Snapshot: fmt.Sprint(s.Snapshot)}
}

// Summary is the list of solutions for a search and the closing label for a scan.
func (v traceView[S]) Summary() string {
	if v.tr.Family() != trace.Backtracking {
		return v.tr.Last().Label
	}
	sols := backtrack.Solutions(v.tr)
	parts := make([]string, len(sols))
	for i, s := range sols {
		parts[i] = fmt.Sprint(s)
	}

	return fmt.Sprintf("%d solution(s): %s", len(sols), strings.Join(parts, ", "))
}

func (v traceView[S]) Encode(w io.Writer, format string) error {
	switch format {
	case formatJSON:
		return traceio.EncodeJSON(w, v.tr)
	case formatYAML:
		return traceio.EncodeYAML(w, v.tr)
	case formatText:
		return writeText(w, v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeText prints one indented step per line followed by the summary.
func writeText(w io.Writer, v view) error {
	for i := 0; i < v.Len(); i++ {
		l := v.Line(i)
		if _, err := fmt.Fprintf(w, "%4d  %*s%-8s %s\n", i, 2*l.Depth, "", l.Kind, l.Label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", v.Summary())

	return err
}
