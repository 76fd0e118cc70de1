package trace_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/trace"
)

func cloneInts(s []int) []int { return slices.Clone(s) }

func TestRecorder_CopyOnRecord(t *testing.T) {
	rec := trace.NewRecorder(trace.Backtracking, cloneInts)
	work := []int{1, 2}
	_, err := rec.Record(trace.KindStart, 0, work, "start")
	require.NoError(t, err)

	// mutate the working state after recording
	work[0] = 99
	work = append(work, 3)
	_, err = rec.Record(trace.KindDescend, 1, work, "choose 3")
	require.NoError(t, err)

	tr := rec.Finish(nil)
	first, err := tr.At(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, first.Snapshot, "recorded snapshot must not alias working state")
	assert.Equal(t, []int{99, 2, 3}, tr.Last().Snapshot)
}

func TestRecorder_KindViolation(t *testing.T) {
	rec := trace.NewRecorder[int](trace.Scan, nil)
	_, err := rec.Record(trace.KindDescend, 0, 1, "wrong family")
	assert.ErrorIs(t, err, trace.ErrKindViolation)

	_, err = rec.Record(trace.Kind("jump"), 0, 1, "unknown")
	assert.ErrorIs(t, err, trace.ErrKindViolation)

	_, err = rec.Record(trace.KindExpand, -1, 1, "negative")
	assert.ErrorIs(t, err, trace.ErrNegativeDepth)
	assert.Equal(t, 0, rec.Len())
}

func TestRecorder_NoopStep(t *testing.T) {
	tests := []struct {
		family trace.Family
		want   trace.Kind
	}{
		{trace.Backtracking, trace.KindStart},
		{trace.Scan, trace.KindTerminal},
	}
	for _, tc := range tests {
		t.Run(tc.family.String(), func(t *testing.T) {
			tr := trace.NewRecorder[string](tc.family, nil).Finish("empty")
			require.Equal(t, 1, tr.Len())
			assert.Equal(t, tc.want, tr.Last().Kind)
			assert.Equal(t, trace.NoopLabel, tr.Last().Label)
			assert.Equal(t, "empty", tr.Last().Snapshot)
		})
	}
}

func TestRecorder_RecordAfterFinish(t *testing.T) {
	rec := trace.NewRecorder[int](trace.Scan, nil)
	rec.Finish(0)
	_, err := rec.Record(trace.KindExpand, 0, 1, "late")
	assert.ErrorIs(t, err, trace.ErrFinished)
}

func TestTrace_Accessors(t *testing.T) {
	rec := trace.NewRecorder[int](trace.Scan, nil)
	for i, k := range []trace.Kind{trace.KindExpand, trace.KindContract, trace.KindExpand, trace.KindUpdate, trace.KindTerminal} {
		_, err := rec.Record(k, 0, i, string(k))
		require.NoError(t, err)
	}
	tr := rec.Finish(0)

	assert.Equal(t, trace.Scan, tr.Family())
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, 2, tr.Count(trace.KindExpand))
	assert.Equal(t, []int{0, 2}, tr.Indices(trace.KindExpand))
	assert.Nil(t, tr.Indices(trace.KindAccept))

	_, err := tr.At(-1)
	assert.ErrorIs(t, err, trace.ErrIndexOutOfRange)
	_, err = tr.At(5)
	assert.ErrorIs(t, err, trace.ErrIndexOutOfRange)

	// Steps returns a copy: editing it leaves the trace untouched
	steps := tr.Steps()
	steps[0].Label = "edited"
	first, _ := tr.At(0)
	assert.Equal(t, "expand", first.Label)
}

func TestFromSteps(t *testing.T) {
	_, err := trace.FromSteps[int](trace.Scan, nil)
	assert.ErrorIs(t, err, trace.ErrEmptyTrace)

	_, err = trace.FromSteps(trace.Scan, []trace.Step[int]{{Kind: trace.KindAccept}})
	assert.ErrorIs(t, err, trace.ErrKindViolation)

	_, err = trace.FromSteps(trace.Backtracking, []trace.Step[int]{{Kind: trace.KindStart, Depth: -2}})
	assert.ErrorIs(t, err, trace.ErrNegativeDepth)

	tr, err := trace.FromSteps(trace.Backtracking, []trace.Step[int]{{Kind: trace.KindStart, Label: "go"}})
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestKind_Family(t *testing.T) {
	for _, k := range trace.Kinds(trace.Backtracking) {
		assert.Equal(t, trace.Backtracking, k.Family(), k)
	}
	for _, k := range trace.Kinds(trace.Scan) {
		assert.Equal(t, trace.Scan, k.Family(), k)
	}
	assert.False(t, trace.Kind("pivot").Valid())

	f, err := trace.ParseFamily("scan")
	require.NoError(t, err)
	assert.Equal(t, trace.Scan, f)
	_, err = trace.ParseFamily("greedy")
	assert.Error(t, err)
}

func TestStep_String(t *testing.T) {
	s := trace.Step[int]{Kind: trace.KindAccept, Depth: 2, Label: "[7]"}
	assert.Equal(t, "    accept   [7]", s.String())
}
