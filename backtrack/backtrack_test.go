package backtrack_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/backtrack"
	"github.com/katalvlaran/lvtrace/trace"
)

// assertBalanced checks that every descend at depth d is matched by an ascend
// at depth d, and that no ascend appears before its descend.
func assertBalanced[S any](t *testing.T, tr *trace.Trace[S]) {
	t.Helper()
	open := map[int]int{}
	for i, s := range tr.Steps() {
		switch s.Kind {
		case trace.KindDescend:
			open[s.Depth]++
		case trace.KindAscend:
			open[s.Depth]--
			require.GreaterOrEqual(t, open[s.Depth], 0, "ascend without descend at step %d", i)
		}
	}
	for d, n := range open {
		assert.Zero(t, n, "unbalanced descend/ascend at depth %d", d)
	}
}

func comboPaths(tr *trace.Trace[backtrack.ComboSnapshot]) [][]int {
	var out [][]int
	for _, s := range backtrack.Solutions(tr) {
		out = append(out, s.Path)
	}

	return out
}

func TestBuild_NilSpace(t *testing.T) {
	tr, err := backtrack.Build[int](nil)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, backtrack.ErrNilSpace)
}

func TestCombinationSum_Classic(t *testing.T) {
	tr, err := backtrack.Build(backtrack.CombinationSum([]int{2, 3, 6, 7}, 7))
	require.NoError(t, err)

	assert.Equal(t, trace.Backtracking, tr.Family())
	first, _ := tr.At(0)
	assert.Equal(t, trace.KindStart, first.Kind)
	assert.Empty(t, first.Snapshot.Path)

	assert.Equal(t, [][]int{{2, 2, 3}, {7}}, comboPaths(tr))
	assert.Equal(t, 2, tr.Count(trace.KindAccept))
	assertBalanced(t, tr)

	// every accept sits exactly at the target
	for _, s := range backtrack.Solutions(tr) {
		assert.Equal(t, 7, s.Sum)
		assert.Zero(t, s.Remaining)
	}
}

func TestCombinationSum_RejectIsShortCircuit(t *testing.T) {
	tr, err := backtrack.Build(backtrack.CombinationSum([]int{2, 3}, 7))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 2, 3}}, comboPaths(tr))

	steps := tr.Steps()
	for i, s := range steps {
		if s.Kind != trace.KindReject {
			continue
		}
		assert.Greater(t, s.Snapshot.Sum, 7)
		// a pruned leaf is immediately followed by the undo of its branch
		require.Less(t, i+1, len(steps))
		assert.Equal(t, trace.KindAscend, steps[i+1].Kind)
		assert.Equal(t, s.Depth, steps[i+1].Depth)
	}
	assertBalanced(t, tr)
}

func TestCombinationSum_DescendAscendPairing(t *testing.T) {
	tr, err := backtrack.Build(backtrack.CombinationSum([]int{2, 3}, 4))
	require.NoError(t, err)

	// descend snapshot is post-extension; matching ascend restores the parent
	steps := tr.Steps()
	for i, s := range steps {
		if s.Kind != trace.KindDescend {
			continue
		}
		depth := s.Depth
		for j := i + 1; j < len(steps); j++ {
			if steps[j].Kind == trace.KindAscend && steps[j].Depth == depth {
				assert.Equal(t, "undo "+s.Label, steps[j].Label)
				assert.Equal(t, s.Snapshot.Path[:len(s.Snapshot.Path)-1], steps[j].Snapshot.Path)
				break
			}
		}
	}
}

func TestCombinationSum_DuplicateCandidates(t *testing.T) {
	// equal values at different positions are separate branches
	tr, err := backtrack.Build(backtrack.CombinationSum([]int{2, 2}, 2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2}, {2}}, comboPaths(tr))
	assertBalanced(t, tr)
}

func TestEmptySearchSpaces(t *testing.T) {
	combo, err := backtrack.Build(backtrack.CombinationSum(nil, 7))
	require.NoError(t, err)
	assert.Equal(t, 1, combo.Len())
	assert.Equal(t, trace.KindStart, combo.Last().Kind)

	letters, err := backtrack.Build(backtrack.LetterCombinations(""))
	require.NoError(t, err)
	assert.Equal(t, 1, letters.Len())

	parts, err := backtrack.Build(backtrack.PalindromePartition(""))
	require.NoError(t, err)
	assert.Equal(t, 1, parts.Len())

	perms, err := backtrack.Build(backtrack.Permutations(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, perms.Len())

	// the empty set is the one subset of nothing
	subs, err := backtrack.Build(backtrack.Subsets(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, subs.Len())
	assert.Equal(t, trace.KindAccept, subs.Last().Kind)
}

func TestLetterCombinations(t *testing.T) {
	tr, err := backtrack.Build(backtrack.LetterCombinations("23"))
	require.NoError(t, err)

	var got []string
	for _, s := range backtrack.Solutions(tr) {
		got = append(got, s.Path)
	}
	assert.Equal(t, []string{"ad", "ae", "af", "bd", "be", "bf", "cd", "ce", "cf"}, got)
	assertBalanced(t, tr)

	single, err := backtrack.Build(backtrack.LetterCombinations("2"))
	require.NoError(t, err)
	// start + 3 × (descend, accept, ascend)
	assert.Equal(t, 10, single.Len())
}

func TestLetterCombinations_DigitWithoutLetters(t *testing.T) {
	tr, err := backtrack.Build(backtrack.LetterCombinations("1"))
	require.NoError(t, err)
	require.Equal(t, 2, tr.Len())
	assert.Equal(t, trace.KindReject, tr.Last().Kind)
	assert.Zero(t, tr.Last().Depth)
	assert.Zero(t, tr.Count(trace.KindAccept))

	// a letterless digit after a real one prunes every branch visibly
	mid, err := backtrack.Build(backtrack.LetterCombinations("21"))
	require.NoError(t, err)
	assertBalanced(t, mid)
	assert.Equal(t, 10, mid.Len())
	assert.Equal(t, 3, mid.Count(trace.KindReject))
	assert.Zero(t, mid.Count(trace.KindAccept))
	for _, i := range mid.Indices(trace.KindReject) {
		s, err := mid.At(i)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Depth)
		prev, err := mid.At(i - 1)
		require.NoError(t, err)
		assert.Equal(t, trace.KindDescend, prev.Kind)
	}
}

func TestPalindromePartition(t *testing.T) {
	tr, err := backtrack.Build(backtrack.PalindromePartition("aab"))
	require.NoError(t, err)

	var got [][]string
	for _, s := range backtrack.Solutions(tr) {
		got = append(got, s.Parts)
	}
	assert.Equal(t, [][]string{{"a", "a", "b"}, {"aa", "b"}}, got)
	assert.Positive(t, tr.Count(trace.KindReject), "non-palindromic cuts must be pruned")
	assertBalanced(t, tr)
}

func TestPermutations(t *testing.T) {
	tr, err := backtrack.Build(backtrack.Permutations([]int{1, 2, 3}))
	require.NoError(t, err)

	var got [][]int
	for _, s := range backtrack.Solutions(tr) {
		got = append(got, s.Path)
		assert.Equal(t, []bool{true, true, true}, s.Used)
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}, got)
	assertBalanced(t, tr)
}

func TestSubsets(t *testing.T) {
	tr, err := backtrack.Build(backtrack.Subsets([]int{1, 2}))
	require.NoError(t, err)

	var got [][]int
	for _, s := range backtrack.Solutions(tr) {
		got = append(got, s.Path)
	}
	assert.Len(t, got, 4)
	assert.Equal(t, []int{1, 2}, got[0])
	assert.Equal(t, []int{1}, got[1])
	assert.Equal(t, []int{2}, got[2])
	assert.Empty(t, got[3])
	assertBalanced(t, tr)
}

func TestDeterminism(t *testing.T) {
	a, err := backtrack.Build(backtrack.CombinationSum([]int{3, 5, 2}, 8))
	require.NoError(t, err)
	b, err := backtrack.Build(backtrack.CombinationSum([]int{3, 5, 2}, 8))
	require.NoError(t, err)
	assert.Equal(t, a.Steps(), b.Steps())

	p, err := backtrack.Build(backtrack.PalindromePartition("racecar"))
	require.NoError(t, err)
	q, err := backtrack.Build(backtrack.PalindromePartition("racecar"))
	require.NoError(t, err)
	assert.Equal(t, p.Steps(), q.Steps())
}

func TestFreshSpaceAfterAbortedBuild(t *testing.T) {
	space := func() backtrack.Space[backtrack.ComboSnapshot] {
		return backtrack.CombinationSum([]int{2, 3, 6, 7}, 7)
	}
	full, err := backtrack.Build(space())
	require.NoError(t, err)

	partial, err := backtrack.Build(space(), backtrack.WithMaxSteps(5))
	require.ErrorIs(t, err, backtrack.ErrStepLimit)
	assert.Equal(t, full.Steps()[:5], partial.Steps())

	again, err := backtrack.Build(space())
	require.NoError(t, err)
	assert.Equal(t, full.Steps(), again.Steps())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	tr, err := backtrack.Build(backtrack.Permutations([]int{1, 2}))
	require.NoError(t, err)

	// the working slices were reused for the whole search; every step must
	// still show the state of its own instant
	steps := tr.Steps()
	assert.Equal(t, []int{1}, steps[1].Snapshot.Path)
	assert.Equal(t, []bool{true, false}, steps[1].Snapshot.Used)
	assert.Equal(t, []int{1, 2}, steps[2].Snapshot.Path)
	assert.Empty(t, steps[len(steps)-1].Snapshot.Path)
}

func TestOptions(t *testing.T) {
	space := func() backtrack.Space[backtrack.LetterSnapshot] { return backtrack.LetterCombinations("23") }

	_, err := backtrack.Build(space(), backtrack.WithMaxDepth(-1))
	assert.ErrorIs(t, err, backtrack.ErrOptionViolation)

	_, err = backtrack.Build(space(), backtrack.WithMaxSteps(0))
	assert.ErrorIs(t, err, backtrack.ErrOptionViolation)

	// depth 1 is never expanded
	tr, err := backtrack.Build(space(), backtrack.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Zero(t, tr.Count(trace.KindAccept))
	assert.Equal(t, 3, tr.Count(trace.KindReject))
	assertBalanced(t, tr)

	tr, err = backtrack.Build(space(), backtrack.WithMaxSteps(3))
	assert.ErrorIs(t, err, backtrack.ErrStepLimit)
	require.NotNil(t, tr)
	assert.Equal(t, 3, tr.Len())
}

func TestOnStepHook(t *testing.T) {
	var kinds []trace.Kind
	tr, err := backtrack.Build(backtrack.LetterCombinations("2"),
		backtrack.WithOnStep(func(i int, k trace.Kind, depth int, label string) error {
			kinds = append(kinds, k)

			return nil
		}))
	require.NoError(t, err)
	assert.Len(t, kinds, tr.Len())

	halt := errors.New("halt")
	_, err = backtrack.Build(backtrack.LetterCombinations("2"),
		backtrack.WithOnStep(func(i int, k trace.Kind, depth int, label string) error {
			if i == 2 {
				return halt
			}

			return nil
		}))
	assert.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, "OnStep hook at step 2")
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, err := backtrack.Build(backtrack.CombinationSum([]int{1, 2, 3}, 20), backtrack.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, tr)
	assert.Equal(t, 1, tr.Len(), "only the start step is recorded")
}
