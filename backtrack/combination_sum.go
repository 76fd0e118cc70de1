package backtrack

import (
	"fmt"
	"slices"
)

// ComboSnapshot is the state of a combination-sum search.
type ComboSnapshot struct {
	Path      []int // chosen candidates, in choice order
	Sum       int   // sum of Path
	Remaining int   // target - Sum; negative once the bound is violated
}

func (s ComboSnapshot) String() string {
	return fmt.Sprintf("%v sum=%d", s.Path, s.Sum)
}

// combinationSum searches multisets of candidates summing to target. A
// candidate may be reused; combinations are generated in non-decreasing
// position order so each multiset appears once per position sequence.
type combinationSum struct {
	candidates []int
	target     int
	path       []int
	starts     []int // starts[k] is the first position branch k+1 may choose
	sum        int
}

// CombinationSum returns the search space of all combinations of candidates
// (with reuse) that sum to target. Candidates must be positive; non-positive
// weights make the search non-terminating.
func CombinationSum(candidates []int, target int) Space[ComboSnapshot] {
	return &combinationSum{
		candidates: slices.Clone(candidates),
		target:     target,
		path:       make([]int, 0, 8),
		starts:     make([]int, 0, 8),
	}
}

func (c *combinationSum) Goal() bool  { return c.sum == c.target }
func (c *combinationSum) Bound() bool { return c.sum > c.target }

func (c *combinationSum) Branches() []Branch {
	from := 0
	if n := len(c.starts); n > 0 {
		from = c.starts[n-1]
	}
	out := make([]Branch, 0, len(c.candidates)-from)
	for i := from; i < len(c.candidates); i++ {
		out = append(out, Branch{Index: i, Label: fmt.Sprintf("choose %d", c.candidates[i])})
	}

	return out
}

func (c *combinationSum) Extend(b Branch) {
	c.path = append(c.path, c.candidates[b.Index])
	c.starts = append(c.starts, b.Index)
	c.sum += c.candidates[b.Index]
}

func (c *combinationSum) Retract(b Branch) {
	c.path = c.path[:len(c.path)-1]
	c.starts = c.starts[:len(c.starts)-1]
	c.sum -= c.candidates[b.Index]
}

func (c *combinationSum) Capture() ComboSnapshot {
	return ComboSnapshot{Path: c.path, Sum: c.sum, Remaining: c.target - c.sum}
}

func (c *combinationSum) Clone(s ComboSnapshot) ComboSnapshot {
	s.Path = slices.Clone(s.Path)

	return s
}
