package scan

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/trace"
)

// ListSnapshot is the state of an in-place singly linked list reversal.
// Nodes are identified by their position in the input.
type ListSnapshot struct {
	Next      []int // Next[i] is the successor of node i, NotFound for nil
	Prev      int   // head of the reversed prefix, NotFound when empty
	Curr      int   // head of the untouched suffix, NotFound when done
	Reversed  []int // values reachable from Prev
	Remaining []int // values reachable from Curr
}

type reverseList struct {
	values     []int
	next       []int
	prev, curr int
}

// ReverseList returns a Scanner for the iterative prev/curr reversal of a
// linked list holding values. Each movement flips one link and advances both
// pointers, growing the reversed prefix by one node.
func ReverseList(values []int) Scanner[ListSnapshot] {
	next := make([]int, len(values))
	for i := range next {
		next[i] = i + 1
	}
	curr := NotFound
	if len(values) > 0 {
		next[len(next)-1] = NotFound
		curr = 0
	}

	return &reverseList{values: slices.Clone(values), next: next, prev: NotFound, curr: curr}
}

func (r *reverseList) Begin() string {
	return fmt.Sprintf("prev=nil curr=%s", r.name(r.curr))
}

func (r *reverseList) Advance() (Move, bool) {
	if r.curr == NotFound {
		return Move{}, false
	}
	node := r.curr
	following := r.next[node]
	r.next[node] = r.prev
	r.prev, r.curr = node, following

	return Move{Kind: trace.KindExpand, Label: fmt.Sprintf("point %s at %s, curr → %s", r.name(node), r.name(r.next[node]), r.name(r.curr))}, true
}

// Improved never fires: reversal tracks no best result.
func (r *reverseList) Improved() (string, bool) { return "", false }

func (r *reverseList) Finish() string {
	return fmt.Sprintf("new head %s: %v", r.name(r.prev), r.walk(r.prev))
}

func (r *reverseList) name(i int) string {
	if i == NotFound {
		return "nil"
	}

	return fmt.Sprint(r.values[i])
}

// walk collects values from head following next links.
func (r *reverseList) walk(head int) []int {
	out := []int{}
	for i := head; i != NotFound; i = r.next[i] {
		out = append(out, r.values[i])
	}

	return out
}

func (r *reverseList) Capture() ListSnapshot {
	return ListSnapshot{
		Next:      r.next,
		Prev:      r.prev,
		Curr:      r.curr,
		Reversed:  r.walk(r.prev),
		Remaining: r.walk(r.curr),
	}
}

func (r *reverseList) Clone(s ListSnapshot) ListSnapshot {
	s.Next = slices.Clone(s.Next)
	s.Reversed = slices.Clone(s.Reversed)
	s.Remaining = slices.Clone(s.Remaining)

	return s
}
