package backtrack

import (
	"fmt"
	"slices"
)

// SubsetSnapshot is the state of an include/skip subset search.
type SubsetSnapshot struct {
	Path []int // items taken so far
	Next int   // position of the next undecided item
}

func (s SubsetSnapshot) String() string { return fmt.Sprint(s.Path) }

// Branch indices of the include/skip decision.
const (
	skipItem = 0
	takeItem = 1
)

type subsets struct {
	items []int
	path  []int
	next  int
}

// Subsets returns the search space of the power set of items. Each position
// branches twice, take before skip; every leaf is accepted, so an empty input
// accepts the empty set.
func Subsets(items []int) Space[SubsetSnapshot] {
	return &subsets{items: slices.Clone(items), path: make([]int, 0, len(items))}
}

func (s *subsets) Goal() bool  { return s.next == len(s.items) }
func (s *subsets) Bound() bool { return false }

func (s *subsets) Branches() []Branch {
	v := s.items[s.next]

	return []Branch{
		{Index: takeItem, Label: fmt.Sprintf("take %d", v)},
		{Index: skipItem, Label: fmt.Sprintf("skip %d", v)},
	}
}

func (s *subsets) Extend(b Branch) {
	if b.Index == takeItem {
		s.path = append(s.path, s.items[s.next])
	}
	s.next++
}

func (s *subsets) Retract(b Branch) {
	s.next--
	if b.Index == takeItem {
		s.path = s.path[:len(s.path)-1]
	}
}

func (s *subsets) Capture() SubsetSnapshot { return SubsetSnapshot{Path: s.path, Next: s.next} }

func (s *subsets) Clone(snap SubsetSnapshot) SubsetSnapshot {
	snap.Path = slices.Clone(snap.Path)

	return snap
}
