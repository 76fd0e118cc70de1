package backtrack

import (
	"fmt"
	"slices"
)

// PermutationSnapshot is the state of a permutation search.
type PermutationSnapshot struct {
	Path []int  // items placed so far
	Used []bool // Used[i] is true when items[i] is in Path
}

func (s PermutationSnapshot) String() string { return fmt.Sprint(s.Path) }

type permutations struct {
	items []int
	used  []bool
	path  []int
}

// Permutations returns the search space of all orderings of items. Equal
// values at different positions are distinct, so duplicates are not folded.
func Permutations(items []int) Space[PermutationSnapshot] {
	return &permutations{
		items: slices.Clone(items),
		used:  make([]bool, len(items)),
		path:  make([]int, 0, len(items)),
	}
}

func (p *permutations) Goal() bool  { return len(p.items) > 0 && len(p.path) == len(p.items) }
func (p *permutations) Bound() bool { return false }

func (p *permutations) Branches() []Branch {
	var out []Branch
	for i, v := range p.items {
		if !p.used[i] {
			out = append(out, Branch{Index: i, Label: fmt.Sprintf("place %d", v)})
		}
	}

	return out
}

func (p *permutations) Extend(b Branch) {
	p.used[b.Index] = true
	p.path = append(p.path, p.items[b.Index])
}

func (p *permutations) Retract(b Branch) {
	p.used[b.Index] = false
	p.path = p.path[:len(p.path)-1]
}

func (p *permutations) Capture() PermutationSnapshot {
	return PermutationSnapshot{Path: p.path, Used: p.used}
}

func (p *permutations) Clone(s PermutationSnapshot) PermutationSnapshot {
	s.Path = slices.Clone(s.Path)
	s.Used = slices.Clone(s.Used)

	return s
}
