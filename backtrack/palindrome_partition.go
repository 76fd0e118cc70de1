package backtrack

import (
	"fmt"
	"slices"
)

// PartitionSnapshot is the state of a palindrome partitioning search.
type PartitionSnapshot struct {
	Source string
	Offset int      // first byte not yet covered by Parts
	Parts  []string // pieces cut so far; only the last may be a non-palindrome
}

func (s PartitionSnapshot) String() string { return fmt.Sprintf("%q", s.Parts) }

type palindromePartition struct {
	source  string
	offset  int
	parts   []string
	offsets []int
}

// PalindromePartition returns the search space of every way to cut s into
// palindromic pieces. Every prefix of the remaining suffix is a branch; a
// non-palindromic piece is rejected by the bound test so pruning is visible.
func PalindromePartition(s string) Space[PartitionSnapshot] {
	return &palindromePartition{source: s}
}

func (p *palindromePartition) Goal() bool {
	return len(p.source) > 0 && p.offset == len(p.source) && !p.Bound()
}

func (p *palindromePartition) Bound() bool {
	return len(p.parts) > 0 && !isPalindrome(p.parts[len(p.parts)-1])
}

func (p *palindromePartition) Branches() []Branch {
	out := make([]Branch, 0, len(p.source)-p.offset)
	for end := p.offset + 1; end <= len(p.source); end++ {
		out = append(out, Branch{Index: end, Label: fmt.Sprintf("cut %q", p.source[p.offset:end])})
	}

	return out
}

func (p *palindromePartition) Extend(b Branch) {
	p.parts = append(p.parts, p.source[p.offset:b.Index])
	p.offsets = append(p.offsets, p.offset)
	p.offset = b.Index
}

func (p *palindromePartition) Retract(Branch) {
	p.offset = p.offsets[len(p.offsets)-1]
	p.offsets = p.offsets[:len(p.offsets)-1]
	p.parts = p.parts[:len(p.parts)-1]
}

func (p *palindromePartition) Capture() PartitionSnapshot {
	return PartitionSnapshot{Source: p.source, Offset: p.offset, Parts: p.parts}
}

func (p *palindromePartition) Clone(s PartitionSnapshot) PartitionSnapshot {
	s.Parts = slices.Clone(s.Parts)

	return s
}

// isPalindrome reports whether s reads the same in both directions (bytewise).
func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}

	return true
}
