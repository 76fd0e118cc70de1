package scan

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/trace"
)

// RangeSnapshot is the state of a binary search over a sorted slice.
type RangeSnapshot struct {
	Low, High int // live index range; empty when Low > High (inclusive) or Low == High (half-open)
	Mid       int // last probed index, NotFound before the first probe
	Probe     int // value at Mid, 0 before the first probe
	Index     int // answer so far; NotFound until one is known
	Found     bool
}

// midpoint is floor((low+high)/2); both bounds are non-negative here.
func midpoint(low, high int) int { return (low + high) / 2 }

// binarySearch looks for target in an ascending slice over the inclusive range [Low, High].
type binarySearch struct {
	values    []int
	target    int
	low, high int
	mid       int
	index     int
	improved  bool
}

// BinarySearch returns a Scanner that locates target in the ascending slice
// values. Each movement probes the floor midpoint and discards half the
// range; an empty range goes straight to the "not found" terminal step.
func BinarySearch(values []int, target int) Scanner[RangeSnapshot] {
	return &binarySearch{
		values: slices.Clone(values),
		target: target,
		high:   len(values) - 1,
		mid:    NotFound,
		index:  NotFound,
	}
}

func (b *binarySearch) Begin() string {
	return fmt.Sprintf("search %d in [%d,%d]", b.target, b.low, b.high)
}

func (b *binarySearch) Advance() (Move, bool) {
	b.improved = false
	if b.low > b.high || b.index != NotFound {
		return Move{}, false
	}

	b.mid = midpoint(b.low, b.high)
	v := b.values[b.mid]
	switch {
	case v == b.target:
		b.index = b.mid
		b.low, b.high = b.mid, b.mid
		b.improved = true

		return Move{Kind: trace.KindContract, Label: fmt.Sprintf("probe [%d]=%d == %d: narrow to [%d,%d]", b.mid, v, b.target, b.low, b.high)}, true
	case v < b.target:
		b.low = b.mid + 1

		return Move{Kind: trace.KindContract, Label: fmt.Sprintf("probe [%d]=%d < %d: low → %d", b.mid, v, b.target, b.low)}, true
	default:
		b.high = b.mid - 1

		return Move{Kind: trace.KindContract, Label: fmt.Sprintf("probe [%d]=%d > %d: high → %d", b.mid, v, b.target, b.high)}, true
	}
}

func (b *binarySearch) Improved() (string, bool) {
	if !b.improved {
		return "", false
	}
	b.improved = false

	return fmt.Sprintf("found %d at index %d", b.target, b.index), true
}

func (b *binarySearch) Finish() string {
	if b.index == NotFound {
		return fmt.Sprintf("%d not found", b.target)
	}

	return fmt.Sprintf("%d is at index %d", b.target, b.index)
}

func (b *binarySearch) Capture() RangeSnapshot {
	s := RangeSnapshot{Low: b.low, High: b.high, Mid: b.mid, Index: b.index, Found: b.index != NotFound}
	if b.mid != NotFound {
		s.Probe = b.values[b.mid]
	}

	return s
}

// Clone is the identity: RangeSnapshot holds no references.
func (b *binarySearch) Clone(s RangeSnapshot) RangeSnapshot { return s }

// searchInsert finds the first index whose value is ≥ target over the
// half-open range [Low, High).
type searchInsert struct {
	values    []int
	target    int
	low, high int
	mid       int
	improved  bool
}

// SearchInsert returns a Scanner for the lower-bound position of target in the
// ascending slice values: the index of target if present, else the index it
// would be inserted at. The candidate answer is High; every time it moves left
// an update step is recorded.
func SearchInsert(values []int, target int) Scanner[RangeSnapshot] {
	return &searchInsert{values: slices.Clone(values), target: target, high: len(values), mid: NotFound}
}

func (s *searchInsert) Begin() string {
	return fmt.Sprintf("lower bound of %d in [%d,%d)", s.target, s.low, s.high)
}

func (s *searchInsert) Advance() (Move, bool) {
	s.improved = false
	if s.low >= s.high {
		return Move{}, false
	}

	s.mid = midpoint(s.low, s.high)
	v := s.values[s.mid]
	if v < s.target {
		s.low = s.mid + 1

		return Move{Kind: trace.KindContract, Label: fmt.Sprintf("probe [%d]=%d < %d: low → %d", s.mid, v, s.target, s.low)}, true
	}
	s.high = s.mid
	s.improved = true

	return Move{Kind: trace.KindContract, Label: fmt.Sprintf("probe [%d]=%d ≥ %d: high → %d", s.mid, v, s.target, s.high)}, true
}

func (s *searchInsert) Improved() (string, bool) {
	if !s.improved {
		return "", false
	}
	s.improved = false

	return fmt.Sprintf("candidate position %d", s.high), true
}

func (s *searchInsert) Finish() string {
	return fmt.Sprintf("insert %d at index %d", s.target, s.low)
}

func (s *searchInsert) Capture() RangeSnapshot {
	snap := RangeSnapshot{Low: s.low, High: s.high, Mid: s.mid, Index: s.high, Found: true}
	if s.mid != NotFound {
		snap.Probe = s.values[s.mid]
	}

	return snap
}

func (s *searchInsert) Clone(snap RangeSnapshot) RangeSnapshot { return snap }
