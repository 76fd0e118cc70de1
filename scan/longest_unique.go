package scan

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/trace"
)

// longestUnique finds the longest substring without repeated bytes.
type longestUnique struct {
	source      string
	count       map[byte]int
	left, right int
	bestLeft    int
	bestLen     int
	improved    bool
}

// LongestUniqueSubstring returns a Scanner for the longest substring without
// repeating characters. When the next byte is already in the window, the left
// pointer contracts past the duplicate one step at a time before the right
// pointer expands over it.
func LongestUniqueSubstring(s string) Scanner[WindowSnapshot] {
	return &longestUnique{source: s, count: make(map[byte]int), bestLeft: NotFound}
}

func (l *longestUnique) Begin() string {
	return fmt.Sprintf("window [0,0) over %q", l.source)
}

func (l *longestUnique) Advance() (Move, bool) {
	l.improved = false
	if l.right >= len(l.source) {
		return Move{}, false
	}

	next := l.source[l.right]
	if l.count[next] > 0 {
		c := l.source[l.left]
		l.count[c]--
		l.left++

		return Move{Kind: trace.KindContract, Label: fmt.Sprintf("contract left to %d: drop %q (duplicate %q ahead)", l.left, c, next)}, true
	}

	l.count[next]++
	l.right++
	if l.right-l.left > l.bestLen {
		l.bestLeft, l.bestLen = l.left, l.right-l.left
		l.improved = true
	}

	return Move{Kind: trace.KindExpand, Label: fmt.Sprintf("expand right to %d: take %q", l.right, next)}, true
}

func (l *longestUnique) Improved() (string, bool) {
	if !l.improved {
		return "", false
	}
	l.improved = false

	return fmt.Sprintf("new best %q (length %d)", l.best(), l.bestLen), true
}

func (l *longestUnique) Finish() string {
	return fmt.Sprintf("longest unique substring %q (length %d)", l.best(), l.bestLen)
}

func (l *longestUnique) best() string {
	if l.bestLeft == NotFound {
		return ""
	}

	return l.source[l.bestLeft : l.bestLeft+l.bestLen]
}

func (l *longestUnique) Capture() WindowSnapshot {
	counts := make(map[string]int, len(l.count))
	for c, n := range l.count {
		if n > 0 {
			counts[string(c)] = n
		}
	}

	return WindowSnapshot{
		Left:     l.left,
		Right:    l.right,
		Window:   l.source[l.left:l.right],
		Counts:   counts,
		Formed:   len(counts),
		Required: len(counts),
		Best:     l.best(),
		BestLeft: l.bestLeft,
		Found:    l.bestLeft != NotFound,
	}
}

func (l *longestUnique) Clone(s WindowSnapshot) WindowSnapshot { return cloneWindow(s) }
