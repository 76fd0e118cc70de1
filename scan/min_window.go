package scan

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/lvtrace/trace"
)

// WindowSnapshot is the state of a sliding-window scan over Source.
// The window is Source[Left:Right].
type WindowSnapshot struct {
	Left, Right int
	Window      string
	Counts      map[string]int // window counts of the tracked characters
	Formed      int            // tracked characters whose need is met
	Required    int            // distinct tracked characters
	Best        string         // best window so far; "" until Found
	BestLeft    int            // start of Best in Source, NotFound until Found
	Found       bool
}

func cloneWindow(s WindowSnapshot) WindowSnapshot {
	s.Counts = maps.Clone(s.Counts)

	return s
}

// minWindow finds the shortest substring of source containing every byte of
// pattern with multiplicity.
type minWindow struct {
	source, pattern string
	need            map[byte]int
	have            map[byte]int
	left, right     int
	formed          int
	bestLeft        int
	bestLen         int
	improved        bool
	done            bool
}

// MinimumWindow returns a Scanner for the minimum-window-substring problem.
// The window grows on the right until it covers pattern, then shrinks from
// the left one byte per step while it stays valid.
func MinimumWindow(source, pattern string) Scanner[WindowSnapshot] {
	need := make(map[byte]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		need[pattern[i]]++
	}

	return &minWindow{
		source:   source,
		pattern:  pattern,
		need:     need,
		have:     make(map[byte]int, len(need)),
		bestLeft: NotFound,
	}
}

func (m *minWindow) Begin() string {
	// a window can never cover a longer or empty pattern
	m.done = len(m.pattern) == 0 || len(m.pattern) > len(m.source)

	return fmt.Sprintf("window [0,0) over %q, need %q", m.source, m.pattern)
}

func (m *minWindow) Advance() (Move, bool) {
	m.improved = false
	if m.done {
		return Move{}, false
	}

	var mv Move
	switch {
	case m.formed == len(m.need):
		c := m.source[m.left]
		if _, tracked := m.need[c]; tracked {
			if m.have[c] == m.need[c] {
				m.formed--
			}
			m.have[c]--
		}
		m.left++
		mv = Move{Kind: trace.KindContract, Label: fmt.Sprintf("contract left to %d: drop %q", m.left, c)}
	case m.right < len(m.source):
		c := m.source[m.right]
		if _, tracked := m.need[c]; tracked {
			m.have[c]++
			if m.have[c] == m.need[c] {
				m.formed++
			}
		}
		m.right++
		mv = Move{Kind: trace.KindExpand, Label: fmt.Sprintf("expand right to %d: take %q", m.right, c)}
	default:
		m.done = true

		return Move{}, false
	}

	if m.formed == len(m.need) && (m.bestLeft == NotFound || m.right-m.left < m.bestLen) {
		m.bestLeft, m.bestLen = m.left, m.right-m.left
		m.improved = true
	}

	return mv, true
}

func (m *minWindow) Improved() (string, bool) {
	if !m.improved {
		return "", false
	}
	m.improved = false

	return fmt.Sprintf("new best %q", m.source[m.bestLeft:m.bestLeft+m.bestLen]), true
}

func (m *minWindow) Finish() string {
	m.done = true
	if m.bestLeft == NotFound {
		return fmt.Sprintf("no window of %q covers %q", m.source, m.pattern)
	}

	return fmt.Sprintf("minimum window %q", m.source[m.bestLeft:m.bestLeft+m.bestLen])
}

func (m *minWindow) Capture() WindowSnapshot {
	counts := make(map[string]int, len(m.need))
	for c := range m.need {
		counts[string(c)] = m.have[c]
	}
	s := WindowSnapshot{
		Left:     m.left,
		Right:    m.right,
		Window:   m.source[m.left:m.right],
		Counts:   counts,
		Formed:   m.formed,
		Required: len(m.need),
		BestLeft: m.bestLeft,
		Found:    m.bestLeft != NotFound,
	}
	if s.Found {
		s.Best = m.source[m.bestLeft : m.bestLeft+m.bestLen]
	}

	return s
}

func (m *minWindow) Clone(s WindowSnapshot) WindowSnapshot { return cloneWindow(s) }
