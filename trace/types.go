package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by At for an index outside [0, Len-1].
	ErrIndexOutOfRange = errors.New("trace: index out of range")

	// ErrKindViolation indicates a Kind that does not belong to the
	// vocabulary of the trace family being recorded.
	ErrKindViolation = errors.New("trace: kind outside family vocabulary")

	// ErrNegativeDepth indicates a Step recorded with depth < 0.
	ErrNegativeDepth = errors.New("trace: negative depth")

	// ErrEmptyTrace is returned by FromSteps for an empty step list.
	ErrEmptyTrace = errors.New("trace: empty step list")

	// ErrFinished is returned when recording into a finished Recorder.
	ErrFinished = errors.New("trace: recorder already finished")
)

// Family identifies which builder produced a trace.
type Family int

const (
	// Backtracking traces come from recursive descend/accept/reject/ascend search.
	Backtracking Family = iota + 1
	// Scan traces come from iterative pointer-movement passes.
	Scan
)

// String returns the lower-case family name.
func (f Family) String() string {
	switch f {
	case Backtracking:
		return "backtracking"
	case Scan:
		return "scan"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "backtracking":
		return Backtracking, nil
	case "scan":
		return Scan, nil
	default:
		return 0, fmt.Errorf("trace: unknown family %q", s)
	}
}

// Kind tags a Step with what just happened.
type Kind string

// Backtracking vocabulary.
const (
	KindStart   Kind = "start"   // search begins (or nothing to search)
	KindDescend Kind = "descend" // a branch extended the partial solution
	KindAccept  Kind = "accept"  // goal test succeeded, terminal leaf
	KindReject  Kind = "reject"  // local bound violated, pruned leaf
	KindAscend  Kind = "ascend"  // extension undone, snapshot restored
)

// Scan vocabulary.
const (
	KindExpand   Kind = "expand"   // a pointer moved to grow the window/range
	KindContract Kind = "contract" // a pointer moved to shrink the window/range
	KindUpdate   Kind = "update"   // tracked best result improved
	KindTerminal Kind = "terminal" // scan finished, snapshot carries the result
)

// Family reports which vocabulary k belongs to, or 0 if none.
func (k Kind) Family() Family {
	switch k {
	case KindStart, KindDescend, KindAccept, KindReject, KindAscend:
		return Backtracking
	case KindExpand, KindContract, KindUpdate, KindTerminal:
		return Scan
	default:
		return 0
	}
}

// Valid reports whether k is part of either vocabulary.
func (k Kind) Valid() bool { return k.Family() != 0 }

// Kinds returns the vocabulary of f in canonical order.
func Kinds(f Family) []Kind {
	switch f {
	case Backtracking:
		return []Kind{KindStart, KindDescend, KindAccept, KindReject, KindAscend}
	case Scan:
		return []Kind{KindExpand, KindContract, KindUpdate, KindTerminal}
	default:
		return nil
	}
}

// noopKind is the kind of the synthetic Step emitted for a run that recorded nothing.
func noopKind(f Family) Kind {
	if f == Scan {
		return KindTerminal
	}

	return KindStart
}
