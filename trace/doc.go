// Package trace defines the recorded-execution data model shared by every
// trace builder: the Step snapshot, the two closed Kind vocabularies, and the
// immutable Trace aggregate.
//
// What:
//
//   - Step: one observable moment of an algorithm run. It carries a Kind, a
//     Depth used for visual nesting, a value-copied Snapshot of the working
//     state, and a human-readable Label.
//   - Kind: a closed vocabulary per algorithm family.
//     Backtracking: start, descend, accept, reject, ascend.
//     Scan:         expand, contract, update, terminal.
//   - Trace: the finite, ordered, 0-indexed sequence of Steps produced once
//     per input. A Trace is never empty and never changes after Finish.
//   - Recorder: the only way to build a Trace. It copies every snapshot
//     through the builder's clone function at record time (copy-on-record),
//     so later mutation of the algorithm's working state cannot rewrite
//     history.
//
// Why:
//
//   - One data model for structurally different algorithms lets a single
//     playback controller scrub any of them.
//   - Closed vocabularies keep builders from inventing ad hoc event names.
//
// Complexity:
//
//   - Record: O(1) amortized plus the cost of the clone function.
//   - At, Len, Last: O(1). Count, Indices: O(n).
//
// Errors:
//
//   - ErrIndexOutOfRange  At called with an index outside [0, Len-1].
//   - ErrKindViolation    a Kind outside the recorder's family vocabulary.
//   - ErrNegativeDepth    Record called with depth < 0.
//   - ErrEmptyTrace       FromSteps called with no steps.
//   - ErrFinished         Record called after Finish.
package trace
