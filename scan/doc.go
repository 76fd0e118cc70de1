// Package scan builds traces of iterative pointer-movement algorithms:
// sliding windows, binary-search narrowing, in-place list reversal and
// breadth-first maze frontiers.
//
// What:
//
//   - Build(scanner, opts...): drives a Scanner to completion and records one
//     trace.Step per pointer movement.
//   - Scanner: the capability set a scan exposes (Begin, Advance, Improved,
//     Finish, Capture, Clone).
//   - Ready-made scanners: MinimumWindow, LongestUniqueSubstring,
//     BinarySearch, SearchInsert, ReverseList, ShortestPath.
//
// Skeleton:
//
//  1. Begin sets the starting pointers → one expand Step (depth 0).
//  2. Each Advance moves exactly one pointer (or splits the range once)
//     → one expand or contract Step. Expansions and contractions are never
//     merged into one Step.
//  3. If the movement improved the tracked best → one extra update Step.
//  4. Finish → exactly one terminal Step carrying the final result.
//
// A scan that never moves (empty range, pattern longer than source) still
// produces the initial and terminal Steps.
//
// Complexity:
//
//   - Time: O(M · c) for M movements and snapshot clone cost c.
//   - Memory: O(M · |S|) for the trace.
//
// Errors:
//
//   - ErrNilScanner       scanner is nil.
//   - ErrOptionViolation  an option received a meaningless value.
//   - ErrStepLimit        MaxSteps exceeded.
//   - trace.ErrKindViolation  Advance returned a kind other than expand/contract.
//   - context.Canceled    scan aborted via context.
package scan
