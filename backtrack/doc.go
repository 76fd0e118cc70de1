// Package backtrack builds traces of recursive backtracking searches
// (combination search, string partitioning, keypad expansion, permutations,
// subsets, maze paths) through one shared control skeleton.
//
// What:
//
//   - Build(space, opts...): runs the search described by a Space once and
//     records a trace.Step at every decision point.
//   - Space: the capability set a problem exposes (goal test, local bound,
//     ordered branch generator, extend/retract, capture/clone).
//   - Ready-made spaces: CombinationSum, LetterCombinations,
//     PalindromePartition, Permutations, Subsets, GridPaths.
//
// Skeleton (per subproblem, depth d):
//
//  1. Goal() succeeds      → accept, return (terminal leaf).
//  2. Bound() is violated  → reject, return (pruned leaf, no branches generated).
//  3. For each branch, in the order Branches() returns it:
//     Extend → descend(d+1) → recurse → Retract → ascend(d+1).
//
// The first Step of every trace is start (depth 0), so an empty search space
// still yields a one-step trace. Branch order is positional and never
// reordered, which makes traces deterministic; duplicate candidate values at
// different positions are distinct branches.
//
// Complexity:
//
//   - Time:   O(N · c) where N is the number of search nodes and c the cost of
//     cloning one snapshot.
//   - Memory: O(N · |S|) for the recorded trace, O(depth) for recursion.
//
// Options:
//
//   - WithContext(ctx)   cancellation; checked once per subproblem.
//   - WithMaxDepth(d)    subproblems at depth d are rejected; d < 0 is invalid.
//   - WithMaxSteps(n)    abort with ErrStepLimit once n steps are recorded.
//   - WithOnStep(fn)     observer invoked after each recorded step.
//
// Errors:
//
//   - ErrNilSpace         space is nil.
//   - ErrOptionViolation  an option received a meaningless value.
//   - ErrStepLimit        MaxSteps exceeded.
//   - context.Canceled    search aborted via context.
//   - any error returned by the OnStep hook.
//
// Preconditions: the search must be finite. Non-terminating spaces (e.g.
// combination search with non-positive weights) are undefined behavior.
package backtrack
