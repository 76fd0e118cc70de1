// Package lvtrace records classic search and scan algorithms as replayable
// step traces and plays them back at any pace, forwards or backwards.
//
// 🚀 What is lvtrace?
//
//	A small, deterministic library that brings together:
//		• Data model: Step snapshots with closed Kind vocabularies, immutable Trace
//		• Backtracking builder: start/descend/accept/reject/ascend over any Space
//		• Scan builder: expand/contract/update/terminal over any Scanner
//		• Playback: seek/step/play/pause controller with stale-tick cancellation
//		• Codecs: JSON and YAML documents for persisted traces
//
// ✨ Why choose lvtrace?
//
//   - Deterministic: identical input always yields an identical trace
//   - Copy-on-record: later mutation never rewrites history
//   - Generic: one controller scrubs any snapshot type
//   - Extensible: OnStep hooks, step limits and context cancellation
//
// Under the hood, everything is organized under these subpackages:
//
//	trace/           Step, Kind, Trace and the Recorder every builder uses
//	backtrack/       recursive search builder + combination sum, letters, palindromes, permutations, subsets, maze paths
//	scan/            iterative pointer builder + minimum window, longest unique, binary search, list reversal, maze BFS
//	gridgraph/       character mazes as graphs of open cells
//	playback/        Controller state machine and the timer-driven Runner
//	traceio/         JSON/YAML encoding of traces
//	cmd/tracescope/  CLI printer and interactive terminal player
//
// Quick example:
//
//	tr, _ := backtrack.Build(backtrack.CombinationSum([]int{2, 3, 6, 7}, 7))
//	c := playback.New(tr)
//	c.Seek(tr.Len() - 1)
//	fmt.Println(playback.Current(c, tr).Label)
//
//	go get github.com/katalvlaran/lvtrace
package lvtrace
