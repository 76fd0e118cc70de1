// Package playback implements the seek/play/pause state machine that
// presentation code layers over a recorded trace, and a single-owner Runner
// that drives it from a timer.
//
// States and transitions (n = sequence length, initial state Idle@0):
//
//	Seek(j)       any state      → Idle@clamp(j, 0, n-1)
//	StepForward   Idle@i         → Idle@min(i+1, n-1)
//	StepBackward  Idle@i         → Idle@max(i-1, 0)
//	Play          Idle@i, i<n-1  → Running@i
//	Tick(ticket)  Running@i      → Running@i+1, or Idle@n-1 when i+1 ≥ n-1
//	Pause         Running@i      → Idle@i
//	Reset         any state      → Idle@0
//	Load(seq)     any state      → Idle@0 over the new sequence
//
// Any other call is a silent no-op; every method reports whether it changed
// the state.
//
// Ticks and cancellation: a timer-driven tick must be stamped with the Ticket
// the controller handed out when it was scheduled. Every transition other
// than a committed tick invalidates outstanding tickets, and a committed tick
// consumes its own, so a stale or duplicated tick delivered after Pause,
// Seek, Reset or Load can never move the index.
//
// Concurrency: a Controller has exactly one owner and takes no locks. Runner
// is that owner when playback is timer-driven: commands reach it over a
// channel and all transitions happen on its goroutine.
package playback
