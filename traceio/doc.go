// Package traceio serializes recorded traces so they can be replayed by a
// different process or inspected outside Go.
//
// Document layout (JSON and YAML share it):
//
//	family: backtracking | scan
//	steps:
//	  - kind: descend
//	    depth: 1
//	    label: choose 2
//	    snapshot: {...}   // the snapshot type's own encoding
//
// Decoding is strict about the trace invariants: the family must be known,
// every kind must belong to the family's vocabulary, depths must be
// non-negative and the step list must not be empty. Snapshots decode into
// the caller's type parameter.
//
// Errors:
//
//   - ErrEmptyTrace     document has no steps, or nil trace on encode.
//   - ErrUnknownKind    a step kind outside both vocabularies.
//   - ErrUnknownFamily  family field missing or unrecognized.
//
// Kinds from the wrong family and negative depths surface as the matching
// trace package errors (trace.ErrKindViolation, trace.ErrNegativeDepth).
package traceio
