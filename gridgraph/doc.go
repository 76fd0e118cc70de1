// Package gridgraph treats a character maze as a graph of open cells so that
// path problems can be traced by the search and scan builders.
//
// What:
//
//   - Grid wraps a rectangular maze given as rows of text:
//     '#' wall, '.' open, 'S' start, 'E' end (exactly one of each).
//   - Cells are addressed by row-major index; Coordinate converts back.
//   - Neighbors lists open cells adjacent to a cell in a fixed order, so
//     every traversal over a Grid is deterministic.
//
// Why:
//
//   - Mazes make the difference between exhaustive search (every simple
//     path) and breadth-first scanning (one shortest distance) visible.
//
// Complexity:
//
//   - NewGrid: O(W×H). Neighbors: O(d), d = 4 or 8.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (N, E, S, W) or Conn8 (adds diagonals).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a character outside "#.SE".
//   - ErrEndpoints: not exactly one 'S' and one 'E'.
package gridgraph
