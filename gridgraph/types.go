package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates a character that is not a wall, open cell or endpoint.
	ErrUnknownCell = errors.New("gridgraph: unknown cell character")
	// ErrEndpoints indicates a missing or repeated start or end cell.
	ErrEndpoints = errors.New("gridgraph: grid needs exactly one S and one E")
)

// Cell characters.
const (
	Wall  = '#'
	Open  = '.'
	Start = 'S'
	End   = 'E'
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid traversal.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is an immutable maze. Width and Height define dimensions; Start and
// End are the row-major indices of the endpoints.
type Grid struct {
	Width, Height   int
	Start, End      int
	cells           []byte
	neighborOffsets [][2]int
}
