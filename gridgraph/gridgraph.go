package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid parses rows into a Grid. Rows are copied; later changes to the
// input do not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell or ErrEndpoints.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{Width: w, Height: h, Start: -1, End: -1, cells: make([]byte, 0, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < w; x++ {
			c := row[x]
			switch c {
			case Wall, Open:
			case Start, End:
				p := &g.Start
				if c == End {
					p = &g.End
				}
				if *p != -1 {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrEndpoints, c, x, y)
				}
				*p = y*w + x
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, c, x, y)
			}
			g.cells = append(g.cells, c)
		}
	}
	if g.Start == -1 || g.End == -1 {
		return nil, ErrEndpoints
	}
	// Precompute neighbor offsets based on connectivity
	if opts.Conn == Conn8 {
		g.neighborOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		g.neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Passable reports whether the cell at idx is not a wall.
func (g *Grid) Passable(idx int) bool {
	return g.cells[idx] != Wall
}

// Neighbors returns the passable cells adjacent to idx, in offset order
// (clockwise from north).
// Complexity: O(d).
func (g *Grid) Neighbors(idx int) []int {
	x, y := g.Coordinate(idx)
	out := make([]int, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if n := g.Index(nx, ny); g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Label formats the coordinate of idx as "(x,y)".
func (g *Grid) Label(idx int) string {
	x, y := g.Coordinate(idx)

	return fmt.Sprintf("(%d,%d)", x, y)
}

// Render returns the maze rows with every index in marked drawn as mark.
// Endpoints keep their letters.
func (g *Grid) Render(marked []int, mark byte) []string {
	buf := make([]byte, len(g.cells))
	copy(buf, g.cells)
	for _, idx := range marked {
		if idx >= 0 && idx < len(buf) && idx != g.Start && idx != g.End {
			buf[idx] = mark
		}
	}
	rows := make([]string, g.Height)
	for y := range rows {
		rows[y] = string(buf[y*g.Width : (y+1)*g.Width])
	}

	return rows
}

// String renders the maze without marks, one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Render(nil, 0), "\n")
}
