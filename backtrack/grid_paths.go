package backtrack

import (
	"slices"
	"strings"

	"github.com/katalvlaran/lvtrace/gridgraph"
)

// GridPathSnapshot is the state of a maze path search.
type GridPathSnapshot struct {
	Cells []int    // row-major cell indices from S to the current cell
	Maze  []string // maze rows with the path drawn as '*'
}

func (s GridPathSnapshot) String() string { return strings.Join(s.Maze, "/") }

type gridPaths struct {
	grid   *gridgraph.Grid
	path   []int
	onPath []bool
}

// GridPaths returns the search space of every simple path from S to E in g.
// Neighbors are tried in the grid's fixed order; a cell with no unvisited
// neighbor that is not E is a dead end and gets rejected. g must not be nil.
func GridPaths(g *gridgraph.Grid) Space[GridPathSnapshot] {
	onPath := make([]bool, g.Width*g.Height)
	onPath[g.Start] = true

	return &gridPaths{grid: g, path: []int{g.Start}, onPath: onPath}
}

func (p *gridPaths) last() int { return p.path[len(p.path)-1] }

func (p *gridPaths) Goal() bool  { return p.last() == p.grid.End }
func (p *gridPaths) Bound() bool { return len(p.Branches()) == 0 }

func (p *gridPaths) Branches() []Branch {
	var out []Branch
	for _, n := range p.grid.Neighbors(p.last()) {
		if !p.onPath[n] {
			out = append(out, Branch{Index: n, Label: "step " + p.grid.Label(n)})
		}
	}

	return out
}

func (p *gridPaths) Extend(b Branch) {
	p.onPath[b.Index] = true
	p.path = append(p.path, b.Index)
}

func (p *gridPaths) Retract(b Branch) {
	p.onPath[b.Index] = false
	p.path = p.path[:len(p.path)-1]
}

func (p *gridPaths) Capture() GridPathSnapshot {
	return GridPathSnapshot{Cells: p.path, Maze: p.grid.Render(p.path, '*')}
}

func (p *gridPaths) Clone(s GridPathSnapshot) GridPathSnapshot {
	s.Cells = slices.Clone(s.Cells)
	s.Maze = slices.Clone(s.Maze)

	return s
}
