package scan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvtrace/gridgraph"
	"github.com/katalvlaran/lvtrace/trace"
)

// FrontierSnapshot is the state of a breadth-first maze scan.
type FrontierSnapshot struct {
	Queue    []int    // cells waiting to be expanded, in queue order
	Current  int      // cell being expanded, NotFound before the first dequeue
	Seen     int      // cells discovered so far, S included
	Distance int      // steps from S to E, NotFound until E is discovered
	Found    bool
	Maze     []string // maze rows: '+' discovered, 'o' queued, '@' current
}

func (s FrontierSnapshot) String() string { return strings.Join(s.Maze, "/") }

// shortestPath is breadth-first search over the open cells of a maze. The
// queue is the scanned structure: enqueueing a neighbor expands it, and
// dequeueing the next cell to expand contracts it.
type shortestPath struct {
	grid     *gridgraph.Grid
	dist     []int
	queue    []int
	pending  []int
	current  int
	seen     int
	improved bool
}

// ShortestPath returns a Scanner for the length of the shortest S→E path in
// g. Neighbors of the current cell are enqueued one movement at a time, in
// the grid's fixed order; the scan stops as soon as E is discovered, since
// breadth-first discovery order is distance order. g must not be nil.
func ShortestPath(g *gridgraph.Grid) Scanner[FrontierSnapshot] {
	dist := make([]int, g.Width*g.Height)
	for i := range dist {
		dist[i] = NotFound
	}

	return &shortestPath{grid: g, dist: dist, current: NotFound}
}

func (p *shortestPath) Begin() string {
	p.dist[p.grid.Start] = 0
	p.queue = append(p.queue, p.grid.Start)
	p.seen = 1

	return fmt.Sprintf("enqueue S %s, searching for E %s", p.grid.Label(p.grid.Start), p.grid.Label(p.grid.End))
}

func (p *shortestPath) Advance() (Move, bool) {
	p.improved = false
	if p.dist[p.grid.End] != NotFound {
		return Move{}, false
	}

	if len(p.pending) > 0 {
		n := p.pending[0]
		p.pending = p.pending[1:]
		p.dist[n] = p.dist[p.current] + 1
		p.queue = append(p.queue, n)
		p.seen++
		p.improved = n == p.grid.End

		return Move{Kind: trace.KindExpand, Label: fmt.Sprintf("enqueue %s at distance %d", p.grid.Label(n), p.dist[n])}, true
	}

	if len(p.queue) == 0 {
		return Move{}, false
	}
	p.current = p.queue[0]
	p.queue = p.queue[1:]
	for _, n := range p.grid.Neighbors(p.current) {
		if p.dist[n] == NotFound {
			p.pending = append(p.pending, n)
		}
	}

	return Move{Kind: trace.KindContract, Label: fmt.Sprintf("dequeue %s at distance %d", p.grid.Label(p.current), p.dist[p.current])}, true
}

func (p *shortestPath) Improved() (string, bool) {
	if !p.improved {
		return "", false
	}
	p.improved = false

	return fmt.Sprintf("reached E at distance %d", p.dist[p.grid.End]), true
}

func (p *shortestPath) Finish() string {
	if d := p.dist[p.grid.End]; d != NotFound {
		return fmt.Sprintf("shortest path length %d", d)
	}

	return "E is unreachable"
}

func (p *shortestPath) Capture() FrontierSnapshot {
	var discovered []int
	for i, d := range p.dist {
		if d != NotFound {
			discovered = append(discovered, i)
		}
	}
	maze := p.grid.Render(discovered, '+')
	overlay(p.grid, maze, p.queue, 'o')
	if p.current != NotFound {
		overlay(p.grid, maze, []int{p.current}, '@')
	}

	return FrontierSnapshot{
		Queue:    p.queue,
		Current:  p.current,
		Seen:     p.seen,
		Distance: p.dist[p.grid.End],
		Found:    p.dist[p.grid.End] != NotFound,
		Maze:     maze,
	}
}

func (p *shortestPath) Clone(s FrontierSnapshot) FrontierSnapshot {
	s.Queue = slices.Clone(s.Queue)
	s.Maze = slices.Clone(s.Maze)

	return s
}

// overlay redraws cells of rows with mark, leaving the endpoints alone.
func overlay(g *gridgraph.Grid, rows []string, cells []int, mark byte) {
	for _, idx := range cells {
		if idx == g.Start || idx == g.End {
			continue
		}
		x, y := g.Coordinate(idx)
		row := []byte(rows[y])
		row[x] = mark
		rows[y] = string(row)
	}
}
