// Package maze enumerates simple paths through a walled grid, with slope
// cells that are one-way when the slippery traversal mode is on.
package maze

import "lattice.works/internal/lattice"

const (
	Floor = '.'
	Wall  = '#'
)

// slopeHeading maps a slope cell to the forced heading, when slippery.
func slopeHeading(c uint8) (lattice.Heading, bool) {
	switch c {
	case '^':
		return lattice.North, true
	case 'v':
		return lattice.South, true
	case '<':
		return lattice.West, true
	case '>':
		return lattice.East, true
	}
	return 0, false
}

// Start returns the single open cell on the top row.
func Start(g *lattice.Grid) lattice.Vec2i {
	for col := 0; col < g.Width(); col++ {
		if g.At(lattice.Vec2i{Row: 0, Col: col}) == Floor {
			return lattice.Vec2i{Row: 0, Col: col}
		}
	}
	return lattice.Vec2i{}
}

// End returns the single open cell on the bottom row.
func End(g *lattice.Grid) lattice.Vec2i {
	row := g.Height() - 1
	for col := 0; col < g.Width(); col++ {
		if g.At(lattice.Vec2i{Row: row, Col: col}) == Floor {
			return lattice.Vec2i{Row: row, Col: col}
		}
	}
	return lattice.Vec2i{}
}

type branch struct {
	pos    lattice.Vec2i
	length int
	seen   map[lattice.Vec2i]bool
}

// LongestSlipperyPath walks every simple path from the top opening to the
// bottom opening, honoring slope cells as one-way, and returns the longest
// length in steps. Each branch carries its own path history: arriving at the
// same coordinate from different directions can lead to different eventual
// lengths, so no cross-branch deduplication is possible.
func LongestSlipperyPath(g *lattice.Grid) int {
	start, end := Start(g), End(g)

	stack := []branch{{pos: start, seen: map[lattice.Vec2i]bool{start: true}}}
	best := 0
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.pos == end {
			if b.length > best {
				best = b.length
			}
			continue
		}

		var dirs []lattice.Heading
		if h, ok := slopeHeading(g.At(b.pos)); ok {
			dirs = []lattice.Heading{h}
		} else {
			dirs = lattice.Headings[:]
		}

		for _, h := range dirs {
			np := b.pos.Add(h.Delta())
			c := g.At(np)
			if c == Wall || c == lattice.OutOfBounds || b.seen[np] {
				continue
			}
			seen := make(map[lattice.Vec2i]bool, len(b.seen)+1)
			for p := range b.seen {
				seen[p] = true
			}
			seen[np] = true
			stack = append(stack, branch{pos: np, length: b.length + 1, seen: seen})
		}
	}
	return best
}

// LongestDryPath treats slopes as ordinary floor. The grid is first
// contracted to a junction graph (cells with three or more open neighbors,
// plus the two openings) so the exhaustive search runs over corridors, not
// cells.
func LongestDryPath(g *lattice.Grid) int {
	gr := contract(g)
	visited := make([]bool, len(gr.nodes))
	return gr.longest(gr.start, gr.end, visited)
}

type edge struct {
	to     int
	weight int
}

type graph struct {
	nodes []lattice.Vec2i
	index map[lattice.Vec2i]int
	edges [][]edge

	start, end int
}

func open(g *lattice.Grid, p lattice.Vec2i) bool {
	c := g.At(p)
	return c != Wall && c != lattice.OutOfBounds
}

func contract(g *lattice.Grid) *graph {
	gr := &graph{index: map[lattice.Vec2i]int{}}
	add := func(p lattice.Vec2i) int {
		if i, ok := gr.index[p]; ok {
			return i
		}
		gr.index[p] = len(gr.nodes)
		gr.nodes = append(gr.nodes, p)
		return len(gr.nodes) - 1
	}

	gr.start = add(Start(g))
	gr.end = add(End(g))

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := lattice.Vec2i{Row: row, Col: col}
			if !open(g, p) {
				continue
			}
			n := 0
			for _, h := range lattice.Headings {
				if open(g, p.Add(h.Delta())) {
					n++
				}
			}
			if n >= 3 {
				add(p)
			}
		}
	}

	gr.edges = make([][]edge, len(gr.nodes))
	for id, node := range gr.nodes {
		for _, h := range lattice.Headings {
			cur := node.Add(h.Delta())
			if !open(g, cur) {
				continue
			}
			prev := node
			steps := 1
			for {
				if to, ok := gr.index[cur]; ok {
					gr.edges[id] = append(gr.edges[id], edge{to: to, weight: steps})
					break
				}
				// Corridor cells have exactly two open neighbors; pick the
				// one we did not come from. A single open neighbor is a dead
				// end and contributes no edge.
				next, found := prev, false
				for _, hh := range lattice.Headings {
					np := cur.Add(hh.Delta())
					if np != prev && open(g, np) {
						next, found = np, true
						break
					}
				}
				if !found {
					break
				}
				prev, cur = cur, next
				steps++
			}
		}
	}
	return gr
}

func (gr *graph) longest(from, to int, visited []bool) int {
	if from == to {
		return 0
	}
	visited[from] = true
	best := -1
	for _, e := range gr.edges[from] {
		if visited[e.to] {
			continue
		}
		if rest := gr.longest(e.to, to, visited); rest >= 0 && e.weight+rest > best {
			best = e.weight + rest
		}
	}
	visited[from] = false
	return best
}
