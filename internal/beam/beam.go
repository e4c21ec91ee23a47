// Package beam traces directional light signals through a 2D lattice of
// mirrors and splitters and counts the coordinates they energize.
package beam

import "lattice.works/internal/lattice"

const (
	Floor      = '.'
	MirrorUp   = '/'
	MirrorDown = '\\'
	SplitterV  = '|'
	SplitterH  = '-'
)

// Deflection tables, one 4-entry lookup per mirror orientation.
var (
	deflectUp = [4]lattice.Heading{
		lattice.North: lattice.East,
		lattice.East:  lattice.North,
		lattice.South: lattice.West,
		lattice.West:  lattice.South,
	}
	deflectDown = [4]lattice.Heading{
		lattice.North: lattice.West,
		lattice.West:  lattice.North,
		lattice.South: lattice.East,
		lattice.East:  lattice.South,
	}
)

type head struct {
	pos lattice.Vec2i
	dir lattice.Heading
}

// Energized traces a beam entering the grid at start heading dir and returns
// the number of distinct coordinates touched by any branch. A branch
// terminates when it leaves the grid or when its (position, heading) pair has
// been visited before; branch processing order only affects performance, so
// pending forks sit on a LIFO stack.
func Energized(g *lattice.Grid, start lattice.Vec2i, dir lattice.Heading) int {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return 0
	}
	// One 4-bit direction mask per cell.
	visited := make([]uint8, w*h)

	stack := []head{{pos: start, dir: dir}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for g.InBounds(b.pos) {
			bit := uint8(1) << b.dir
			idx := b.pos.Row*w + b.pos.Col
			if visited[idx]&bit != 0 {
				break
			}
			visited[idx] |= bit

			switch g.At(b.pos) {
			case MirrorUp:
				b.dir = deflectUp[b.dir]
			case MirrorDown:
				b.dir = deflectDown[b.dir]
			case SplitterV:
				if b.dir == lattice.East || b.dir == lattice.West {
					// Perpendicular hit: fork into the two opposite
					// perpendicular directions, one continues now.
					stack = append(stack, head{pos: b.pos, dir: lattice.South})
					b.dir = lattice.North
				}
			case SplitterH:
				if b.dir == lattice.North || b.dir == lattice.South {
					stack = append(stack, head{pos: b.pos, dir: lattice.East})
					b.dir = lattice.West
				}
			}

			b.pos = b.pos.Add(b.dir.Delta())
		}
	}

	n := 0
	for _, m := range visited {
		if m != 0 {
			n++
		}
	}
	return n
}

// BestEdgeEntry returns the maximum energization over every beam entering
// from an edge cell heading inward.
func BestEdgeEntry(g *lattice.Grid) int {
	best := 0
	maxRow, maxCol := g.Height()-1, g.Width()-1

	for row := 0; row <= maxRow; row++ {
		best = max(best, Energized(g, lattice.Vec2i{Row: row, Col: 0}, lattice.East))
		best = max(best, Energized(g, lattice.Vec2i{Row: row, Col: maxCol}, lattice.West))
	}
	for col := 0; col <= maxCol; col++ {
		best = max(best, Energized(g, lattice.Vec2i{Row: 0, Col: col}, lattice.South))
		best = max(best, Energized(g, lattice.Vec2i{Row: maxRow, Col: col}, lattice.North))
	}
	return best
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
