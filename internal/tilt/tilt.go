// Package tilt implements the rolling-stone tilt tick: sliding every movable
// cell as far as possible in the tilt direction, stopping at walls, grid
// edges, or stones already at rest.
package tilt

import "lattice.works/internal/lattice"

const (
	Floor = '.'
	Wall  = '#'
	Stone = 'O'
)

// North slides every stone as far north as it can roll, in place. Each
// column keeps a next-free-slot pointer that resets whenever a wall is
// crossed, so the pass is a single top-to-bottom scan.
func North(g *lattice.Grid) {
	for col := 0; col < g.Width(); col++ {
		slot := 0
		for row := 0; row < g.Height(); row++ {
			p := lattice.Vec2i{Row: row, Col: col}
			switch g.At(p) {
			case Wall:
				slot = row + 1
			case Stone:
				if row != slot {
					g.Set(lattice.Vec2i{Row: slot, Col: col}, Stone)
					g.Set(p, Floor)
				}
				slot++
			}
		}
	}
}

// Spin applies one full tilt cycle: north, west, south, east. Each leg is a
// north slide followed by a clockwise rotation, so after four legs the grid
// is back in its original orientation. The input grid is consumed; the
// settled grid is returned.
func Spin(g *lattice.Grid) *lattice.Grid {
	for i := 0; i < 4; i++ {
		North(g)
		g = g.RotateCW()
	}
	return g
}

// NorthLoad scores the grid: each stone contributes the number of rows
// between it and the south edge, inclusive.
func NorthLoad(g *lattice.Grid) int64 {
	var load int64
	h := g.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(lattice.Vec2i{Row: row, Col: col}) == Stone {
				load += int64(h - row)
			}
		}
	}
	return load
}
