package solver

import (
	"lattice.works/internal/beam"
	"lattice.works/internal/lattice"
)

func day16(input string) (Answers, error) {
	g := lattice.Parse(input)
	return Answers{
		Part1: int64(beam.Energized(g, lattice.Vec2i{Row: 0, Col: 0}, lattice.East)),
		Part2: int64(beam.BestEdgeEntry(g)),
	}, nil
}
