package solver

import (
	"lattice.works/internal/lattice"
	"lattice.works/internal/maze"
)

func day23(input string) (Answers, error) {
	g := lattice.Parse(input)
	return Answers{
		Part1: int64(maze.LongestSlipperyPath(g)),
		Part2: int64(maze.LongestDryPath(g)),
	}, nil
}
