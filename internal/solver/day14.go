package solver

import (
	"encoding/hex"

	"lattice.works/internal/cycle"
	"lattice.works/internal/lattice"
	"lattice.works/internal/tilt"
)

// spinTarget is the number of full tilt cycles the assignment asks for; the
// cycle detector folds it down to the detected period.
const spinTarget = 1_000_000_000

func day14(input string) (Answers, error) {
	var ans Answers

	g := lattice.Parse(input)
	tilted := g.Clone()
	tilt.North(tilted)
	ans.Part1 = tilt.NorthLoad(tilted)

	state := g.Clone()
	ans.Part2 = cycle.Run(spinTarget,
		func() { state = tilt.Spin(state) },
		func() string { d := state.Digest(); return hex.EncodeToString(d[:]) },
		func() int64 { return tilt.NorthLoad(state) },
	)
	return ans, nil
}
