package solver

import "lattice.works/internal/fall"

func day22(input string) (Answers, error) {
	bricks, skipped := fall.ParseBricks(input)
	sys, err := fall.NewSystem(bricks)
	if err != nil {
		return Answers{}, err
	}
	sys.Settle()

	chain, err := sys.ChainFallSum()
	if err != nil {
		return Answers{}, err
	}
	return Answers{
		Part1:   int64(sys.SafeDisintegrations()),
		Part2:   int64(chain),
		Skipped: skipped,
	}, nil
}
