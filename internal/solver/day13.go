package solver

import "lattice.works/internal/mirror"

func day13(input string) (Answers, error) {
	var ans Answers
	for _, block := range mirror.SplitBlocks(input) {
		ans.Part1 += int64(mirror.Summarize(block, 0))
		ans.Part2 += int64(mirror.Summarize(block, 1))
	}
	return ans, nil
}
