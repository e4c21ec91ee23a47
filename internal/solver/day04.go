package solver

import (
	"strconv"
	"strings"
)

// cardMatches parses one scratch card line and counts how many of its numbers
// appear among the winning numbers.
func cardMatches(line string) (int, bool) {
	_, data, ok := strings.Cut(line, ":")
	if !ok {
		return 0, false
	}
	winning, have, ok := strings.Cut(data, "|")
	if !ok {
		return 0, false
	}

	win := map[int]bool{}
	for _, f := range strings.Fields(winning) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, false
		}
		win[n] = true
	}

	matches := 0
	for _, f := range strings.Fields(have) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, false
		}
		if win[n] {
			matches++
		}
	}
	return matches, true
}

func day04(input string) (Answers, error) {
	var matches []int
	var ans Answers
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, ok := cardMatches(line)
		if !ok {
			ans.Skipped++
			continue
		}
		matches = append(matches, m)
	}

	// Part 1: each card scores 2^(matches-1).
	for _, m := range matches {
		if m > 0 {
			ans.Part1 += int64(1) << (m - 1)
		}
	}

	// Part 2: each card propagates one copy of the next m cards per copy of
	// itself.
	copies := make([]int64, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(matches); j++ {
			copies[j] += copies[i]
		}
	}
	for _, c := range copies {
		ans.Part2 += c
	}
	return ans, nil
}
