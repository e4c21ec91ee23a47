// Package solver binds each puzzle day's input grammar to the engine
// packages and produces the two answers per day.
package solver

import (
	"fmt"
	"sort"
)

// Answers holds the two printed results of one day, plus how many malformed
// input lines the parser skipped (skipping is silent, not fatal).
type Answers struct {
	Part1   int64
	Part2   int64
	Skipped int
}

// Func solves one day from its raw input text.
type Func func(input string) (Answers, error)

var byDay = map[int]Func{
	1:  day01,
	2:  day02,
	4:  day04,
	6:  day06,
	7:  day07,
	13: day13,
	14: day14,
	15: day15,
	16: day16,
	22: day22,
	23: day23,
}

// Days lists the implemented days in ascending order.
func Days() []int {
	out := make([]int, 0, len(byDay))
	for d := range byDay {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Solve runs the solver for the given day.
func Solve(day int, input string) (Answers, error) {
	f, ok := byDay[day]
	if !ok {
		return Answers{}, fmt.Errorf("no solver for day %d", day)
	}
	return f(input)
}
