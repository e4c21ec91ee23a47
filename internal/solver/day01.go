package solver

import "strings"

var spelledDigits = []struct {
	word  string
	value int64
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9},
}

// digitAt reads a calibration digit starting at position i: either a literal
// digit or, when words is set, a spelled-out one.
func digitAt(line string, i int, words bool) (int64, bool) {
	c := line[i]
	if c >= '0' && c <= '9' {
		return int64(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for _, sd := range spelledDigits {
		if strings.HasPrefix(line[i:], sd.word) {
			return sd.value, true
		}
	}
	return 0, false
}

func calibrationValue(line string, words bool) (int64, bool) {
	var first, last int64
	found := false
	for i := 0; i < len(line); i++ {
		v, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if !found {
			first = v
			found = true
		}
		last = v
	}
	if !found {
		return 0, false
	}
	return 10*first + last, true
}

func day01(input string) (Answers, error) {
	var ans Answers
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if v, ok := calibrationValue(line, false); ok {
			ans.Part1 += v
		}
		v, ok := calibrationValue(line, true)
		if !ok {
			ans.Skipped++
			continue
		}
		ans.Part2 += v
	}
	return ans, nil
}
