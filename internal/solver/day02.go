package solver

import (
	"strconv"
	"strings"
)

type cubeGame struct {
	id   int64
	need map[string]int64 // per color, the largest count drawn in any run
}

func parseCubeGame(line string) (cubeGame, bool) {
	header, data, ok := strings.Cut(line, ":")
	if !ok {
		return cubeGame{}, false
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return cubeGame{}, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return cubeGame{}, false
	}

	g := cubeGame{id: id, need: map[string]int64{}}
	for _, run := range strings.Split(data, ";") {
		for _, draw := range strings.Split(run, ",") {
			parts := strings.Fields(draw)
			if len(parts) != 2 {
				return cubeGame{}, false
			}
			n, err := strconv.ParseInt(parts[0], 10, 64)
			if err != nil {
				return cubeGame{}, false
			}
			if n > g.need[parts[1]] {
				g.need[parts[1]] = n
			}
		}
	}
	return g, true
}

func day02(input string) (Answers, error) {
	limits := map[string]int64{"red": 12, "green": 13, "blue": 14}

	var ans Answers
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, ok := parseCubeGame(line)
		if !ok {
			ans.Skipped++
			continue
		}

		legal := true
		for color, n := range g.need {
			if n > limits[color] {
				legal = false
				break
			}
		}
		if legal {
			ans.Part1 += g.id
		}
		ans.Part2 += g.need["red"] * g.need["green"] * g.need["blue"]
	}
	return ans, nil
}
