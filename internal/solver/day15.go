package solver

import (
	"strconv"
	"strings"
)

// holidayHash is the initialization-sequence hash: fold each byte into the
// accumulator, times 17, mod 256.
func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int64
}

func day15(input string) (Answers, error) {
	var ans Answers
	boxes := make([][]lens, 256)

	for _, step := range strings.Split(strings.TrimSpace(input), ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		ans.Part1 += int64(holidayHash(step))

		if label, ok := strings.CutSuffix(step, "-"); ok {
			box := holidayHash(label)
			for i, l := range boxes[box] {
				if l.label == label {
					boxes[box] = append(boxes[box][:i], boxes[box][i+1:]...)
					break
				}
			}
			continue
		}

		label, focalStr, ok := strings.Cut(step, "=")
		if !ok {
			ans.Skipped++
			continue
		}
		focal, err := strconv.ParseInt(focalStr, 10, 64)
		if err != nil {
			ans.Skipped++
			continue
		}
		box := holidayHash(label)
		replaced := false
		for i, l := range boxes[box] {
			if l.label == label {
				boxes[box][i].focal = focal
				replaced = true
				break
			}
		}
		if !replaced {
			boxes[box] = append(boxes[box], lens{label: label, focal: focal})
		}
	}

	for box, lenses := range boxes {
		for slot, l := range lenses {
			ans.Part2 += int64(box+1) * int64(slot+1) * l.focal
		}
	}
	return ans, nil
}
