package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// waysToBeat counts hold times p with p*(total-p) strictly greater than the
// record. The distance is quadratic in p, so the winning window is the open
// interval between the roots of p^2 - total*p + record; exact-integer roots
// are ties and do not beat the record.
func waysToBeat(total, record int64) int64 {
	disc := total*total - 4*record
	if disc < 0 {
		return 0
	}
	s := math.Sqrt(float64(disc))
	lo := int64(math.Floor((float64(total)-s)/2)) + 1
	hi := int64(math.Ceil((float64(total)+s)/2)) - 1

	// Guard the float boundary: nudge inward across ties.
	for lo*(total-lo) <= record {
		lo++
	}
	for hi*(total-hi) <= record {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func day06(input string) (Answers, error) {
	var timeLine, distLine string
	for _, line := range strings.Split(input, "\n") {
		switch {
		case strings.HasPrefix(line, "Time:"):
			timeLine = strings.TrimPrefix(line, "Time:")
		case strings.HasPrefix(line, "Distance:"):
			distLine = strings.TrimPrefix(line, "Distance:")
		}
	}
	if timeLine == "" || distLine == "" {
		return Answers{}, fmt.Errorf("day 6: missing Time/Distance lines")
	}

	times := strings.Fields(timeLine)
	dists := strings.Fields(distLine)
	if len(times) != len(dists) {
		return Answers{}, fmt.Errorf("day 6: %d times vs %d distances", len(times), len(dists))
	}

	ans := Answers{Part1: 1}
	for i := range times {
		t, err1 := strconv.ParseInt(times[i], 10, 64)
		d, err2 := strconv.ParseInt(dists[i], 10, 64)
		if err1 != nil || err2 != nil {
			return Answers{}, fmt.Errorf("day 6: bad race %d", i)
		}
		ans.Part1 *= waysToBeat(t, d)
	}

	// Part 2: the line is one long race with the spaces removed.
	t, err1 := strconv.ParseInt(strings.Join(times, ""), 10, 64)
	d, err2 := strconv.ParseInt(strings.Join(dists, ""), 10, 64)
	if err1 != nil || err2 != nil {
		return Answers{}, fmt.Errorf("day 6: bad joined race")
	}
	ans.Part2 = waysToBeat(t, d)
	return ans, nil
}
