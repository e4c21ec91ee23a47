package fall

import (
	"strconv"
	"strings"

	"lattice.works/internal/lattice"
)

// Brick is an axis-aligned 1xNx1 (or 1x1xN) entity occupying an inclusive
// coordinate range. The floor sits at z = 0; bricks rest on z >= 1.
type Brick struct {
	Ext lattice.Box3
}

// ParseBrick parses one "x0,y0,z0~x1,y1,z1" line. Malformed lines report
// ok=false and are skipped by the caller.
func ParseBrick(line string) (Brick, bool) {
	line = strings.TrimSpace(line)
	ends := strings.Split(line, "~")
	if len(ends) != 2 {
		return Brick{}, false
	}
	a, ok := parseVec(ends[0])
	if !ok {
		return Brick{}, false
	}
	b, ok := parseVec(ends[1])
	if !ok {
		return Brick{}, false
	}
	return Brick{Ext: lattice.Box3{
		Min: lattice.Vec3i{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: lattice.Vec3i{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}}, true
}

func parseVec(s string) (lattice.Vec3i, bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return lattice.Vec3i{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return lattice.Vec3i{}, false
		}
		n[i] = v
	}
	return lattice.Vec3i{X: n[0], Y: n[1], Z: n[2]}, true
}

// ParseBricks parses all well-formed lines and reports how many were skipped.
func ParseBricks(input string) (bricks []Brick, skipped int) {
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, ok := ParseBrick(line)
		if !ok {
			skipped++
			continue
		}
		bricks = append(bricks, b)
	}
	return bricks, skipped
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
