package fall

import (
	"testing"
)

const sample = `1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9`

func settledSample(t *testing.T) *System {
	t.Helper()
	bricks, skipped := ParseBricks(sample)
	if skipped != 0 {
		t.Fatalf("skipped %d sample lines", skipped)
	}
	s, err := NewSystem(bricks)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	s.Settle()
	return s
}

func TestSettle_SafeDisintegrations(t *testing.T) {
	s := settledSample(t)
	if n := s.SafeDisintegrations(); n != 5 {
		t.Fatalf("safe: got %d, want 5", n)
	}
}

func TestChainFallSum(t *testing.T) {
	s := settledSample(t)
	sum, err := s.ChainFallSum()
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if sum != 7 {
		t.Fatalf("chain sum: got %d, want 7", sum)
	}
}

func TestSettle_PreservesOccupiedCells(t *testing.T) {
	bricks, _ := ParseBricks(sample)
	s, err := NewSystem(bricks)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	before := s.OccupiedCells()
	s.Settle()
	if after := s.OccupiedCells(); after != before {
		t.Fatalf("occupied cells: %d before, %d after", before, after)
	}
}

func TestSettle_MovedOncePerBrick(t *testing.T) {
	// Brick 1 starts four layers up and drops three units; it must still
	// count as a single mover. Brick 0 is already resting.
	bricks, _ := ParseBricks("0,0,1~0,2,1\n5,5,5~5,5,6")
	s, err := NewSystem(bricks)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	moved := s.Settle()
	if moved[0] {
		t.Fatalf("resting brick reported as moved")
	}
	if !moved[1] {
		t.Fatalf("falling brick not reported as moved")
	}
	if got := s.Brick(1).Ext.Min.Z; got != 1 {
		t.Fatalf("brick 1 landed at z=%d, want 1", got)
	}
}

func TestChainFall_WhatIfLeavesBaselineIntact(t *testing.T) {
	s := settledSample(t)
	before := make([]Brick, s.Len())
	for i := range before {
		before[i] = s.Brick(i)
	}
	if _, err := s.ChainFallSum(); err != nil {
		t.Fatalf("chain: %v", err)
	}
	for i := range before {
		if s.Brick(i) != before[i] {
			t.Fatalf("brick %d mutated by what-if analysis", i)
		}
	}
}

// relaxUntilRest is an order-independent reference: every pass, every brick
// that can drop one unit does, until a full pass moves nothing.
func relaxUntilRest(bricks []Brick) ([]Brick, []bool) {
	out := append([]Brick(nil), bricks...)
	moved := make([]bool, len(out))

	cells := func() map[[3]int]int {
		m := map[[3]int]int{}
		for id, b := range out {
			for _, p := range b.Ext.Coords() {
				m[p.ToArray()] = id
			}
		}
		return m
	}

	for {
		any := false
		occ := cells()
		for id := range out {
			ext := out[id].Ext
			if ext.Min.Z <= 1 {
				continue
			}
			blocked := false
			for _, p := range ext.Coords() {
				below := [3]int{p.X, p.Y, p.Z - 1}
				if held, ok := occ[below]; ok && held != id {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			for _, p := range ext.Coords() {
				delete(occ, p.ToArray())
			}
			out[id].Ext.Min.Z--
			out[id].Ext.Max.Z--
			for _, p := range out[id].Ext.Coords() {
				occ[p.ToArray()] = id
			}
			moved[id] = true
			any = true
		}
		if !any {
			return out, moved
		}
	}
}

func TestSettle_SideBySideChain(t *testing.T) {
	// Two independent towers plus a floating crossbar resting on both, with
	// unequal gaps, so bricks at the same layer settle by different amounts.
	input := `0,0,2~0,0,3
2,0,4~2,0,4
0,0,7~2,0,7
5,5,1~5,5,1`
	bricks, skipped := ParseBricks(input)
	if skipped != 0 {
		t.Fatalf("skipped %d", skipped)
	}

	s, err := NewSystem(bricks)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	moved := s.Settle()

	want, wantMoved := relaxUntilRest(bricks)
	for id := range bricks {
		if s.Brick(id).Ext != want[id].Ext {
			t.Fatalf("brick %d: got %+v, want %+v", id, s.Brick(id).Ext, want[id].Ext)
		}
		if moved[id] != wantMoved[id] {
			t.Fatalf("brick %d moved flag: got %v, want %v", id, moved[id], wantMoved[id])
		}
	}
}

func TestParseBricks_SkipsMalformed(t *testing.T) {
	bricks, skipped := ParseBricks("1,0,1~1,2,1\nnot a brick\n2,2~2,2\n\n0,0,2~0,0,2\n")
	if len(bricks) != 2 {
		t.Fatalf("bricks: got %d, want 2", len(bricks))
	}
	if skipped != 2 {
		t.Fatalf("skipped: got %d, want 2", skipped)
	}
}

func TestParseBrick_NormalizesEndOrder(t *testing.T) {
	b, ok := ParseBrick("2,2,5~0,2,5")
	if !ok {
		t.Fatalf("parse failed")
	}
	if b.Ext.Min.X != 0 || b.Ext.Max.X != 2 {
		t.Fatalf("extent not normalized: %+v", b.Ext)
	}
}
