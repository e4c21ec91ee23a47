package tilt

import (
	"encoding/hex"
	"testing"

	"lattice.works/internal/cycle"
	"lattice.works/internal/lattice"
)

const sample = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

func TestNorth_SettledLayout(t *testing.T) {
	g := lattice.Parse(sample)
	North(g)
	want := `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....`
	if got := g.String(); got != want {
		t.Fatalf("north tilt:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestNorth_Load(t *testing.T) {
	g := lattice.Parse(sample)
	North(g)
	if load := NorthLoad(g); load != 136 {
		t.Fatalf("load: got %d, want 136", load)
	}
}

func TestNorth_Idempotent(t *testing.T) {
	g := lattice.Parse(sample)
	North(g)
	d := g.Digest()
	North(g)
	if g.Digest() != d {
		t.Fatalf("second tilt moved stones in a settled grid")
	}
}

func TestNorth_PreservesStoneCount(t *testing.T) {
	g := lattice.Parse(sample)
	before := g.Count(Stone)
	North(g)
	if after := g.Count(Stone); after != before {
		t.Fatalf("stones: %d before, %d after", before, after)
	}
}

func TestSpin_BillionCycleLoad(t *testing.T) {
	state := lattice.Parse(sample)
	load := cycle.Run(1_000_000_000,
		func() { state = Spin(state) },
		func() string {
			d := state.Digest()
			return hex.EncodeToString(d[:])
		},
		func() int64 { return NorthLoad(state) },
	)
	if load != 64 {
		t.Fatalf("load after 1e9 spins: got %d, want 64", load)
	}
}
