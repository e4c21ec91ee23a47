package lattice

import "testing"

func TestParse_StringRoundTrip(t *testing.T) {
	in := "O.#\n.O.\n#.."
	g := Parse(in)
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("bounds: got %dx%d", g.Width(), g.Height())
	}
	if got := g.String(); got != in {
		t.Fatalf("round trip:\ngot:\n%s\nwant:\n%s", got, in)
	}
}

func TestAt_OutOfBoundsSentinel(t *testing.T) {
	g := Parse("..\n..")
	for _, p := range []Vec2i{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, 7}} {
		if c := g.At(p); c != OutOfBounds {
			t.Fatalf("At(%v): got %q, want sentinel", p, c)
		}
	}
	if c := g.At(Vec2i{1, 1}); c != '.' {
		t.Fatalf("At(1,1): got %q", c)
	}
}

func TestRotateCW(t *testing.T) {
	g := Parse("12\n34\n56")
	r := g.RotateCW()
	want := "531\n642"
	if got := r.String(); got != want {
		t.Fatalf("rotate:\ngot:\n%s\nwant:\n%s", got, want)
	}
	// Four rotations restore the original.
	for i := 0; i < 3; i++ {
		r = r.RotateCW()
	}
	if r.String() != g.String() {
		t.Fatalf("four rotations changed the grid:\n%s", r.String())
	}
}

func TestDigest_TracksMutation(t *testing.T) {
	a := Parse("O..\n.#.")
	b := Parse("O..\n.#.")
	if a.Digest() != b.Digest() {
		t.Fatalf("equal grids must have equal digests")
	}

	a.Set(Vec2i{Row: 0, Col: 2}, 'O')
	if a.Digest() == b.Digest() {
		t.Fatalf("digest unchanged after Set")
	}

	// Setting the same value back restores the digest.
	a.Set(Vec2i{Row: 0, Col: 2}, '.')
	if a.Digest() != b.Digest() {
		t.Fatalf("digest did not restore")
	}
}

func TestClone_Independent(t *testing.T) {
	g := Parse("O.\n..")
	c := g.Clone()
	c.Set(Vec2i{Row: 1, Col: 1}, 'O')
	if g.At(Vec2i{Row: 1, Col: 1}) != '.' {
		t.Fatalf("clone mutation leaked into original")
	}
}

func TestHeadingDeltas(t *testing.T) {
	p := Vec2i{Row: 5, Col: 5}
	if q := p.Add(North.Delta()); q.Row != 4 || q.Col != 5 {
		t.Fatalf("north: %v", q)
	}
	if q := p.Add(East.Delta()); q.Row != 5 || q.Col != 6 {
		t.Fatalf("east: %v", q)
	}
}
