package snapshot

import (
	"path/filepath"
	"testing"

	"lattice.works/internal/lattice"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	g := lattice.Parse(`O....#....
O.OO#....#
.....##...
OO.#O....O`)
	st := Capture(g, "tilt", 42)

	path := filepath.Join(t.TempDir(), "snaps", "tilt-00000042.zst")
	if err := Write(path, st); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Header.Version != 1 || got.Header.Source != "tilt" || got.Header.Tick != 42 {
		t.Fatalf("header: %+v", got.Header)
	}

	rg, err := got.Grid()
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if rg.String() != g.String() {
		t.Fatalf("layout mismatch:\ngot:\n%s\nwant:\n%s", rg.String(), g.String())
	}
	if rg.Digest() != g.Digest() {
		t.Fatalf("digest mismatch after round trip")
	}
}

func TestGrid_RejectsDimensionMismatch(t *testing.T) {
	g := lattice.Parse("..\n..")
	st := Capture(g, "tilt", 0)
	st.Width = 3
	if _, err := st.Grid(); err == nil {
		t.Fatalf("want error for cell count mismatch")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.zst")); err == nil {
		t.Fatalf("want error for missing snapshot")
	}
}
