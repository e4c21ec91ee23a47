package lattice

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

// OutOfBounds is returned by At for coordinates outside the grid. Leaving the
// lattice is an ordinary branch condition for propagation, not an error.
const OutOfBounds uint8 = 0

// Grid is a finite 2D lattice of palette cells. Cells hold the raw input
// symbol ('.', '#', 'O', mirrors, slopes); the zero value is reserved for the
// out-of-bounds sentinel.
type Grid struct {
	w, h  int
	cells []uint8 // col fastest, then row

	dirty bool
	hash  [32]byte
}

func NewGrid(w, h int) *Grid {
	g := &Grid{w: w, h: h, cells: make([]uint8, w*h), dirty: true}
	for i := range g.cells {
		g.cells[i] = '.'
	}
	return g
}

// Parse builds a grid from newline-delimited rows. Blank lines are skipped;
// ragged short rows are padded with '.'.
func Parse(text string) *Grid {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return &Grid{dirty: true}
	}
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	g := NewGrid(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			g.cells[y*w+x] = r[x]
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

func (g *Grid) InBounds(p Vec2i) bool {
	return p.Row >= 0 && p.Row < g.h && p.Col >= 0 && p.Col < g.w
}

func (g *Grid) index(p Vec2i) int { return p.Row*g.w + p.Col }

// At returns the cell at p, or OutOfBounds when p is outside the grid.
func (g *Grid) At(p Vec2i) uint8 {
	if !g.InBounds(p) {
		return OutOfBounds
	}
	return g.cells[g.index(p)]
}

func (g *Grid) Set(p Vec2i, c uint8) {
	i := g.index(p)
	if g.cells[i] == c {
		return
	}
	g.cells[i] = c
	g.dirty = true
}

func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cells: make([]uint8, len(g.cells)), dirty: g.dirty, hash: g.hash}
	copy(c.cells, g.cells)
	return c
}

// RotateCW returns a new grid rotated 90 degrees clockwise: the first row
// becomes the last column.
func (g *Grid) RotateCW() *Grid {
	r := &Grid{w: g.h, h: g.w, cells: make([]uint8, len(g.cells)), dirty: true}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			r.cells[x*r.w+(g.h-1-y)] = g.cells[y*g.w+x]
		}
	}
	return r
}

// Digest is a canonical hash of the grid: two digest-equal grids are
// interchangeable for all further simulation. Cached until the next Set.
func (g *Grid) Digest() [32]byte {
	if g.dirty || g.hash == ([32]byte{}) {
		h := sha256.New()
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], uint64(g.w))
		h.Write(tmp[:])
		binary.LittleEndian.PutUint64(tmp[:], uint64(g.h))
		h.Write(tmp[:])
		h.Write(g.cells)
		copy(g.hash[:], h.Sum(nil))
		g.dirty = false
	}
	return g.hash
}

// Cells exposes the backing slice in row-major order. Callers must not
// mutate it; use Set so the digest cache stays coherent.
func (g *Grid) Cells() []uint8 { return g.cells }

func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[y*g.w : (y+1)*g.w])
	}
	return b.String()
}

// Count returns how many cells hold the given symbol.
func (g *Grid) Count(c uint8) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}
