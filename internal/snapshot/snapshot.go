// Package snapshot persists lattice states as zstd-compressed gob with a
// JSON header line, so a long spin simulation can be resumed or inspected.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"lattice.works/internal/encoding"
	"lattice.works/internal/lattice"
)

type Header struct {
	Version int    `json:"version"`
	Source  string `json:"source"`
	Tick    uint64 `json:"tick"`
}

type StateV1 struct {
	Header Header `json:"header"`

	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellsRLE string `json:"cells_rle"`
}

// Capture serializes the grid into a snapshot record.
func Capture(g *lattice.Grid, source string, tick uint64) StateV1 {
	return StateV1{
		Header:   Header{Version: 1, Source: source, Tick: tick},
		Width:    g.Width(),
		Height:   g.Height(),
		CellsRLE: encoding.EncodeRLE(g.Cells()),
	}
}

// Grid reconstructs the lattice; the occupancy layout (content and bounds)
// round-trips exactly.
func (st StateV1) Grid() (*lattice.Grid, error) {
	cells, err := encoding.DecodeRLE(st.CellsRLE)
	if err != nil {
		return nil, err
	}
	if len(cells) != st.Width*st.Height {
		return nil, fmt.Errorf("snapshot cells: got %d, want %dx%d", len(cells), st.Width, st.Height)
	}
	g := lattice.NewGrid(st.Width, st.Height)
	for row := 0; row < st.Height; row++ {
		for col := 0; col < st.Width; col++ {
			g.Set(lattice.Vec2i{Row: row, Col: col}, cells[row*st.Width+col])
		}
	}
	return g, nil
}

func Write(path string, st StateV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 64*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(st.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(&st); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

func Read(path string) (StateV1, error) {
	var st StateV1
	f, err := os.Open(path)
	if err != nil {
		return st, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return st, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	// Header line is advisory; the gob body repeats it.
	_, _ = br.ReadBytes('\n')

	if err := gob.NewDecoder(br).Decode(&st); err != nil {
		return st, fmt.Errorf("gob decode: %w", err)
	}
	return st, nil
}
