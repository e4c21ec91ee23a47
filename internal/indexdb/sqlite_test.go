package indexdb

import (
	"path/filepath"
	"sync"
	"testing"
)

func TestRecordRun_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx", "results.db")

	idx, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	idx.RecordRun(RunRow{Day: 14, Part1: 136, Part2: 64, InputDigest: "abc", DurationMS: 3})
	idx.RecordRun(RunRow{Day: 16, Part1: 46, Part2: 51, InputDigest: "def", DurationMS: 9})
	idx.RecordSnapshot(SnapshotRow{Tick: 50, Path: "tilt-00000050.zst", Width: 10, Height: 10})
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	idx, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer idx.Close()

	runs, err := idx.Runs(10)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs: got %d, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Day != 16 || runs[1].Day != 14 {
		t.Fatalf("order: %+v", runs)
	}
	if runs[1].Part1 != 136 || runs[1].Part2 != 64 || runs[1].InputDigest != "abc" {
		t.Fatalf("row: %+v", runs[1])
	}
	if runs[0].RecordedAt == "" {
		t.Fatalf("recorded_at not filled")
	}
}

func TestRunsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	idx, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 5; i++ {
		idx.RecordRun(RunRow{Day: 1, InputDigest: "x"})
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	idx, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer idx.Close()
	runs, err := idx.Runs(3)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("limit: got %d rows", len(runs))
	}
}

func TestRecordAfterClose_Ignored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	idx, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Must not panic on the closed channel.
	idx.RecordRun(RunRow{Day: 1})
	idx.RecordSnapshot(SnapshotRow{Tick: 1})
	if err := idx.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestRecordConcurrentWithClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	idx, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// Recorders racing Close must never hit the closed channel; late
	// records are dropped, not a panic.
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				idx.RecordRun(RunRow{Day: 1, InputDigest: "x"})
				idx.RecordSnapshot(SnapshotRow{Tick: uint64(i), Path: "p"})
			}
		}()
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	wg.Wait()
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("want error for empty path")
	}
}
