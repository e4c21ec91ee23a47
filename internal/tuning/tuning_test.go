package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("input_dir: /tmp/puzzles\nframe_interval_ms: 50\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tune, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tune.InputDir != "/tmp/puzzles" {
		t.Fatalf("input_dir: %q", tune.InputDir)
	}
	if tune.FrameIntervalMs != 50 {
		t.Fatalf("frame_interval_ms: %d", tune.FrameIntervalMs)
	}
	// Keys absent from the file keep their defaults.
	if tune.SnapshotEveryTicks != Defaults().SnapshotEveryTicks {
		t.Fatalf("snapshot_every_ticks: %d", tune.SnapshotEveryTicks)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	tune, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
	if tune != Defaults() {
		t.Fatalf("missing file must leave defaults intact: %+v", tune)
	}
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("frame_interval_ms: [not an int\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("want parse error")
	}
}
