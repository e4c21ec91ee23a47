package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	// Where solvers look for dayNN.txt when no -input is given.
	InputDir string `yaml:"input_dir"`

	// Watch-mode simulation pacing.
	FrameIntervalMs    int `yaml:"frame_interval_ms"`
	SnapshotEveryTicks int `yaml:"snapshot_every_ticks"`

	SnapshotDir string `yaml:"snapshot_dir"`
}

func Defaults() Tuning {
	return Tuning{
		InputDir:           "./inputs",
		FrameIntervalMs:    200,
		SnapshotEveryTicks: 50,
		SnapshotDir:        "./data/snapshots",
	}
}

func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}
