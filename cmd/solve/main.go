package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"lattice.works/internal/indexdb"
	"lattice.works/internal/manifest"
	"lattice.works/internal/runlog"
	"lattice.works/internal/solver"
	"lattice.works/internal/tuning"
)

func main() {
	var (
		day          = flag.Int("day", 0, "puzzle day to solve")
		input        = flag.String("input", "", "path to the input text file (default: <input_dir>/dayNN.txt)")
		all          = flag.Bool("all", false, "solve every implemented day")
		tuningPath   = flag.String("tuning", "./configs/tuning.yaml", "path to tuning.yaml (optional)")
		dbPath       = flag.String("db", "", "sqlite results index path (empty to disable)")
		runlogDir    = flag.String("runlog", "", "run log directory (empty to disable)")
		manifestPath = flag.String("manifest", "", "puzzle manifest path")
		verify       = flag.Bool("verify", false, "verify answers against the manifest")
	)
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	tune := tuning.Defaults()
	if t, err := tuning.Load(*tuningPath); err == nil {
		tune = t
	} else if !os.IsNotExist(err) {
		logger.Fatal("load tuning", zap.Error(err))
	}

	var idx *indexdb.SQLiteIndex
	if *dbPath != "" {
		var err error
		idx, err = indexdb.OpenSQLite(*dbPath)
		if err != nil {
			logger.Fatal("open results index", zap.Error(err))
		}
		defer idx.Close()
	}

	var rl *runlog.Writer
	if *runlogDir != "" {
		rl = runlog.NewWriter(*runlogDir)
		defer rl.Close()
	}

	if *verify {
		if *manifestPath == "" {
			logger.Fatal("-verify requires -manifest")
		}
		m, err := manifest.Load(*manifestPath)
		if err != nil {
			logger.Fatal("load manifest", zap.Error(err))
		}
		if failed := verifyAll(m, filepath.Dir(*manifestPath), idx, rl, logger); failed > 0 {
			logger.Error("verification failed", zap.Int("mismatches", failed))
			os.Exit(1)
		}
		logger.Info("all manifest answers verified")
		return
	}

	var days []int
	switch {
	case *all:
		days = solver.Days()
	case *day > 0:
		days = []int{*day}
	default:
		fmt.Fprintln(os.Stderr, "usage: solve -day N [-input file] | solve -all | solve -verify -manifest file")
		os.Exit(2)
	}

	for _, d := range days {
		path := *input
		if path == "" || len(days) > 1 {
			path = filepath.Join(tune.InputDir, fmt.Sprintf("day%02d.txt", d))
		}
		ans, err := runOne(d, path, idx, rl, logger)
		if err != nil {
			logger.Fatal("solve", zap.Int("day", d), zap.Error(err))
		}
		if len(days) > 1 {
			fmt.Printf("Day %d\n", d)
		}
		fmt.Printf("Part 1 solution: %d\n", ans.Part1)
		fmt.Printf("Part 2 solution: %d\n", ans.Part2)
	}
}

func runOne(day int, path string, idx *indexdb.SQLiteIndex, rl *runlog.Writer, logger *zap.Logger) (solver.Answers, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return solver.Answers{}, err
	}
	sum := sha256.Sum256(raw)
	digest := hex.EncodeToString(sum[:])

	start := time.Now()
	ans, err := solver.Solve(day, string(raw))
	if err != nil {
		return solver.Answers{}, err
	}
	elapsed := time.Since(start)

	if ans.Skipped > 0 {
		logger.Debug("skipped malformed input lines", zap.Int("day", day), zap.Int("lines", ans.Skipped))
	}

	if idx != nil {
		idx.RecordRun(indexdb.RunRow{
			Day:         day,
			Part1:       ans.Part1,
			Part2:       ans.Part2,
			Skipped:     ans.Skipped,
			InputDigest: digest,
			DurationMS:  elapsed.Milliseconds(),
		})
	}
	if rl != nil {
		if err := rl.Write(runlog.Entry{
			Day:         day,
			Part1:       ans.Part1,
			Part2:       ans.Part2,
			Skipped:     ans.Skipped,
			InputDigest: digest,
			DurationMS:  elapsed.Milliseconds(),
			RecordedAt:  time.Now().UTC().Format(time.RFC3339Nano),
		}); err != nil {
			logger.Warn("run log write", zap.Error(err))
		}
	}
	return ans, nil
}

func verifyAll(m manifest.Manifest, baseDir string, idx *indexdb.SQLiteIndex, rl *runlog.Writer, logger *zap.Logger) int {
	failed := 0
	for _, p := range m.Puzzles {
		path := p.Input
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		ans, err := runOne(p.Day, path, idx, rl, logger)
		if err != nil {
			logger.Error("verify", zap.Int("day", p.Day), zap.Error(err))
			failed++
			continue
		}
		if p.Part1 != nil && *p.Part1 != ans.Part1 {
			logger.Error("part 1 mismatch", zap.Int("day", p.Day), zap.Int64("got", ans.Part1), zap.Int64("want", *p.Part1))
			failed++
		}
		if p.Part2 != nil && *p.Part2 != ans.Part2 {
			logger.Error("part 2 mismatch", zap.Int("day", p.Day), zap.Int64("got", ans.Part2), zap.Int64("want", *p.Part2))
			failed++
		}
	}
	return failed
}
