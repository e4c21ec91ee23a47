// Command watch runs the tilt spin simulation continuously and serves the
// live lattice to observer clients over websocket, writing periodic
// snapshots so a session can be resumed.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lattice.works/internal/encoding"
	"lattice.works/internal/indexdb"
	"lattice.works/internal/lattice"
	"lattice.works/internal/observer"
	"lattice.works/internal/snapshot"
	"lattice.works/internal/tilt"
	"lattice.works/internal/tuning"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		input      = flag.String("input", "", "path to the tilt grid input")
		tuningPath = flag.String("tuning", "./configs/tuning.yaml", "path to tuning.yaml (optional)")
		resume     = flag.String("resume", "", "path to a snapshot to resume from (optional)")
		dbPath     = flag.String("db", "", "sqlite index path for snapshot metadata (empty to disable)")
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

	var (
		state *lattice.Grid
		tick  uint64
	)
	switch {
	case *resume != "":
		st, err := snapshot.Read(*resume)
		if err != nil {
			logger.Fatal("read snapshot", zap.Error(err))
		}
		g, err := st.Grid()
		if err != nil {
			logger.Fatal("decode snapshot", zap.Error(err))
		}
		state, tick = g, st.Header.Tick
		logger.Info("resumed from snapshot", zap.String("path", *resume), zap.Uint64("tick", tick))
	case *input != "":
		raw, err := os.ReadFile(*input)
		if err != nil {
			logger.Fatal("read input", zap.Error(err))
		}
		state = lattice.Parse(string(raw))
	default:
		fmt.Fprintln(os.Stderr, "usage: watch -input grid.txt [-addr :8080] | watch -resume snapshot.zst")
		os.Exit(2)
	}

	var idx *indexdb.SQLiteIndex
	if *dbPath != "" {
		var err error
		idx, err = indexdb.OpenSQLite(*dbPath)
		if err != nil {
			logger.Fatal("open index", zap.Error(err))
		}
		defer idx.Close()
	}

	obs := observer.NewServer("tilt", logger)
	obs.Publish(frameOf(state, tick))

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/bootstrap", obs.BootstrapHandler())
	mux.HandleFunc("/v1/ws", obs.WSHandler())
	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		logger.Info("observer listening", zap.String("addr", *addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http serve", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Duration(tune.FrameIntervalMs) * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			state = tilt.Spin(state)
			tick++
			obs.Publish(frameOf(state, tick))

			if tune.SnapshotEveryTicks > 0 && tick%uint64(tune.SnapshotEveryTicks) == 0 {
				path := filepath.Join(tune.SnapshotDir, fmt.Sprintf("tilt-%08d.zst", tick))
				st := snapshot.Capture(state, "tilt", tick)
				if err := snapshot.Write(path, st); err != nil {
					logger.Warn("write snapshot", zap.Error(err))
				} else if idx != nil {
					idx.RecordSnapshot(indexdb.SnapshotRow{
						Tick: tick, Path: path, Width: state.Width(), Height: state.Height(),
					})
				}
			}
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info("stopped", zap.Uint64("tick", tick))
}

func frameOf(g *lattice.Grid, tick uint64) observer.Frame {
	return observer.Frame{
		Tick:     tick,
		Load:     tilt.NorthLoad(g),
		Width:    g.Width(),
		Height:   g.Height(),
		CellsRLE: encoding.EncodeRLE(g.Cells()),
	}
}
