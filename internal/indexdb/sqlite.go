// Package indexdb keeps a small sqlite read-model of solver runs and watch
// snapshots. It is a secondary index: writes are asynchronous and may be
// dropped under pressure without affecting the solvers themselves.
package indexdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type RunRow struct {
	Day         int
	Part1       int64
	Part2       int64
	Skipped     int
	InputDigest string
	DurationMS  int64
	RecordedAt  string
}

type SnapshotRow struct {
	Tick   uint64
	Path   string
	Width  int
	Height int
}

type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	// mu serializes Record* sends against Close; sending on a closed
	// channel panics, so closed is checked under the same lock that
	// closes it.
	mu     sync.Mutex
	closed bool
}

type reqKind int

const (
	reqRun reqKind = iota + 1
	reqSnapshot
)

type req struct {
	kind reqKind

	run  RunRow
	snap SnapshotRow
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, 4096),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL is much faster for append-style workloads; NORMAL is a decent
	// durability/perf tradeoff for a secondary index.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day INTEGER NOT NULL,
			part1 INTEGER NOT NULL,
			part2 INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			input_digest TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day, recorded_at);`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			tick INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	if _, err := db.Exec(`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1')`); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

func (s *SQLiteIndex) RecordRun(r RunRow) {
	if s == nil {
		return
	}
	if r.RecordedAt == "" {
		r.RecordedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- req{kind: reqRun, run: r}:
	default:
		// Drop if the indexer falls behind; the run log remains the source
		// of truth.
	}
}

func (s *SQLiteIndex) RecordSnapshot(r SnapshotRow) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- req{kind: reqSnapshot, snap: r}:
	default:
	}
}

// Runs returns the most recent runs, newest first.
func (s *SQLiteIndex) Runs(limit int) ([]RunRow, error) {
	rows, err := s.db.Query(
		`SELECT day, part1, part2, skipped, input_digest, duration_ms, recorded_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.Day, &r.Part1, &r.Part2, &r.Skipped, &r.InputDigest, &r.DurationMS, &r.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteIndex) loop() {
	ctx := context.Background()

	insertRun, _ := s.db.Prepare(`INSERT INTO runs(day,part1,part2,skipped,input_digest,duration_ms,recorded_at) VALUES(?,?,?,?,?,?,?)`)
	insertSnap, _ := s.db.Prepare(`INSERT OR REPLACE INTO snapshots(tick,path,width,height) VALUES(?,?,?,?)`)
	defer func() {
		if insertRun != nil {
			_ = insertRun.Close()
		}
		if insertSnap != nil {
			_ = insertSnap.Close()
		}
	}()

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 256
		commitMaxWait = 2 * time.Second
	)

	begin := func() {
		if tx != nil {
			return
		}
		txx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			return
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
	}
	commit := func() {
		if tx == nil {
			return
		}
		_ = tx.Commit()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	rollback := func() {
		if tx == nil {
			return
		}
		_ = tx.Rollback()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}

	for r := range s.ch {
		begin()
		if tx == nil {
			continue
		}
		switch r.kind {
		case reqRun:
			if insertRun == nil {
				break
			}
			if _, err := tx.Stmt(insertRun).Exec(
				r.run.Day, r.run.Part1, r.run.Part2, r.run.Skipped,
				r.run.InputDigest, r.run.DurationMS, r.run.RecordedAt,
			); err != nil {
				rollback()
				continue
			}
			opCount++

		case reqSnapshot:
			if insertSnap == nil {
				break
			}
			if _, err := tx.Stmt(insertSnap).Exec(
				int64(r.snap.Tick), r.snap.Path, r.snap.Width, r.snap.Height,
			); err != nil {
				rollback()
				continue
			}
			opCount++
		}

		if opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait {
			commit()
		}
	}

	commit()
}
