// Package store keeps saved results in an in-memory SQLite database.
//
// The database lives only as long as the process; nothing is written to disk.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/humanbench/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const memoryDSN = "file::memory:"

// Store wraps SQLite access for session results.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and applies migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, err
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database, discarding its contents.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			unit TEXT NOT NULL,
			rounds TEXT NOT NULL,
			ended_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_mode_ended_at ON results(mode, ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores a saved result, assigning its ID and end time when unset.
func (s *Store) InsertResult(ctx context.Context, result *model.SessionResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.EndedAt.IsZero() {
		result.EndedAt = time.Now()
	}
	if result.Unit == "" {
		result.Unit = result.Mode.Unit()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id, mode, score, unit, rounds, ended_at) VALUES (?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.Mode.String(),
		result.Score,
		string(result.Unit),
		encodeRounds(result.Rounds),
		result.EndedAt.UnixNano(),
	)
	return err
}

// ListResults returns results oldest first, optionally filtered to one mode.
func (s *Store) ListResults(ctx context.Context, mode *model.GameMode) ([]model.SessionResult, error) {
	query := `SELECT id, mode, score, unit, rounds, ended_at FROM results`
	args := []any{}
	if mode != nil {
		query += ` WHERE mode = ?`
		args = append(args, mode.String())
	}
	query += ` ORDER BY ended_at ASC, rowid ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.SessionResult
	for rows.Next() {
		var r model.SessionResult
		var modeName, unit, rounds string
		var endedAt int64
		if err := rows.Scan(&r.ID, &modeName, &r.Score, &unit, &rounds, &endedAt); err != nil {
			return nil, err
		}
		m, ok := model.ParseGameMode(modeName)
		if !ok {
			return nil, fmt.Errorf("unknown mode %q in result %s", modeName, r.ID)
		}
		r.Mode = m
		r.Unit = model.Unit(unit)
		if r.Rounds, err = decodeRounds(rounds); err != nil {
			return nil, fmt.Errorf("failed to decode rounds of %s: %w", r.ID, err)
		}
		r.EndedAt = time.Unix(0, endedAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func encodeRounds(rounds []int) string {
	parts := make([]string, len(rounds))
	for i, v := range rounds {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func decodeRounds(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
