package chartstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/lunarium-dev/ganzhi/chart"
	"github.com/lunarium-dev/ganzhi/pillar"
)

var (
	// ErrEmptyPath indicates Open was called without a database path.
	ErrEmptyPath = errors.New("chartstore: empty database path")

	// ErrEmptyName indicates a record operation without a chart name.
	ErrEmptyName = errors.New("chartstore: empty chart name")

	// ErrNilChart indicates Save was called with a nil chart.
	ErrNilChart = errors.New("chartstore: nil chart")

	// ErrNotFound indicates no record matches the requested name.
	ErrNotFound = errors.New("chartstore: chart not found")

	// ErrDuplicateName indicates a Save against an already-used name.
	ErrDuplicateName = errors.New("chartstore: duplicate chart name")
)

const schema = `
CREATE TABLE IF NOT EXISTS charts (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  name       TEXT NOT NULL UNIQUE,
  day_master TEXT NOT NULL,
  pillars    TEXT NOT NULL,
  input_json TEXT NOT NULL,
  chart_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);`

// Record is one archived chart with its original input.
type Record struct {
	ID        int64
	Name      string
	Input     chart.Input
	Chart     chart.Chart
	CreatedAt time.Time
}

// Summary is the listing view of a record; the JSON payload stays on
// disk.
type Summary struct {
	ID        int64
	Name      string
	DayMaster string
	Pillars   string
	CreatedAt time.Time
}

// Store persists charts in a single SQLite file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the chart archive at path.
//
// Errors: ErrEmptyPath, or a wrapped driver error.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("chartstore: open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("chartstore: ping db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("chartstore: create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying handle. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save archives one computed chart under a unique name and returns the
// new record's ID.
//
// Errors: ErrEmptyName, ErrNilChart, ErrDuplicateName, or a wrapped
// driver error.
func (s *Store) Save(ctx context.Context, name string, in chart.Input, natal *chart.Chart) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if natal == nil {
		return 0, ErrNilChart
	}

	inputJSON, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("chartstore: encode input: %w", err)
	}
	chartJSON, err := json.Marshal(natal)
	if err != nil {
		return 0, fmt.Errorf("chartstore: encode chart: %w", err)
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO charts (name, day_master, pillars, input_json, chart_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name,
		natal.DayMaster.Stem,
		pillarLine(natal.Pillars.List()),
		string(inputJSON),
		string(chartJSON),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateName
		}
		return 0, fmt.Errorf("chartstore: save chart: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("chartstore: save chart: %w", err)
	}
	return id, nil
}

// Load returns the archived record named name.
//
// Errors: ErrEmptyName, ErrNotFound, or a wrapped driver error.
func (s *Store) Load(ctx context.Context, name string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrEmptyName
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, input_json, chart_json, created_at
		   FROM charts
		  WHERE name = ?`,
		name,
	)

	var rec Record
	var inputJSON, chartJSON string
	var createdAt int64
	if err := row.Scan(&rec.ID, &rec.Name, &inputJSON, &chartJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("chartstore: load chart: %w", err)
	}
	if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
		return Record{}, fmt.Errorf("chartstore: decode input: %w", err)
	}
	if err := json.Unmarshal([]byte(chartJSON), &rec.Chart); err != nil {
		return Record{}, fmt.Errorf("chartstore: decode chart: %w", err)
	}
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	return rec, nil
}

// List returns summaries of every archived chart in insertion order.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, day_master, pillars, created_at
		   FROM charts
		  ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("chartstore: list charts: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var createdAt int64
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.DayMaster, &sum.Pillars, &createdAt); err != nil {
			return nil, fmt.Errorf("chartstore: list charts: %w", err)
		}
		sum.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chartstore: list charts: %w", err)
	}
	return out, nil
}

// Delete removes the record named name.
//
// Errors: ErrEmptyName, ErrNotFound, or a wrapped driver error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM charts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("chartstore: delete chart: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("chartstore: delete chart: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// pillarLine renders "Geng Wu / Ji Mao / Ji You / Ji Si".
func pillarLine(ps []pillar.Pillar) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.Combined())
	}
	return strings.Join(parts, " / ")
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
