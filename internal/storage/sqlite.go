// Package storage provides SQLite-based persistence for traced laps.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/borderwalk/internal/config"
	"github.com/vovakirdan/borderwalk/internal/grid"
)

// Store manages the SQLite database connection for saved laps.
type Store struct {
	db *sql.DB
}

// Trace is one recorded lap around an area.
type Trace struct {
	ID        int64
	AreaID    string
	Start     grid.Coord
	CellCount int
	Cells     []grid.Coord // Walk order; only filled by TraceByID
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS traces (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			area_id TEXT NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			cell_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_traces_area_id ON traces(area_id);

		CREATE TABLE IF NOT EXISTS trace_cells (
			trace_id INTEGER NOT NULL REFERENCES traces(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			PRIMARY KEY (trace_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTrace records a lap and its cells in one transaction.
// Returns the ID of the inserted trace.
func (s *Store) SaveTrace(tr Trace) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		"INSERT INTO traces (area_id, start_x, start_y, cell_count) VALUES (?, ?, ?, ?)",
		tr.AreaID, tr.Start.X, tr.Start.Y, len(tr.Cells),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save trace: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO trace_cells (trace_id, seq, x, y) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range tr.Cells {
		if _, err := stmt.Exec(id, i, c.X, c.Y); err != nil {
			return 0, fmt.Errorf("storage: cannot save cell %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit trace: %w", err)
	}
	return id, nil
}

// TraceByID retrieves a lap with its cells.
// Returns nil, nil if no such trace exists.
func (s *Store) TraceByID(id int64) (*Trace, error) {
	var tr Trace
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, area_id, start_x, start_y, cell_count, created_at
		 FROM traces
		 WHERE id = ?`,
		id,
	).Scan(&tr.ID, &tr.AreaID, &tr.Start.X, &tr.Start.Y, &tr.CellCount, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query trace: %w", err)
	}
	tr.CreatedAt = parseTime(createdAt)

	tr.Cells, err = s.Cells(id)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// Cells returns the cells of a lap in walk order.
func (s *Store) Cells(traceID int64) ([]grid.Coord, error) {
	rows, err := s.db.Query(
		"SELECT x, y FROM trace_cells WHERE trace_id = ? ORDER BY seq",
		traceID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cells: %w", err)
	}
	defer rows.Close()

	var cells []grid.Coord
	for rows.Next() {
		var c grid.Coord
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cells, nil
}

// RecentTraces retrieves the most recent laps, newest first, without cells.
// An empty areaID matches every area.
func (s *Store) RecentTraces(areaID string, limit int) ([]Trace, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, area_id, start_x, start_y, cell_count, created_at
		 FROM traces
		 WHERE ? = '' OR area_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		areaID, areaID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query traces: %w", err)
	}
	defer rows.Close()

	var traces []Trace
	for rows.Next() {
		var tr Trace
		var createdAt any
		if err := rows.Scan(&tr.ID, &tr.AreaID, &tr.Start.X, &tr.Start.Y, &tr.CellCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tr.CreatedAt = parseTime(createdAt)
		traces = append(traces, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return traces, nil
}

// DeleteTraces deletes all laps for the given area and returns how many went.
func (s *Store) DeleteTraces(areaID string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		"DELETE FROM trace_cells WHERE trace_id IN (SELECT id FROM traces WHERE area_id = ?)",
		areaID,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot delete cells: %w", err)
	}

	res, err := tx.Exec("DELETE FROM traces WHERE area_id = ?", areaID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete traces: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted traces: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
