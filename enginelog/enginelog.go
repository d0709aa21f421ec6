// Package enginelog persists a one-row-per-expressed-chart record to a
// local SQLite file: chart type, the bracket method the caller reports,
// step and mine counts, and wall-clock duration. It exists for offline auditing
// of a batch run, not for anything the engine itself reads back.
package enginelog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/google/uuid"
)

// Sink writes expression records to a SQLite database.
type Sink struct {
	db *sql.DB
}

// Record is one expressed chart's summary.
type Record struct {
	ID             string
	ChartType      string
	BracketMethod  string
	StepCount      int
	MineCount      int
	Retried        bool
	DurationMillis int64
	ExpressedAt    time.Time
	Extra          map[string]any
}

// Open opens (creating if necessary) the SQLite file at path, sets WAL
// journal mode for concurrent-friendly append-only writes, and runs the
// schema migration.
func Open(path string) (*Sink, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("enginelog: open %s: %w", path, err)
	}

	s := &Sink{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("enginelog: migrate: %w", err)
	}
	return s, nil
}

func (s *Sink) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS expressions (
		id              TEXT PRIMARY KEY,
		chart_type      TEXT NOT NULL,
		bracket_method  TEXT NOT NULL,
		step_count      INTEGER NOT NULL,
		mine_count      INTEGER NOT NULL,
		retried         INTEGER NOT NULL DEFAULT 0,
		duration_millis INTEGER NOT NULL,
		expressed_at    DATETIME NOT NULL,
		extra           TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_expressions_chart_type ON expressions(chart_type);
	CREATE INDEX IF NOT EXISTS idx_expressions_expressed_at ON expressions(expressed_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database handle.
func (s *Sink) Close() error {
	return s.db.Close()
}

// Record inserts one expression record, assigning it a fresh ID if r.ID
// is empty, and returns the ID actually stored.
func (s *Sink) Record(r Record) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ExpressedAt.IsZero() {
		r.ExpressedAt = time.Now().UTC()
	}

	var extra sql.NullString
	if len(r.Extra) > 0 {
		b, err := json.Marshal(r.Extra)
		if err != nil {
			return "", fmt.Errorf("enginelog: marshal extra: %w", err)
		}
		extra = sql.NullString{String: string(b), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO expressions (id, chart_type, bracket_method, step_count, mine_count, retried, duration_millis, expressed_at, extra)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ChartType, r.BracketMethod, r.StepCount, r.MineCount, r.Retried, r.DurationMillis, r.ExpressedAt, extra,
	)
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

// Recent returns the most recently recorded expressions, newest first.
func (s *Sink) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, chart_type, bracket_method, step_count, mine_count, retried, duration_millis, expressed_at, extra
		 FROM expressions ORDER BY expressed_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var extra sql.NullString
		if err := rows.Scan(&r.ID, &r.ChartType, &r.BracketMethod, &r.StepCount, &r.MineCount, &r.Retried, &r.DurationMillis, &r.ExpressedAt, &extra); err != nil {
			return nil, err
		}
		if extra.Valid {
			if err := json.Unmarshal([]byte(extra.String), &r.Extra); err != nil {
				return nil, fmt.Errorf("enginelog: unmarshal extra for %s: %w", r.ID, err)
			}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountByChartType returns how many expressions were recorded per chart
// type, for a quick batch-run summary.
func (s *Sink) CountByChartType() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT chart_type, COUNT(*) FROM expressions GROUP BY chart_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var chartType string
		var count int
		if err := rows.Scan(&chartType, &count); err != nil {
			return nil, err
		}
		counts[chartType] = count
	}
	return counts, rows.Err()
}
