package scada

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// maxRows bounds every non-aggregate read.
const maxRows = 10

// Reading is one telemetry log row.
type Reading struct {
	Timestamp time.Time
	Equipment string
	Metric    string
	Value     float64
	Unit      string
	ErrorCode string
}

// Store persists SCADA telemetry logs in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the telemetry database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// migrate creates the log table if it does not exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scada_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TIMESTAMP NOT NULL,
		equipment TEXT NOT NULL,
		metric_name TEXT NOT NULL,
		value REAL NOT NULL,
		unit TEXT,
		error_code TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_scada_logs_metric ON scada_logs(metric_name);
	CREATE INDEX IF NOT EXISTS idx_scada_logs_timestamp ON scada_logs(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertReadings appends telemetry rows. Used by the seed command and tests.
func (s *Store) InsertReadings(ctx context.Context, readings []Reading) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scada_logs (timestamp, equipment, metric_name, value, unit, error_code)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range readings {
		var errorCode any
		if r.ErrorCode != "" {
			errorCode = r.ErrorCode
		}
		if _, err := stmt.ExecContext(ctx,
			r.Timestamp.UTC().Format(time.RFC3339), r.Equipment, r.Metric, r.Value, r.Unit, errorCode,
		); err != nil {
			return fmt.Errorf("inserting reading: %w", err)
		}
	}

	return tx.Commit()
}

// RecentByMetric returns the newest rows for a metric, optionally filtered
// to a month ("01".."12"), bounded at maxRows.
func (s *Store) RecentByMetric(ctx context.Context, metric, month string) ([]Reading, error) {
	query := `SELECT timestamp, equipment, metric_name, value, unit, error_code
		FROM scada_logs WHERE metric_name = ?`
	args := []any{metric}
	if month != "" {
		query += ` AND strftime('%m', timestamp) = ?`
		args = append(args, month)
	}
	query += ` ORDER BY timestamp DESC LIMIT ?`
	args = append(args, maxRows)

	return s.queryReadings(ctx, query, args...)
}

// AverageValue returns the average value for a metric, optionally filtered
// to a month. The second return value is false when no rows matched.
func (s *Store) AverageValue(ctx context.Context, metric, month string) (float64, bool, error) {
	query := `SELECT AVG(value) FROM scada_logs WHERE metric_name = ?`
	args := []any{metric}
	if month != "" {
		query += ` AND strftime('%m', timestamp) = ?`
		args = append(args, month)
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("querying average: %w", err)
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}

// ErrorRecords returns the newest rows carrying a fault code, optionally
// filtered to a month, bounded at maxRows.
func (s *Store) ErrorRecords(ctx context.Context, month string) ([]Reading, error) {
	query := `SELECT timestamp, equipment, metric_name, value, unit, error_code
		FROM scada_logs WHERE error_code IS NOT NULL`
	args := []any{}
	if month != "" {
		query += ` AND strftime('%m', timestamp) = ?`
		args = append(args, month)
	}
	query += ` ORDER BY timestamp DESC LIMIT ?`
	args = append(args, maxRows)

	return s.queryReadings(ctx, query, args...)
}

func (s *Store) queryReadings(ctx context.Context, query string, args ...any) ([]Reading, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	var readings []Reading
	for rows.Next() {
		var (
			r         Reading
			ts        string
			unit      sql.NullString
			errorCode sql.NullString
		)
		if err := rows.Scan(&ts, &r.Equipment, &r.Metric, &r.Value, &unit, &errorCode); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			r.Timestamp = parsed
		}
		r.Unit = unit.String
		r.ErrorCode = errorCode.String
		readings = append(readings, r)
	}
	return readings, rows.Err()
}
