// Package history keeps an audit trail of served predictions in SQLite.
// It is write-once per request and read by the listing endpoint; losing a
// row is never allowed to fail the prediction that produced it.
package history

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrovet/pashumitra/internal/logging"

	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// Entry is one recorded prediction.
type Entry struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Animal      string    `json:"animal"`
	Symptoms    string    `json:"symptoms"`
	Disease     string    `json:"disease"`
	Probability float64   `json:"probability"`
	RiskLevel   string    `json:"risk_level"`
}

// Store persists prediction entries.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// NewStore runs the schema migration and returns a Store over db.
func NewStore(db *sql.DB, logger logging.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Open opens (or creates) the history database at path and migrates it.
func Open(path string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database %s: %w", path, err)
	}
	// Single writer keeps SQLite happy under concurrent requests.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil && logger != nil {
		logger.Warn("setting history pragmas", logging.Field{Key: "error", Value: err.Error()})
	}
	store, err := NewStore(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Record inserts one entry. The id and timestamp are assigned here.
func (s *Store) Record(ctx context.Context, e Entry) error {
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO predictions (id, created_at, animal, symptoms, disease, probability, risk_level)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.Unix(), e.Animal, e.Symptoms, e.Disease, e.Probability, e.RiskLevel)
	if err != nil {
		return fmt.Errorf("recording prediction: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first. limit <= 0 uses 50.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, animal, symptoms, disease, probability, risk_level
		 FROM predictions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing predictions: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &ts, &e.Animal, &e.Symptoms, &e.Disease, &e.Probability, &e.RiskLevel); err != nil {
			return nil, fmt.Errorf("scanning prediction row: %w", err)
		}
		e.CreatedAt = time.Unix(ts, 0).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
