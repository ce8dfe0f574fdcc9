// File path: internal/catalog/store.go

// Package catalog persists rendered onboarding snapshots in SQLite. The
// generator itself stays stateless; a snapshot is only written when a caller
// explicitly asks for the current output of every flow to be captured.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when the requested snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one captured rendering of every registered flow for a single
// parameter bundle.
type Snapshot struct {
	ID        int64  `db:"id" json:"id"`
	CreatedAt string `db:"created_at" json:"created_at"`
	DSN       string `db:"dsn" json:"dsn"`
	Params    string `db:"params" json:"params"`

	Documents []Document `db:"-" json:"documents,omitempty"`
}

// Document holds one flow's rendered output inside a snapshot: the markdown
// document and the structured JSON payload the docs UI consumes.
type Document struct {
	Flow     string `db:"flow" json:"flow"`
	Markdown string `db:"markdown" json:"markdown"`
	Payload  string `db:"payload" json:"payload"`
}

// Store wraps a pooled sqlx.DB connection to the snapshot catalog.
type Store struct {
	db *sqlx.DB
}

// Open constructs a Store backed by the SQLite database at the provided path,
// falling back to environment configuration when the path is empty. The
// schema is migrated on first use.
func Open(path string) (*Store, error) {
	cfg := LoadConfig()
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		cfg.Path = trimmed
	}
	return OpenWithConfig(cfg)
}

// OpenWithConfig constructs a Store using the provided configuration.
func OpenWithConfig(cfg Config) (*Store, error) {
	cfg = applyDefaults(cfg)
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}
	busy := int(cfg.BusyTimeout / time.Millisecond)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", abs, busy)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.BusyTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping catalog: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                created_at TEXT NOT NULL,
                dsn TEXT NOT NULL,
                params TEXT NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS snapshot_documents (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
                flow TEXT NOT NULL,
                markdown TEXT NOT NULL,
                payload TEXT NOT NULL
        );`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_documents_snapshot
                ON snapshot_documents(snapshot_id);`,
}

// SaveSnapshot persists the snapshot and its documents, returning the new id.
func (s *Store) SaveSnapshot(ctx context.Context, snap Snapshot) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("catalog store not initialised")
	}
	if len(snap.Documents) == 0 {
		return 0, errors.New("snapshot requires at least one document")
	}
	createdAt := strings.TrimSpace(snap.CreatedAt)
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin snapshot: %w", err)
	}
	result, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (created_at, dsn, params) VALUES (?, ?, ?)`,
		createdAt, snap.DSN, snap.Params,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("snapshot id: %w", err)
	}
	for _, doc := range snap.Documents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_documents (snapshot_id, flow, markdown, payload) VALUES (?, ?, ?, ?)`,
			id, doc.Flow, doc.Markdown, doc.Payload,
		); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("insert snapshot document %s: %w", doc.Flow, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit snapshot: %w", err)
	}
	return id, nil
}

// ListSnapshots returns snapshot headers, newest first, without documents.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("catalog store not initialised")
	}
	var snapshots []Snapshot
	err := s.db.SelectContext(ctx, &snapshots,
		`SELECT id, created_at, dsn, params FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

// GetSnapshot loads a snapshot with its documents.
func (s *Store) GetSnapshot(ctx context.Context, id int64) (Snapshot, error) {
	if s == nil || s.db == nil {
		return Snapshot{}, errors.New("catalog store not initialised")
	}
	var snap Snapshot
	err := s.db.GetContext(ctx, &snap,
		`SELECT id, created_at, dsn, params FROM snapshots WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	err = s.db.SelectContext(ctx, &snap.Documents,
		`SELECT flow, markdown, payload FROM snapshot_documents WHERE snapshot_id = ? ORDER BY flow`, id)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot documents: %w", err)
	}
	return snap, nil
}
