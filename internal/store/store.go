// Package store persists the current dataset in a local SQLite database.
// The store holds exactly one dataset: Replace swaps it wholesale inside a
// transaction and Load returns it in saved order. There is no incremental
// update path.
package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lzamboni86/dp-dashboardpos/pkg/contracts/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// timeLayout is how date fields are stored; NULL marks an absent date.
const timeLayout = time.RFC3339Nano

// Store is a SQLite-backed dataset store.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and ensures the
// schema exists. SQLite works best on a single connection, so the pool is
// pinned to one.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the saved dataset for records in a single transaction.
// Callers are expected to have already applied the record cap; Replace
// writes whatever it is given.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (
			position, region, stage, product, po_number, created_at,
			status, due_date, supplier, tracking, last_update
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.ExecContext(ctx,
			i,
			rec.Region,
			rec.Stage,
			rec.Product,
			rec.PONumber,
			timeToNull(rec.CreatedAt),
			rec.Status,
			timeToNull(rec.DueDate),
			rec.Supplier,
			rec.Tracking,
			timeToNull(rec.LastUpdate),
		)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Load returns the saved dataset in saved order, or an empty slice when
// nothing has been saved yet.
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT region, stage, product, po_number, created_at,
		       status, due_date, supplier, tracking, last_update
		FROM records
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var rec domain.Record
		var createdAt, dueDate, lastUpdate sql.NullString
		err := rows.Scan(
			&rec.Region,
			&rec.Stage,
			&rec.Product,
			&rec.PONumber,
			&createdAt,
			&rec.Status,
			&dueDate,
			&rec.Supplier,
			&rec.Tracking,
			&lastUpdate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.CreatedAt = nullToTime(createdAt)
		rec.DueDate = nullToTime(dueDate)
		rec.LastUpdate = nullToTime(lastUpdate)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Count returns the number of saved records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func timeToNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func nullToTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
