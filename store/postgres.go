package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // registers the "postgres" driver
)

const schema = `CREATE TABLE IF NOT EXISTS geomesh_documents (
	key        TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres stores each document as one JSONB row keyed by key.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres opens a connection pool for dsn and ensures the schema.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenPostgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	s := NewPostgres(db)
	if err := s.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// NewPostgres wraps an existing pool. Call EnsureSchema before first use.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the documents table if it does not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("Postgres.EnsureSchema: %w", err)
	}

	return nil
}

// Close releases the pool.
func (s *Postgres) Close() error { return s.db.Close() }

// Save upserts doc under key.
func (s *Postgres) Save(ctx context.Context, key string, doc Document) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("Postgres.Save: %w", err)
	}
	b, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("Postgres.Save: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO geomesh_documents (key, body, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		key, string(b))
	if err != nil {
		return fmt.Errorf("Postgres.Save: %w", err)
	}

	return nil
}

// Load reads and validates the document under key.
func (s *Postgres) Load(ctx context.Context, key string) (Document, error) {
	if err := checkKey(key); err != nil {
		return Document{}, fmt.Errorf("Postgres.Load: %w", err)
	}
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM geomesh_documents WHERE key = $1`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("Postgres.Load: %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Document{}, fmt.Errorf("Postgres.Load: %w", err)
	}

	return Decode(body)
}

// Delete removes the row under key.
func (s *Postgres) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("Postgres.Delete: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM geomesh_documents WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("Postgres.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("Postgres.Delete: %s: %w", key, ErrNotFound)
	}

	return nil
}
