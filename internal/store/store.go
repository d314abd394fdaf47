// Package store implements the Postgres staging and merge path for uploaded
// result files.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tables describes the staging and permanent tables the store operates on.
// Both tables share the same column layout; the permanent table carries a
// uniqueness constraint spanning every column. Schema lifecycle is owned
// externally — Migrate exists for dev and test environments.
type Tables struct {
	Staging  string
	Results  string
	IDColumn string
	Columns  []string
}

// Store is a Postgres-backed loader for race result data.
type Store struct {
	pool   *pgxpool.Pool
	tables Tables
}

// New creates a new Store and verifies the connection.
func New(ctx context.Context, dsn string, tables Tables) (*Store, error) {
	if len(tables.Columns) == 0 {
		return nil, fmt.Errorf("table columns required")
	}
	if tables.Staging == "" || tables.Results == "" {
		return nil, fmt.Errorf("staging and results table names required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &Store{pool: pool, tables: tables}, nil
}

// Migrate runs the schema DDL to create the staging and results tables.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, buildSchemaDDL(s.tables))
	if err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}

// ResultCount returns the number of rows in the permanent table.
func (s *Store) ResultCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+quoteIdent(s.tables.Results)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", s.tables.Results, err)
	}
	return n, nil
}

// StagingCount returns the number of rows currently staged. Zero at rest.
func (s *Store) StagingCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+quoteIdent(s.tables.Staging)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", s.tables.Staging, err)
	}
	return n, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
