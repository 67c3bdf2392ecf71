// Package postgres stores items and sequences in PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ganot/tasktrack/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const driverName = "pgx"

// DB wraps a PostgreSQL connection pool
type DB struct {
	*sql.DB
}

// Open connects to dsn and verifies the connection
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations applies the embedded schema
func (db *DB) RunMigrations(ctx context.Context) error {
	if err := migrations.Apply(ctx, db.DB, migrations.Postgres); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
