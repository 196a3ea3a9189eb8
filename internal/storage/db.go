// Package storage owns the connection to the relational store. Repositories
// never open connections themselves; they share the pool handed out here.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"lookmyshow/internal/config"
)

// Connect opens the Postgres pool and verifies it with a ping. The source
// design acquired one connection per logical operation; database/sql's pool
// preserves that contract (each query checks a connection out and back in)
// without a live shared handle.
func Connect(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqldb, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return bun.NewDB(sqldb, pgdialect.New()), nil
}
