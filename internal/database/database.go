package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options tunes the connection pool and the session every connection starts with.
type Options struct {
	AppName         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// New opens a pgx backed *sql.DB and checks it is reachable. Novelty and
// advance dates are DATE columns, so the session time zone only affects
// created_at/updated_at rendering.
func New(ctx context.Context, connStr string, opts Options) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if opts.AppName != "" {
		connConfig.RuntimeParams["application_name"] = opts.AppName
	}

	if opts.TimeZone != "" {
		connConfig.RuntimeParams["timezone"] = opts.TimeZone
	}

	db := stdlib.OpenDB(*connConfig)

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
