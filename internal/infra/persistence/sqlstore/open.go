// Package sqlstore implements the catalog repositories on database/sql for
// MySQL (go-sql-driver/mysql) and PostgreSQL (pgx stdlib).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MiniShopTech/MiniShop/internal/pkg/query"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the database named by opts and verifies the connection.
func Open(ctx context.Context, opts Options) (*sql.DB, query.Dialect, error) {
	var (
		driverName string
		dialect    query.Dialect
	)
	switch opts.Driver {
	case DriverMySQL:
		driverName, dialect = "mysql", query.MySQL
	case DriverPostgres:
		driverName, dialect = "pgx", query.Postgres
	default:
		return nil, 0, fmt.Errorf("sqlstore: unsupported driver %q", opts.Driver)
	}

	db, err := sql.Open(driverName, opts.DSN)
	if err != nil {
		return nil, 0, err
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, 0, fmt.Errorf("sqlstore: ping %s: %w", opts.Driver, err)
	}
	return db, dialect, nil
}
