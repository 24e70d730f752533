package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect names the SQL flavour behind the connection.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

var (
	db      *sql.DB
	dialect Dialect
	once    sync.Once
)

// DriverFor picks the database/sql driver and DSN for a database URL.
// postgres:// and postgresql:// URLs use pgx, everything else is a sqlite file.
func DriverFor(databaseURL string) (driver string, dsn string, d Dialect) {
	lower := strings.ToLower(databaseURL)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return "pgx", databaseURL, Postgres
	case strings.HasPrefix(lower, "sqlite://"):
		return "sqlite3", databaseURL[len("sqlite://"):], SQLite
	default:
		return "sqlite3", databaseURL, SQLite
	}
}

// Open opens and pings a new connection without touching the package handle.
func Open(ctx context.Context, databaseURL string) (*sql.DB, Dialect, error) {
	driver, dsn, d := DriverFor(databaseURL)
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, d, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, d, fmt.Errorf("failed to ping database: %w", err)
	}
	if d == SQLite {
		// sqlite allows a single writer; serialise through one connection
		conn.SetMaxOpenConns(1)
	}
	return conn, d, nil
}

// Init initializes the package database connection
func Init(ctx context.Context, databaseURL string, logger *slog.Logger) error {
	var err error
	once.Do(func() {
		db, dialect, err = Open(ctx, databaseURL)
		if err != nil {
			return
		}
		logger.Info("database initialized", "dialect", dialect)
	})
	return err
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// CurrentDialect returns the dialect of the initialized connection.
func CurrentDialect() Dialect {
	return dialect
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB, d Dialect) {
	db = database
	dialect = d
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Ping checks connectivity of the package connection.
func Ping(ctx context.Context) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	return db.PingContext(ctx)
}
