package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
)

// Open connects to the configured database and returns the ent driver used by the
// stores, together with a cleanup func.
func Open(cfg *config.Config, logger logrus.FieldLogger) (dialect.Driver, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	var drv *entsql.Driver
	cleanup := func() {}
	switch driver {
	case config.DriverPgx:
		pool, err := NewPool(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		drv = entsql.OpenDB(dialect.Postgres, stdlib.OpenDBFromPool(pool))
		cleanup = pool.Close
	case config.DriverPostgres:
		drv, err = openPostgres(cfg)
	case config.DriverSQLite3, config.DriverSQLite:
		drv, err = openSQLite(cfg, driver)
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}

	closeDriver := func() {
		if err := drv.Close(); err != nil {
			logger.WithError(err).Warn("close database")
		}
		cleanup()
	}

	// pgx traces its own statements.
	if cfg.Database.LogSQL && driver != config.DriverPgx {
		return dialect.Debug(drv, logger.WithField("component", "sql").Debug), closeDriver, nil
	}
	return drv, closeDriver, nil
}

func openPostgres(cfg *config.Config) (*entsql.Driver, error) {
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, fmt.Errorf("determine database dsn: %w", err)
	}
	rawDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	if cfg.Database.MaxConns > 0 {
		rawDB.SetMaxOpenConns(int(cfg.Database.MaxConns))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	return entsql.OpenDB(dialect.Postgres, rawDB), nil
}

func openSQLite(cfg *config.Config, driver string) (*entsql.Driver, error) {
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, fmt.Errorf("determine database dsn: %w", err)
	}
	return OpenSQLite(driver, dsn)
}

// OpenSQLite opens a SQLite database through the named driver ("sqlite3" or "sqlite")
// with foreign keys enforced.
func OpenSQLite(driver, dsn string) (*entsql.Driver, error) {
	rawDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}
	return entsql.OpenDB(dialect.SQLite, rawDB), nil
}
