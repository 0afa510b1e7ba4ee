package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
)

// NewPool creates a pgx connection pool for the pgx driver.
func NewPool(cfg *config.Config, logger logrus.FieldLogger) (*pgxpool.Pool, error) {
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, fmt.Errorf("determine database dsn: %w", err)
	}
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxConns
	}

	if cfg.Database.LogSQL {
		poolCfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   tracelog.LoggerFunc(traceLogger(logger.WithField("component", "pgx"))),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func traceLogger(logger logrus.FieldLogger) func(context.Context, tracelog.LogLevel, string, map[string]any) {
	return func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		entry := logger.WithFields(logrus.Fields(data))
		switch level {
		case tracelog.LogLevelError:
			entry.Error(msg)
		case tracelog.LogLevelWarn:
			entry.Warn(msg)
		case tracelog.LogLevelInfo:
			entry.Info(msg)
		default:
			entry.Debug(msg)
		}
	}
}
