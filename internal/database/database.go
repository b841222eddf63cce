// Package database contains the logic for establishing
// connections to the backing SQL store.
//
// It handles:
//   - building a driver connector from config (PostgreSQL through pgx, or
//     an embedded SQLite file)
//   - handing out one connection per request through Provider
//   - wiring query tracing/logging (pgx tracelog, slow query log)
//   - optional New Relic instrumentation (nrpgx5)
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/deppfellow/portfolio/internal/config"
	loggerConfig "github.com/deppfellow/portfolio/internal/logger"
)

// ErrConnection marks every failure to obtain a usable connection:
// bad credentials, unreachable host, unknown database, timeout.
var ErrConnection = errors.New("database connection failed")

// Provider hands out database connections.
//
// Every connection returned by Acquire must be closed by the caller on all
// exit paths; Close returns it to the Database, which either keeps it idle
// (pooled mode) or closes it.
type Provider interface {
	Acquire(ctx context.Context) (*sql.Conn, error)
}

// Database wraps the sql.DB handle, the dialect it speaks and a logger.
type Database struct {
	DB      *sql.DB
	Dialect Dialect

	log            *zerolog.Logger
	connectTimeout time.Duration

	// openErr holds a configuration error found while building the
	// connector. It is reported on Acquire so a bad config behaves like an
	// unreachable database instead of stopping the process.
	openErr error
}

var _ Provider = (*Database)(nil)

// multiTracer allows chaining multiple pgx query tracers.
//
// pgx supports a single Tracer in ConnConfig; this adapter runs every
// tracer that implements the query hooks, threading the context through.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// New creates the Database for the configured driver.
//
// No connection is opened here. Connectivity problems, including an
// unparsable DSN, surface from Acquire as ErrConnection.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	database := &Database{
		log:            logger,
		connectTimeout: cfg.Database.ConnectTimeout,
	}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := openSQLite(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		database.DB = db
		database.Dialect = SQLite

	case config.DriverPostgres:
		connConfig, err := pgx.ParseConfig(cfg.Database.DSN())
		if err != nil {
			logger.Warn().Err(err).Msg("invalid database configuration; requests will fail until fixed")
			database.openErr = err
			connConfig = nil
		}

		if connConfig != nil {
			if tracer := newTracer(cfg, logger, loggerService); tracer != nil {
				connConfig.Tracer = tracer
			}
			database.DB = sql.OpenDB(stdlib.GetConnector(*connConfig))
		}
		database.Dialect = Postgres

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if database.DB != nil {
		if !cfg.Database.Pooled {
			// Released connections are closed instead of kept idle, so
			// every Acquire dials a fresh one.
			database.DB.SetMaxIdleConns(0)
		}
		if cfg.Database.MaxOpenConns > 0 {
			database.DB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		}
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Bool("pooled", cfg.Database.Pooled).
		Dur("connect_timeout", cfg.Database.ConnectTimeout).
		Msg("database configured")

	return database, nil
}

// openSQLite opens the SQLite file, creating its parent directory.
// busy_timeout is set through the DSN because every new connection needs it.
func openSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}

// newTracer assembles the pgx tracer chain: New Relic when an agent runs,
// SQL statement logging in the local environment and the slow query log.
func newTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []any

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	if threshold := cfg.Observability.Logging.SlowQueryThreshold; threshold > 0 {
		tracers = append(tracers, &slowQueryTracer{threshold: threshold, log: logger})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		if t, ok := tracers[0].(pgx.QueryTracer); ok {
			return t
		}
	}
	return &multiTracer{tracers: tracers}
}

// Acquire opens one connection, bounded by the configured connect timeout.
// Failures are wrapped in ErrConnection.
func (db *Database) Acquire(ctx context.Context) (*sql.Conn, error) {
	if db.openErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, db.openErr)
	}

	if db.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.connectTimeout)
		defer cancel()
	}

	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return conn, nil
}

// Ping acquires a connection and checks it is alive.
func (db *Database) Ping(ctx context.Context) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// Close closes the underlying handle and any idle connections.
func (db *Database) Close() error {
	if db.DB == nil {
		return nil
	}
	db.log.Info().Msg("closing database")
	return db.DB.Close()
}
