package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/portfolio/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Primary: config.Primary{Env: "development"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           filepath.Join(t.TempDir(), "nested", "portfolio.db"),
			ConnectTimeout: 2 * time.Second,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestSQLiteAcquireAndSchema(t *testing.T) {
	logger := zerolog.Nop()
	db, err := New(testConfig(t), &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, SQLite, db.Dialect)
	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.EnsureSchema(context.Background()))
	// Second run is a no-op.
	require.NoError(t, db.EnsureSchema(context.Background()))

	conn, err := db.Acquire(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"personal_info", "education", "work_experience", "skills", "projects", "contact"} {
		var count int
		err := conn.QueryRowContext(context.Background(),
			"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, table)
	}
}

func TestUnreachablePostgresIsConnectionError(t *testing.T) {
	cfg := &config.Config{
		Primary: config.Primary{Env: "development"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverPostgres,
			Host:           "127.0.0.1",
			Port:           1,
			User:           "nobody",
			Name:           "portfolio",
			SSLMode:        "disable",
			ConnectTimeout: time.Second,
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	logger := zerolog.Nop()
	db, err := New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Acquire(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrConnection))

	require.ErrorIs(t, db.Ping(context.Background()), ErrConnection)
}

func TestPlaceholder(t *testing.T) {
	require.Equal(t, "$3", Postgres.Placeholder(3))
	require.Equal(t, "?", SQLite.Placeholder(3))
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id int);\n\n CREATE TABLE b (id int);\n")
	require.Equal(t, []string{"CREATE TABLE a (id int)", "CREATE TABLE b (id int)"}, stmts)
}

func TestSchemaPerDialect(t *testing.T) {
	pg, err := Schema(Postgres)
	require.NoError(t, err)
	require.Contains(t, pg, "BIGSERIAL")

	lite, err := Schema(SQLite)
	require.NoError(t, err)
	require.Contains(t, lite, "AUTOINCREMENT")

	_, err = Schema(Dialect("mysql"))
	require.Error(t, err)
}
