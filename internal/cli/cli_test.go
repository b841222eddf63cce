package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deppfellow/portfolio/internal/config"
)

func stubConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prev := loadConfigFn
	loadConfigFn = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfigFn = prev })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(&out, BuildInfo{Version: "1.2.3", Commit: "abc", BuildTime: "today"})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "version=1.2.3 commit=abc build_time=today\n", out)

	out, err = run(t, "version", "--json")
	require.NoError(t, err)

	var build BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &build))
	require.Equal(t, "1.2.3", build.Version)
}

func TestSchemaPrintsDialectDDL(t *testing.T) {
	stubConfig(t, &config.Config{Database: config.DatabaseConfig{Driver: config.DriverPostgres}})

	out, err := run(t, "schema")
	require.NoError(t, err)
	require.Contains(t, out, "BIGSERIAL")
	require.Contains(t, out, "work_experience")
}

func TestSchemaApplyCreatesSQLiteTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	stubConfig(t, &config.Config{
		Primary:       config.Primary{Env: "development"},
		Database:      config.DatabaseConfig{Driver: config.DriverSQLite, Path: path},
		Observability: config.DefaultObservabilityConfig(),
	})

	_, err := run(t, "schema", "--apply")
	require.NoError(t, err)

	_, err = run(t, "schema", "--apply")
	require.NoError(t, err, "applying twice is harmless")
	require.FileExists(t, path)
}

func TestUnknownArgumentsRejected(t *testing.T) {
	_, err := run(t, "version", "extra")
	require.Error(t, err)
}
