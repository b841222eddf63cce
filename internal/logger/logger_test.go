package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/portfolio/internal/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	require.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	require.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	require.Equal(t, tracelog.LogLevelWarn, GetPgxTraceLogLevel(zerolog.WarnLevel))
	require.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestNilLoggerService(t *testing.T) {
	var ls *LoggerService
	require.Nil(t, ls.GetApplication())
	require.NotPanics(t, ls.Shutdown)
}

func TestServiceWithoutLicenseKey(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())
	require.NotNil(t, ls)
	require.Nil(t, ls.GetApplication())
	ls.Shutdown()
}

func TestNewRotatingWriter(t *testing.T) {
	_, err := NewRotatingWriter(RotationConfig{})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "logs", "portfolio.log")
	w, err := NewRotatingWriter(RotationConfig{File: path})
	require.NoError(t, err)
	defer w.Close()

	require.Equal(t, 10, w.MaxSize)
	require.Equal(t, 5, w.MaxBackups)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(b))
}

func TestLoggerMirrorsIntoFile(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"
	cfg.Logging.File = filepath.Join(t.TempDir(), "app.log")

	ls := NewLoggerService(cfg)
	log := NewLoggerWithService(cfg, ls)
	log.Info().Msg("mirrored line")
	ls.Shutdown()

	b, err := os.ReadFile(cfg.Logging.File)
	require.NoError(t, err)
	require.Contains(t, string(b), "mirrored line")
}
