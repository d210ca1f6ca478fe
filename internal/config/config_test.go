package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"APP_ENV", "DB_PATH", "PORT", "LOG_LEVEL", "CHROMIUM_PATH", "PDF_TIMEOUT"} {
		unsetenv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "./dev.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.ChromiumPath)
	assert.Equal(t, 15*time.Second, cfg.PDFTimeout)
	assert.True(t, cfg.IsDev())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/auditcost/state.db")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHROMIUM_PATH", "/usr/bin/chromium")
	t.Setenv("PDF_TIMEOUT", "30s")

	cfg := Load()

	assert.False(t, cfg.IsDev())
	assert.Equal(t, "/var/lib/auditcost/state.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromiumPath)
	assert.Equal(t, 30*time.Second, cfg.PDFTimeout)
}

func TestLoad_InvalidPDFTimeoutFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PDF_TIMEOUT", "soon")

	assert.Equal(t, 15*time.Second, Load().PDFTimeout)
}

func TestSlogLevel_UnknownIsInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "VERBOSE"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARNING"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "ERROR"}.SlogLevel())
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	unsetenv(t, "AUDITCOST_A")
	unsetenv(t, "AUDITCOST_B")
	unsetenv(t, "AUDITCOST_C")

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte(`
# comment

AUDITCOST_A=one
export AUDITCOST_B=two
AUDITCOST_C="three"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "one", os.Getenv("AUDITCOST_A"))
	assert.Equal(t, "two", os.Getenv("AUDITCOST_B"))
	assert.Equal(t, "three", os.Getenv("AUDITCOST_C"))
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("AUDITCOST_KEEP", "already")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUDITCOST_KEEP=fromfile\n"), 0o600))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "already", os.Getenv("AUDITCOST_KEEP"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
