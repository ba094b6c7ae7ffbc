package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_FlagsWinOverEnvironment(t *testing.T) {
	cfg := config.Default()
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--port", "6000"}))
	err := config.ApplyEnv(fs, envMap(map[string]string{
		"RPG_IDLE_PORT":          "7000",
		"RPG_IDLE_STORE":         "sqlite",
		"RPG_IDLE_TICK_INTERVAL": "250ms",
	}))
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestApplyEnv_BadValue(t *testing.T) {
	cfg := config.Default()
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	err := config.ApplyEnv(fs, envMap(map[string]string{"RPG_IDLE_PORT": "abc"}))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEnvLookup_ProcessEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RPG_IDLE_PORT=7000\nRPG_IDLE_STORE=memory\n"), 0o600))

	lookup, err := config.EnvLookup(envMap(map[string]string{"RPG_IDLE_PORT": "8000"}), path)
	require.NoError(t, err)

	cfg := config.Default()
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, config.ApplyEnv(fs, lookup))

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store)
}

func TestEnvLookup_MissingFile(t *testing.T) {
	_, err := config.EnvLookup(envMap(nil), filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEnvLookup_EmptyPathReturnsBase(t *testing.T) {
	lookup, err := config.EnvLookup(envMap(map[string]string{"A": "1"}), "")
	require.NoError(t, err)
	v, ok := lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "RPG_IDLE_SAMPLE_INTERVAL", config.EnvName("sample-interval"))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Server)
	}{
		{name: "port out of range", mutate: func(s *config.Server) { s.Port = 0 }},
		{name: "unknown store", mutate: func(s *config.Server) { s.Store = "mongo" }},
		{name: "redis without address", mutate: func(s *config.Server) { s.RedisAddr = "" }},
		{name: "sql without dsn", mutate: func(s *config.Server) { s.Store = config.StorePostgres; s.SQLDSN = "" }},
		{name: "bad log format", mutate: func(s *config.Server) { s.LogFormat = "xml" }},
		{name: "zero tick", mutate: func(s *config.Server) { s.TickInterval = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = config.LogFormatJSON
	cfg.LogLevel = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "zone_id", "meadow")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"zone_id":"meadow"`)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}
