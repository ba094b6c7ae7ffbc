// Package config holds the server process configuration: flags, their
// RPG_IDLE_* environment fallbacks and the logger they select.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// EnvPrefix prefixes every environment fallback
const EnvPrefix = "RPG_IDLE_"

// Store backends
const (
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Server is the configuration of the server command
type Server struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Store          string
	RedisAddr      string
	SQLDSN         string
	ContentPath    string
	TickInterval   time.Duration
	SampleInterval time.Duration
	EnvFile        string
}

// Default returns the configuration used when nothing is set
func Default() Server {
	return Server{
		Port:           50051,
		LogLevel:       "info",
		LogFormat:      LogFormatText,
		Store:          StoreRedis,
		RedisAddr:      "localhost:6379",
		SQLDSN:         "rpg-idle.db",
		TickInterval:   time.Second,
		SampleInterval: time.Minute,
	}
}

// BindFlags registers the server flags on fs with s's values as defaults
func (s *Server) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&s.Port, "port", s.Port, "gRPC server port")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format: text or json")
	fs.StringVar(&s.Store, "store", s.Store, "game state store: redis, sqlite, postgres or memory")
	fs.StringVar(&s.RedisAddr, "redis-addr", s.RedisAddr, "redis address, used by the redis store")
	fs.StringVar(&s.SQLDSN, "sql-dsn", s.SQLDSN, "database DSN, used by the sqlite and postgres stores")
	fs.StringVar(&s.ContentPath, "content", s.ContentPath, "content YAML file; empty uses the built-in pack")
	fs.DurationVar(&s.TickInterval, "tick-interval", s.TickInterval, "auto-combat tick interval")
	fs.DurationVar(&s.SampleInterval, "sample-interval", s.SampleInterval, "session metric sampling interval")
	fs.StringVar(&s.EnvFile, "env-file", s.EnvFile, "dotenv file consulted after the process environment")
}

// EnvName returns the environment variable backing a flag
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// ApplyEnv sets every flag not given on the command line from its
// environment variable, when present
func ApplyEnv(fs *pflag.FlagSet, lookup func(string) (string, bool)) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		val, ok := lookup(EnvName(f.Name))
		if !ok {
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			errs = append(errs, errors.InvalidArgumentf("%s: %v", EnvName(f.Name), err))
		}
	})
	return errors.Join(errs...)
}

// EnvLookup layers the variables of a dotenv file under base. The file
// is only read, the process environment is left untouched. An empty
// path returns base.
func EnvLookup(base func(string) (string, bool), path string) (func(string) (string, bool), error) {
	if path == "" {
		return base, nil
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read env file "+path)
	}

	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}, nil
}

// Validate checks the configuration
func (s *Server) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Port < 1 || s.Port > 65535 {
		vb.Fieldf("port", "must be between 1 and 65535, got %d", s.Port)
	}
	errors.ValidateEnum("log-level", strings.ToLower(s.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log-format", s.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	errors.ValidateEnum("store", s.Store, []string{StoreRedis, StoreSQLite, StorePostgres, StoreMemory}, vb)

	switch s.Store {
	case StoreRedis:
		errors.ValidateRequired("redis-addr", s.RedisAddr, vb)
	case StoreSQLite, StorePostgres:
		errors.ValidateRequired("sql-dsn", s.SQLDSN, vb)
	}

	if s.TickInterval <= 0 {
		vb.Fieldf("tick-interval", "must be positive, got %s", s.TickInterval)
	}
	if s.SampleInterval <= 0 {
		vb.Fieldf("sample-interval", "must be positive, got %s", s.SampleInterval)
	}

	return vb.Build()
}

// Level parses LogLevel
func (s *Server) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewLogger builds the process logger
func (s *Server) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.Level()}
	if s.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
