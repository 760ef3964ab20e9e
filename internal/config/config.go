// Package config loads the armor-builder configuration from YAML.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// Store backends
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the CLI and the gRPC server.
type Config struct {
	DataDir string        `yaml:"data_dir"`
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
	Store   StoreConfig   `yaml:"store"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// CatalogConfig points at the remote armor source and the local cache.
type CatalogConfig struct {
	SourceURL   string        `yaml:"source_url"`
	File        string        `yaml:"file"` // relative to data_dir unless absolute
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// StoreConfig selects where armor sets are persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	File    string `yaml:"file"` // relative to data_dir unless absolute

	// RedisAddr is one address in single mode, or a comma separated list of
	// cluster seeds or sentinels
	RedisAddr       string `yaml:"redis_addr"`
	RedisMode       string `yaml:"redis_mode"` // single, cluster or sentinel
	RedisMasterName string `yaml:"redis_master_name"`
	RedisTLS        bool   `yaml:"redis_tls"`

	PostgresDSN string `yaml:"postgres_dsn"`
}

// RedisAddrs splits RedisAddr into trimmed, non-empty addresses
func (s StoreConfig) RedisAddrs() []string {
	var addrs []string
	for _, a := range strings.Split(s.RedisAddr, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// ServerConfig holds the gRPC listener settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataDir: "./data",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Catalog: CatalogConfig{
			SourceURL:   "https://mhw-db.com/armor",
			File:        "armor_data.json",
			HTTPTimeout: 60 * time.Second,
		},
		Store: StoreConfig{
			Backend:   BackendFile,
			File:      "armor_sets.json",
			RedisAddr: "localhost:6379",
			RedisMode: "single",
		},
		Server: ServerConfig{
			Port: 50051,
		},
	}
}

// Load reads config from a YAML file on top of the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "parsing config %s", path)
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("data_dir", c.DataDir, vb)
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)
	errors.ValidateRequired("catalog.source_url", c.Catalog.SourceURL, vb)
	errors.ValidateRequired("catalog.file", c.Catalog.File, vb)
	if c.Catalog.HTTPTimeout <= 0 {
		vb.InvalidField("catalog.http_timeout", "must be positive")
	}
	errors.ValidateEnum("store.backend", c.Store.Backend, []string{BackendFile, BackendRedis, BackendPostgres}, vb)

	switch c.Store.Backend {
	case BackendFile:
		errors.ValidateRequired("store.file", c.Store.File, vb)
	case BackendRedis:
		errors.ValidateRequired("store.redis_addr", c.Store.RedisAddr, vb)
		errors.ValidateEnum("store.redis_mode", c.Store.RedisMode, []string{"single", "cluster", "sentinel"}, vb)
		if c.Store.RedisMode == "sentinel" {
			errors.ValidateRequired("store.redis_master_name", c.Store.RedisMasterName, vb)
		}
	case BackendPostgres:
		errors.ValidateRequired("store.postgres_dsn", c.Store.PostgresDSN, vb)
	}

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)

	return vb.Build()
}

// CatalogPath returns the catalog cache location
func (c Config) CatalogPath() string {
	return c.resolve(c.Catalog.File)
}

// StorePath returns the file store location
func (c Config) StorePath() string {
	return c.resolve(c.Store.File)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// SlogLevel converts the configured level, defaulting to info
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a slog logger writing to stderr in the configured format
func (c LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
