package api

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/errors"
)

// Config holds server configuration, loadable from a TOML file.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string `toml:"addr"`

	// CacheBackend selects the cache: "memory" (default), "file", "redis",
	// or "none".
	CacheBackend string `toml:"cache_backend"`

	// CacheDir is the directory for the file backend. Empty means the
	// XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// Redis configures the redis backend. Ignored unless CacheBackend is
	// "redis".
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DefaultConfig returns a config with usable defaults.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		CacheBackend: "memory",
	}
}

// LoadConfig reads a TOML config file, applying defaults for unset fields.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the config for inconsistent settings.
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case "", "memory", "file", "none":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis backend requires redis.addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want memory, file, redis, or none)", c.CacheBackend)
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	return nil
}
