package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PORTFOLIO_"

// Config is the runtime configuration shared by every command.
type Config struct {
	// Mode is "dev" or "prod". It picks the log encoder and gin's mode.
	Mode string `koanf:"mode"`
	Port int    `koanf:"port"`
	// Content is the portfolio YAML file. Empty means the embedded default.
	Content string `koanf:"content"`
	// Assets is the directory holding the compiled client (app.wasm,
	// wasm_exec.js). Served under /app when it exists.
	Assets string `koanf:"assets"`
	// Output is where `build` writes the static site.
	Output string `koanf:"output"`
	// Watch reloads Content on change while serving.
	Watch           bool          `koanf:"watch"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// HashSalt salts client IP hashes in request logs. A random salt is
	// generated at startup when empty.
	HashSalt string `koanf:"hash_salt"`
}

func Default() *Config {
	return &Config{
		Mode:            "dev",
		Port:            8080,
		Assets:          "dist",
		Output:          "public",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load layers defaults, the YAML file at path (if it exists) and
// PORTFOLIO_* environment variables, in that order. PORT is honoured as
// well since most hosts set it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		if err := k.Set("port", port); err != nil {
			return nil, fmt.Errorf("applying PORT: %w", err)
		}
	}

	// PORTFOLIO_SHUTDOWN_TIMEOUT -> shutdown_timeout, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration contains usable values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("invalid mode %q: must be dev or prod", c.Mode)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}

// Production reports whether Mode selects production behaviour.
func (c *Config) Production() bool {
	m := strings.ToLower(c.Mode)
	return m == "prod" || m == "production"
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
