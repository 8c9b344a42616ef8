// Package config reads the server settings from the environment. A .env file
// in the working directory is loaded by main before parsing.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/Zachkp/zach-dev/internal/logging"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// ContentPath overrides the embedded page content with a YAML file.
	ContentPath string `env:"CONTENT_PATH"`
	// WasmDir holds portfolio.wasm and wasm_exec.js.
	WasmDir string `env:"WASM_DIR" envDefault:"./web-wasm/dist"`

	level slog.Level
}

// ErrGinMode is returned for a GIN_MODE gin does not know.
var ErrGinMode = errors.New("unknown gin mode")

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return Config{}, err
	}
	cfg.level = level
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE %q: %w", cfg.GinMode, ErrGinMode)
	}
	return cfg, nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Level is LogLevel as parsed by Load. A Config built by hand logs at info.
func (c Config) Level() slog.Level {
	return c.level
}
