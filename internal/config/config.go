// Package config loads lvmdump settings from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats understood by lvmdump.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatSummary = "summary"
)

// Config holds the lvmdump settings.
type Config struct {
	// Format is the output format: json, yaml or summary.
	Format string `toml:"format"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// AllowUnknownFields skips unknown header keys instead of failing.
	AllowUnknownFields bool `toml:"allow_unknown_fields"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Format:   FormatSummary,
		LogLevel: "warn",
	}
}

// Load reads a TOML config file. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the format and log level.
func (c Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML, FormatSummary:
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or summary)", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
