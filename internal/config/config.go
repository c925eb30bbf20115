// Package config loads runtime settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document
type Config struct {
	Logging Logging `yaml:"logging"`
}

// Logging configures the console handler and the optional Seq sink
type Logging struct {
	Level            string        `yaml:"level"`
	AddSource        bool          `yaml:"add_source"`
	SeqURL           string        `yaml:"seq_url"`
	SeqBatchSize     int           `yaml:"seq_batch_size"`
	SeqFlushInterval time.Duration `yaml:"seq_flush_interval"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Logging: Logging{
			Level:            "info",
			SeqBatchSize:     1,
			SeqFlushInterval: 500 * time.Millisecond,
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if _, err := cfg.Logging.SlogLevel(); err != nil {
		return cfg, err
	}
	if cfg.Logging.SeqBatchSize <= 0 {
		cfg.Logging.SeqBatchSize = 1
	}
	return cfg, nil
}

// SlogLevel converts the configured level name to a slog.Level
func (l Logging) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
}
