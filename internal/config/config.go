// Package config loads user settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/gctb/internal/logging"
	"github.com/abhisek/gctb/internal/registry"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Log   LogSection              `toml:"log"`
	Tests map[string]TestOverride `toml:"tests"`
}

// LogSection maps the [log] table.
type LogSection struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// TestOverride maps a [tests.<id>] table.
type TestOverride struct {
	PracticeCount *int  `toml:"practice_count"`
	ExamCount     *int  `toml:"exam_count"`
	TimeLimitSec  *int  `toml:"time_limit_sec"`
	PhaseMS       []int `toml:"phase_ms"`
}

// Config is the resolved application configuration.
type Config struct {
	LogLevel string
	LogFile  string

	// Path is the config file that was read, empty when none existed.
	Path string

	overrides map[registry.TestID]registry.Overrides
}

// Default returns a Config with no overrides.
func Default() Config {
	return Config{LogLevel: "info"}
}

// LoadFile reads and validates a TOML config. A missing file is not an
// error and yields a zero FileConfig.
func LoadFile(path string) (FileConfig, bool, error) {
	if path == "" {
		return FileConfig{}, false, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return FileConfig{}, false, fmt.Errorf("decode config: %w", err)
	}
	if err := validateRaw(raw); err != nil {
		return FileConfig{}, false, fmt.Errorf("%s: %w", path, err)
	}

	var fc FileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return FileConfig{}, false, fmt.Errorf("decode config: %w", err)
	}
	return fc, true, nil
}

// ResolvePath picks the config path: flag, then GCTB_CONFIG, then the XDG
// default.
func ResolvePath(flag string) string {
	if flag != "" {
		return flag
	}
	if p := os.Getenv("GCTB_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath()
}

// Load builds a Config from the file at path and the environment.
// Environment variables win over the file.
func Load(path string) (Config, error) {
	cfg := Default()

	fc, found, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if found {
		cfg.Path = path
		if err := cfg.applyFile(fc); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("GCTB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("GCTB_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc FileConfig) error {
	if fc.Log.Level != nil {
		c.LogLevel = strings.ToLower(*fc.Log.Level)
	}
	if fc.Log.File != nil {
		c.LogFile = *fc.Log.File
	}
	for slug, t := range fc.Tests {
		id, err := registry.ParseID(slug)
		if err != nil {
			return fmt.Errorf("config tests.%s: %w", slug, err)
		}
		o := registry.Overrides{
			PracticeCount: t.PracticeCount,
			ExamCount:     t.ExamCount,
		}
		if t.TimeLimitSec != nil {
			d := time.Duration(*t.TimeLimitSec) * time.Second
			o.TimeLimit = &d
		}
		for _, ms := range t.PhaseMS {
			o.PhaseDurations = append(o.PhaseDurations, time.Duration(ms)*time.Millisecond)
		}
		if c.overrides == nil {
			c.overrides = make(map[registry.TestID]registry.Overrides)
		}
		c.overrides[id] = o
	}
	return nil
}

// LogPath returns the log file to open. "default" selects the XDG state
// location and an empty value disables file logging.
func (c Config) LogPath() string {
	if c.LogFile == "default" {
		return DefaultLogPath()
	}
	return c.LogFile
}

// Validate checks values that can also arrive through the environment.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q (want one of %v)", c.LogLevel, logging.Levels)
	}
	for id := range c.overrides {
		if _, err := c.Test(id); err != nil {
			return err
		}
	}
	return nil
}

// Test returns the registry config for id with any overrides applied.
func (c Config) Test(id registry.TestID) (registry.TestConfig, error) {
	base, ok := registry.Lookup(id)
	if !ok {
		return registry.TestConfig{}, fmt.Errorf("%w: %s", registry.ErrTestNotFound, id)
	}
	o, ok := c.overrides[id]
	if !ok {
		return base, nil
	}
	out, err := base.WithOverrides(o)
	if err != nil {
		return registry.TestConfig{}, fmt.Errorf("config tests.%s: %w", id, err)
	}
	return out, nil
}

// Tests returns every registered test with overrides applied, in menu order.
func (c Config) Tests() ([]registry.TestConfig, error) {
	out := make([]registry.TestConfig, 0, len(registry.IDs()))
	for _, id := range registry.IDs() {
		t, err := c.Test(id)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
