// Package config loads shellkit configuration from YAML with
// environment overrides. Precedence: flags > environment > file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all shellkit configuration.
type Config struct {
	Count CountConfig `yaml:"count"`
	Files FilesConfig `yaml:"files"`
	HTTP  HTTPConfig  `yaml:"http"`
	Sheet SheetConfig `yaml:"sheet"`
}

// CountConfig configures the count-error command.
type CountConfig struct {
	// Pattern is matched as a literal substring, not a regex.
	Pattern string `yaml:"pattern"`
}

// FilesConfig configures the large-files command.
type FilesConfig struct {
	// MinSize is in bytes; files strictly larger are reported.
	MinSize int64 `yaml:"min_size"`
}

// HTTPConfig configures the check-url command.
type HTTPConfig struct {
	Timeout string `yaml:"timeout"`
}

// SheetConfig configures cheat sheet rendering.
type SheetConfig struct {
	Style string `yaml:"style"` // auto, dark, light, notty
	Wrap  int    `yaml:"wrap"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Count: CountConfig{Pattern: "ERROR"},
		Files: FilesConfig{MinSize: 1 << 20},
		HTTP:  HTTPConfig{Timeout: "10s"},
		Sheet: SheetConfig{Style: "auto", Wrap: 80},
	}
}

// DefaultPath returns the standard config file location.
// A missing file is not an error at load time.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shellkit", "config.yaml")
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies SHELLKIT_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies SHELLKIT_* environment variables on top of
// whatever the file (or defaults) provided.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHELLKIT_PATTERN"); v != "" {
		c.Count.Pattern = v
	}
	if v := os.Getenv("SHELLKIT_MIN_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Files.MinSize = n
		}
	}
	if v := os.Getenv("SHELLKIT_HTTP_TIMEOUT"); v != "" {
		c.HTTP.Timeout = v
	}
	if v := os.Getenv("SHELLKIT_SHEET_STYLE"); v != "" {
		c.Sheet.Style = v
	}
}

func (c *Config) validate() error {
	if c.Count.Pattern == "" {
		return fmt.Errorf("count.pattern must not be empty")
	}
	if c.Files.MinSize < 0 {
		return fmt.Errorf("files.min_size must not be negative")
	}
	if _, err := time.ParseDuration(c.HTTP.Timeout); err != nil {
		return fmt.Errorf("http.timeout is not a valid duration: %w", err)
	}
	if c.Sheet.Wrap <= 0 {
		return fmt.Errorf("sheet.wrap must be positive")
	}
	return nil
}

// HTTPTimeout returns the parsed check-url timeout.
// Load has already validated the duration string.
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
