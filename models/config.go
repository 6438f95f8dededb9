// Package models defines data structures for configuration and analysis results.
package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultKeywordsPath = "keywords.txt"
	DefaultFormat       = "plain"
	DefaultFetchTimeout = 30 * time.Second
)

// Config holds runtime configuration for an analysis run.
// Values come from an optional config file and are overridden by CLI flags.
type Config struct {
	KeywordsPath string        `yaml:"keywords" toml:"keywords"`
	KeywordsDB   string        `yaml:"keywords_db" toml:"keywords_db"`
	Format       string        `yaml:"format" toml:"format"`
	Normalize    NormalizeMode `yaml:"normalize" toml:"normalize"`
	Readability  bool          `yaml:"readability" toml:"readability"`
	FetchTimeout Duration      `yaml:"fetch_timeout" toml:"fetch_timeout"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		KeywordsPath: DefaultKeywordsPath,
		Format:       DefaultFormat,
		Normalize:    NormalizeLower,
		FetchTimeout: Duration(DefaultFetchTimeout),
	}
}

// LoadConfig reads a YAML or TOML config file on top of the defaults.
// An empty path or a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := ParseNormalizeMode(string(cfg.Normalize)); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = Duration(DefaultFetchTimeout)
	}
	return cfg, nil
}
