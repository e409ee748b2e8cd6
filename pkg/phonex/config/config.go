package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/phonex/pkg/phonex/analyzer"
	"github.com/cognicore/phonex/pkg/phonex/internalerr"
)

// Config is the analyzer configuration file
type Config struct {
	Version        string    `yaml:"version"`
	MaxTokenLength int       `yaml:"max_token_length"`
	CacheSize      int       `yaml:"cache_size"`
	StopWords      StopWords `yaml:"stopwords"`
	Log            LogConfig `yaml:"log"`
}

// StopWords describes where stop words come from. The sets are merged.
type StopWords struct {
	// Default starts from the English list. Unset means true.
	Default *bool    `yaml:"default"`
	Terms   []string `yaml:"terms"`
	// File is a word-per-line list, relative to the config file.
	File string `yaml:"file"`
}

// UseDefault reports whether the English list is included.
func (s StopWords) UseDefault() bool {
	return s.Default == nil || *s.Default
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads the analyzer configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration and applies defaults
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = string(analyzer.VersionCurrent)
	}
	if c.MaxTokenLength == 0 {
		c.MaxTokenLength = analyzer.DefaultMaxTokenLength
	}
	if c.CacheSize == 0 {
		c.CacheSize = analyzer.DefaultCacheSize
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatConsole
	}
}

// Validate checks value ranges. Unknown versions are not an error; the
// analyzer falls back to the current one.
func (c *Config) Validate() error {
	if c.MaxTokenLength < 0 {
		return fmt.Errorf("max_token_length %d: %w", c.MaxTokenLength, internalerr.ErrInvalidConfig)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size %d: %w", c.CacheSize, internalerr.ErrInvalidConfig)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
