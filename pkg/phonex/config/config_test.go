package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/phonex/pkg/phonex/analyzer"
	"github.com/cognicore/phonex/pkg/phonex/internalerr"
)

func TestLoadStoplist(t *testing.T) {
	// Create temp file
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "stoplist.yaml")

	content := `terms:
  - the
  - a
  - and
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}

	if len(sl.Terms) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(sl.Terms))
	}

	expected := map[string]bool{"the": true, "a": true, "and": true}
	for _, term := range sl.Terms {
		if !expected[term] {
			t.Errorf("Unexpected term: %s", term)
		}
	}
}

func TestLoadStoplistMissingFile(t *testing.T) {
	if _, err := LoadStoplist(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseConfig(t *testing.T) {
	content := `version: "2.9"
max_token_length: 40
cache_size: 8
stopwords:
  default: false
  terms: [foo, bar]
log:
  level: debug
  format: json
`
	cfg, err := ParseConfig([]byte(content))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if cfg.Version != "2.9" {
		t.Errorf("Expected version 2.9, got %s", cfg.Version)
	}
	if cfg.MaxTokenLength != 40 {
		t.Errorf("Expected max_token_length 40, got %d", cfg.MaxTokenLength)
	}
	if cfg.CacheSize != 8 {
		t.Errorf("Expected cache_size 8, got %d", cfg.CacheSize)
	}
	if cfg.StopWords.UseDefault() {
		t.Error("Expected default stopwords to be disabled")
	}
	if len(cfg.StopWords.Terms) != 2 {
		t.Errorf("Expected 2 inline terms, got %d", len(cfg.StopWords.Terms))
	}
	if cfg.Log.Format != FormatJSON {
		t.Errorf("Expected json log format, got %s", cfg.Log.Format)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	if err != nil {
		t.Fatalf("Failed to parse empty config: %v", err)
	}

	if cfg.Version != string(analyzer.VersionCurrent) {
		t.Errorf("Expected default version, got %s", cfg.Version)
	}
	if cfg.MaxTokenLength != analyzer.DefaultMaxTokenLength {
		t.Errorf("Expected default max_token_length, got %d", cfg.MaxTokenLength)
	}
	if cfg.CacheSize != analyzer.DefaultCacheSize {
		t.Errorf("Expected default cache_size, got %d", cfg.CacheSize)
	}
	if !cfg.StopWords.UseDefault() {
		t.Error("Expected default stopwords when unset")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != FormatConsole {
		t.Errorf("Unexpected log defaults: %+v", cfg.Log)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"negative length": "max_token_length: -1\n",
		"negative cache":  "cache_size: -5\n",
		"bad format":      "log:\n  format: xml\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(content))
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := ParseConfig([]byte("version: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestParseConfigUnknownVersionIsNotFatal(t *testing.T) {
	cfg, err := ParseConfig([]byte(`version: "7.1"`))
	if err != nil {
		t.Fatalf("Unknown version should not fail: %v", err)
	}
	if cfg.Version != "7.1" {
		t.Errorf("Expected version to be kept for the analyzer, got %s", cfg.Version)
	}
}
