package config

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cognicore/phonex/pkg/phonex/analyzer"
	"github.com/cognicore/phonex/pkg/phonex/stoplist"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	ConfigPath   string
	StoplistPath string // YAML `terms:` list
	WordListPath string // one word per line

	// Override adjusts the loaded config before components are built,
	// e.g. with command line flags.
	Override func(*Config)

	// LogOutput receives log lines; stderr when nil.
	LogOutput io.Writer
}

// Components holds all loaded configuration components
type Components struct {
	Config    *Config
	Logger    zerolog.Logger
	StopWords *stoplist.Set
	Analyzer  *analyzer.Analyzer
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load analyzer config
	if l.ConfigPath != "" {
		cfg, err := LoadConfig(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		comp.Config = cfg
	} else {
		comp.Config = &Config{}
		comp.Config.ApplyDefaults()
	}
	cfg := comp.Config
	if l.Override != nil {
		l.Override(cfg)
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	comp.Logger = NewLogger(cfg.Log, l.LogOutput)

	// Collect stop words
	base := stoplist.New()
	if cfg.StopWords.UseDefault() {
		base = stoplist.English()
	}
	words := append([]string(nil), cfg.StopWords.Terms...)

	if cfg.StopWords.File != "" {
		path := cfg.StopWords.File
		if !filepath.IsAbs(path) && l.ConfigPath != "" {
			path = filepath.Join(filepath.Dir(l.ConfigPath), path)
		}
		fileWords, err := stoplist.LoadWordsFile(path)
		if err != nil {
			return nil, fmt.Errorf("load stopword file: %w", err)
		}
		words = append(words, fileWords...)
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		words = append(words, sl.Terms...)
	}

	if l.WordListPath != "" {
		fileWords, err := stoplist.LoadWordsFile(l.WordListPath)
		if err != nil {
			return nil, fmt.Errorf("load word list: %w", err)
		}
		words = append(words, fileWords...)
	}
	comp.StopWords = base.Union(words...)

	// Build analyzer
	a, err := analyzer.New(analyzer.Options{
		Version:        analyzer.Version(cfg.Version),
		StopWords:      comp.StopWords,
		MaxTokenLength: cfg.MaxTokenLength,
		CacheSize:      cfg.CacheSize,
		Logger:         &comp.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create analyzer: %w", err)
	}
	comp.Analyzer = a

	comp.Logger.Debug().
		Str("version", string(a.Version())).
		Int("stopwords", comp.StopWords.Len()).
		Int("max_token_length", a.MaxTokenLength()).
		Msg("analyzer configured")

	return comp, nil
}
