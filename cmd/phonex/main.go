package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cognicore/phonex/pkg/phonex/analyzer"
	"github.com/cognicore/phonex/pkg/phonex/charfilter"
	"github.com/cognicore/phonex/pkg/phonex/config"
)

type options struct {
	configPath     string
	stoplistPath   string
	wordsPath      string
	compat         string
	maxTokenLength int
	html           bool
	field          string
	showTerms      bool
	logLevel       string
}

func parseFlags(args []string) (*options, []string, error) {
	fs := flag.NewFlagSet("phonex", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Analyzer config file (YAML)")
	fs.StringVar(&opts.stoplistPath, "stoplist", "", "Stoplist file (YAML terms list)")
	fs.StringVar(&opts.wordsPath, "words", "", "Stop word file (one word per line)")
	fs.StringVar(&opts.compat, "compat", "", "Compatibility version (2.3, 2.4, 2.9, 3.0)")
	fs.IntVar(&opts.maxTokenLength, "max-token-length", 0, "Discard tokens longer than this many characters")
	fs.BoolVar(&opts.html, "html", false, "Strip HTML markup from input")
	fs.StringVar(&opts.field, "field", "text", "Field name reported in logs")
	fs.BoolVar(&opts.showTerms, "terms", false, "Print the original term next to each code")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if opts.maxTokenLength < 0 {
		return nil, nil, errors.New("--max-token-length must not be negative")
	}
	return opts, fs.Args(), nil
}

func main() {
	opts, files, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts, files, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "phonex:", err)
		os.Exit(1)
	}
}

func run(opts *options, files []string, stdin io.Reader, stdout, stderr io.Writer) error {
	loader := config.Loader{
		ConfigPath:   opts.configPath,
		StoplistPath: opts.stoplistPath,
		WordListPath: opts.wordsPath,
		LogOutput:    stderr,
		Override: func(cfg *config.Config) {
			if opts.compat != "" {
				cfg.Version = opts.compat
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
		},
	}

	components, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := components.Logger
	a := components.Analyzer
	if opts.maxTokenLength > 0 {
		a.SetMaxTokenLength(opts.maxTokenLength)
	}

	key := analyzer.NewConsumerKey()

	if len(files) == 0 {
		return encode(a, key, opts, "-", stdin, stdout, log)
	}
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = encode(a, key, opts, path, f, stdout, log)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func encode(a *analyzer.Analyzer, key analyzer.ConsumerKey, opts *options, name string, in io.Reader, out io.Writer, log zerolog.Logger) error {
	if opts.html {
		in = charfilter.NewHTMLStripReader(in)
	}

	// Read the input up front so original terms can be printed by offset.
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	chain, err := a.AcquireReusableChain(key, opts.field, bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer chain.Release()

	count := 0
	for {
		ok, err := chain.Advance()
		if err != nil {
			return fmt.Errorf("analyze %s: %w", name, err)
		}
		if !ok {
			break
		}
		tok := chain.Token()
		if opts.showTerms {
			fmt.Fprintf(out, "%s\t%s\n", data[tok.StartOffset:tok.EndOffset], tok.Term)
		} else {
			fmt.Fprintf(out, "%s\n", tok.Term)
		}
		count++
	}

	log.Info().Str("input", name).Str("chain", chain.ID()).Int("tokens", count).Msg("encoded input")
	return nil
}
