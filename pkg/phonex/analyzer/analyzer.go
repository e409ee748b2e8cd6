// Package analyzer builds phonetic analysis chains:
//
//	Tokenizer → StandardFilter → LowerCaseFilter → StopFilter → phonetic.Filter
//
// and caches one reusable chain per consumer key so repeated analysis
// rebinds the tokenizer instead of reallocating the chain.
package analyzer

import (
	"fmt"
	"io"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/cognicore/phonex/pkg/phonex/analysis"
	"github.com/cognicore/phonex/pkg/phonex/internalerr"
	"github.com/cognicore/phonex/pkg/phonex/phonetic"
	"github.com/cognicore/phonex/pkg/phonex/stoplist"
)

const (
	// DefaultMaxTokenLength is the default limit on token length in runes.
	DefaultMaxTokenLength = analysis.DefaultMaxTokenLength
	// DefaultCacheSize is the default number of reusable chains retained.
	DefaultCacheSize = 128
)

// ChainBuilder constructs a token stream for field over r. Setting one in
// Options replaces the standard stages and disables chain reuse.
type ChainBuilder func(field string, r io.Reader) analysis.TokenStream

// Options configures an Analyzer.
type Options struct {
	// Version selects compatibility behaviour. Empty means VersionCurrent;
	// unknown tags fall back to VersionCurrent.
	Version Version
	// StopWords dropped before encoding. Nil means the English set; pass
	// an empty set to keep every word.
	StopWords *stoplist.Set
	// MaxTokenLength discards longer tokens. Zero means the default.
	MaxTokenLength int
	// CacheSize bounds the reusable chain cache. Zero means the default.
	CacheSize int
	// ChainBuilder overrides chain construction.
	ChainBuilder ChainBuilder
	// Logger receives chain lifecycle events. Nil disables logging.
	Logger *zerolog.Logger
	// ExclusiveLease makes AcquireReusableChain fail with
	// internalerr.ErrChainBusy while the key's chain is still leased,
	// instead of rebinding it.
	ExclusiveLease bool
}

// Analyzer is the factory for phonetic analysis chains.
type Analyzer struct {
	mu             sync.Mutex
	version        Version
	stops          *stoplist.Set
	maxTokenLength int
	builder        ChainBuilder
	exclusive      bool
	cache          *lru.Cache[ConsumerKey, *Chain]
	log            zerolog.Logger
}

// New creates an Analyzer.
func New(opts Options) (*Analyzer, error) {
	a := &Analyzer{
		stops:          opts.StopWords,
		maxTokenLength: opts.MaxTokenLength,
		builder:        opts.ChainBuilder,
		exclusive:      opts.ExclusiveLease,
		log:            zerolog.Nop(),
	}
	if opts.Logger != nil {
		a.log = opts.Logger.With().Str("component", "analyzer").Logger()
	}

	a.version = VersionOrDefault(string(opts.Version), a.log)
	if a.stops == nil {
		a.stops = stoplist.English()
	}
	if a.maxTokenLength <= 0 {
		a.maxTokenLength = DefaultMaxTokenLength
	}

	size := opts.CacheSize
	if size < 0 {
		return nil, fmt.Errorf("cache size %d: %w", size, internalerr.ErrInvalidConfig)
	}
	if size == 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.NewWithEvict(size, a.onEvict)
	if err != nil {
		return nil, fmt.Errorf("create chain cache: %w", err)
	}
	a.cache = cache

	return a, nil
}

// VersionOrDefault parses tag, falling back to VersionCurrent when it is
// empty or unknown. Unknown tags are logged as warnings.
func VersionOrDefault(tag string, log zerolog.Logger) Version {
	if tag == "" {
		return VersionCurrent
	}
	v, ok := ParseVersion(tag)
	if !ok {
		log.Warn().Str("version", tag).Str("fallback", string(VersionCurrent)).Msg("unknown version, using default")
		return VersionCurrent
	}
	return v
}

// Version returns the compatibility version in effect.
func (a *Analyzer) Version() Version {
	return a.version
}

// StopWords returns the stop set used by new chains.
func (a *Analyzer) StopWords() *stoplist.Set {
	return a.stops
}

// SetMaxTokenLength sets the token length limit. It takes effect the next
// time a chain is built or acquired.
func (a *Analyzer) SetMaxTokenLength(n int) {
	if n <= 0 {
		n = DefaultMaxTokenLength
	}
	a.mu.Lock()
	a.maxTokenLength = n
	a.mu.Unlock()
}

// MaxTokenLength returns the token length limit.
func (a *Analyzer) MaxTokenLength() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maxTokenLength
}

// BuildChain always constructs a new chain bound to r. The chain is not
// cached and may be used by the caller alone for as long as it likes.
func (a *Analyzer) BuildChain(field string, r io.Reader) *Chain {
	if a.builder != nil {
		return newChain(field, a.builder(field, r))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	c := a.buildStandard(field, r)
	a.configure(c)
	return c
}

// AcquireReusableChain returns the chain cached for key, rebound to r, or
// builds and caches one on first use. Current configuration is applied on
// every acquisition.
//
// Acquiring a key again means its consumer has moved on: the chain is
// rebound even if the previous input was not drained. With
// Options.ExclusiveLease set, acquiring a key whose chain is still leased
// fails with internalerr.ErrChainBusy instead. When a ChainBuilder override
// is set the cache is bypassed and a fresh chain is built every time.
func (a *Analyzer) AcquireReusableChain(key ConsumerKey, field string, r io.Reader) (*Chain, error) {
	if a.builder != nil {
		return a.BuildChain(field, r), nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.cache.Get(key)
	if !ok {
		c = a.buildStandard(field, r)
		c.lease()
		a.cache.Add(key, c)
		a.log.Debug().Str("key", string(key)).Str("chain", c.ID()).Str("field", field).Msg("built token chain")
	} else {
		if !c.lease() {
			if a.exclusive {
				return nil, fmt.Errorf("acquire chain for %q: %w", key, internalerr.ErrChainBusy)
			}
			a.log.Debug().Str("key", string(key)).Str("chain", c.ID()).Msg("abandoning undrained token chain")
		}
		c.rebind(field, r)
		a.log.Debug().Str("key", string(key)).Str("chain", c.ID()).Str("field", field).Msg("reusing token chain")
	}

	a.configure(c)
	return c, nil
}

// Forget drops the cached chain for key. It reports whether one existed.
func (a *Analyzer) Forget(key ConsumerKey) bool {
	return a.cache.Remove(key)
}

// CachedChains returns the number of chains in the reuse cache.
func (a *Analyzer) CachedChains() int {
	return a.cache.Len()
}

func (a *Analyzer) buildStandard(field string, r io.Reader) *Chain {
	source := analysis.NewTokenizer(r)
	var ts analysis.TokenStream = analysis.NewStandardFilter(source)
	ts = analysis.NewLowerCaseFilter(ts)
	stop := analysis.NewStopFilter(ts, a.stops, a.version.EnablePositionIncrements())
	encoder := phonetic.NewFilter(stop)

	c := newChain(field, encoder)
	c.source = source
	c.stop = stop
	c.encoder = encoder
	return c
}

// configure applies settings that may change between acquisitions.
func (a *Analyzer) configure(c *Chain) {
	c.source.SetMaxTokenLength(a.maxTokenLength)
	c.source.SetReplaceInvalidAcronym(a.version.ReplaceInvalidAcronym())
	c.stop.SetEnablePositionIncrements(a.version.EnablePositionIncrements())
}

func (a *Analyzer) onEvict(key ConsumerKey, c *Chain) {
	a.log.Debug().Str("key", string(key)).Str("chain", c.ID()).Msg("evicted token chain")
}
