package analyzer

import (
	"io"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/phonex/pkg/phonex/analysis"
	"github.com/cognicore/phonex/pkg/phonex/phonetic"
)

// ConsumerKey identifies the consumer a reusable chain belongs to, for
// example one field-processing worker.
type ConsumerKey string

// NewConsumerKey returns a fresh unique key.
func NewConsumerKey() ConsumerKey {
	return ConsumerKey(ulid.Make().String())
}

// Chain is a wired token pipeline. It is itself a TokenStream: pulling
// from the chain pulls from its last stage.
//
// A chain handed out by AcquireReusableChain is leased to its caller until
// Advance reports exhaustion or an error, until Release is called, or until
// the same key is acquired again.
type Chain struct {
	id     ulid.ULID
	field  string
	stream analysis.TokenStream

	// Set only for chains built from the standard stages.
	source  *analysis.Tokenizer
	stop    *analysis.StopFilter
	encoder *phonetic.Filter

	leased atomic.Bool
}

func newChain(field string, stream analysis.TokenStream) *Chain {
	return &Chain{
		id:     ulid.Make(),
		field:  field,
		stream: stream,
	}
}

// ID returns the chain's unique identifier.
func (c *Chain) ID() string {
	return c.id.String()
}

// Field returns the field the chain was last bound for.
func (c *Chain) Field() string {
	return c.field
}

// Advance implements analysis.TokenStream.
func (c *Chain) Advance() (bool, error) {
	ok, err := c.stream.Advance()
	if err != nil || !ok {
		c.leased.Store(false)
	}
	return ok, err
}

// Token implements analysis.TokenStream.
func (c *Chain) Token() *analysis.Token {
	return c.stream.Token()
}

// Reset implements analysis.TokenStream.
func (c *Chain) Reset() {
	c.stream.Reset()
}

// Release ends the caller's lease. It only matters for analyzers built
// with Options.ExclusiveLease, where an undrained chain cannot be acquired
// again until it is released.
func (c *Chain) Release() {
	c.leased.Store(false)
}

// Leased reports whether a consumer currently holds the chain.
func (c *Chain) Leased() bool {
	return c.leased.Load()
}

// SkippedEmpty returns how many empty tokens the phonetic stage dropped
// since the chain was last bound.
func (c *Chain) SkippedEmpty() int {
	if c.encoder == nil {
		return 0
	}
	return c.encoder.Skipped()
}

func (c *Chain) lease() bool {
	return c.leased.CompareAndSwap(false, true)
}

// rebind points the source at new input and clears every stage.
func (c *Chain) rebind(field string, r io.Reader) {
	c.field = field
	c.source.SetReader(r)
	c.stream.Reset()
}
