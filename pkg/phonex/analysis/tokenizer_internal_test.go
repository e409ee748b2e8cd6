package analysis

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letters is an endless stream of one letter.
type letters byte

func (l letters) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(l)
	}
	return len(p), nil
}

func TestTokenizerDoesNotBufferOverlongRun(t *testing.T) {
	const runLen = 8 << 20
	in := io.MultiReader(io.LimitReader(letters('a'), runLen), strings.NewReader(" robert"))

	tok := NewTokenizer(in)
	tok.SetMaxTokenLength(6)

	ok, err := tok.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "robert", string(tok.Token().Term))
	assert.Equal(t, 2, tok.Token().PositionIncrement)
	assert.Equal(t, runLen+1, tok.Token().StartOffset)
	assert.LessOrEqual(t, cap(tok.buf), 1024)

	ok, err = tok.Advance()
	require.NoError(t, err)
	assert.False(t, ok)
}
