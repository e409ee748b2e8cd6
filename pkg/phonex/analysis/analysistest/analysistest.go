// Package analysistest provides helpers for testing analysis stages.
package analysistest

import (
	"github.com/cognicore/phonex/pkg/phonex/analysis"
)

// SliceStream is a Source that emits a fixed list of terms in order.
// Each term is typed as alphanumeric with a position increment of one.
type SliceStream struct {
	terms []string
	next  int
	done  bool
	tok   analysis.Token

	// Pulls counts calls to Advance that reached the source.
	Pulls int
}

// NewSliceStream returns a source over terms.
func NewSliceStream(terms ...string) *SliceStream {
	return &SliceStream{terms: terms}
}

// Advance implements analysis.TokenStream.
func (s *SliceStream) Advance() (bool, error) {
	if s.done {
		return false, nil
	}
	s.Pulls++
	if s.next >= len(s.terms) {
		s.done = true
		return false, nil
	}
	s.tok.Clear()
	s.tok.SetTermString(s.terms[s.next])
	s.next++
	return true, nil
}

// Token implements analysis.TokenStream.
func (s *SliceStream) Token() *analysis.Token {
	return &s.tok
}

// Reset rewinds the stream to its first term.
func (s *SliceStream) Reset() {
	s.next = 0
	s.done = false
}

// Collect drains ts and returns the terms it produced.
func Collect(ts analysis.TokenStream) ([]string, error) {
	var terms []string
	for {
		ok, err := ts.Advance()
		if err != nil {
			return terms, err
		}
		if !ok {
			return terms, nil
		}
		terms = append(terms, string(ts.Token().Term))
	}
}

// CollectTokens drains ts and returns copies of every token.
func CollectTokens(ts analysis.TokenStream) ([]analysis.Token, error) {
	var tokens []analysis.Token
	for {
		ok, err := ts.Advance()
		if err != nil {
			return tokens, err
		}
		if !ok {
			return tokens, nil
		}
		tok := *ts.Token()
		tok.Term = append([]byte(nil), tok.Term...)
		tokens = append(tokens, tok)
	}
}

// ErrReader returns its data and then fails with Err.
type ErrReader struct {
	Data []byte
	Err  error
}

func (r *ErrReader) Read(p []byte) (int, error) {
	if len(r.Data) == 0 {
		return 0, r.Err
	}
	n := copy(p, r.Data)
	r.Data = r.Data[n:]
	return n, nil
}
