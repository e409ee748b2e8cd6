package phonetic

import (
	"errors"

	"github.com/cognicore/phonex/pkg/phonex/analysis"
	"github.com/cognicore/phonex/pkg/phonex/internalerr"
)

// Filter rewrites each token's term with its phonetic code. Tokens that
// contain digits pass through unchanged. Empty tokens are skipped and
// their position increment is carried to the next token.
type Filter struct {
	analysis.Filter
	skipped int
}

// NewFilter wraps in.
func NewFilter(in analysis.TokenStream) *Filter {
	return &Filter{Filter: analysis.NewFilter(in)}
}

// Advance implements analysis.TokenStream.
func (f *Filter) Advance() (bool, error) {
	carry := 0
	for {
		ok, err := f.Pull()
		if !ok {
			return false, err
		}

		tok := f.Token()
		code, err := Encode(tok.Term)
		if errors.Is(err, internalerr.ErrEmptyToken) {
			f.skipped++
			carry += tok.PositionIncrement
			continue
		}
		tok.SetTerm(code)
		tok.PositionIncrement += carry
		return true, nil
	}
}

// Skipped returns how many empty tokens the filter has dropped since the
// last Reset.
func (f *Filter) Skipped() int {
	return f.skipped
}

// Reset implements analysis.TokenStream.
func (f *Filter) Reset() {
	f.skipped = 0
	f.Filter.Reset()
}
