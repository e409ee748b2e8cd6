package analysis

import "bytes"

// StandardFilter cleans up tokens from the Tokenizer: possessive "'s" is
// removed from apostrophe words and dots are removed from acronyms.
type StandardFilter struct {
	Filter
}

// NewStandardFilter wraps in.
func NewStandardFilter(in TokenStream) *StandardFilter {
	return &StandardFilter{Filter: NewFilter(in)}
}

// Advance implements TokenStream.
func (f *StandardFilter) Advance() (bool, error) {
	ok, err := f.Pull()
	if !ok {
		return false, err
	}

	tok := f.Token()
	switch tok.Type {
	case TypeApostrophe:
		if n := len(tok.Term); n >= 2 && tok.Term[n-2] == '\'' && (tok.Term[n-1] == 's' || tok.Term[n-1] == 'S') {
			tok.Term = tok.Term[:n-2]
		}
	case TypeAcronym:
		tok.Term = bytes.ReplaceAll(tok.Term, []byte{'.'}, nil)
	}
	return true, nil
}
