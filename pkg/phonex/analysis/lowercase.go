package analysis

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerCaseFilter lowercases every token using Unicode case mapping.
type LowerCaseFilter struct {
	Filter
	caser cases.Caser
}

// NewLowerCaseFilter wraps in.
func NewLowerCaseFilter(in TokenStream) *LowerCaseFilter {
	return &LowerCaseFilter{
		Filter: NewFilter(in),
		caser:  cases.Lower(language.Und),
	}
}

// Advance implements TokenStream.
func (f *LowerCaseFilter) Advance() (bool, error) {
	ok, err := f.Pull()
	if !ok {
		return false, err
	}

	tok := f.Token()
	tok.SetTerm(f.caser.Bytes(tok.Term))
	return true, nil
}
