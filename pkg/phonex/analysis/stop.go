package analysis

// WordSet reports whether a term belongs to a set of words.
type WordSet interface {
	Contains(term []byte) bool
}

// StopFilter drops tokens whose term is in the stop set.
//
// With position increments enabled, the increments of dropped tokens are
// added to the next token that survives, so phrase positions still
// reflect the gap.
type StopFilter struct {
	Filter
	stops                    WordSet
	enablePositionIncrements bool
}

// NewStopFilter wraps in. A nil set drops nothing.
func NewStopFilter(in TokenStream, stops WordSet, enablePositionIncrements bool) *StopFilter {
	return &StopFilter{
		Filter:                   NewFilter(in),
		stops:                    stops,
		enablePositionIncrements: enablePositionIncrements,
	}
}

// SetEnablePositionIncrements toggles gap preservation for dropped tokens.
func (f *StopFilter) SetEnablePositionIncrements(enable bool) {
	f.enablePositionIncrements = enable
}

// EnablePositionIncrements reports whether gaps are preserved.
func (f *StopFilter) EnablePositionIncrements() bool {
	return f.enablePositionIncrements
}

// Advance implements TokenStream.
func (f *StopFilter) Advance() (bool, error) {
	skipped := 0
	for {
		ok, err := f.Pull()
		if !ok {
			return false, err
		}

		tok := f.Token()
		if f.stops == nil || !f.stops.Contains(tok.Term) {
			if f.enablePositionIncrements {
				tok.PositionIncrement += skipped
			}
			return true, nil
		}
		skipped += tok.PositionIncrement
	}
}
