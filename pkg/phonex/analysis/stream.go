package analysis

// TokenStream is a pull-based analysis stage.
//
// Advance moves to the next token. It returns true when Token() holds the
// next item, false once the stream is exhausted, and a non-nil error when
// the underlying input failed. After the first false or error every later
// call returns false without touching upstream.
//
// Reset clears per-stage state and cascades upstream so a chain can be
// reused after its Source has been rebound to new input.
type TokenStream interface {
	Advance() (bool, error)
	Token() *Token
	Reset()
}

// Filter is the embedded base of every stage that wraps one upstream
// TokenStream. It tracks exhaustion so a finished chain never re-enters
// its source.
type Filter struct {
	in   TokenStream
	done bool
}

// NewFilter wraps in.
func NewFilter(in TokenStream) Filter {
	return Filter{in: in}
}

// Pull advances the upstream stream once.
func (f *Filter) Pull() (bool, error) {
	if f.done {
		return false, nil
	}
	ok, err := f.in.Advance()
	if err != nil || !ok {
		f.done = true
		return false, err
	}
	return true, nil
}

// Token returns the token shared with upstream.
func (f *Filter) Token() *Token {
	return f.in.Token()
}

// Reset clears the exhaustion flag and resets upstream.
func (f *Filter) Reset() {
	f.done = false
	f.in.Reset()
}
