package analysis

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxTokenLength is the longest token, in runes, the Tokenizer emits.
const DefaultMaxTokenLength = 255

// joiners may appear inside a compound token (hosts, emails, numbers,
// acronyms, possessives) but never start one.
const joiners = ".'&@-_/,"

var (
	acronymRe    = regexp.MustCompile(`^(?:\pL\.){2,}$`)
	acronymDepRe = regexp.MustCompile(`^(?:[\pL\pN]+\.){2,}$`)
	companyRe    = regexp.MustCompile(`^\pL+[&@]\pL+$`)
	emailRe      = regexp.MustCompile(`^[\pL\pN]+(?:[._-][\pL\pN]+)*@[\pL\pN]+(?:[.-][\pL\pN]+)+$`)
	apostropheRe = regexp.MustCompile(`^\pL+(?:'\pL+)+$`)
	hostRe       = regexp.MustCompile(`^[\pL\pN]+(?:\.[\pL\pN]+)+$`)
	numRe        = regexp.MustCompile(`^[\pL\pN]+(?:[-_/.,][\pL\pN]+)+$`)
)

type span struct {
	start, end int
	typ        string
	overlong   bool
}

// Tokenizer is the Source stage: it segments text from an io.Reader into
// typed word tokens.
//
// Runs of letters and digits, optionally joined by inner punctuation, are
// classified as acronyms, companies, emails, apostrophe words, hosts or
// numbers. Runs that fit none of those are split at the punctuation into
// plain alphanumeric tokens.
type Tokenizer struct {
	r      *bufio.Reader
	tok    Token
	offset int

	maxTokenLength        int
	replaceInvalidAcronym bool

	buf      []byte
	bufStart int
	spans    []span
	next     int
	skipped  int
	eof      bool
	done     bool

	// overlong is set when a segment outgrew maxTokenLength and the rest
	// of it is being read without buffering.
	overlong   bool
	discarding bool
}

// NewTokenizer creates a Tokenizer reading from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{
		r:                     bufio.NewReader(r),
		maxTokenLength:        DefaultMaxTokenLength,
		replaceInvalidAcronym: true,
	}
}

// SetReader rebinds the tokenizer to new input and rewinds it.
func (t *Tokenizer) SetReader(r io.Reader) {
	t.r.Reset(r)
	t.offset = 0
	t.Reset()
}

// SetMaxTokenLength sets the longest token kept. Longer tokens are
// discarded and their position is carried into the next token's increment.
func (t *Tokenizer) SetMaxTokenLength(n int) {
	t.maxTokenLength = n
}

// MaxTokenLength returns the current limit.
func (t *Tokenizer) MaxTokenLength() int {
	return t.maxTokenLength
}

// SetReplaceInvalidAcronym controls how "ab.cd." style tokens are typed:
// as hosts without the trailing dot when true, as acronyms otherwise.
func (t *Tokenizer) SetReplaceInvalidAcronym(replace bool) {
	t.replaceInvalidAcronym = replace
}

// Token returns the token the tokenizer writes into.
func (t *Tokenizer) Token() *Token {
	return &t.tok
}

// Reset clears scan state without touching the reader.
func (t *Tokenizer) Reset() {
	t.buf = t.buf[:0]
	t.spans = t.spans[:0]
	t.next = 0
	t.skipped = 0
	t.eof = false
	t.done = false
	t.overlong = false
	t.discarding = false
}

// Advance implements TokenStream.
func (t *Tokenizer) Advance() (bool, error) {
	if t.done {
		return false, nil
	}
	for {
		if t.next >= len(t.spans) {
			ok, err := t.scan()
			if err != nil || !ok {
				t.done = true
				return false, err
			}
		}
		s := t.spans[t.next]
		t.next++
		if s.overlong {
			t.skipped++
			continue
		}

		term := t.buf[s.start:s.end]
		if utf8.RuneCount(term) > t.maxTokenLength {
			t.skipped++
			continue
		}

		t.tok.Clear()
		t.tok.SetTerm(term)
		t.tok.Type = s.typ
		t.tok.PositionIncrement = 1 + t.skipped
		t.tok.StartOffset = t.bufStart + s.start
		t.tok.EndOffset = t.bufStart + s.end
		t.skipped = 0
		return true, nil
	}
}

// scan reads the next run of word characters and splits it into spans.
// It returns false when the input is exhausted.
func (t *Tokenizer) scan() (bool, error) {
	t.buf = t.buf[:0]
	t.spans = t.spans[:0]
	t.next = 0

	for len(t.spans) == 0 {
		if t.eof {
			return false, nil
		}
		if err := t.readRun(); err != nil {
			return false, err
		}
		if len(t.buf) > 0 {
			t.classify()
		}
		if t.overlong {
			t.spans = append(t.spans, span{overlong: true})
			t.overlong = false
		}
	}
	return true, nil
}

// readRun skips separators and collects one run into buf.
//
// A segment of word runes between joiners that grows past maxTokenLength
// can never be part of a kept token. The run ends before it, and the rest
// of the segment is consumed without being buffered.
func (t *Tokenizer) readRun() error {
	t.buf = t.buf[:0]
	segStart, segRunes := 0, 0
	for {
		r, size, err := t.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.eof = true
				return nil
			}
			return err
		}
		pos := t.offset
		t.offset += size

		if t.discarding {
			if isWordRune(r) {
				continue
			}
			t.discarding = false
			continue
		}

		if isWordRune(r) {
			if len(t.buf) == 0 {
				t.bufStart = pos
			}
			if segRunes == 0 {
				segStart = len(t.buf)
			}
			segRunes++
			if segRunes > t.maxTokenLength {
				t.buf = t.buf[:segStart]
				t.overlong = true
				t.discarding = true
				return nil
			}
			t.buf = utf8.AppendRune(t.buf, r)
			continue
		}
		if len(t.buf) > 0 && strings.ContainsRune(joiners, r) {
			segRunes = 0
			t.buf = utf8.AppendRune(t.buf, r)
			continue
		}
		if len(t.buf) > 0 {
			return nil
		}
	}
}

// classify turns the run in buf into one typed span or several
// alphanumeric spans.
func (t *Tokenizer) classify() {
	run := string(t.buf)

	if strings.HasSuffix(run, ".") {
		switch {
		case acronymRe.MatchString(run):
			t.emit(0, len(run), TypeAcronym)
			return
		case acronymDepRe.MatchString(run):
			if t.replaceInvalidAcronym {
				t.emit(0, len(run)-1, TypeHost)
			} else {
				t.emit(0, len(run), TypeAcronym)
			}
			return
		}
	}

	end := len(strings.TrimRight(run, joiners))
	run = run[:end]

	switch {
	case !strings.ContainsAny(run, joiners):
		t.emit(0, end, TypeAlphanum)
	case companyRe.MatchString(run):
		t.emit(0, end, TypeCompany)
	case emailRe.MatchString(run):
		t.emit(0, end, TypeEmail)
	case apostropheRe.MatchString(run):
		t.emit(0, end, TypeApostrophe)
	case hostRe.MatchString(run) && strings.IndexFunc(run, unicode.IsLetter) >= 0:
		t.emit(0, end, TypeHost)
	case numRe.MatchString(run) && strings.IndexFunc(run, unicode.IsDigit) >= 0:
		t.emit(0, end, TypeNum)
	default:
		start := -1
		for i, r := range run {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				t.emit(start, i, TypeAlphanum)
				start = -1
			}
		}
		if start >= 0 {
			t.emit(start, end, TypeAlphanum)
		}
	}
}

func (t *Tokenizer) emit(start, end int, typ string) {
	t.spans = append(t.spans, span{start: start, end: end, typ: typ})
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
