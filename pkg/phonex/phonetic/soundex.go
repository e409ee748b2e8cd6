// Package phonetic implements the Soundex variant used to index words by
// sound, and the analysis filter that applies it to a token stream.
package phonetic

import (
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/phonex/pkg/phonex/internalerr"
)

// CodeLength is the number of runes in every phonetic code.
const CodeLength = 4

// digits maps lowercase ASCII letters to their Soundex digit. Anything
// not in the table encodes as '0'.
var digits = func() [unicode.MaxASCII + 1]rune {
	var t [unicode.MaxASCII + 1]rune
	groups := map[rune]string{
		'0': "aeiouhwy",
		'1': "bfpv",
		'2': "cgjkqsxz",
		'3': "dt",
		'4': "l",
		'5': "mn",
		'6': "r",
	}
	for i := range t {
		t[i] = '0'
	}
	for d, letters := range groups {
		for _, l := range letters {
			t[l] = d
		}
	}
	return t
}()

func digitFor(r rune) rune {
	if r >= 0 && r <= unicode.MaxASCII {
		return digits[r]
	}
	return '0'
}

// Encode returns the phonetic code of term.
//
// The first rune is kept verbatim and every later rune is replaced by its
// digit. Adjacent duplicate digits are collapsed and zeros dropped, then
// the result is padded with zeros and cut to CodeLength runes. Terms that
// contain a decimal digit are returned unchanged so numbers still match
// exactly. An empty term yields internalerr.ErrEmptyToken.
func Encode(term []byte) ([]byte, error) {
	if len(term) == 0 {
		return nil, internalerr.ErrEmptyToken
	}
	if hasDigit(term) {
		return term, nil
	}

	first, size := utf8.DecodeRune(term)
	code := make([]rune, 0, utf8.RuneCount(term)+CodeLength-1)
	code = append(code, first)
	for rest := term[size:]; len(rest) > 0; {
		r, n := utf8.DecodeRune(rest)
		code = append(code, digitFor(r))
		rest = rest[n:]
	}

	if len(code) > 2 {
		code = collapseRuns(code)
		code = dropZeros(code)
	}

	code = append(code, '0', '0', '0')
	return []byte(string(code[:CodeLength])), nil
}

// EncodeString is Encode for string input.
func EncodeString(term string) (string, error) {
	code, err := Encode([]byte(term))
	if err != nil {
		return "", err
	}
	return string(code), nil
}

// collapseRuns removes digits equal to their predecessor, starting at the
// third rune so the verbatim first rune is never compared.
func collapseRuns(code []rune) []rune {
	out := code[:2]
	for _, r := range code[2:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return out
}

// dropZeros removes every '0' after the first rune.
func dropZeros(code []rune) []rune {
	out := code[:1]
	for _, r := range code[1:] {
		if r != '0' {
			out = append(out, r)
		}
	}
	return out
}

func hasDigit(term []byte) bool {
	for len(term) > 0 {
		r, n := utf8.DecodeRune(term)
		if unicode.IsDigit(r) {
			return true
		}
		term = term[n:]
	}
	return false
}
