package phonetic

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/phonex/pkg/phonex/internalerr"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"robert", "r163"},
		{"rupert", "r163"},
		{"rubin", "r150"},
		{"ashcraft", "a226"},
		{"ashcroft", "a226"},
		{"tymczak", "t522"},
		{"pfister", "p123"},
		{"lee", "l000"},
		{"a", "a000"},
		{"ab", "a100"},
		{"tact", "t230"},
		{"jackson", "j250"},
		{"café", "c100"},
		{"élan", "é450"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := EncodeString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeHomophones(t *testing.T) {
	pairs := [][2]string{
		{"robert", "rupert"},
		{"ashcraft", "ashcroft"},
		{"smith", "smyth"},
		{"catherine", "cathryn"},
	}
	for _, p := range pairs {
		a, err := EncodeString(p[0])
		require.NoError(t, err)
		b, err := EncodeString(p[1])
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s and %s should share a code", p[0], p[1])
	}
}

func TestEncodeDigitBypass(t *testing.T) {
	for _, in := range []string{"a1b", "2024", "x86", "mp3player", "٣abc"} {
		got, err := EncodeString(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestEncodeReturnsInputSliceForDigits(t *testing.T) {
	term := []byte("abc123")
	got, err := Encode(term)
	require.NoError(t, err)
	assert.Same(t, &term[0], &got[0])
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode(nil)
	assert.ErrorIs(t, err, internalerr.ErrEmptyToken)

	_, err = EncodeString("")
	assert.ErrorIs(t, err, internalerr.ErrEmptyToken)
}

func TestEncodeFirstRuneKeptVerbatim(t *testing.T) {
	// 'a' maps to '0' in the table but stays as the leading rune.
	got, err := EncodeString("aaaa")
	require.NoError(t, err)
	assert.Equal(t, "a000", got)

	// The second rune is never compared against the first.
	got, err = EncodeString("ccc")
	require.NoError(t, err)
	assert.Equal(t, "c200", got)
}

func TestEncodeUnknownRunesMapToZero(t *testing.T) {
	got, err := EncodeString("b-r")
	require.NoError(t, err)
	assert.Equal(t, "b600", got)
}

// Encoding is not idempotent over words: a four letter word is generally
// not its own code. Codes themselves survive re-encoding only because they
// contain digits and take the bypass.
func TestEncodeIsNotIdempotentOverWords(t *testing.T) {
	for _, word := range []string{"tact", "lamb", "bird"} {
		code, err := EncodeString(word)
		require.NoError(t, err)
		assert.NotEqual(t, word, code)

		again, err := EncodeString(code)
		require.NoError(t, err)
		assert.Equal(t, code, again)
		assert.True(t, strings.ContainsAny(code, "0123456789"))
	}
}

func FuzzEncode(f *testing.F) {
	f.Add("robert")
	f.Add("a")
	f.Add("x1")
	f.Add("naïve")
	f.Add("zzzzzzzzzzzz")

	f.Fuzz(func(t *testing.T, in string) {
		code, err := EncodeString(in)
		if in == "" {
			if err == nil {
				t.Fatal("expected error for empty input")
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.IndexFunc(in, unicode.IsDigit) >= 0 {
			if code != in {
				t.Errorf("digit bypass: got %q, want %q", code, in)
			}
			return
		}
		if n := utf8.RuneCountInString(code); n != CodeLength {
			t.Errorf("code %q has %d runes, want %d", code, n, CodeLength)
		}
	})
}
