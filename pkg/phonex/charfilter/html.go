// Package charfilter holds readers that clean raw input before it reaches
// the tokenizer.
package charfilter

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLStripReader streams the text content of an HTML document. Markup is
// dropped, entities are decoded, script and style bodies are skipped and
// adjacent text nodes are separated by a space so words never fuse.
type HTMLStripReader struct {
	z    *html.Tokenizer
	buf  []byte
	skip int
	err  error
}

// NewHTMLStripReader returns a reader over the text of the HTML in r.
func NewHTMLStripReader(r io.Reader) *HTMLStripReader {
	return &HTMLStripReader{z: html.NewTokenizer(r)}
}

func (h *HTMLStripReader) Read(p []byte) (int, error) {
	for len(h.buf) == 0 {
		if h.err != nil {
			return 0, h.err
		}
		h.fill()
	}
	n := copy(p, h.buf)
	h.buf = h.buf[n:]
	return n, nil
}

func (h *HTMLStripReader) fill() {
	switch h.z.Next() {
	case html.ErrorToken:
		h.err = h.z.Err()
		if h.err == nil {
			h.err = io.EOF
		}
	case html.TextToken:
		if h.skip == 0 {
			h.buf = append(h.buf, h.z.Text()...)
			h.buf = append(h.buf, ' ')
		}
	case html.StartTagToken:
		if isRawText(h.z) {
			h.skip++
		}
	case html.EndTagToken:
		if isRawText(h.z) && h.skip > 0 {
			h.skip--
		}
	case html.SelfClosingTagToken:
		h.buf = append(h.buf, ' ')
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Script, atom.Style:
		return true
	}
	return false
}
