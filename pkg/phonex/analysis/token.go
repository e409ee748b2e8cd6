package analysis

import "fmt"

// Token types produced by the Tokenizer.
const (
	TypeAlphanum   = "<ALPHANUM>"
	TypeApostrophe = "<APOSTROPHE>"
	TypeAcronym    = "<ACRONYM>"
	TypeCompany    = "<COMPANY>"
	TypeEmail      = "<EMAIL>"
	TypeHost       = "<HOST>"
	TypeNum        = "<NUM>"
)

// Token is the word currently flowing through a chain. A single Token is
// shared by every stage of one chain and overwritten on each successful
// Advance.
type Token struct {
	Term              []byte
	Type              string
	PositionIncrement int
	StartOffset       int
	EndOffset         int
}

// SetTerm replaces the term text, reusing the existing buffer when it is
// large enough.
func (t *Token) SetTerm(term []byte) {
	t.Term = append(t.Term[:0], term...)
}

// SetTermString is SetTerm for string input.
func (t *Token) SetTermString(term string) {
	t.Term = append(t.Term[:0], term...)
}

// Clear resets the token before a new term is written into it.
func (t *Token) Clear() {
	t.Term = t.Term[:0]
	t.Type = TypeAlphanum
	t.PositionIncrement = 1
	t.StartOffset = 0
	t.EndOffset = 0
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s +%d [%d,%d)", t.Term, t.Type, t.PositionIncrement, t.StartOffset, t.EndOffset)
}
