package stoplist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// EnglishStopWords are common English words that are usually not useful
// for searching.
var EnglishStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "if", "in", "into", "is", "it",
	"no", "not", "of", "on", "or", "such",
	"that", "the", "their", "then", "there", "these",
	"they", "this", "to", "was", "will", "with",
}

// Set is an immutable set of lowercase stop words.
type Set struct {
	words map[string]struct{}
}

// New builds a set from words. Words are trimmed and lowercased; blanks
// are ignored.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// English returns a set holding EnglishStopWords.
func English() *Set {
	return New(EnglishStopWords...)
}

// Contains reports whether term is a stop word.
func (s *Set) Contains(term []byte) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[string(term)]
	return ok
}

// Has is Contains for string input.
func (s *Set) Has(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the words in sorted order.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.words))
	for w := range s.words {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Union returns a new set holding the words of s and extra.
func (s *Set) Union(extra ...string) *Set {
	return New(append(s.Words(), extra...)...)
}

// LoadWords reads one word per line. Blank lines and lines starting with
// '#' are skipped.
func LoadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// LoadWordsFile is LoadWords for a file on disk.
func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadWords(f)
}
