package tokenizer

import "sort"

var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "were", "will", "with",
}

// StopWordSet is an immutable set of lowercase terms excluded from counting.
type StopWordSet struct {
	words map[string]struct{}
}

// NewStopWordSet builds a set from words. The input slice is copied.
func NewStopWordSet(words ...string) StopWordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return StopWordSet{words: m}
}

// DefaultStopWords returns the built-in English function words.
func DefaultStopWords() StopWordSet {
	return NewStopWordSet(defaultStopWords...)
}

// Contains reports whether word is a stop-word. Matching is exact.
func (s StopWordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

func (s StopWordSet) Len() int {
	return len(s.words)
}

// Words returns the members in ascending order.
func (s StopWordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
