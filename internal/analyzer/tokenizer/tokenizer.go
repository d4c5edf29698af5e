// Package tokenizer turns raw text into countable terms. It lower-cases the
// input, deletes punctuation and digit runs, splits on whitespace and removes
// stop-words.
//
// Punctuation is deleted rather than replaced by a space, so "well-known"
// becomes the single term "wellknown".
package tokenizer

import (
	"regexp"
	"strings"
)

var digitRuns = regexp.MustCompile(`\p{Nd}+`)

// DefaultPunctuation is the ASCII punctuation set.
const DefaultPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenizer holds the vocabularies used by the pipeline. It is immutable
// after construction.
type Tokenizer struct {
	stopWords   StopWordSet
	punctuation map[rune]struct{}
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithStopWords replaces the default stop-word set.
func WithStopWords(set StopWordSet) Option {
	return func(t *Tokenizer) {
		t.stopWords = set
	}
}

// WithPunctuation replaces the default punctuation set. Every rune of chars
// is removed during normalization.
func WithPunctuation(chars string) Option {
	return func(t *Tokenizer) {
		t.punctuation = runeSet(chars)
	}
}

// New creates a Tokenizer with the default English stop-words and ASCII
// punctuation unless overridden.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		stopWords:   DefaultStopWords(),
		punctuation: runeSet(DefaultPunctuation),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Normalize lower-cases text, then deletes punctuation and digit runs.
func (t *Tokenizer) Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if _, ok := t.punctuation[r]; ok {
			return -1
		}
		return r
	}, text)
	return digitRuns.ReplaceAllString(text, "")
}

// Split breaks normalized text on runs of whitespace.
func Split(text string) []string {
	return strings.Fields(text)
}

// Filter returns the tokens that are not stop-words, in their original order.
func (t *Tokenizer) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if t.stopWords.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// Tokenize runs the full pipeline: Normalize, Split, Filter.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.Filter(Split(t.Normalize(text)))
}

// StopWords returns the stop-word set in use.
func (t *Tokenizer) StopWords() StopWordSet {
	return t.stopWords
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}
