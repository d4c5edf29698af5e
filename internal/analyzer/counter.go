// Package analyzer accumulates term frequencies across successive texts and
// answers top-N queries over the running tally.
package analyzer

import (
	"sort"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

// Entry is a single ranked term. It is produced by Top and never stored.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Result summarises one Analyze call.
type Result struct {
	// Tokens is the number of terms added to the table.
	Tokens int
	// Discarded is the number of stop-words dropped.
	Discarded int
	// NewTerms is the number of terms seen for the first time.
	NewTerms int
}

// Counter owns a frequency table that only ever grows. It is not safe for
// concurrent use.
type Counter struct {
	tok    *tokenizer.Tokenizer
	counts map[string]int
	total  int
}

// New creates an empty Counter. With no tokenizer it uses tokenizer.New().
func New(tok *tokenizer.Tokenizer) *Counter {
	if tok == nil {
		tok = tokenizer.New()
	}
	return &Counter{
		tok:    tok,
		counts: make(map[string]int),
	}
}

// Analyze tokenizes text and adds one to the count of every surviving term.
// Calls accumulate; the table is never reset.
func (c *Counter) Analyze(text string) Result {
	words := tokenizer.Split(c.tok.Normalize(text))
	terms := c.tok.Filter(words)

	res := Result{
		Tokens:    len(terms),
		Discarded: len(words) - len(terms),
	}
	for _, term := range terms {
		if _, seen := c.counts[term]; !seen {
			res.NewTerms++
		}
		c.counts[term]++
	}
	c.total += len(terms)
	return res
}

// Top returns at most n entries ordered by count descending, then token
// ascending. n must be positive. An empty table yields an empty slice.
func (c *Counter) Top(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, apperrors.Newf(apperrors.ErrInvalidArgument, "top count must be positive, got %d", n)
	}
	entries := Rank(c.counts)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// Rank orders every entry of freqs by count descending, then token
// ascending.
func Rank(freqs map[string]int) []Entry {
	entries := make([]Entry, 0, len(freqs))
	for token, count := range freqs {
		entries = append(entries, Entry{Token: token, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

// Frequencies returns a copy of the full table.
func (c *Counter) Frequencies() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// Count returns the tally for token, zero if unseen.
func (c *Counter) Count(token string) int {
	return c.counts[token]
}

// Len returns the number of distinct terms.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Total returns the number of terms counted across all Analyze calls.
func (c *Counter) Total() int {
	return c.total
}
