// Package session runs the interactive menu. A Session owns one frequency
// counter for its lifetime; every analyzed file or text adds to the same
// running tally.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/render"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/source"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/metrics"
)

const (
	ChartFile = "top_words.png"
	CloudFile = "word_cloud.png"

	maxLineBytes = 4 << 20
)

const menu = `
Word Frequency Analyzer
1. Analyze text from file
2. Analyze text from input
3. Print top words
4. Plot top words
5. Generate word cloud
6. Exit
`

// Session is a single-user menu loop over one Counter.
type Session struct {
	counter *analyzer.Counter
	in      *bufio.Scanner
	out     io.Writer
	render  config.RenderConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a Session reading choices from in and writing prompts and
// results to out. m may be nil.
func New(counter *analyzer.Counter, in io.Reader, out io.Writer, rc config.RenderConfig, m *metrics.Metrics) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	if m == nil {
		m = metrics.New(nil)
	}
	return &Session{
		counter: counter,
		in:      scanner,
		out:     out,
		render:  rc,
		metrics: m,
		logger:  slog.Default().With("component", "session"),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Failures of individual actions are reported to the user and never end the
// loop.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("Enter your choice (1-6): ")
		if !ok {
			s.goodbye()
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.analyzeFile()
		case "2":
			s.analyzeInput()
		case "3":
			s.printTop()
		case "4":
			s.plotTop()
		case "5":
			s.wordCloud()
		case "6":
			s.goodbye()
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// Counter returns the tally owned by the session.
func (s *Session) Counter() *analyzer.Counter {
	return s.counter
}

func (s *Session) analyzeFile() {
	path, ok := s.prompt("Enter the filename: ")
	if !ok {
		return
	}
	text, err := source.ReadFile(path)
	if err != nil {
		s.metrics.FileFailuresTotal.Inc()
		s.logger.Warn("file read failed", "path", path, "error", err)
		s.report(err)
		return
	}
	s.analyze("file", text)
	s.logger.Info("file analyzed", "source", source.Describe(path, text))
	fmt.Fprintln(s.out, "File analyzed successfully!")
}

func (s *Session) analyzeInput() {
	text, ok := s.prompt("Enter the text to analyze: ")
	if !ok {
		return
	}
	s.analyze("input", text)
	fmt.Fprintln(s.out, "Text analyzed successfully!")
}

func (s *Session) analyze(kind string, text string) {
	res := s.counter.Analyze(text)
	s.metrics.ObserveAnalysis(kind, res.Tokens, res.Discarded, s.counter.Len())
	s.logger.Debug("analysis complete",
		"source", kind,
		"tokens", res.Tokens,
		"discarded", res.Discarded,
		"new_terms", res.NewTerms,
		"distinct", s.counter.Len(),
	)
}

func (s *Session) printTop() {
	entries, ok := s.top("How many top words to display? ")
	if !ok {
		return
	}
	if err := render.List(s.out, entries); err != nil {
		s.report(err)
	}
}

func (s *Session) plotTop() {
	entries, ok := s.top("How many top words to plot? ")
	if !ok {
		return
	}
	opts := render.ChartOptions{Width: s.render.ChartWidth, Height: s.render.ChartHeight}
	s.writeImage("chart", ChartFile, func(w io.Writer) error {
		return render.BarChart(w, entries, opts)
	})
}

func (s *Session) wordCloud() {
	freqs := s.counter.Frequencies()
	if len(freqs) == 0 {
		s.report(apperrors.ErrEmptyCorpus)
		return
	}
	opts := render.CloudOptions{
		Width:    s.render.CloudWidth,
		Height:   s.render.CloudHeight,
		MaxWords: s.render.CloudMaxWords,
	}
	s.writeImage("cloud", CloudFile, func(w io.Writer) error {
		return render.WordCloud(w, freqs, opts)
	})
}

// top asks for a count and runs the query. It reports bad input and an
// empty table itself.
func (s *Session) top(question string) ([]analyzer.Entry, bool) {
	answer, ok := s.prompt(question)
	if !ok {
		return nil, false
	}
	n, err := ParseCount(answer)
	if err != nil {
		s.metrics.QueriesTotal.WithLabelValues("invalid").Inc()
		s.report(err)
		return nil, false
	}
	entries, err := s.counter.Top(n)
	if err != nil {
		s.metrics.QueriesTotal.WithLabelValues("invalid").Inc()
		s.report(err)
		return nil, false
	}
	if len(entries) == 0 {
		s.metrics.QueriesTotal.WithLabelValues("empty").Inc()
		s.report(apperrors.ErrEmptyCorpus)
		return nil, false
	}
	s.metrics.QueriesTotal.WithLabelValues("ok").Inc()
	return entries, true
}

func (s *Session) writeImage(kind, name string, draw func(io.Writer) error) {
	path := filepath.Join(s.render.OutputDir, name)
	err := render.ToFile(path, draw)
	if err != nil {
		s.metrics.RendersTotal.WithLabelValues(kind, "error").Inc()
		s.logger.Error("render failed", "kind", kind, "path", path, "error", err)
		s.report(err)
		return
	}
	s.metrics.RendersTotal.WithLabelValues(kind, "ok").Inc()
	fmt.Fprintf(s.out, "Saved %s\n", path)
}

func (s *Session) prompt(question string) (string, bool) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) report(err error) {
	fmt.Fprintln(s.out, apperrors.UserMessage(err))
}

func (s *Session) goodbye() {
	fmt.Fprintln(s.out, "Thank you for using Word Frequency Analyzer. Goodbye!")
}

// ParseCount validates a "how many words" answer. Anything that is not a
// positive base-10 integer fails with apperrors.ErrInvalidArgument.
func ParseCount(answer string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, apperrors.Newf(apperrors.ErrInvalidArgument, "%q is out of range", answer)
		}
		return 0, apperrors.Newf(apperrors.ErrInvalidArgument, "%q is not a number", answer)
	}
	if n <= 0 {
		return 0, apperrors.Newf(apperrors.ErrInvalidArgument, "%d is not positive", n)
	}
	return n, nil
}
