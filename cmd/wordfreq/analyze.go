package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/render"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/source"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/metrics"
)

type analyzeOptions struct {
	text      string
	top       int
	chartPath string
	cloudPath string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze files and text once and print the top words",
		Long: `analyze reads every file given as an argument plus the --text value into one
running tally, prints the most frequent words and optionally renders a bar chart
and a word cloud. Unreadable files are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "text to analyze in addition to files")
	cmd.Flags().IntVarP(&opts.top, "top", "n", 10, "number of top words to print")
	cmd.Flags().StringVar(&opts.chartPath, "chart", "", "write a bar chart of the top words to this PNG file")
	cmd.Flags().StringVar(&opts.cloudPath, "cloud", "", "write a word cloud to this PNG file")
	return cmd
}

func (a *app) analyze(stdout, stderr io.Writer, paths []string, opts *analyzeOptions) error {
	if opts.top <= 0 {
		return apperrors.Newf(apperrors.ErrInvalidArgument, "--top must be positive, got %d", opts.top)
	}
	if len(paths) == 0 && opts.text == "" {
		return apperrors.New(apperrors.ErrInvalidArgument, "nothing to analyze: pass files or --text")
	}

	m := metrics.New(nil)
	defer a.startMetrics(m)()
	counter := a.newCounter()

	texts, failed := source.ReadFiles(paths)
	for _, path := range paths {
		if err, ok := failed[path]; ok {
			m.FileFailuresTotal.Inc()
			slog.Warn("file read failed", "path", path, "error", err)
			fmt.Fprintf(stderr, "skipping %s: %s\n", path, apperrors.UserMessage(err))
		}
	}
	for _, text := range texts {
		res := counter.Analyze(text)
		m.ObserveAnalysis("file", res.Tokens, res.Discarded, counter.Len())
	}
	if opts.text != "" {
		res := counter.Analyze(opts.text)
		m.ObserveAnalysis("input", res.Tokens, res.Discarded, counter.Len())
	}
	if len(texts) == 0 && opts.text == "" {
		return apperrors.Newf(apperrors.ErrFileNotFound, "none of the %d files could be read", len(paths))
	}
	slog.Info("analysis complete", "files", len(texts), "distinct", counter.Len(), "total", counter.Total())

	entries, err := counter.Top(opts.top)
	if err != nil {
		return err
	}
	if err := render.List(stdout, entries); err != nil {
		fmt.Fprintln(stdout, apperrors.UserMessage(err))
		return nil
	}

	if opts.chartPath != "" {
		chartOpts := render.ChartOptions{Width: a.cfg.Render.ChartWidth, Height: a.cfg.Render.ChartHeight}
		if err := render.ToFile(opts.chartPath, func(w io.Writer) error {
			return render.BarChart(w, entries, chartOpts)
		}); err != nil {
			m.RendersTotal.WithLabelValues("chart", "error").Inc()
			return err
		}
		m.RendersTotal.WithLabelValues("chart", "ok").Inc()
		fmt.Fprintf(stdout, "Saved %s\n", opts.chartPath)
	}
	if opts.cloudPath != "" {
		cloudOpts := render.CloudOptions{
			Width:    a.cfg.Render.CloudWidth,
			Height:   a.cfg.Render.CloudHeight,
			MaxWords: a.cfg.Render.CloudMaxWords,
		}
		freqs := counter.Frequencies()
		if err := render.ToFile(opts.cloudPath, func(w io.Writer) error {
			return render.WordCloud(w, freqs, cloudOpts)
		}); err != nil {
			m.RendersTotal.WithLabelValues("cloud", "error").Inc()
			return err
		}
		m.RendersTotal.WithLabelValues("cloud", "ok").Inc()
		fmt.Fprintf(stdout, "Saved %s\n", opts.cloudPath)
	}
	return nil
}
