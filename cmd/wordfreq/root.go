package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/session"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/metrics"
)

type app struct {
	configPath string
	logLevel   string
	outputDir  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "wordfreq",
		Short:         "Count word frequencies in text",
		Long:          `wordfreq counts how often words appear in files or typed text and shows the most frequent ones as a list, a bar chart or a word cloud.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interactive(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&a.outputDir, "output-dir", "o", "", "directory for rendered images")

	rootCmd.AddCommand(newAnalyzeCmd(a))
	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.outputDir != "" {
		cfg.Render.OutputDir = a.outputDir
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	a.cfg = cfg
	return nil
}

func (a *app) newCounter() *analyzer.Counter {
	tok := tokenizer.New(
		tokenizer.WithStopWords(tokenizer.NewStopWordSet(a.cfg.Analyzer.StopWords...)),
		tokenizer.WithPunctuation(a.cfg.Analyzer.Punctuation),
	)
	return analyzer.New(tok)
}

// startMetrics starts the scrape endpoint when enabled and returns a stop
// function that is always safe to call.
func (a *app) startMetrics(m *metrics.Metrics) func() {
	if !a.cfg.Metrics.Enabled {
		return func() {}
	}
	shutdown := m.StartServer(a.cfg.Metrics.Port)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			slog.Error("metrics server shutdown failed", "error", err)
		}
	}
}

func (a *app) interactive(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(nil)
	defer a.startMetrics(m)()

	slog.Info("starting interactive session",
		"stop_words", len(a.cfg.Analyzer.StopWords),
		"output_dir", a.cfg.Render.OutputDir,
	)
	s := session.New(a.newCounter(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Render, m)
	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
