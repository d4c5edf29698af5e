package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Len(t, cfg.Analyzer.StopWords, 25)
	assert.Contains(t, cfg.Analyzer.StopWords, "the")
	assert.Equal(t, DefaultPunctuation, cfg.Analyzer.Punctuation)
	assert.Equal(t, 800, cfg.Render.CloudWidth)
	assert.Equal(t, 400, cfg.Render.CloudHeight)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfreq.yaml")
	content := `
analyzer:
  stopWords: [foo, bar]
render:
  outputDir: /tmp/out
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar"}, cfg.Analyzer.StopWords)
	assert.Equal(t, DefaultPunctuation, cfg.Analyzer.Punctuation)
	assert.Equal(t, "/tmp/out", cfg.Render.OutputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 1200, cfg.Render.ChartWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  cloudWidth: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
}

func TestValidateUppercaseStopWord(t *testing.T) {
	cfg := Default()
	cfg.Analyzer.StopWords = []string{"The"}
	assert.ErrorIs(t, cfg.Validate(), apperrors.ErrInvalidConfig)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WF_STOP_WORDS", "x,y")
	t.Setenv("WF_OUTPUT_DIR", "/var/tmp")
	t.Setenv("WF_METRICS_ENABLED", "true")
	t.Setenv("WF_METRICS_PORT", "9191")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, cfg.Analyzer.StopWords)
	assert.Equal(t, "/var/tmp", cfg.Render.OutputDir)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9191, cfg.Metrics.Port)
}
