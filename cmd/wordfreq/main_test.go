package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "cat cat")
	b := writeFile(t, dir, "b.txt", "cat dog")

	stdout, _, err := execute(t, "", "analyze", a, b, "--top", "1")
	require.NoError(t, err)
	assert.Equal(t, "cat: 3\n", stdout)
}

func TestAnalyzeCommandSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "Run! Run? RUN.")
	missing := filepath.Join(dir, "missing.txt")

	stdout, stderr, err := execute(t, "", "analyze", missing, good)
	require.NoError(t, err)
	assert.Equal(t, "run: 3\n", stdout)
	assert.Contains(t, stderr, "skipping "+missing)
}

func TestAnalyzeCommandAllFilesMissing(t *testing.T) {
	_, _, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestAnalyzeCommandNeedsInput(t *testing.T) {
	_, _, err := execute(t, "", "analyze")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestAnalyzeCommandRejectsBadTop(t *testing.T) {
	_, _, err := execute(t, "", "analyze", "--text", "cat", "--top", "0")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestAnalyzeCommandOnlyStopWords(t *testing.T) {
	stdout, _, err := execute(t, "", "analyze", "--text", "in 2024 it was")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Nothing to display yet")
}

func TestAnalyzeCommandRendersImages(t *testing.T) {
	dir := t.TempDir()
	chart := filepath.Join(dir, "chart.png")
	cloud := filepath.Join(dir, "cloud.png")

	stdout, _, err := execute(t, "", "analyze",
		"--text", "The Cat and the Dog sat. The cat ran.",
		"--chart", chart,
		"--cloud", cloud,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cat: 2\n")
	assert.FileExists(t, chart)
	assert.FileExists(t, cloud)
}

func TestAnalyzeCommandUsesConfigStopWords(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "wordfreq.yaml", "analyzer:\n  stopWords: [cat]\n")

	stdout, _, err := execute(t, "", "--config", cfg, "analyze", "--text", "the cat sat")
	require.NoError(t, err)
	assert.Equal(t, "sat: 1\nthe: 1\n", stdout)
}

func TestInteractiveSession(t *testing.T) {
	stdout, _, err := execute(t, "2\nThe Cat and the Dog sat.\n3\n2\n6\n", "--output-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Text analyzed successfully!")
	assert.Contains(t, stdout, "cat: 1\ndog: 1\n")
	assert.Contains(t, stdout, "Goodbye!")
}
