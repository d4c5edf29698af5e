// Package source loads text to analyze from the filesystem.
package source

import (
	"fmt"
	"os"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

// ReadFile returns the whole content of path as a string. Any path that
// does not resolve to a readable regular file fails with
// apperrors.ErrFileNotFound.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", apperrors.Newf(apperrors.ErrFileNotFound, "%s: %v", path, err)
	}
	if info.IsDir() {
		return "", apperrors.Newf(apperrors.ErrFileNotFound, "%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Newf(apperrors.ErrFileNotFound, "reading %s: %v", path, err)
	}
	return string(data), nil
}

// ReadFiles reads every path in order. Paths that fail are returned in the
// error map and skipped.
func ReadFiles(paths []string) (texts []string, failed map[string]error) {
	failed = make(map[string]error)
	for _, p := range paths {
		text, err := ReadFile(p)
		if err != nil {
			failed[p] = err
			continue
		}
		texts = append(texts, text)
	}
	return texts, failed
}

// Describe renders a short label for logs.
func Describe(path string, text string) string {
	return fmt.Sprintf("%s (%d bytes)", path, len(text))
}
