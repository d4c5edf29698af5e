package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

// List writes one "word: count" line per entry.
func List(w io.Writer, entries []analyzer.Entry) error {
	if len(entries) == 0 {
		return apperrors.ErrEmptyCorpus
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Token, e.Count); err != nil {
			return fmt.Errorf("writing list: %w", err)
		}
	}
	return nil
}

// ToFile creates path and streams draw's output into it.
func ToFile(path string, draw func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Newf(apperrors.ErrRender, "creating %s: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.Newf(apperrors.ErrRender, "closing %s: %v", path, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err := draw(w); err != nil {
		return err
	}
	return w.Flush()
}
