package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwraps(t *testing.T) {
	err := Newf(ErrFileNotFound, "%s missing", "a.txt")
	assert.Equal(t, "file not found: a.txt missing", err.Error())
	assert.True(t, errors.Is(err, ErrFileNotFound))

	wrapped := fmt.Errorf("loading: %w", err)
	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "a.txt missing", appErr.Message)
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{New(ErrFileNotFound, "x"), "File not found. Please check the filename and try again."},
		{New(ErrInvalidArgument, "x"), "Please enter a positive whole number."},
		{ErrEmptyCorpus, "Nothing to display yet. Analyze some text first."},
		{New(ErrRender, "disk full"), "Could not render the image: render failed: disk full"},
		{errors.New("boom"), "Something went wrong: boom"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, UserMessage(tc.err))
	}
}
