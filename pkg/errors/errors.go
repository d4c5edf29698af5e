package errors

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyCorpus     = errors.New("nothing analyzed yet")
	ErrRender          = errors.New("render failed")
	ErrInvalidConfig   = errors.New("invalid config")
)

type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, message string) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: message,
	}
}

func Newf(sentinel error, format string, args ...any) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}

// UserMessage returns the line shown to an interactive user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFileNotFound):
		return "File not found. Please check the filename and try again."
	case errors.Is(err, ErrInvalidArgument):
		return "Please enter a positive whole number."
	case errors.Is(err, ErrEmptyCorpus):
		return "Nothing to display yet. Analyze some text first."
	case errors.Is(err, ErrRender):
		return "Could not render the image: " + err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
