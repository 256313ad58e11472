package addressbook

import (
	"errors"
	"fmt"

	"github.com/tartampluch/assistant-bot/internal/config"
)

// Sentinels for errors.Is checks by callers that do not care about the details.
var (
	ErrFormat   = errors.New("format error")
	ErrNotFound = errors.New(config.ErrNotFound)
)

// FormatError reports a value that cannot be turned into a Phone or Birthday.
// Reason is the user-facing part, e.g. "must contain exactly 9 digits".
type FormatError struct {
	Field  string
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// NotFoundError reports a referenced value missing from a Record.
type NotFoundError struct {
	Field string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s %s", e.Field, e.Value, config.ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
