package crawler

import (
	"errors"
	"fmt"
)

// SkipError reports a page the site refused with a 4xx or 5xx status.
// It is the only recoverable error: the page is dropped and the run goes on.
type SkipError struct {
	Page       int
	StatusCode int
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("page %d could not be accessed: HTTP %d", e.Page, e.StatusCode)
}

// DecodeError reports a response body that could not be decoded to text.
type DecodeError struct {
	Page int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("page %d: decode body: %v", e.Page, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsSkip reports whether err only skips the current page.
// Any other non-nil error must abort the run.
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}
