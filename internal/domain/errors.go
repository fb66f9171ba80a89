package domain

import (
	"errors"
	"fmt"
)

// ErrNoCanonicalLink indicates a fetched page carried no usable
// <link rel="canonical"> element.
var ErrNoCanonicalLink = errors.New("no canonical link found in page")

// ResolutionError indicates the resolver could not determine a canonical
// channel ID: malformed input, an unsupported URL shape, a failed fallback
// fetch, or a fetched page without an identifier.
type ResolutionError struct {
	Input string
	Cause error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve channel ID from %q: %v", e.Input, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// NewResolutionError wraps cause as a resolution failure for the given input.
func NewResolutionError(input string, cause error) *ResolutionError {
	return &ResolutionError{Input: input, Cause: cause}
}
