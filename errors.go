package firfilter

import (
	"errors"
	"fmt"
)

// Errors returned by the filter. Every error from this package wraps exactly
// one of them, so callers can tell the stages apart with errors.Is.
var (
	// ErrConfig indicates an invalid filter design or option. It is
	// reported before any processing starts.
	ErrConfig = errors.New("invalid filter configuration")

	// ErrAllocation indicates the coefficient vector or the history buffer
	// could not be built. No samples are processed.
	ErrAllocation = errors.New("filter allocation failed")

	// ErrIO indicates a failure of the audio source or sink. Output already
	// written is left in place.
	ErrIO = errors.New("audio I/O failed")
)

// IOError describes a failed read or write against a source or sink.
// errors.Is(err, ErrIO) reports true for every IOError.
type IOError struct {
	// Op is the failing stage: "open", "read", "create", "write" or "close".
	Op string

	// Path names the file involved, if known.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
