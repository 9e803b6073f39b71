package data

import "errors"

// Dispatch-time errors. Resolution errors (unknown extension,
// unsupported payload kind) are defined in internal/format and pass
// through unchanged.
var (
	// ErrEncoding wraps I/O and format errors reported by a tabular
	// encoder or the file system.
	ErrEncoding = errors.New("encoding failed")

	// ErrSerialization wraps failures on the object path: the archive
	// rejected the object, or the stored name does not match.
	ErrSerialization = errors.New("object serialization failed")
)

// FatalError carries the diagnostic of a failed call in fatal mode.
// It is delivered by panic and can be recovered by callers that want
// both fatal semantics and local handling; Unwrap exposes the
// underlying cause for errors.Is checks.
type FatalError struct {
	Err error
}

// Error implements the error interface.
func (e *FatalError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying cause.
func (e *FatalError) Unwrap() error { return e.Err }
