package format

import "errors"

// Resolution errors.
var (
	// ErrUnknownExtension means the filename has no extension, or its
	// extension maps to no encoding in the active family.
	ErrUnknownExtension = errors.New("unknown file extension")

	// ErrUnsupportedForPayload means the extension or explicit type is
	// valid in the family but cannot encode this payload's structural
	// kind (for example a coordinate list requested for a dense matrix).
	ErrUnsupportedForPayload = errors.New("file type unsupported for payload kind")
)
