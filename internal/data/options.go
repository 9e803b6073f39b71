package data

import "github.com/gfengTT/mlpack/internal/format"

// Options aggregates the switches accepted by the unified save entry
// point. The zero value gives the defaults of the positional entry
// points: non-fatal reporting, transposition on, encoding derived
// from the filename extension.
type Options struct {
	// Fatal selects error delivery: false routes failures to the
	// diagnostic sink and returns false, true throws a *FatalError.
	Fatal bool

	// NoTranspose suppresses the orientation transform. By default
	// matrices are transposed before encoding, reconciling the
	// column-major in-memory layout with row-major on-disk formats.
	NoTranspose bool

	// Format overrides extension-based resolution when not AutoDetect.
	Format format.FileType
}
