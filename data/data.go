// Copyright 2026 the mlpack Go library authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	idata "github.com/gfengTT/mlpack/internal/data"
	"github.com/gfengTT/mlpack/internal/format"
	"github.com/gfengTT/mlpack/logger"
	"github.com/gfengTT/mlpack/mat"
)

// FileType identifies a tabular (matrix) encoding.
type FileType = format.FileType

// Tabular encodings. AutoDetect, the zero value, derives the encoding
// from the filename extension.
const (
	AutoDetect = format.AutoDetect
	CSVASCII   = format.CSVASCII
	RawASCII   = format.RawASCII
	ArmaASCII  = format.ArmaASCII
	PGMBinary  = format.PGMBinary
	PPMBinary  = format.PPMBinary
	RawBinary  = format.RawBinary
	ArmaBinary = format.ArmaBinary
	HDF5Binary = format.HDF5Binary
	CoordASCII = format.CoordASCII
)

// Format identifies an object-archive encoding. It is deliberately a
// different type from FileType: the two families share extension
// tokens but never encodings.
type Format = format.Format

// Object-archive encodings.
const (
	FormatAutodetect = format.FormatAutodetect
	FormatJSON       = format.FormatJSON
	FormatXML        = format.FormatXML
	FormatBIN        = format.FormatBIN
)

// Options aggregates the switches of the unified save entry point.
// The zero value means non-fatal, transpose, auto-detect.
type Options = idata.Options

// FatalError is thrown (via panic) when a call with fatal set fails.
type FatalError = idata.FatalError

// Failure causes, usable with errors.Is against the error carried by
// a FatalError.
var (
	ErrUnknownExtension      = format.ErrUnknownExtension
	ErrUnsupportedForPayload = format.ErrUnsupportedForPayload
	ErrEncoding              = idata.ErrEncoding
	ErrSerialization         = idata.ErrSerialization
)

// ParseFileType parses a tabular encoding name such as "csv" or
// "arma_binary".
func ParseFileType(s string) (FileType, error) {
	return format.ParseFileType(s)
}

// ParseFormat parses an object-archive encoding name such as "json".
func ParseFormat(s string) (Format, error) {
	return format.ParseFormat(s)
}

// SetLogger replaces the diagnostic sink shared by all save and load
// calls. Passing nil silences diagnostics.
func SetLogger(l logger.Logger) {
	idata.SetLogger(l)
}

// Save saves a dense matrix to filename. The encoding is derived from
// the extension unless t overrides it. When transpose is set (the
// usual case) the matrix is transposed before encoding so that the
// file is row-major; the caller's matrix is never modified. On
// failure Save returns false and logs a warning, or panics with a
// *FatalError when fatal is set.
func Save(filename string, m *mat.Dense, fatal, transpose bool, t FileType) bool {
	return idata.SaveDense(filename, m, fatal, transpose, t)
}

// SaveSparse saves a sparse matrix to filename. Only the coordinate
// list (.tsv), raw binary and Armadillo binary (.bin) encodings can
// hold sparse data; any other extension fails.
func SaveSparse(filename string, m *mat.Sparse, fatal, transpose bool) bool {
	return idata.SaveSparse(filename, m, fatal, transpose)
}

// SaveModel saves a serializable object to filename under the given
// name. A later LoadModel must use the same name.
func SaveModel(filename, name string, obj any, fatal bool, f Format) bool {
	return idata.SaveModel(filename, name, obj, fatal, f)
}

// SaveWithOptions saves a dense or sparse matrix with the switches
// taken from opts instead of positional parameters.
func SaveWithOptions(filename string, payload any, opts Options) bool {
	return idata.SaveWithOptions(filename, payload, opts)
}

// Load loads a dense matrix from filename. Ambiguous ".txt" and
// ".bin" files are told apart by their opening bytes. When transpose
// is set the result is transposed after decoding.
func Load(filename string, fatal, transpose bool, t FileType) (*mat.Dense, bool) {
	return idata.LoadDense(filename, fatal, transpose, t)
}

// LoadSparse loads a sparse matrix from filename.
func LoadSparse(filename string, fatal, transpose bool) (*mat.Sparse, bool) {
	return idata.LoadSparse(filename, fatal, transpose)
}

// LoadWithOptions loads a matrix into dest, which must be a non-nil
// *mat.Dense or *mat.Sparse, with the switches taken from opts
// instead of positional parameters.
func LoadWithOptions(filename string, dest any, opts Options) bool {
	return idata.LoadWithOptions(filename, dest, opts)
}

// LoadModel loads the object stored under the given name into obj,
// which must be a pointer to the saved object's type.
func LoadModel(filename, name string, obj any, fatal bool, f Format) bool {
	return idata.LoadModel(filename, name, obj, fatal, f)
}
