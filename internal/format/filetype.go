package format

import (
	"fmt"
	"strings"
)

// FileType identifies a concrete tabular (numeric matrix) encoding.
//
// The zero value is AutoDetect, meaning "derive the encoding from the
// filename extension".
type FileType int

// Tabular encodings.
const (
	AutoDetect FileType = iota
	CSVASCII
	RawASCII
	ArmaASCII
	PGMBinary
	PPMBinary
	RawBinary
	ArmaBinary
	HDF5Binary
	CoordASCII
)

// String returns a human-readable encoding name.
func (f FileType) String() string {
	switch f {
	case AutoDetect:
		return "auto-detect"
	case CSVASCII:
		return "CSV data"
	case RawASCII:
		return "raw ASCII"
	case ArmaASCII:
		return "Armadillo ASCII"
	case PGMBinary:
		return "PGM data"
	case PPMBinary:
		return "PPM data"
	case RawBinary:
		return "raw binary"
	case ArmaBinary:
		return "Armadillo binary"
	case HDF5Binary:
		return "HDF5 data"
	case CoordASCII:
		return "coordinate list"
	default:
		return "unknown"
	}
}

// Format identifies a concrete object-archive encoding. It is a
// distinct type from FileType: the tabular and object families share
// extension tokens (".bin") but never encodings, and keeping the
// enums apart makes cross-family misuse a compile error.
//
// The zero value is FormatAutodetect.
type Format int

// Object-archive encodings.
const (
	FormatAutodetect Format = iota
	FormatJSON
	FormatXML
	FormatBIN
)

// String returns a human-readable encoding name.
func (f Format) String() string {
	switch f {
	case FormatAutodetect:
		return "auto-detect"
	case FormatJSON:
		return "JSON"
	case FormatXML:
		return "XML"
	case FormatBIN:
		return "binary"
	default:
		return "unknown"
	}
}

// PayloadKind is the structural kind of a matrix payload, used to
// restrict resolution to encodings that can represent it.
type PayloadKind int

// Payload kinds.
const (
	KindDense PayloadKind = iota
	KindSparse
)

// String returns the kind name.
func (k PayloadKind) String() string {
	switch k {
	case KindDense:
		return "dense matrix"
	case KindSparse:
		return "sparse matrix"
	default:
		return "unknown"
	}
}

// ParseFileType parses a tabular encoding name as accepted on command
// lines: "csv", "raw_ascii", "arma_ascii", "pgm", "ppm", "raw_binary",
// "arma_binary", "hdf5", "coord_ascii" or "auto".
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(s) {
	case "auto", "autodetect":
		return AutoDetect, nil
	case "csv", "csv_ascii":
		return CSVASCII, nil
	case "raw_ascii":
		return RawASCII, nil
	case "arma_ascii":
		return ArmaASCII, nil
	case "pgm", "pgm_binary":
		return PGMBinary, nil
	case "ppm", "ppm_binary":
		return PPMBinary, nil
	case "raw_binary":
		return RawBinary, nil
	case "arma_binary":
		return ArmaBinary, nil
	case "hdf5", "hdf5_binary":
		return HDF5Binary, nil
	case "coord_ascii", "tsv":
		return CoordASCII, nil
	default:
		return AutoDetect, fmt.Errorf("unknown file type %q", s)
	}
}

// ParseFormat parses an object-archive encoding name: "json", "xml",
// "bin" or "auto".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "autodetect":
		return FormatAutodetect, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "bin", "binary":
		return FormatBIN, nil
	default:
		return FormatAutodetect, fmt.Errorf("unknown format %q", s)
	}
}
