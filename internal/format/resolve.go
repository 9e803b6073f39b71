package format

import (
	"fmt"
	"strings"
)

// tabularExtensions maps a lowercase filename extension to its
// candidate tabular encodings. Every extension has at least one
// candidate; only "txt" and "bin" have more than one.
var tabularExtensions = map[string][]FileType{
	"csv":  {CSVASCII},
	"txt":  {CSVASCII, RawASCII, ArmaASCII},
	"pgm":  {PGMBinary},
	"ppm":  {PPMBinary},
	"bin":  {RawBinary, ArmaBinary},
	"hdf5": {HDF5Binary},
	"hdf":  {HDF5Binary},
	"h5":   {HDF5Binary},
	"he5":  {HDF5Binary},
	"tsv":  {CoordASCII},
}

// objectExtensions maps a lowercase filename extension to its
// object-archive encoding.
var objectExtensions = map[string]Format{
	"json": FormatJSON,
	"xml":  FormatXML,
	"bin":  FormatBIN,
}

// savePriority picks the winner among ambiguous tabular extensions in
// the save direction, where no file exists to inspect. CSV is the
// conventional reading of ".txt" tabular data; for ".bin" the
// self-describing Armadillo header is preferred over a bare element
// stream, whose shape would otherwise be unrecoverable on load.
var savePriority = map[string]FileType{
	"txt": CSVASCII,
	"bin": ArmaBinary,
}

// sparseCapable is the subset of tabular encodings that can represent
// a sparse matrix.
var sparseCapable = map[FileType]bool{
	CoordASCII: true,
	RawBinary:  true,
	ArmaBinary: true,
}

// Extension returns the lowercase substring after the final '.' of
// filename, or "" if there is none.
func Extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// SupportsPayload reports whether t can encode a payload of kind k.
// AutoDetect supports neither: it must be resolved first.
func SupportsPayload(t FileType, k PayloadKind) bool {
	switch k {
	case KindDense:
		return t != AutoDetect && t != CoordASCII
	case KindSparse:
		return sparseCapable[t]
	default:
		return false
	}
}

// ResolveSave determines the tabular encoding to write filename with.
// An explicit hint other than AutoDetect always wins, subject only to
// the payload-kind check; otherwise the extension table decides, with
// savePriority breaking ties. No file content is read.
func ResolveSave(filename string, hint FileType, kind PayloadKind) (FileType, error) {
	if hint != AutoDetect {
		if !SupportsPayload(hint, kind) {
			return AutoDetect, fmt.Errorf("%w: cannot save %s as %s",
				ErrUnsupportedForPayload, kind, hint)
		}
		return hint, nil
	}

	ext := Extension(filename)
	if ext == "" {
		return AutoDetect, fmt.Errorf("%w: no extension in %q", ErrUnknownExtension, filename)
	}

	candidates, ok := tabularExtensions[ext]
	if !ok {
		return AutoDetect, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	resolved := candidates[0]
	if len(candidates) > 1 {
		resolved = savePriority[ext]
	}

	if !SupportsPayload(resolved, kind) {
		return AutoDetect, fmt.Errorf("%w: cannot save %s as %s",
			ErrUnsupportedForPayload, kind, resolved)
	}
	return resolved, nil
}

// ResolveObjectSave determines the object-archive encoding to write
// filename with. An explicit hint other than FormatAutodetect wins.
func ResolveObjectSave(filename string, hint Format) (Format, error) {
	if hint != FormatAutodetect {
		return hint, nil
	}

	ext := Extension(filename)
	if ext == "" {
		return FormatAutodetect, fmt.Errorf("%w: no extension in %q", ErrUnknownExtension, filename)
	}

	f, ok := objectExtensions[ext]
	if !ok {
		return FormatAutodetect, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
	return f, nil
}
