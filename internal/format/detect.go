package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Armadillo header magic, written by the binary and ASCII encoders and
// used to tell the self-describing formats apart from bare streams.
const (
	armaASCIIMagic    = "ARMA_MAT_TXT"
	armaBinaryMagic   = "ARMA_MAT_BIN"
	armaSpBinaryMagic = "ARMA_SPM_BIN"
	sniffLen          = 256
)

// ResolveLoad determines the tabular encoding to read filename with.
// An explicit hint other than AutoDetect wins. For the ambiguous
// ".txt" and ".bin" extensions the opening bytes of r are inspected;
// the read position is restored before returning.
func ResolveLoad(filename string, hint FileType, kind PayloadKind, r io.ReadSeeker) (FileType, error) {
	if hint != AutoDetect {
		if !SupportsPayload(hint, kind) {
			return AutoDetect, fmt.Errorf("%w: cannot load %s as %s",
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
		var err error
		resolved, err = sniff(r, ext, kind)
		if err != nil {
			return AutoDetect, err
		}
	}

	if !SupportsPayload(resolved, kind) {
		return AutoDetect, fmt.Errorf("%w: cannot load %s as %s",
			ErrUnsupportedForPayload, kind, resolved)
	}
	return resolved, nil
}

// sniff inspects the opening bytes of an ambiguous ".txt" or ".bin"
// file and picks the concrete encoding.
func sniff(r io.ReadSeeker, ext string, kind PayloadKind) (FileType, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return AutoDetect, fmt.Errorf("failed to inspect file: %w", err)
	}
	buf := make([]byte, sniffLen)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return AutoDetect, fmt.Errorf("failed to inspect file: %w", err)
	}
	buf = buf[:n]
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return AutoDetect, fmt.Errorf("failed to rewind file: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, []byte(armaASCIIMagic)):
		return ArmaASCII, nil
	case bytes.HasPrefix(buf, []byte(armaBinaryMagic)), bytes.HasPrefix(buf, []byte(armaSpBinaryMagic)):
		return ArmaBinary, nil
	}

	if ext == "bin" {
		return RawBinary, nil
	}

	// Text without an Armadillo header: commas mean CSV; otherwise a
	// three-column whitespace layout read into a sparse matrix is
	// treated as a coordinate list.
	line := buf
	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		line = buf[:i]
	}
	if bytes.IndexByte(line, ',') >= 0 {
		return CSVASCII, nil
	}
	if kind == KindSparse && len(strings.Fields(string(line))) == 3 {
		return CoordASCII, nil
	}
	return RawASCII, nil
}

// ResolveObjectLoad determines the object-archive encoding to read
// filename with. Object extensions are unambiguous, so no content is
// inspected.
func ResolveObjectLoad(filename string, hint Format) (Format, error) {
	return ResolveObjectSave(filename, hint)
}
