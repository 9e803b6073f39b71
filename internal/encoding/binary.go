package encoding

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gfengTT/mlpack/internal/mat"
)

// Armadillo binary headers for 8-byte floating point matrices.
const (
	armaBinaryHeader   = "ARMA_MAT_BIN_FN008"
	armaSpBinaryHeader = "ARMA_SPM_BIN_FN008"
)

// writeRawBinary writes a bare little-endian float64 stream with no
// header. The element count and shape are not recoverable from the
// file alone.
func writeRawBinary(w io.Writer, data []float64) error {
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to write binary data: %w", err)
	}
	return nil
}

// readRawBinary reads a bare float64 stream. Since the file carries no
// shape, the result is an n x 1 column.
func readRawBinary(r io.Reader) (*mat.Dense, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read binary data: %w", err)
	}
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("binary data length %d is not a multiple of 8", len(raw))
	}
	n := len(raw) / 8
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint64(raw[i*8:])
		data[i] = math.Float64frombits(bits)
	}
	return mat.DenseFromSlice(n, 1, data)
}

func writeArmaBinary(w io.Writer, m *mat.Dense) error {
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n", armaBinaryHeader, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	// Element data follows in column-major order, matching the
	// in-memory layout.
	return writeRawBinary(w, m.Data())
}

func readArmaBinary(r io.Reader) (*mat.Dense, error) {
	br := bufio.NewReader(r)
	nr, nc, _, err := readBinaryHeader(br, armaBinaryHeader, false)
	if err != nil {
		return nil, err
	}
	data, err := readFloats(br, nr, nc)
	if err != nil {
		return nil, err
	}
	return mat.DenseFromSlice(nr, nc, data)
}

// readFloats reads nr*nc little-endian float64 values in bounded
// chunks, so a corrupt header declaring absurd dimensions fails with a
// short-read error instead of a giant up-front allocation.
func readFloats(r io.Reader, nr, nc int) ([]float64, error) {
	if nc != 0 && nr > math.MaxInt/nc {
		return nil, fmt.Errorf("dimensions %dx%d overflow", nr, nc)
	}
	const chunk = 4096
	n := nr * nc
	data := make([]float64, 0, min(n, chunk))
	buf := make([]float64, chunk)
	for len(data) < n {
		want := min(n-len(data), chunk)
		if err := binary.Read(r, binary.LittleEndian, buf[:want]); err != nil {
			return nil, fmt.Errorf("failed to read binary data: %w", err)
		}
		data = append(data, buf[:want]...)
	}
	return data, nil
}

func writeSparseBinary(w io.Writer, m *mat.Sparse) error {
	if _, err := fmt.Fprintf(w, "%s\n%d %d %d\n", armaSpBinaryHeader, m.Rows(), m.Cols(), m.NNZ()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	var werr error
	m.DoNonZero(func(r, c int, v float64) {
		if werr != nil {
			return
		}
		entry := struct {
			Row, Col uint64
			Val      float64
		}{uint64(r), uint64(c), v}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			werr = fmt.Errorf("failed to write sparse entry: %w", err)
		}
	})
	return werr
}

func readSparseBinary(r io.Reader) (*mat.Sparse, error) {
	br := bufio.NewReader(r)
	nr, nc, nnz, err := readBinaryHeader(br, armaSpBinaryHeader, true)
	if err != nil {
		return nil, err
	}
	if nc != 0 && nr > math.MaxInt/nc {
		return nil, fmt.Errorf("dimensions %dx%d overflow", nr, nc)
	}
	if nnz > nr*nc {
		return nil, fmt.Errorf("nonzero count %d exceeds %dx%d matrix", nnz, nr, nc)
	}
	m, err := mat.NewSparse(nr, nc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nnz; i++ {
		var entry struct {
			Row, Col uint64
			Val      float64
		}
		if err := binary.Read(br, binary.LittleEndian, &entry); err != nil {
			return nil, fmt.Errorf("failed to read sparse entry %d: %w", i, err)
		}
		if entry.Row >= uint64(nr) || entry.Col >= uint64(nc) {
			return nil, fmt.Errorf("sparse entry %d at (%d, %d) outside %dx%d matrix",
				i, entry.Row, entry.Col, nr, nc)
		}
		m.Set(int(entry.Row), int(entry.Col), entry.Val)
	}
	return m, nil
}

// readBinaryHeader consumes the magic line and the dimension line.
// When sparse is set the dimension line carries a third nonzero count.
func readBinaryHeader(br *bufio.Reader, magic string, sparse bool) (nr, nc, nnz int, err error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read header: %w", err)
	}
	if strings.TrimSpace(line) != magic {
		return 0, 0, 0, fmt.Errorf("missing %s header", magic)
	}
	line, err = br.ReadString('\n')
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read dimensions: %w", err)
	}
	fields := strings.Fields(line)
	want := 2
	if sparse {
		want = 3
	}
	if len(fields) != want {
		return 0, 0, 0, fmt.Errorf("malformed dimension line %q", strings.TrimSpace(line))
	}
	dims := make([]int, want)
	for i, f := range fields {
		dims[i], err = strconv.Atoi(f)
		if err != nil || dims[i] < 0 {
			return 0, 0, 0, fmt.Errorf("malformed dimension %q", f)
		}
	}
	if sparse {
		return dims[0], dims[1], dims[2], nil
	}
	return dims[0], dims[1], 0, nil
}
