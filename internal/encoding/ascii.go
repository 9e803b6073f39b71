package encoding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gfengTT/mlpack/internal/mat"
)

// Armadillo ASCII header for 8-byte floating point matrices.
const armaASCIIHeader = "ARMA_MAT_TXT_FN008"

func writeRawASCII(w io.Writer, m *mat.Dense) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if c > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("failed to write ASCII data: %w", err)
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(m.At(r, c), 'g', -1, 64)); err != nil {
				return fmt.Errorf("failed to write ASCII data: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write ASCII data: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush ASCII data: %w", err)
	}
	return nil
}

func writeArmaASCII(w io.Writer, m *mat.Dense) error {
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n", armaASCIIHeader, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return writeRawASCII(w, m)
}

// parseRows reads whitespace-separated numeric rows from sc. Every row
// must have the same number of fields.
func parseRows(sc *bufio.Scanner) ([][]float64, error) {
	var rows [][]float64
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("inconsistent column count: row %d has %d fields, expected %d",
				len(rows), len(fields), len(rows[0]))
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse ASCII field: %w", err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ASCII data: %w", err)
	}
	return rows, nil
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	m, err := mat.NewDense(nr, nc)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m, nil
}

func readRawASCII(r io.Reader) (*mat.Dense, error) {
	rows, err := parseRows(bufio.NewScanner(r))
	if err != nil {
		return nil, err
	}
	return denseFromRows(rows)
}

func readArmaASCII(r io.Reader) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() || !strings.HasPrefix(sc.Text(), "ARMA_MAT_TXT") {
		return nil, fmt.Errorf("missing %s header", armaASCIIHeader)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("missing dimension line after %s header", armaASCIIHeader)
	}
	dims := strings.Fields(sc.Text())
	if len(dims) != 2 {
		return nil, fmt.Errorf("malformed dimension line %q", sc.Text())
	}
	nr, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, fmt.Errorf("malformed row count %q: %w", dims[0], err)
	}
	nc, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, fmt.Errorf("malformed column count %q: %w", dims[1], err)
	}

	rows, err := parseRows(sc)
	if err != nil {
		return nil, err
	}
	m, err := denseFromRows(rows)
	if err != nil {
		return nil, err
	}
	if m.Rows() != nr || m.Cols() != nc {
		return nil, fmt.Errorf("header declares %dx%d but data is %dx%d", nr, nc, m.Rows(), m.Cols())
	}
	return m, nil
}
