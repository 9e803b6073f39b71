package encoding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gfengTT/mlpack/internal/mat"
)

// writeCoord writes one "row<TAB>col<TAB>value" line per nonzero
// entry, in column-major order. Zero entries are not written, so the
// matrix dimensions on load are inferred from the largest indices.
func writeCoord(w io.Writer, m *mat.Sparse) error {
	bw := bufio.NewWriter(w)
	var werr error
	m.DoNonZero(func(r, c int, v float64) {
		if werr != nil {
			return
		}
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\n", r, c, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			werr = fmt.Errorf("failed to write coordinate entry: %w", err)
		}
	})
	if werr != nil {
		return werr
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush coordinate data: %w", err)
	}
	return nil
}

func readCoord(r io.Reader) (*mat.Sparse, error) {
	type entry struct {
		r, c int
		v    float64
	}
	var entries []entry
	maxRow, maxCol := -1, -1

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil || row < 0 {
			return nil, fmt.Errorf("line %d: malformed row index %q", lineNo, fields[0])
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil || col < 0 {
			return nil, fmt.Errorf("line %d: malformed column index %q", lineNo, fields[1])
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed value %q", lineNo, fields[2])
		}
		entries = append(entries, entry{row, col, v})
		if row > maxRow {
			maxRow = row
		}
		if col > maxCol {
			maxCol = col
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coordinate data: %w", err)
	}

	m, err := mat.NewSparse(maxRow+1, maxCol+1)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.Set(e.r, e.c, e.v)
	}
	return m, nil
}
