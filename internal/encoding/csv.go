package encoding

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gfengTT/mlpack/internal/mat"
)

func writeCSV(w io.Writer, m *mat.Dense) error {
	cw := csv.NewWriter(w)
	record := make([]string, m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			record[c] = strconv.FormatFloat(m.At(r, c), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV data: %w", err)
	}
	return nil
}

func readCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	rows := len(records)
	cols := 0
	if rows > 0 {
		cols = len(records[0])
	}
	m, err := mat.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse CSV field (%d, %d): %w", i, j, err)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}
