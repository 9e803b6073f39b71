package mat

import "fmt"

// Dense is a dense float64 matrix stored in column-major order, the
// in-memory convention of the library. On-disk tabular formats are
// typically row-major; the save path reconciles the two by transposing
// before encoding.
type Dense struct {
	rows int
	cols int
	data []float64 // data[r + c*rows]
}

// NewDense creates a zero-filled rows x cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// DenseFromSlice creates a rows x cols matrix from column-major data.
// The slice is copied.
func DenseFromSlice(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("slice length %d does not match %dx%d matrix", len(data), rows, cols)
	}
	m := &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, len(data)),
	}
	copy(m.data, data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (r, c). Panics if out of range.
func (m *Dense) At(r, c int) float64 {
	m.check(r, c)
	return m.data[r+c*m.rows]
}

// Set assigns the element at (r, c). Panics if out of range.
func (m *Dense) Set(r, c int, v float64) {
	m.check(r, c)
	m.data[r+c*m.rows] = v
}

func (m *Dense) check(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("index (%d, %d) out of range for %dx%d matrix", r, c, m.rows, m.cols))
	}
}

// Data returns the column-major backing slice. Mutating it mutates the
// matrix.
func (m *Dense) Data() []float64 { return m.data }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{
		rows: m.rows,
		cols: m.cols,
		data: make([]float64, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// CopyFrom replaces the receiver's shape and contents with a deep
// copy of src.
func (m *Dense) CopyFrom(src *Dense) {
	m.rows = src.rows
	m.cols = src.cols
	m.data = make([]float64, len(src.data))
	copy(m.data, src.data)
}

// T returns the transpose as a new matrix. The receiver is not modified.
func (m *Dense) T() *Dense {
	out := &Dense{
		rows: m.cols,
		cols: m.rows,
		data: make([]float64, len(m.data)),
	}
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			out.data[c+r*out.rows] = m.data[r+c*m.rows]
		}
	}
	return out
}

// Equal reports whether the two matrices have the same shape and
// identical elements.
func (m *Dense) Equal(other *Dense) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}
