package mat

import (
	"fmt"
	"sort"
)

type index struct {
	r, c int
}

// Sparse is a sparse float64 matrix. Only explicitly set nonzero
// entries are stored; iteration order is column-major regardless of
// insertion order, so encoders produce deterministic output.
type Sparse struct {
	rows int
	cols int
	elem map[index]float64
}

// NewSparse creates an empty rows x cols sparse matrix.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	return &Sparse{
		rows: rows,
		cols: cols,
		elem: make(map[index]float64),
	}, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.cols }

// NNZ returns the number of stored nonzero entries.
func (m *Sparse) NNZ() int { return len(m.elem) }

// At returns the element at (r, c), zero if unset. Panics if out of
// range.
func (m *Sparse) At(r, c int) float64 {
	m.check(r, c)
	return m.elem[index{r, c}]
}

// Set assigns the element at (r, c). Setting zero removes the entry.
// Panics if out of range.
func (m *Sparse) Set(r, c int, v float64) {
	m.check(r, c)
	if v == 0 {
		delete(m.elem, index{r, c})
		return
	}
	m.elem[index{r, c}] = v
}

func (m *Sparse) check(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("index (%d, %d) out of range for %dx%d matrix", r, c, m.rows, m.cols))
	}
}

// DoNonZero calls fn for every stored entry in column-major order.
func (m *Sparse) DoNonZero(fn func(r, c int, v float64)) {
	keys := make([]index, 0, len(m.elem))
	for k := range m.elem {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].c != keys[j].c {
			return keys[i].c < keys[j].c
		}
		return keys[i].r < keys[j].r
	})
	for _, k := range keys {
		fn(k.r, k.c, m.elem[k])
	}
}

// Clone returns a deep copy.
func (m *Sparse) Clone() *Sparse {
	out := &Sparse{
		rows: m.rows,
		cols: m.cols,
		elem: make(map[index]float64, len(m.elem)),
	}
	for k, v := range m.elem {
		out.elem[k] = v
	}
	return out
}

// CopyFrom replaces the receiver's shape and contents with a deep
// copy of src.
func (m *Sparse) CopyFrom(src *Sparse) {
	m.rows = src.rows
	m.cols = src.cols
	m.elem = make(map[index]float64, len(src.elem))
	for k, v := range src.elem {
		m.elem[k] = v
	}
}

// T returns the transpose as a new matrix. The receiver is not modified.
func (m *Sparse) T() *Sparse {
	out := &Sparse{
		rows: m.cols,
		cols: m.rows,
		elem: make(map[index]float64, len(m.elem)),
	}
	for k, v := range m.elem {
		out.elem[index{k.c, k.r}] = v
	}
	return out
}

// Equal reports whether the two matrices have the same shape and
// identical stored entries.
func (m *Sparse) Equal(other *Sparse) bool {
	if m.rows != other.rows || m.cols != other.cols || len(m.elem) != len(other.elem) {
		return false
	}
	for k, v := range m.elem {
		if other.elem[k] != v {
			return false
		}
	}
	return true
}
