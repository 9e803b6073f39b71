// Copyright 2026 the mlpack Go library authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the dense and sparse float64 matrix containers
// consumed by the data package.
//
// Dense matrices are stored in column-major order. Sparse matrices
// store only their nonzero entries and iterate them in column-major
// order, so encoded output is deterministic. Both containers offer a
// pure transpose (T) that leaves the receiver untouched.
package mat

import (
	imat "github.com/gfengTT/mlpack/internal/mat"
)

// Dense is a dense matrix in column-major order.
type Dense = imat.Dense

// Sparse is a sparse matrix holding only nonzero entries.
type Sparse = imat.Sparse

// NewDense creates a zero-filled rows x cols dense matrix.
func NewDense(rows, cols int) (*Dense, error) {
	return imat.NewDense(rows, cols)
}

// DenseFromSlice creates a rows x cols dense matrix from column-major
// data. The slice is copied.
func DenseFromSlice(rows, cols int, data []float64) (*Dense, error) {
	return imat.DenseFromSlice(rows, cols, data)
}

// NewSparse creates an empty rows x cols sparse matrix.
func NewSparse(rows, cols int) (*Sparse, error) {
	return imat.NewSparse(rows, cols)
}
