// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Column is a read-only 1D view of one variable's data within a [Matrix].
// Numeric, time and categorical columns are accessed through Float,
// with NaN as the missing sentinel; text columns through String,
// with [StringUnknown] as the missing sentinel.
type Column interface {
	// Len returns the number of rows.
	Len() int

	// IsString returns true for text columns with no numeric view.
	IsString() bool

	// Float returns the value at the given row; NaN if missing
	// or if the column is a text column.
	Float(i int) float64

	// String returns the string value at the given row.
	String(i int) string
}

// Float64Column is a dense float64 column.
type Float64Column []float64

func (cl Float64Column) Len() int            { return len(cl) }
func (cl Float64Column) IsString() bool      { return false }
func (cl Float64Column) Float(i int) float64 { return cl[i] }

func (cl Float64Column) String(i int) string {
	return strconv.FormatFloat(cl[i], 'g', -1, 64)
}

// SparseColumn is a compressed numeric column: rows absent from Index
// hold an implicit 0, matching compressed-sparse storage semantics.
// Missing values (NaN) must be stored explicitly. Index must be sorted
// in increasing order.
type SparseColumn struct {
	// N is the number of rows.
	N int

	// Index has the rows with explicitly stored values, sorted.
	Index []int

	// Value has the stored values, aligned with Index.
	Value []float64
}

// NewSparseColumn returns a sparse column over n rows with the given
// explicitly stored entries, which must be in increasing row order.
func NewSparseColumn(n int, index []int, value []float64) (*SparseColumn, error) {
	if len(index) != len(value) {
		return nil, fmt.Errorf("data.NewSparseColumn: %d indexes but %d values", len(index), len(value))
	}
	for i, ix := range index {
		if ix < 0 || ix >= n {
			return nil, fmt.Errorf("data.NewSparseColumn: index %d out of range [0..%d]", ix, n-1)
		}
		if i > 0 && index[i-1] >= ix {
			return nil, fmt.Errorf("data.NewSparseColumn: indexes not strictly increasing at %d", i)
		}
	}
	return &SparseColumn{N: n, Index: index, Value: value}, nil
}

func (cl *SparseColumn) Len() int       { return cl.N }
func (cl *SparseColumn) IsString() bool { return false }

func (cl *SparseColumn) Float(i int) float64 {
	j := sort.SearchInts(cl.Index, i)
	if j < len(cl.Index) && cl.Index[j] == i {
		return cl.Value[j]
	}
	return 0
}

func (cl *SparseColumn) String(i int) string {
	return strconv.FormatFloat(cl.Float(i), 'g', -1, 64)
}

// StringColumn is a dense text column.
type StringColumn []string

func (cl StringColumn) Len() int            { return len(cl) }
func (cl StringColumn) IsString() bool      { return true }
func (cl StringColumn) Float(i int) float64 { return math.NaN() }
func (cl StringColumn) String(i int) string { return cl[i] }

// Matrix is a column-oriented 2D block of data: a list of [Column]
// views sharing a common row count. Individual columns may use dense
// or sparse storage independently and transparently to callers.
type Matrix struct {
	rows int
	cols []Column
}

// NewMatrix returns a matrix over the given columns, which must all
// have the given number of rows.
func NewMatrix(rows int, cols ...Column) (*Matrix, error) {
	for i, cl := range cols {
		if cl.Len() != rows {
			return nil, fmt.Errorf("data.NewMatrix: column %d has %d rows, expected %d", i, cl.Len(), rows)
		}
	}
	return &Matrix{rows: rows, cols: cols}, nil
}

// NewDense returns a dense matrix from row-major values,
// a convenience for constructing test and example data.
func NewDense(rows, cols int, vals []float64) (*Matrix, error) {
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("data.NewDense: %d values for %d x %d matrix", len(vals), rows, cols)
	}
	cls := make([]Column, cols)
	for j := 0; j < cols; j++ {
		cl := make(Float64Column, rows)
		for i := 0; i < rows; i++ {
			cl[i] = vals[i*cols+j]
		}
		cls[j] = cl
	}
	return &Matrix{rows: rows, cols: cls}, nil
}

// Rows returns the number of rows.
func (mx *Matrix) Rows() int { return mx.rows }

// Cols returns the number of columns.
func (mx *Matrix) Cols() int { return len(mx.cols) }

// Column returns the 1D view of the given column.
func (mx *Matrix) Column(j int) Column { return mx.cols[j] }

// ColumnTo appends the dense float64 contents of the given column to
// dst and returns the extended slice.
func (mx *Matrix) ColumnTo(dst []float64, j int) []float64 {
	cl := mx.cols[j]
	for i := 0; i < mx.rows; i++ {
		dst = append(dst, cl.Float(i))
	}
	return dst
}

// Select returns a matrix sharing the column views at the given indexes.
func (mx *Matrix) Select(cols []int) *Matrix {
	cls := make([]Column, len(cols))
	for k, j := range cols {
		cls[k] = mx.cols[j]
	}
	return &Matrix{rows: mx.rows, cols: cls}
}
