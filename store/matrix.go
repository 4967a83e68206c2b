// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a rank-2 numeric [Store] view of a gonum [mat.Matrix],
// with axis 0 the rows and axis 1 the columns. The matrix is read
// through its At method, so any mat.Matrix implementation,
// including transposes and views, can be published.
type Matrix struct {
	Base

	// M is the matrix.
	M mat.Matrix
}

// NewMatrix returns a new Matrix store with given name over m.
func NewMatrix(name string, m mat.Matrix) (*Matrix, error) {
	rows, cols := m.Dims()
	ms := &Matrix{Base: NewBase(name, rows, cols), M: m}
	ms.SetAxisLabels("Row", "Col")
	if err := Validate(ms); err != nil {
		return nil, fmt.Errorf("NewMatrix: %w", err)
	}
	return ms, nil
}

// FetchValues implements [Store].
func (ms *Matrix) FetchValues(dim int, fixed []int, vals []float64) int {
	var row, col int
	if len(fixed) > 1 {
		row, col = fixed[0], fixed[1]
	}
	n := min(len(vals), ms.Axes[dim].Size)
	if dim == 0 {
		for i := range n {
			vals[i] = ms.M.At(i, col)
		}
		return n
	}
	for i := range n {
		vals[i] = ms.M.At(row, i)
	}
	return n
}
