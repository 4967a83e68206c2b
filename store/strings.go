// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"
	"math"
	"strconv"
)

// Strings is an in-memory textual [Store], with values stored in a
// flat slice in row-major order. It reports itself as non-numeric,
// so consumers read it using [FetchStrings]. [Strings.FetchValues]
// parses each value as a number, returning NaN for non-numbers.
type Strings struct {
	Base

	// Values are the data values, in row-major order.
	Values []string

	shape Shape
}

// NewStrings returns a new Strings store with given name and axis sizes.
func NewStrings(name string, sizes ...int) (*Strings, error) {
	ss := &Strings{Base: NewBase(name, sizes...)}
	ss.shape.SetShape(RowMajor, sizes...)
	if err := ss.shape.IsValid(); err != nil {
		return nil, fmt.Errorf("NewStrings %q: %w", name, err)
	}
	ss.Values = make([]string, ss.shape.Len())
	return ss, nil
}

// Shape returns the row-major shape of the data.
func (ss *Strings) Shape() *Shape { return &ss.shape }

// Value returns the value at given n-dimensional index.
func (ss *Strings) Value(index ...int) string {
	return ss.Values[ss.shape.Offset(index)]
}

// Set sets the value at given n-dimensional index.
func (ss *Strings) Set(val string, index ...int) {
	ss.Values[ss.shape.Offset(index)] = val
}

// IsNumeric implements [Texter], returning false.
func (ss *Strings) IsNumeric() bool { return false }

// FetchStrings implements [Texter].
func (ss *Strings) FetchStrings(dim int, fixed []int, vals []string) int {
	return walk(&ss.shape, ss.Values, dim, fixed, vals, func(s string) string { return s })
}

// FetchValues implements [Store].
func (ss *Strings) FetchValues(dim int, fixed []int, vals []float64) int {
	return walk(&ss.shape, ss.Values, dim, fixed, vals, parseFloat)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
