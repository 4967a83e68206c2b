// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric value types supported by [Dense].
type Number interface {
	constraints.Integer | constraints.Float
}

// Dense is an in-memory numeric [Store] with values stored in a flat
// slice in row-major order, optionally with an equally-shaped slice of
// error values.
type Dense[T Number] struct {
	Base

	// Values are the data values, in row-major order.
	Values []T

	// Errs are the error values, in the same layout as Values,
	// or nil if the data has no errors.
	Errs []T

	shape Shape
}

// NewDense returns a new Dense store with given name and axis sizes,
// with all values set to zero. An error is returned if there are
// no sizes or any size is <= 0.
func NewDense[T Number](name string, sizes ...int) (*Dense[T], error) {
	ds := &Dense[T]{Base: NewBase(name, sizes...)}
	ds.shape.SetShape(RowMajor, sizes...)
	if err := ds.shape.IsValid(); err != nil {
		return nil, fmt.Errorf("NewDense %q: %w", name, err)
	}
	ds.Values = make([]T, ds.shape.Len())
	return ds, nil
}

// NewDenseFrom returns a new Dense store with given name, axis sizes
// and values in row-major order, which are used directly (not copied).
func NewDenseFrom[T Number](name string, values []T, sizes ...int) (*Dense[T], error) {
	ds := &Dense[T]{Base: NewBase(name, sizes...)}
	ds.shape.SetShape(RowMajor, sizes...)
	if err := ds.shape.IsValid(); err != nil {
		return nil, fmt.Errorf("NewDenseFrom %q: %w", name, err)
	}
	if len(values) != ds.shape.Len() {
		return nil, fmt.Errorf("NewDenseFrom %q: %w: shape %v needs %d values, got %d", name, ErrSize, ds.shape.Sizes, ds.shape.Len(), len(values))
	}
	ds.Values = values
	return ds, nil
}

// Shape returns the row-major shape of the data.
func (ds *Dense[T]) Shape() *Shape { return &ds.shape }

// Value returns the value at given n-dimensional index.
func (ds *Dense[T]) Value(index ...int) T {
	return ds.Values[ds.shape.Offset(index)]
}

// Set sets the value at given n-dimensional index.
func (ds *Dense[T]) Set(val T, index ...int) {
	ds.Values[ds.shape.Offset(index)] = val
}

// SetErrors sets the error values, which must have the same length
// as the data values. Passing nil removes the errors.
func (ds *Dense[T]) SetErrors(errs []T) error {
	if errs != nil && len(errs) != len(ds.Values) {
		return fmt.Errorf("SetErrors %q: %w: need %d values, got %d", ds.Name(), ErrSize, len(ds.Values), len(errs))
	}
	ds.Errs = errs
	return nil
}

// HasErrors implements [Errorer].
func (ds *Dense[T]) HasErrors() bool { return ds.Errs != nil }

// FetchValues implements [Store].
func (ds *Dense[T]) FetchValues(dim int, fixed []int, vals []float64) int {
	return walk(&ds.shape, ds.Values, dim, fixed, vals, toFloat[T])
}

// FetchErrors implements [Errorer].
func (ds *Dense[T]) FetchErrors(dim int, fixed []int, errs []float64) int {
	if ds.Errs == nil {
		return 0
	}
	return walk(&ds.shape, ds.Errs, dim, fixed, errs, toFloat[T])
}

func toFloat[T Number](v T) float64 { return float64(v) }
