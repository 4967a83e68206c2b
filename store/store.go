// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store defines the data source contract for n-dimensional
// numeric or textual data, which concrete data sources implement to
// publish into a catalog, along with a set of concrete stores,
// owning / non-owning handles, and the [Squeezed] proxy that hides
// axes of size 1.
//
// A [Store] is pull-based: consumers ask for the values along one
// axis at a time, holding all other axes at fixed indexes. Optional
// capabilities (errors, coordinates, categories, text) are expressed
// as separate interfaces, and the package-level functions of the same
// name apply the default behavior for stores that do not implement them.
// Querying an unsupported capability returns zero items, never an error.
package store

import (
	"fmt"
)

// Axis describes one dimension of a [Store].
type Axis struct {

	// Size is the number of elements along this axis (extent), always > 0.
	Size int

	// Label is a short name for the axis, used in selectors and exports.
	Label string

	// Doc is a longer description of the axis.
	Doc string

	// Categorical is true if the axis coordinates are category labels
	// rather than numbers. See [Categorizer].
	Categorical bool
}

// Store is the interface that all data sources implement.
// Axis indexes passed to any method must be within [0, NumDims()),
// and fixed index vectors must have NumDims() entries with each
// index within [0, Axis(d).Size): these are validated by callers
// such as the slice projector, not by the store itself.
type Store interface {

	// Name returns the name of the data.
	Name() string

	// Doc returns a description of the data.
	Doc() string

	// NumDims returns the number of axes (rank), always >= 1.
	NumDims() int

	// Axis returns the descriptor for given axis.
	Axis(dim int) Axis

	// FetchValues walks axis dim from index 0, holding all other axes
	// at the indexes in fixed (the entry for dim is ignored), writing
	// into vals. It returns the number of values written, which is
	// min(len(vals), Axis(dim).Size). A short count means the request
	// was clamped to the axis size, and is not an error.
	FetchValues(dim int, fixed []int, vals []float64) int
}

// Errorer is an optional [Store] capability for data with
// per-value uncertainties.
type Errorer interface {

	// HasErrors returns true if error values are available.
	HasErrors() bool

	// FetchErrors has the same contract as [Store.FetchValues],
	// returning the error (uncertainty) of each value.
	FetchErrors(dim int, fixed []int, errs []float64) int
}

// Coorder is an optional [Store] capability for axes with
// coordinates in physical units.
type Coorder interface {

	// FetchCoords writes up to len(coords) coordinates of axis dim,
	// returning the number written.
	FetchCoords(dim int, coords []float64) int
}

// Categorizer is an optional [Store] capability for axes whose
// coordinates are category labels (see [Axis.Categorical]).
type Categorizer interface {

	// FetchCategories writes up to len(labels) category labels of
	// axis dim, indexed by coordinate, returning the number written.
	FetchCategories(dim int, labels []string) int
}

// Texter is an optional [Store] capability for textual data.
type Texter interface {

	// IsNumeric returns false if the data should be read as text
	// using FetchStrings instead of FetchValues.
	IsNumeric() bool

	// FetchStrings has the same contract as [Store.FetchValues],
	// for textual values.
	FetchStrings(dim int, fixed []int, vals []string) int
}

// Aliver is an optional [Store] capability for stores whose
// data may become unavailable, such as proxies over a [Ref].
type Aliver interface {
	Alive() bool
}

// IsNumeric returns whether the store is numeric, which is true
// unless it implements [Texter] and reports otherwise.
func IsNumeric(s Store) bool {
	if tx, ok := s.(Texter); ok {
		return tx.IsNumeric()
	}
	return true
}

// HasErrors returns whether the store provides error values,
// which is false unless it implements [Errorer] and reports otherwise.
func HasErrors(s Store) bool {
	if er, ok := s.(Errorer); ok {
		return er.HasErrors()
	}
	return false
}

// IsCategorical returns whether given axis has categorical coordinates.
func IsCategorical(s Store, dim int) bool {
	return s.Axis(dim).Categorical
}

// Alive returns whether the store data is available,
// which is true unless it implements [Aliver] and reports otherwise.
func Alive(s Store) bool {
	if al, ok := s.(Aliver); ok {
		return al.Alive()
	}
	return true
}

// FetchErrors calls [Errorer.FetchErrors] if the store has errors,
// and otherwise returns 0.
func FetchErrors(s Store, dim int, fixed []int, errs []float64) int {
	if !HasErrors(s) {
		return 0
	}
	return s.(Errorer).FetchErrors(dim, fixed, errs)
}

// FetchCoords calls [Coorder.FetchCoords] if the store implements it,
// and otherwise writes the integer sequence 0, 1, ... up to the axis size.
func FetchCoords(s Store, dim int, coords []float64) int {
	if co, ok := s.(Coorder); ok {
		return co.FetchCoords(dim, coords)
	}
	return IndexCoords(s.Axis(dim).Size, coords)
}

// IndexCoords writes the default integer coordinates for an axis of
// given size, returning min(size, len(coords)).
func IndexCoords(size int, coords []float64) int {
	n := min(size, len(coords))
	for i := range n {
		coords[i] = float64(i)
	}
	return n
}

// FetchCategories calls [Categorizer.FetchCategories] if the axis is
// categorical and the store implements it, and otherwise returns 0.
func FetchCategories(s Store, dim int, labels []string) int {
	if !IsCategorical(s, dim) {
		return 0
	}
	if ct, ok := s.(Categorizer); ok {
		return ct.FetchCategories(dim, labels)
	}
	return 0
}

// FetchStrings calls [Texter.FetchStrings] if the store implements it,
// and otherwise returns 0.
func FetchStrings(s Store, dim int, fixed []int, vals []string) int {
	if tx, ok := s.(Texter); ok {
		return tx.FetchStrings(dim, fixed, vals)
	}
	return 0
}

// Sizes returns the sizes of all axes of the store.
func Sizes(s Store) []int {
	nd := s.NumDims()
	sz := make([]int, nd)
	for d := range nd {
		sz[d] = s.Axis(d).Size
	}
	return sz
}

// Len returns the total number of values in the store,
// which is the product of all axis sizes.
func Len(s Store) int {
	nd := s.NumDims()
	if nd == 0 {
		return 0
	}
	n := 1
	for d := range nd {
		n *= s.Axis(d).Size
	}
	return n
}

// Validate returns an error if the store does not satisfy
// the basic invariants: rank >= 1 and all axis sizes > 0.
func Validate(s Store) error {
	nd := s.NumDims()
	if nd < 1 {
		return fmt.Errorf("store %q: %w: rank %d", s.Name(), ErrEmpty, nd)
	}
	for d := range nd {
		if sz := s.Axis(d).Size; sz <= 0 {
			return fmt.Errorf("store %q: %w: axis %d has size %d", s.Name(), ErrEmpty, d, sz)
		}
	}
	return nil
}
