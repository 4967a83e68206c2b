// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import (
	"slices"

	"cogentcore.org/databrowse/store"
)

// IsEmpty returns true if the slice is not bound to a live store.
func (sl *Slice) IsEmpty() bool {
	return sl.bound() == nil
}

// Source returns the reference to the bound store.
func (sl *Slice) Source() store.Ref {
	return sl.ref
}

// X returns the first free axis of the source, or -1 if empty.
func (sl *Slice) X() int {
	if sl.bound() == nil {
		return -1
	}
	return sl.dims[0]
}

// Y returns the second free axis of the source,
// or -1 if empty or a 1D window.
func (sl *Slice) Y() int {
	if sl.bound() == nil || len(sl.dims) < 2 {
		return -1
	}
	return sl.dims[1]
}

// Fixed returns a copy of the fixed index of every source axis,
// with 0 at the free axes.
func (sl *Slice) Fixed() []int {
	if sl.bound() == nil {
		return nil
	}
	return slices.Clone(sl.fixed)
}

// DimOrder returns the source axes in dimension order:
// the free axes, then the remaining axes in their original order.
func (sl *Slice) DimOrder() []int {
	if sl.bound() == nil {
		return nil
	}
	return slices.Clone(sl.order)
}

// SourceSizes returns the sizes of all source axes.
func (sl *Slice) SourceSizes() []int {
	if sl.bound() == nil {
		return nil
	}
	return slices.Clone(sl.srcSizes)
}

// DimSize returns the size of free axis k (0 or 1), or 0 if empty.
func (sl *Slice) DimSize(k int) int {
	if sl.bound() == nil || k < 0 || k >= len(sl.dims) {
		return 0
	}
	return sl.axes[k].Size
}

// Len returns the total number of values in the window.
func (sl *Slice) Len() int {
	if sl.bound() == nil {
		return 0
	}
	return len(sl.vals)
}

// AxisLabel returns the label of free axis k.
func (sl *Slice) AxisLabel(k int) string {
	if sl.bound() == nil || k < 0 || k >= len(sl.dims) {
		return ""
	}
	return sl.axes[k].Label
}

// IsCategorical returns true if free axis k has category labels.
func (sl *Slice) IsCategorical(k int) bool {
	if sl.bound() == nil || k < 0 || k >= len(sl.dims) {
		return false
	}
	return sl.axes[k].Categorical
}

// Value returns the value at index i of a 1D window, or the value
// at flat offset i of a 2D window. It returns 0 if out of range.
func (sl *Slice) Value(i int) float64 {
	return at(sl, sl.vals, i)
}

// Value2 returns the value at (i, j) of a 2D window.
func (sl *Slice) Value2(i, j int) float64 {
	return at(sl, sl.vals, sl.offset(i, j))
}

// Error returns the error at index i, or 0 if the store has no errors.
func (sl *Slice) Error(i int) float64 {
	return at(sl, sl.errs, i)
}

// Error2 returns the error at (i, j) of a 2D window,
// or 0 if the store has no errors.
func (sl *Slice) Error2(i, j int) float64 {
	return at(sl, sl.errs, sl.offset(i, j))
}

// Text returns the text value at index i of a non-numeric store.
func (sl *Slice) Text(i int) string {
	return at(sl, sl.texts, i)
}

// Text2 returns the text value at (i, j) of a non-numeric store.
func (sl *Slice) Text2(i, j int) string {
	return at(sl, sl.texts, sl.offset(i, j))
}

// Coord returns the coordinate of index i on free axis k.
func (sl *Slice) Coord(k, i int) float64 {
	if sl.bound() == nil || k < 0 || k >= len(sl.coords) {
		return 0
	}
	return at(sl, sl.coords[k], i)
}

// Category returns the category label of index i on free axis k,
// or "" if the axis is not categorical.
func (sl *Slice) Category(k, i int) string {
	if sl.bound() == nil || k < 0 || k >= len(sl.cats) {
		return ""
	}
	return at(sl, sl.cats[k], i)
}

// Values returns the value buffer, which must not be modified.
// It is column-major for a 2D window.
func (sl *Slice) Values() []float64 {
	if sl.bound() == nil {
		return nil
	}
	return sl.vals
}

// Errors returns the error buffer, which must not be modified,
// or nil if the store has no errors.
func (sl *Slice) Errors() []float64 {
	if sl.bound() == nil || len(sl.errs) == 0 {
		return nil
	}
	return sl.errs
}

// Texts returns the text value buffer of a non-numeric store,
// which must not be modified.
func (sl *Slice) Texts() []string {
	if sl.bound() == nil || len(sl.texts) == 0 {
		return nil
	}
	return sl.texts
}

// Coords returns the coordinates of free axis k, which must not be modified.
func (sl *Slice) Coords(k int) []float64 {
	if sl.bound() == nil || k < 0 || k >= len(sl.coords) {
		return nil
	}
	return sl.coords[k]
}

// Categories returns the category labels of free axis k,
// which must not be modified, or nil if it is not categorical.
func (sl *Slice) Categories(k int) []string {
	if sl.bound() == nil || k < 0 || k >= len(sl.cats) {
		return nil
	}
	return sl.cats[k]
}

func (sl *Slice) offset(i, j int) int {
	if len(sl.dims) < 2 || i < 0 || j < 0 || i >= sl.axes[0].Size || j >= sl.axes[1].Size {
		return -1
	}
	return sl.shape.Offset([]int{i, j})
}

func at[T any](sl *Slice, buf []T, i int) T {
	var zero T
	if sl.bound() == nil || i < 0 || i >= len(buf) {
		return zero
	}
	return buf[i]
}
