// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slice provides [Slice], which projects an n-dimensional
// [store.Store] onto a dense 1D or 2D window of one or two free axes,
// with all other axes held at fixed indexes.
//
// A Slice holds only a [store.Ref] to its store, and re-checks it on
// every call: once the store is gone, the slice clears itself and all
// accessors return zero values.
package slice

import (
	"log/slog"
	"slices"

	"cogentcore.org/databrowse/store"
)

// Slice is a materialized 1D or 2D window onto a [store.Store].
// The zero value is an empty slice, ready to be bound.
//
// The value buffer is column-major: element (i, j) is at i + j*n0,
// where n0 is the size of the first free axis.
type Slice struct {
	ref store.Ref

	// dims are the free axes of the source, 1 or 2 of them,
	// nil when the slice is empty.
	dims []int

	// fixed has the source index of each non-free axis,
	// with 0 at the free axes.
	fixed []int

	// order is the dimension order: free axes then the rest.
	order []int

	// srcSizes are the source sizes as of the last bind.
	srcSizes []int

	// shape is the column-major shape of the window.
	shape store.Shape

	name, doc string
	axes      []store.Axis
	numeric   bool

	vals   []float64
	errs   []float64
	texts  []string
	coords [][]float64
	cats   [][]string
}

// New returns a new empty slice.
func New() *Slice {
	return &Slice{}
}

// Bind binds the slice to given store with rank free axes, which is
// clamped into [1, min(2, store rank)]. The first free axis is the
// largest axis of the store, and the second is the largest of the
// remaining axes, with ties going to the lowest axis index.
// All other axes are fixed at 0.
func (sl *Slice) Bind(ref store.Ref, rank int) Change {
	s, ok := sl.source(ref)
	if !ok {
		return sl.clear()
	}
	nd := s.NumDims()
	rank = max(1, min(rank, 2, nd))
	sizes := store.Sizes(s)
	dims := []int{largest(sizes, -1)}
	if rank == 2 {
		dims = append(dims, largest(sizes, dims[0]))
	}
	return sl.bind(ref, s, dims, make([]int, nd), Reset)
}

// Bind1D binds the slice to given store with one free axis dx, and
// all other axes at the fixed indexes, which are clamped into range.
// If the slice is currently a 2D window on the same store and dx is
// its second free axis, the two free axes are exchanged instead,
// returning [Swapped].
func (sl *Slice) Bind1D(ref store.Ref, dx int, fixed []int) Change {
	s, ok := sl.source(ref)
	if !ok {
		return sl.clear()
	}
	dx = clampIndex(dx, s.NumDims())
	if sl.is2D(ref) && dx == sl.dims[1] {
		return sl.bind(ref, s, []int{sl.dims[1], sl.dims[0]}, fixed, Swapped)
	}
	return sl.bind(ref, s, []int{dx}, fixed, Reset)
}

// Bind2D binds the slice to given store with free axes dx and dy,
// and all other axes at the fixed indexes, which are clamped into range.
// A rank 1 store is bound with one free axis. When the result is the
// current pair of free axes in reverse order on the same store, it
// returns [Swapped]. If dx == dy and the slice is currently a 2D
// window on the same store, the current free axes are exchanged;
// otherwise dy becomes the largest of the remaining axes.
func (sl *Slice) Bind2D(ref store.Ref, dx, dy int, fixed []int) Change {
	s, ok := sl.source(ref)
	if !ok {
		return sl.clear()
	}
	nd := s.NumDims()
	dx = clampIndex(dx, nd)
	if nd == 1 {
		return sl.bind(ref, s, []int{dx}, fixed, Reset)
	}
	dy = clampIndex(dy, nd)
	if dx == dy {
		if sl.is2D(ref) && slices.Contains(sl.dims, dx) {
			dx, dy = sl.dims[1], sl.dims[0]
		} else {
			dy = largest(store.Sizes(s), dx)
		}
	}
	change := Reset
	if sl.is2D(ref) && dx == sl.dims[1] && dy == sl.dims[0] {
		change = Swapped
	}
	return sl.bind(ref, s, []int{dx, dy}, fixed, change)
}

// SetX sets the first free axis to dx, keeping the current fixed
// indexes. If dx is the current second free axis, the free axes
// are exchanged.
func (sl *Slice) SetX(dx int) Change {
	if sl.bound() == nil {
		return Unchanged
	}
	if dx == sl.dims[0] {
		return Unchanged
	}
	if len(sl.dims) == 1 {
		return sl.Bind1D(sl.ref, dx, sl.fixed)
	}
	return sl.Bind2D(sl.ref, dx, sl.dims[1], sl.fixed)
}

// SetY sets the second free axis to dy, keeping the current fixed
// indexes, which turns a 1D window into a 2D one. If dy is the
// current first free axis of a 2D window, the free axes are exchanged.
func (sl *Slice) SetY(dy int) Change {
	if sl.bound() == nil {
		return Unchanged
	}
	if len(sl.dims) == 1 {
		if dy == sl.dims[0] {
			return Unchanged
		}
		return sl.Bind2D(sl.ref, sl.dims[0], dy, sl.fixed)
	}
	if dy == sl.dims[1] {
		return Unchanged
	}
	if dy == sl.dims[0] {
		return sl.Exchange()
	}
	return sl.Bind2D(sl.ref, sl.dims[0], dy, sl.fixed)
}

// Exchange swaps the two free axes of a 2D window.
func (sl *Slice) Exchange() Change {
	if sl.bound() == nil || len(sl.dims) < 2 {
		return Unchanged
	}
	return sl.Bind2D(sl.ref, sl.dims[1], sl.dims[0], sl.fixed)
}

// SetFixed re-materializes the window with the same free axes and new
// fixed indexes, which are clamped into range. The entries at the free
// axes are ignored and forced to 0.
func (sl *Slice) SetFixed(fixed []int) Change {
	s := sl.bound()
	if s == nil {
		return Unchanged
	}
	return sl.bind(sl.ref, s, sl.dims, fixed, Updated)
}

// SetIndex sets the fixed index of one non-free axis,
// and re-materializes the window.
func (sl *Slice) SetIndex(dim, index int) Change {
	if sl.bound() == nil || dim < 0 || dim >= len(sl.fixed) || slices.Contains(sl.dims, dim) {
		return Unchanged
	}
	fixed := slices.Clone(sl.fixed)
	fixed[dim] = index
	return sl.SetFixed(fixed)
}

// Refresh re-pulls the same window from the store, for when the store
// contents have changed. It returns [Unchanged] if the new window is
// identical to the previous one, and [Updated] otherwise. If the store
// shape has changed, the slice is rebound, keeping the free axes and
// fixed indexes where they are still valid, returning [Reset].
// It returns [Cleared] if the store is gone.
func (sl *Slice) Refresh() Change {
	if sl.dims == nil {
		return Unchanged
	}
	s := sl.bound()
	if s == nil {
		return Cleared
	}
	if sizes := store.Sizes(s); !slices.Equal(sizes, sl.srcSizes) {
		if len(sizes) != len(sl.srcSizes) {
			return sl.Bind(sl.ref, len(sl.dims))
		}
		return sl.bind(sl.ref, s, sl.dims, sl.fixed, Reset)
	}
	prev := sl.Fingerprint()
	sl.materialize(s)
	if sl.Fingerprint() == prev {
		return Unchanged
	}
	return Updated
}

// Clear returns the slice to the empty state.
func (sl *Slice) Clear() {
	sl.clear()
}

func (sl *Slice) clear() Change {
	*sl = Slice{vals: sl.vals[:0], errs: sl.errs[:0], texts: sl.texts[:0]}
	return Cleared
}

// source returns the store of ref if it is alive and valid.
func (sl *Slice) source(ref store.Ref) (store.Store, bool) {
	s, ok := ref.Get()
	if !ok || !store.Alive(s) {
		slog.Warn("slice: store is gone")
		return nil, false
	}
	if err := store.Validate(s); err != nil {
		slog.Warn("slice: cannot bind", "err", err)
		return nil, false
	}
	return s, true
}

// bound returns the bound store, clearing the slice if it is gone,
// or nil if the slice is empty.
func (sl *Slice) bound() store.Store {
	if sl.dims == nil {
		return nil
	}
	s, ok := sl.ref.Get()
	if !ok || !store.Alive(s) {
		slog.Warn("slice: store is gone, clearing", "name", sl.name)
		sl.clear()
		return nil
	}
	return s
}

func (sl *Slice) is2D(ref store.Ref) bool {
	return len(sl.dims) == 2 && sl.ref.Same(ref) && sl.ref.Alive()
}

// bind sets the free axes and fixed indexes and materializes the window.
func (sl *Slice) bind(ref store.Ref, s store.Store, dims, fixed []int, change Change) Change {
	nd := s.NumDims()
	sizes := store.Sizes(s)
	fx := make([]int, nd)
	for d := range nd {
		if d < len(fixed) {
			fx[d] = clampIndex(fixed[d], sizes[d])
		}
	}
	for _, d := range dims {
		fx[d] = 0
	}
	sl.ref = ref
	sl.dims = slices.Clone(dims)
	sl.fixed = fx
	sl.srcSizes = sizes
	sl.order = append(make([]int, 0, nd), dims...)
	for d := range nd {
		if !slices.Contains(dims, d) {
			sl.order = append(sl.order, d)
		}
	}
	sl.materialize(s)
	slog.Debug("slice: bind", "name", sl.name, "dims", sl.dims, "fixed", sl.fixed, "change", change)
	return change
}

// materialize clears and refills all buffers from the store.
func (sl *Slice) materialize(s store.Store) {
	nf := len(sl.dims)
	sl.name = s.Name()
	sl.doc = s.Doc()
	sl.numeric = store.IsNumeric(s)
	sl.axes = make([]store.Axis, nf)
	sizes := make([]int, nf)
	for k, d := range sl.dims {
		sl.axes[k] = s.Axis(d)
		sizes[k] = sl.axes[k].Size
	}
	sl.shape.SetShape(store.ColumnMajor, sizes...)
	n0 := sizes[0]
	n1 := 1
	if nf == 2 {
		n1 = sizes[1]
	}
	ln := n0 * n1
	hasErrs := store.HasErrors(s)
	sl.vals = reset(sl.vals, ln)
	if hasErrs {
		sl.errs = reset(sl.errs, ln)
	} else {
		sl.errs = sl.errs[:0]
	}
	if sl.numeric {
		sl.texts = sl.texts[:0]
	} else {
		sl.texts = reset(sl.texts, ln)
	}

	ix := slices.Clone(sl.fixed)
	for j := range n1 {
		if nf == 2 {
			ix[sl.dims[1]] = j
		}
		col := j * n0
		s.FetchValues(sl.dims[0], ix, sl.vals[col:col+n0])
		if hasErrs {
			store.FetchErrors(s, sl.dims[0], ix, sl.errs[col:col+n0])
		}
		if !sl.numeric {
			store.FetchStrings(s, sl.dims[0], ix, sl.texts[col:col+n0])
		}
	}

	sl.coords = make([][]float64, nf)
	sl.cats = make([][]string, nf)
	for k, d := range sl.dims {
		sl.coords[k] = make([]float64, sizes[k])
		store.FetchCoords(s, d, sl.coords[k])
		if sl.axes[k].Categorical {
			sl.cats[k] = make([]string, sizes[k])
			store.FetchCategories(s, d, sl.cats[k])
		}
	}
}

// reset returns buf resized to n zero values, reusing its memory.
func reset[T any](buf []T, n int) []T {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}

// largest returns the index of the largest size, skipping skip,
// with ties going to the lowest index.
func largest(sizes []int, skip int) int {
	best := -1
	for d, sz := range sizes {
		if d == skip {
			continue
		}
		if best < 0 || sz > sizes[best] {
			best = d
		}
	}
	return best
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
