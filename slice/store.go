// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import (
	"encoding/binary"
	"math"

	"cogentcore.org/databrowse/store"
	"github.com/cespare/xxhash/v2"
)

// A Slice is itself a [store.Store] over its window, with one axis per
// free axis, so it can be sliced or exported like any other store.
var (
	_ store.Store       = (*Slice)(nil)
	_ store.Errorer     = (*Slice)(nil)
	_ store.Coorder     = (*Slice)(nil)
	_ store.Categorizer = (*Slice)(nil)
	_ store.Texter      = (*Slice)(nil)
	_ store.Aliver      = (*Slice)(nil)
)

// Name returns the name of the bound store.
func (sl *Slice) Name() string {
	if sl.bound() == nil {
		return ""
	}
	return sl.name
}

// Doc returns the description of the bound store.
func (sl *Slice) Doc() string {
	if sl.bound() == nil {
		return ""
	}
	return sl.doc
}

// NumDims returns the number of free axes, or 0 if empty.
func (sl *Slice) NumDims() int {
	if sl.bound() == nil {
		return 0
	}
	return len(sl.dims)
}

// Axis returns the source descriptor of free axis k,
// or a zero Axis if empty or k is out of range.
func (sl *Slice) Axis(k int) store.Axis {
	if sl.bound() == nil || k < 0 || k >= len(sl.axes) {
		return store.Axis{}
	}
	return sl.axes[k]
}

// Alive returns true if the slice is bound to a live store.
func (sl *Slice) Alive() bool { return !sl.IsEmpty() }

// IsNumeric returns false if the bound store holds text.
func (sl *Slice) IsNumeric() bool {
	return sl.bound() == nil || sl.numeric
}

// HasErrors returns true if the window has error values.
func (sl *Slice) HasErrors() bool {
	return sl.bound() != nil && len(sl.errs) > 0
}

func (sl *Slice) FetchValues(dim int, fixed []int, vals []float64) int {
	return fetch(sl, sl.vals, dim, fixed, vals)
}

func (sl *Slice) FetchErrors(dim int, fixed []int, errs []float64) int {
	return fetch(sl, sl.errs, dim, fixed, errs)
}

func (sl *Slice) FetchStrings(dim int, fixed []int, vals []string) int {
	return fetch(sl, sl.texts, dim, fixed, vals)
}

func (sl *Slice) FetchCoords(dim int, coords []float64) int {
	if sl.bound() == nil || dim < 0 || dim >= len(sl.coords) {
		return 0
	}
	return copy(coords, sl.coords[dim])
}

func (sl *Slice) FetchCategories(dim int, labels []string) int {
	if sl.bound() == nil || dim < 0 || dim >= len(sl.cats) {
		return 0
	}
	return copy(labels, sl.cats[dim])
}

// fetch walks the window buffer along dim, with the
// other window axis at its index in fixed.
func fetch[T any](sl *Slice, buf []T, dim int, fixed []int, out []T) int {
	if sl.bound() == nil || len(buf) == 0 || dim < 0 || dim >= len(sl.dims) {
		return 0
	}
	n := min(len(out), sl.axes[dim].Size)
	ix := make([]int, len(sl.dims))
	copy(ix, fixed)
	for i := range n {
		ix[dim] = i
		out[i] = buf[sl.shape.Offset(ix)]
	}
	return n
}

// Fingerprint returns a hash of the window, including its free axes,
// fixed indexes, values, errors and text values.
// Two materializations of an unchanged store have the same fingerprint.
func (sl *Slice) Fingerprint() uint64 {
	if sl.bound() == nil {
		return 0
	}
	d := xxhash.New()
	var b [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		d.Write(b[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		d.Write(b[:])
	}
	for _, v := range sl.dims {
		putInt(v)
	}
	for _, v := range sl.fixed {
		putInt(v)
	}
	for _, v := range sl.vals {
		putFloat(v)
	}
	for _, v := range sl.errs {
		putFloat(v)
	}
	for _, s := range sl.texts {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	return d.Sum64()
}
