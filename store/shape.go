// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"
	"slices"
)

// Orders are the memory layouts supported by [Shape].
type Orders int32

const (
	// RowMajor is the C / Go / Python order, where the inner-most
	// (right-most) index varies fastest:
	//
	//	| 1 2 3 |
	//	| 4 5 6 |
	RowMajor Orders = iota

	// ColumnMajor is the Fortran / R / MATLAB order, where the
	// outer-most (left-most) index varies fastest:
	//
	//	| 1 3 5 |
	//	| 2 4 6 |
	ColumnMajor
)

func (o Orders) String() string {
	if o == ColumnMajor {
		return "ColumnMajor"
	}
	return "RowMajor"
}

// Shape manages the sizes of each dimension of n-dimensional data,
// and the strides used to compute flat 1D offsets for a given layout.
// Strides are computed once when the shape is set, and the offset of
// an index vector is the sum of index[d] * stride[d].
type Shape struct {

	// Sizes is the number of elements along each dimension.
	Sizes []int

	// Strides is the offset increment for each dimension.
	Strides []int

	// Order is the memory layout.
	Order Orders
}

// NewShape returns a new shape with given layout and sizes.
func NewShape(order Orders, sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShape(order, sizes...)
	return sh
}

// SetShape sets the layout and sizes, and recomputes the strides.
func (sh *Shape) SetShape(order Orders, sizes ...int) {
	sh.Order = order
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = Strides(order, sizes...)
}

// Strides returns the strides for given layout and sizes.
func Strides(order Orders, sizes ...int) []int {
	nd := len(sizes)
	st := make([]int, nd)
	if nd == 0 {
		return st
	}
	ln := 1
	if order == ColumnMajor {
		for d := range nd {
			st[d] = ln
			ln *= sizes[d]
		}
		return st
	}
	for d := nd - 1; d >= 0; d-- {
		st[d] = ln
		ln *= sizes[d]
	}
	return st
}

// NumDims returns the number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(dim int) int { return sh.Sizes[dim] }

// Len returns the total number of elements, which is the product
// of all sizes, or 0 for a shape without dimensions.
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, sz := range sh.Sizes {
		ln *= sz
	}
	return ln
}

// Offset returns the flat 1D offset of given n-dimensional index.
// Missing trailing indexes are treated as 0.
func (sh *Shape) Offset(index []int) int {
	off := 0
	for d, ix := range index {
		if d >= len(sh.Strides) {
			break
		}
		off += ix * sh.Strides[d]
	}
	return off
}

// Index returns the n-dimensional index for given flat 1D offset.
func (sh *Shape) Index(offset int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := offset
	if sh.Order == ColumnMajor {
		for d := nd - 1; d >= 0; d-- {
			index[d] = rem / sh.Strides[d]
			rem %= sh.Strides[d]
		}
		return index
	}
	for d := range nd {
		index[d] = rem / sh.Strides[d]
		rem %= sh.Strides[d]
	}
	return index
}

// IsValid returns an error if there are no dimensions or any size is <= 0.
func (sh *Shape) IsValid() error {
	if len(sh.Sizes) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrEmpty)
	}
	for d, sz := range sh.Sizes {
		if sz <= 0 {
			return fmt.Errorf("%w: dimension %d has size %d", ErrEmpty, d, sz)
		}
	}
	return nil
}

func (sh *Shape) String() string {
	return fmt.Sprint(sh.Sizes)
}

// walkOffset returns the offset of the first element along dim
// with all other dimensions held at fixed, and the stride along dim.
func (sh *Shape) walkOffset(dim int, fixed []int) (start, stride int) {
	for d, ix := range fixed {
		if d == dim || d >= len(sh.Strides) {
			continue
		}
		start += ix * sh.Strides[d]
	}
	return start, sh.Strides[dim]
}

// walk copies values along dim from data into out, converted by conv,
// implementing the [Store.FetchValues] contract on a flat data slice.
func walk[T, U any](sh *Shape, data []T, dim int, fixed []int, out []U, conv func(T) U) int {
	n := min(len(out), sh.Sizes[dim])
	start, stride := sh.walkOffset(dim, fixed)
	for i := range n {
		out[i] = conv(data[start+i*stride])
	}
	return n
}
