// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/databrowse/base/metadata"
)

// Base provides the name, description and axis descriptors
// of a [Store], and is embedded in the concrete store types.
type Base struct {

	// Meta has the Name, Doc and any other metadata.
	Meta metadata.Data

	// Axes are the axis descriptors, one per dimension.
	Axes []Axis

	// coords are optional coordinates per axis (nil = index).
	coords [][]float64

	// cats are category labels per categorical axis.
	cats [][]string
}

// NewBase returns a new Base with given name and axis sizes,
// with default axis labels D0, D1, ...
func NewBase(name string, sizes ...int) Base {
	b := Base{Axes: make([]Axis, len(sizes))}
	b.Meta.SetName(name)
	for d, sz := range sizes {
		b.Axes[d] = Axis{Size: sz, Label: "D" + strconv.Itoa(d)}
	}
	return b
}

// Name returns the "Name" metadata value.
func (b *Base) Name() string { return b.Meta.Name() }

// Doc returns the "Doc" metadata value.
func (b *Base) Doc() string { return b.Meta.Doc() }

// Metadata returns the metadata for this store.
func (b *Base) Metadata() *metadata.Data { return &b.Meta }

// NumDims returns the number of axes.
func (b *Base) NumDims() int { return len(b.Axes) }

// Axis returns the descriptor for given axis.
func (b *Base) Axis(dim int) Axis { return b.Axes[dim] }

// SetDoc sets the description of the data.
func (b *Base) SetDoc(doc string) { b.Meta.SetDoc(doc) }

// SetAxis sets the label and description of given axis.
func (b *Base) SetAxis(dim int, label, doc string) {
	b.Axes[dim].Label = label
	b.Axes[dim].Doc = doc
}

// SetAxisLabels sets the labels of the axes, in order.
func (b *Base) SetAxisLabels(labels ...string) {
	for d, lb := range labels {
		if d >= len(b.Axes) {
			break
		}
		b.Axes[d].Label = lb
	}
}

// SetCoords sets the coordinates of given axis, in physical units.
// The number of coordinates must equal the axis size.
func (b *Base) SetCoords(dim int, coords []float64) error {
	if len(coords) != b.Axes[dim].Size {
		return fmt.Errorf("SetCoords: %w: axis %d has size %d, got %d coordinates", ErrSize, dim, b.Axes[dim].Size, len(coords))
	}
	b.coords = growTo(b.coords, len(b.Axes))
	b.coords[dim] = slices.Clone(coords)
	return nil
}

// SetCategories sets the category labels of given axis,
// and marks it as categorical. The number of labels must
// equal the axis size.
func (b *Base) SetCategories(dim int, labels []string) error {
	if len(labels) != b.Axes[dim].Size {
		return fmt.Errorf("SetCategories: %w: axis %d has size %d, got %d labels", ErrSize, dim, b.Axes[dim].Size, len(labels))
	}
	b.cats = growTo(b.cats, len(b.Axes))
	b.cats[dim] = slices.Clone(labels)
	b.Axes[dim].Categorical = true
	return nil
}

// FetchCoords implements [Coorder], using the coordinates set by
// [Base.SetCoords], or the index sequence otherwise.
func (b *Base) FetchCoords(dim int, coords []float64) int {
	if dim < len(b.coords) && b.coords[dim] != nil {
		return copy(coords, b.coords[dim])
	}
	return IndexCoords(b.Axes[dim].Size, coords)
}

// FetchCategories implements [Categorizer], using the labels set by
// [Base.SetCategories].
func (b *Base) FetchCategories(dim int, labels []string) int {
	if dim >= len(b.cats) {
		return 0
	}
	return copy(labels, b.cats[dim])
}

func growTo[T any](s []T, n int) []T {
	if len(s) >= n {
		return s
	}
	return append(s, make([]T, n-len(s))...)
}
