// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import "fmt"

// Squeezed is a proxy [Store] over a source store that hides every
// axis of size 1, remapping axis indexes transparently. A source with
// a total size of 1 keeps its first axis, so the proxy always has a
// rank of at least 1. Values are never copied, resampled or aggregated.
//
// The proxy holds a [Ref] to the source: if the source goes away, the
// proxy keeps the shape it was built with, reports [Squeezed.Alive]
// as false, and every fetch returns 0 items.
type Squeezed struct {
	src  Ref
	name string
	doc  string

	// axes are the visible axis descriptors.
	axes []Axis

	// dims maps each visible axis to its source axis.
	dims []int

	// rank is the source rank.
	rank int
}

// NewSqueezed returns a new proxy over the store referenced by src,
// building the axis map from its current shape.
// It returns [ErrDangling] if src is not alive.
func NewSqueezed(src Ref) (*Squeezed, error) {
	s, ok := src.Get()
	if !ok {
		return nil, fmt.Errorf("NewSqueezed: %w", ErrDangling)
	}
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("NewSqueezed: %w", err)
	}
	sq := &Squeezed{src: src, name: s.Name(), doc: s.Doc(), rank: s.NumDims()}
	for d := range sq.rank {
		ax := s.Axis(d)
		if ax.Size > 1 {
			sq.dims = append(sq.dims, d)
			sq.axes = append(sq.axes, ax)
		}
	}
	if len(sq.dims) == 0 {
		sq.dims = []int{0}
		sq.axes = []Axis{s.Axis(0)}
	}
	return sq, nil
}

// Source returns the reference to the source store.
func (sq *Squeezed) Source() Ref { return sq.src }

// SourceDim returns the source axis for given visible axis.
func (sq *Squeezed) SourceDim(dim int) int { return sq.dims[dim] }

// SourceIndex returns the full source-rank index vector for given
// visible-rank index vector, where hidden axes are at 0, their only
// valid index.
func (sq *Squeezed) SourceIndex(fixed []int) []int {
	full := make([]int, sq.rank)
	for v, d := range sq.dims {
		if v < len(fixed) {
			full[d] = fixed[v]
		}
	}
	return full
}

func (sq *Squeezed) Name() string      { return sq.name }
func (sq *Squeezed) Doc() string       { return sq.doc }
func (sq *Squeezed) NumDims() int      { return len(sq.dims) }
func (sq *Squeezed) Axis(dim int) Axis { return sq.axes[dim] }

// Alive implements [Aliver], reporting whether the source is alive.
func (sq *Squeezed) Alive() bool { return sq.src.Alive() }

// FetchValues implements [Store].
func (sq *Squeezed) FetchValues(dim int, fixed []int, vals []float64) int {
	s, ok := sq.src.Get()
	if !ok {
		return 0
	}
	return s.FetchValues(sq.dims[dim], sq.SourceIndex(fixed), vals)
}

// HasErrors implements [Errorer].
func (sq *Squeezed) HasErrors() bool {
	s, ok := sq.src.Get()
	return ok && HasErrors(s)
}

// FetchErrors implements [Errorer].
func (sq *Squeezed) FetchErrors(dim int, fixed []int, errs []float64) int {
	s, ok := sq.src.Get()
	if !ok {
		return 0
	}
	return FetchErrors(s, sq.dims[dim], sq.SourceIndex(fixed), errs)
}

// FetchCoords implements [Coorder].
func (sq *Squeezed) FetchCoords(dim int, coords []float64) int {
	s, ok := sq.src.Get()
	if !ok {
		return 0
	}
	return FetchCoords(s, sq.dims[dim], coords)
}

// FetchCategories implements [Categorizer].
func (sq *Squeezed) FetchCategories(dim int, labels []string) int {
	s, ok := sq.src.Get()
	if !ok {
		return 0
	}
	return FetchCategories(s, sq.dims[dim], labels)
}

// IsNumeric implements [Texter].
func (sq *Squeezed) IsNumeric() bool {
	s, ok := sq.src.Get()
	return !ok || IsNumeric(s)
}

// FetchStrings implements [Texter].
func (sq *Squeezed) FetchStrings(dim int, fixed []int, vals []string) int {
	s, ok := sq.src.Get()
	if !ok {
		return 0
	}
	return FetchStrings(s, sq.dims[dim], sq.SourceIndex(fixed), vals)
}
