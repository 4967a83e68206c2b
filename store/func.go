// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import "fmt"

// Func is a numeric [Store] whose values are computed on demand
// by a function of the n-dimensional index, as for a live generator
// or an analytic function sampled on a grid. Nothing is stored.
type Func struct {
	Base

	// Fun returns the value at given index. The index slice
	// is reused across calls and must not be retained.
	Fun func(index []int) float64

	// ErrFun optionally returns the error at given index.
	ErrFun func(index []int) float64
}

// NewFunc returns a new Func store with given name, value function
// and axis sizes.
func NewFunc(name string, fun func(index []int) float64, sizes ...int) (*Func, error) {
	fs := &Func{Base: NewBase(name, sizes...), Fun: fun}
	if err := Validate(fs); err != nil {
		return nil, fmt.Errorf("NewFunc: %w", err)
	}
	return fs, nil
}

// HasErrors implements [Errorer].
func (fs *Func) HasErrors() bool { return fs.ErrFun != nil }

// FetchValues implements [Store].
func (fs *Func) FetchValues(dim int, fixed []int, vals []float64) int {
	return fs.eval(fs.Fun, dim, fixed, vals)
}

// FetchErrors implements [Errorer].
func (fs *Func) FetchErrors(dim int, fixed []int, errs []float64) int {
	if fs.ErrFun == nil {
		return 0
	}
	return fs.eval(fs.ErrFun, dim, fixed, errs)
}

func (fs *Func) eval(fun func([]int) float64, dim int, fixed []int, out []float64) int {
	n := min(len(out), fs.Axes[dim].Size)
	index := make([]int, len(fs.Axes))
	copy(index, fixed)
	for i := range n {
		index[dim] = i
		out[i] = fun(index)
	}
	return n
}

