// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqueezed(t *testing.T) {
	ds, err := NewDense[float64]("d", 1, 5, 1, 3)
	require.NoError(t, err)
	ds.SetAxisLabels("a", "b", "c", "d")
	for i := range 5 {
		for j := range 3 {
			ds.Set(float64(10*i+j), 0, i, 0, j)
		}
	}
	h := NewHandle(ds)
	sq, err := NewSqueezed(h.Ref())
	require.NoError(t, err)
	assert.Equal(t, "d", sq.Name())
	assert.Equal(t, 2, sq.NumDims())
	assert.Equal(t, []int{5, 3}, Sizes(sq))
	assert.Equal(t, "b", sq.Axis(0).Label)
	assert.Equal(t, "d", sq.Axis(1).Label)
	assert.Equal(t, 3, sq.SourceDim(1))
	assert.Equal(t, []int{0, 4, 0, 2}, sq.SourceIndex([]int{4, 2}))

	vals := make([]float64, 5)
	src := make([]float64, 5)
	for j := range 3 {
		n := sq.FetchValues(0, []int{0, j}, vals)
		m := ds.FetchValues(1, []int{0, 0, 0, j}, src)
		assert.Equal(t, m, n)
		assert.Equal(t, src[:m], vals[:n])
	}
	n := sq.FetchValues(1, []int{4, 0}, vals)
	assert.Equal(t, []float64{40, 41, 42}, vals[:n])

	assert.True(t, sq.Alive())
	assert.True(t, Alive(sq))
	h.Close()
	assert.False(t, Alive(sq))
	assert.Equal(t, 0, sq.FetchValues(0, []int{0, 0}, vals))
	assert.Equal(t, 2, sq.NumDims())

	_, err = NewSqueezed(h.Ref())
	assert.ErrorIs(t, err, ErrDangling)
}

func TestSqueezedScalar(t *testing.T) {
	ds, _ := NewDenseFrom("one", []float64{7}, 1, 1, 1)
	sq, err := NewSqueezed(RefOf(ds))
	require.NoError(t, err)
	assert.Equal(t, 1, sq.NumDims())
	assert.Equal(t, 1, sq.Axis(0).Size)
	vals := make([]float64, 2)
	n := sq.FetchValues(0, []int{0}, vals)
	assert.Equal(t, 1, n)
	assert.Equal(t, 7.0, vals[0])
}

func TestSqueezedCapabilities(t *testing.T) {
	ds, _ := NewDenseFrom("e", []float64{1, 2, 3}, 3, 1)
	require.NoError(t, ds.SetErrors([]float64{0.1, 0.2, 0.3}))
	require.NoError(t, ds.SetCategories(0, []string{"x", "y", "z"}))
	sq, err := NewSqueezed(RefOf(ds))
	require.NoError(t, err)
	assert.True(t, HasErrors(sq))
	assert.True(t, IsCategorical(sq, 0))
	errs := make([]float64, 3)
	n := FetchErrors(sq, 0, []int{0}, errs)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, errs[:n])
	labels := make([]string, 3)
	n = FetchCategories(sq, 0, labels)
	assert.Equal(t, []string{"x", "y", "z"}, labels[:n])

	ss, _ := NewStrings("s", 1, 2)
	ss.Set("p", 0, 0)
	ss.Set("q", 0, 1)
	sq, err = NewSqueezed(RefOf(ss))
	require.NoError(t, err)
	assert.False(t, IsNumeric(sq))
	strs := make([]string, 2)
	n = FetchStrings(sq, 0, []int{0}, strs)
	assert.Equal(t, []string{"p", "q"}, strs[:n])
}
