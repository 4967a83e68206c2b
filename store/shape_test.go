// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	sh := NewShape(RowMajor, 4, 2)
	assert.Equal(t, 8, sh.Len())
	assert.Equal(t, []int{2, 1}, sh.Strides)
	assert.Equal(t, 5, sh.Offset([]int{2, 1}))
	assert.Equal(t, []int{2, 1}, sh.Index(5))
	assert.Equal(t, "[4 2]", sh.String())

	sh = NewShape(ColumnMajor, 4, 2)
	assert.Equal(t, []int{1, 4}, sh.Strides)
	assert.Equal(t, 6, sh.Offset([]int{2, 1}))
	assert.Equal(t, []int{2, 1}, sh.Index(6))

	sh = NewShape(RowMajor, 3, 4, 5)
	assert.Equal(t, []int{20, 5, 1}, sh.Strides)
	for off := range sh.Len() {
		assert.Equal(t, off, sh.Offset(sh.Index(off)))
	}
	assert.Equal(t, 40, sh.Offset([]int{2}))

	assert.NoError(t, sh.IsValid())
	assert.ErrorIs(t, NewShape(RowMajor).IsValid(), ErrEmpty)
	assert.ErrorIs(t, NewShape(RowMajor, 3, 0).IsValid(), ErrEmpty)
	assert.Equal(t, 0, NewShape(RowMajor).Len())
}

func TestWalk(t *testing.T) {
	sh := NewShape(RowMajor, 2, 3)
	data := []int{0, 1, 2, 10, 11, 12}
	out := make([]int, 5)
	id := func(v int) int { return v }

	n := walk(sh, data, 1, []int{1, 0}, out, id)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{10, 11, 12}, out[:n])

	n = walk(sh, data, 0, []int{0, 2}, out, id)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{2, 12}, out[:n])

	n = walk(sh, data, 1, []int{1, 0}, out[:2], id)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{10, 11}, out[:n])
}
