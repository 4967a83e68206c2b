// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	ds, _ := NewDense[float64]("d", 3)
	h := NewHandle(ds)
	r := h.Ref()
	assert.True(t, r.Alive())
	s, ok := r.Get()
	assert.True(t, ok)
	assert.Same(t, ds, s)
	assert.True(t, r.Same(h.Ref()))
	assert.False(t, r.Same(RefOf(ds)))
	assert.False(t, h.IsClosed())

	h.Close()
	h.Close()
	assert.True(t, h.IsClosed())
	assert.Nil(t, h.Store())
	assert.False(t, r.Alive())
	s, ok = r.Get()
	assert.False(t, ok)
	assert.Nil(t, s)

	var zero Ref
	assert.False(t, zero.Alive())
	assert.False(t, zero.Same(Ref{}))
	assert.False(t, NewHandle(nil).Ref().Alive())
}
