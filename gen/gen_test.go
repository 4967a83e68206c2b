// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"context"
	"testing"
	"time"

	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	rng := NewRand(1)
	r2 := Random2D(rng)
	assert.Equal(t, []int{3, 100}, store.Sizes(r2))
	for _, v := range r2.Values {
		assert.True(t, v >= 0 && v < 1)
	}
	r3 := Random3D(rng)
	assert.Equal(t, []int{10, 3, 100}, store.Sizes(r3))
	assert.Equal(t, "Random data array [10x3x100]", r3.Doc())

	w := Wave1D(rng)
	assert.Equal(t, WaveSize, store.Len(w))
	assert.InDelta(t, 0, w.Value(0), 0.1)
	// peak of the first period
	assert.InDelta(t, 1, w.Value(WaveSize/14), 0.11)
}

func TestPopulate(t *testing.T) {
	cat := catalog.New()
	r3, err := Populate(cat, NewRand(2))
	require.NoError(t, err)
	ls, err := cat.List("/", false, true)
	require.NoError(t, err)
	assert.Equal(t, "RandomData/\n\t2D/\n\t\trandom2d\n\t3D/\n\t\trandom3d\n\twave1d\n", ls)
	ref, err := cat.Ref(Random3DPath)
	require.NoError(t, err)
	s, _ := ref.Get()
	assert.Same(t, r3, s)

	_, err = Populate(cat, NewRand(2))
	assert.ErrorIs(t, err, catalog.ErrExist)
}

func TestAnimate(t *testing.T) {
	cat := catalog.New()
	rng := NewRand(3)
	r3, err := Populate(cat, rng)
	require.NoError(t, err)
	updates := 0
	cat.OnUpdate(func(p string) {
		assert.Equal(t, Random3DPath, p)
		updates++
	})
	first := r3.Values[0]
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	err = Animate(ctx, cat, r3, rng, time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, updates)
	assert.NotEqual(t, first, r3.Values[0])
}
