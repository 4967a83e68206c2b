// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import (
	"testing"

	"cogentcore.org/databrowse/slice"
	"cogentcore.org/databrowse/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	assert.Equal(t, 1, Page(1))
	assert.Equal(t, 1, Page(15))
	assert.Equal(t, 2, Page(16))
	assert.Equal(t, 7, Page(100))
	assert.Equal(t, 63, Page(1000))
}

func newStore(t *testing.T) *store.Dense[float64] {
	ds, err := store.NewDense[float64]("random3d", 10, 3, 100)
	require.NoError(t, err)
	ds.SetAxisLabels("run", "channel", "time")
	require.NoError(t, ds.SetCategories(1, []string{"a", "b", "c"}))
	return ds
}

func TestAssign(t *testing.T) {
	sr := New()
	resets := 0
	sr.OnReset(func() { resets++ })
	var changes []slice.Change
	sr.OnChange(func(ch slice.Change) { changes = append(changes, ch) })

	h := store.NewHandle(newStore(t))
	sr.Assign(h.Ref(), 2)
	assert.Equal(t, 1, resets)
	st := sr.State()
	assert.Equal(t, []string{"run [n=10]", "channel [n=3]", "time [n=100]"}, st.Labels)
	assert.Equal(t, 2, st.X)
	assert.Equal(t, 0, st.Y)
	assert.True(t, st.CanExchange)
	require.Len(t, st.Sliders, 1)
	sl := st.Sliders[0]
	assert.Equal(t, 1, sl.Dim)
	assert.Equal(t, "channel [n=3]", sl.Label)
	assert.Equal(t, 2, sl.Max)
	assert.Equal(t, 1, sl.Page)
	assert.True(t, sl.Enabled)
	assert.Equal(t, []string{"0: a", "1: b", "2: c"}, sl.ValueLabels)
	assert.Equal(t, "0: a", sl.Text())

	assert.Equal(t, slice.Updated, sr.SetIndex(1, 2))
	assert.Equal(t, 2, sr.Sliders()[0].Value)
	assert.Equal(t, "2: c", sr.Sliders()[0].Text())
	assert.Equal(t, 0, st.Sliders[0].Value, "state is a copy")

	assert.Equal(t, slice.Swapped, sr.Exchange())
	assert.Equal(t, 0, sr.State().X)
	assert.Equal(t, 2, sr.State().Y)
	assert.Equal(t, 1, resets)

	assert.Equal(t, slice.Reset, sr.SetY(1))
	assert.Equal(t, 2, resets)
	st = sr.State()
	require.Len(t, st.Sliders, 1)
	assert.Equal(t, 2, st.Sliders[0].Dim)
	assert.Equal(t, 7, st.Sliders[0].Page)
	assert.Equal(t, "5: 5", st.Sliders[0].ValueLabels[5])

	assert.Equal(t, slice.Unchanged, sr.Update())
	assert.Equal(t, []slice.Change{slice.Updated, slice.Swapped, slice.Reset}, changes)

	h.Close()
	assert.Equal(t, slice.Cleared, sr.Update())
	assert.Equal(t, 3, resets)
	assert.Empty(t, sr.State().Sliders)
	assert.Equal(t, -1, sr.State().X)
	assert.Equal(t, "", sr.AxisLabel(0))
}

func TestAssign1D(t *testing.T) {
	ds, _ := store.NewDense[float64]("one", 1, 20)
	sr := New()
	sr.Assign(store.RefOf(ds), 1)
	st := sr.State()
	assert.Equal(t, 1, st.X)
	assert.Equal(t, -1, st.Y)
	assert.False(t, st.CanExchange)
	require.Len(t, st.Sliders, 1)
	assert.False(t, st.Sliders[0].Enabled)
	assert.Equal(t, 0, st.Sliders[0].Max)
	assert.Equal(t, "0: 0", st.Sliders[0].Text())

	assert.Equal(t, slice.Unchanged, sr.Exchange())
	sr.Clear()
	assert.True(t, sr.Slice().IsEmpty())
	st = sr.State()
	assert.Nil(t, st.Labels)
	assert.Nil(t, st.Sliders)
	assert.Equal(t, -1, st.X)
}
