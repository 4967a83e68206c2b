// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package browser

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/slice"
	"cogentcore.org/databrowse/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*catalog.Catalog, *Browser, *store.Dense[float64]) {
	cat := catalog.New()
	_, err := cat.AddGroup("sim", "/", "")
	require.NoError(t, err)
	ds, err := store.NewDense[float64]("random3d", 10, 3, 100)
	require.NoError(t, err)
	_, err = cat.AddData(ds, "/sim")
	require.NoError(t, err)
	return cat, New(cat), ds
}

func TestSelect(t *testing.T) {
	_, br, _ := setup(t)
	require.Len(t, br.Views, 3)
	var selected []string
	br.OnSelect(func(p string) { selected = append(selected, p) })

	assert.Error(t, br.Select("/sim"))
	assert.Error(t, br.Select("/sim/nope"))
	assert.False(t, br.CanExport(0))

	require.NoError(t, br.Select("sim/random3d"))
	assert.Equal(t, "/sim/random3d", br.Current())
	assert.Equal(t, []string{"/sim/random3d"}, selected)
	assert.Equal(t, 2, br.View(0).Slice().NumDims())
	assert.Equal(t, 1, br.View(1).Slice().NumDims())
	assert.Equal(t, 2, br.View(2).Slice().NumDims())
	assert.Equal(t, 2, br.View(1).Slice().X())
	assert.True(t, br.CanExport(1))
	assert.False(t, br.CanExport(3))
	assert.Nil(t, br.View(-1))
}

func TestDataUpdated(t *testing.T) {
	cat, br, ds := setup(t)
	require.NoError(t, br.Select("/sim/random3d"))
	var changes []slice.Change
	br.View(1).Selector.OnChange(func(ch slice.Change) { changes = append(changes, ch) })

	ds.Set(42, 0, 0, 5)
	require.NoError(t, cat.Updated("/sim"))
	assert.Equal(t, []slice.Change{slice.Updated}, changes)
	assert.Equal(t, 42.0, br.View(1).Slice().Value(5))

	// unrelated path
	_, err := cat.AddGroup("other", "/", "")
	require.NoError(t, err)
	require.NoError(t, cat.Updated("/other"))
	assert.Len(t, changes, 1)

	// replaced store is rebound
	ds2, _ := store.NewDense[float64]("random3d", 4, 50)
	_, err = cat.AddData(ds2, "/sim")
	require.NoError(t, err)
	require.NoError(t, cat.Updated("/sim/random3d"))
	assert.Equal(t, 50, br.View(1).Slice().DimSize(0))
	assert.Equal(t, []int{50, 4}, []int{br.View(0).Slice().DimSize(0), br.View(0).Slice().DimSize(1)})
}

func TestClear(t *testing.T) {
	_, br, _ := setup(t)
	require.NoError(t, br.Select("/sim/random3d"))
	var selected []string
	br.OnSelect(func(p string) { selected = append(selected, p) })

	require.NoError(t, br.Clear("/sim"))
	assert.Equal(t, "", br.Current())
	assert.Equal(t, []string{""}, selected)
	for _, v := range br.Views {
		assert.True(t, v.Slice().IsEmpty())
	}
	assert.Error(t, br.Clear("/sim"))
}

func TestExportCSV(t *testing.T) {
	cat := catalog.New()
	ds, _ := store.NewDenseFrom("wave", []float64{5, 6, 7}, 3)
	_, err := cat.AddData(ds, "/")
	require.NoError(t, err)
	br := New(cat, ViewSpec{Name: "Line", Rank: 1})
	fn := filepath.Join(t.TempDir(), "wave.csv")
	assert.Error(t, br.ExportCSV(0, fn))
	require.NoError(t, br.Select("/wave"))
	require.NoError(t, br.ExportCSV(0, fn))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n0, 5\n1, 6\n2, 7\n", string(b))
}
