// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"cogentcore.org/databrowse/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, name string, sizes ...int) *store.Dense[float64] {
	ds, err := store.NewDense[float64](name, sizes...)
	require.NoError(t, err)
	return ds
}

func TestCatalog(t *testing.T) {
	c := New()
	_, err := c.AddGroup("sim", "/", "Simulation output")
	require.NoError(t, err)
	_, err = c.AddGroup("run1", "/sim", "")
	require.NoError(t, err)
	_, err = c.AddGroup("sim", "", "")
	assert.ErrorIs(t, err, ErrExist)

	nd, err := c.AddData(dense(t, "random3d", 10, 3, 100), "/sim/run1")
	require.NoError(t, err)
	assert.Equal(t, "/sim/run1/random3d", nd.Path())
	assert.False(t, nd.IsGroup())
	assert.Equal(t, "Data array", nd.Doc())
	_, err = c.AddData(dense(t, "wave1d", 1000), "sim/run1/")
	require.NoError(t, err)

	_, err = c.AddData(dense(t, "x", 2), "/sim/run1/random3d")
	assert.ErrorIs(t, err, ErrNotGroup)
	_, err = c.AddGroup("g", "/nope", "")
	assert.ErrorIs(t, err, ErrNotFound)

	grp, err := c.Node("/sim")
	require.NoError(t, err)
	assert.True(t, grp.IsGroup())
	assert.Equal(t, "Simulation output", grp.Doc())
	run, _ := c.Node("/sim/run1")
	assert.Equal(t, "Group", run.Doc())
	assert.True(t, nd.IsBelow(grp))
	assert.False(t, grp.IsBelow(nd))

	root, err := c.Node("/")
	require.NoError(t, err)
	assert.Same(t, c.Root(), root)
	assert.Equal(t, "/", root.Path())

	ls, err := c.List("/", false, true)
	require.NoError(t, err)
	assert.Equal(t, "sim/\n\trun1/\n\t\trandom3d\n\t\twave1d\n", ls)
	ls, err = c.List("/sim/run1", true, false)
	require.NoError(t, err)
	assert.Equal(t, "random3d [D0: 10, D1: 3, D2: 100]\tData array\nwave1d [D0: 1000]\tData array\n", ls)

	var names []string
	c.Walk(func(nd *Node) bool {
		names = append(names, nd.Name())
		return true
	})
	assert.Equal(t, []string{"", "sim", "run1", "random3d", "wave1d"}, names)
}

func TestNotFound(t *testing.T) {
	c := New()
	_, err := c.AddData(dense(t, "random2d", 3, 100), "/")
	require.NoError(t, err)
	_, err = c.Node("/random2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `did you mean "random2d"`)
	_, err = c.Node("/zzz")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
	_, err = c.Ref("/")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceAndRemove(t *testing.T) {
	c := New()
	var removed, updated []string
	c.OnRemove(func(p string) { removed = append(removed, p) })
	c.OnUpdate(func(p string) { updated = append(updated, p) })

	_, err := c.AddGroup("g", "/", "")
	require.NoError(t, err)
	_, err = c.AddData(dense(t, "a", 3), "/g")
	require.NoError(t, err)
	old, err := c.Ref("/g/a")
	require.NoError(t, err)
	assert.True(t, old.Alive())

	// replacing closes the old store
	nd, err := c.AddData(dense(t, "a", 5), "/g")
	require.NoError(t, err)
	assert.False(t, old.Alive())
	assert.Equal(t, 5, nd.Store().Axis(0).Size)
	assert.Len(t, nd.Parent.Nodes(), 1)

	require.NoError(t, c.Updated("/g/a"))
	assert.Equal(t, []string{"/g/a"}, updated)
	assert.ErrorIs(t, c.Updated("/g/b"), ErrNotFound)

	cur, _ := c.Ref("/g/a")
	require.NoError(t, c.Remove("/g"))
	assert.False(t, cur.Alive())
	assert.Equal(t, []string{"/g"}, removed)
	_, err = c.Node("/g/a")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.AddData(dense(t, "b", 2), "/")
	require.NoError(t, err)
	b, _ := c.Ref("b")
	require.NoError(t, c.Remove("/"))
	assert.False(t, b.Alive())
	assert.Empty(t, c.Root().Nodes())
	assert.Equal(t, []string{"/g", "/"}, removed)
}
