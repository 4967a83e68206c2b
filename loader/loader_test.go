// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/databrowse/base/iox"
	"cogentcore.org/databrowse/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	assert.Equal(t, CSV, FormatFor("a/b.csv"))
	assert.Equal(t, TSV, FormatFor("b.TSV.gz"))
	assert.Equal(t, YAML, FormatFor("b.yml"))
	assert.Equal(t, TOML, FormatFor("b.toml.zst"))
	assert.Equal(t, Unknown, FormatFor("b.txt"))
	assert.Equal(t, "wave", StoreName("data/wave.csv.gz"))
}

func TestReadTable(t *testing.T) {
	s, err := Read(strings.NewReader("a,b,c\n1,2,3\n4, 5,6\n"), "tbl.csv")
	require.NoError(t, err)
	assert.Equal(t, "tbl", s.Name())
	assert.Equal(t, []int{2, 3}, store.Sizes(s))
	assert.True(t, store.IsNumeric(s))
	assert.True(t, store.IsCategorical(s, 1))
	assert.Equal(t, "Col", s.Axis(1).Label)
	vals := make([]float64, 3)
	n := s.FetchValues(1, []int{1, 0}, vals)
	assert.Equal(t, []float64{4, 5, 6}, vals[:n])
	labels := make([]string, 3)
	store.FetchCategories(s, 1, labels)
	assert.Equal(t, []string{"a", "b", "c"}, labels)

	s, err = Read(strings.NewReader("1\t2\n3\t4\n"), "t.tsv")
	require.NoError(t, err)
	assert.False(t, store.IsCategorical(s, 1))
	n = s.FetchValues(0, []int{0, 1}, vals)
	assert.Equal(t, []float64{2, 4}, vals[:n])

	s, err = Read(strings.NewReader("name,kind\nx,apple\ny,pear\n"), "t.csv")
	require.NoError(t, err)
	assert.False(t, store.IsNumeric(s))
	strs := make([]string, 2)
	n = store.FetchStrings(s, 0, []int{0, 1}, strs)
	assert.Equal(t, []string{"apple", "pear"}, strs[:n])

	_, err = Read(strings.NewReader("a,b\n"), "t.csv")
	assert.ErrorIs(t, err, store.ErrEmpty)
	_, err = Read(strings.NewReader("1"), "t.dat")
	assert.Error(t, err)
}

const jsonManifest = `{
  "name": "spectrum",
  "doc": "Measured spectrum",
  "sizes": [2, 3],
  "precision": 4,
  "axes": [
    {"label": "channel", "categories": ["left", "right"]},
    {"label": "energy", "doc": "keV", "coords": [0.5, 1, 1.5]}
  ],
  "values": [1, 2, 3, 4, 5, 6],
  "errors": [0.1, 0.1, 0.1, 0.2, 0.2, 0.2]
}`

const yamlManifest = `
name: spectrum
doc: Measured spectrum
sizes: [2, 3]
precision: 4
axes:
  - label: channel
    categories: [left, right]
  - label: energy
    doc: keV
    coords: [0.5, 1, 1.5]
values: [1, 2, 3, 4, 5, 6]
errors: [0.1, 0.1, 0.1, 0.2, 0.2, 0.2]
`

const tomlManifest = `
name = "spectrum"
doc = "Measured spectrum"
sizes = [2, 3]
precision = 4
values = [1.0, 2.0, 3.0, 4.0, 5.0, 6.0]
errors = [0.1, 0.1, 0.1, 0.2, 0.2, 0.2]

[[axes]]
label = "channel"
categories = ["left", "right"]

[[axes]]
label = "energy"
doc = "keV"
coords = [0.5, 1.0, 1.5]
`

func TestManifest(t *testing.T) {
	for fn, text := range map[string]string{"s.json": jsonManifest, "s.yaml": yamlManifest, "s.toml": tomlManifest} {
		t.Run(fn, func(t *testing.T) {
			s, err := Read(strings.NewReader(text), fn)
			require.NoError(t, err)
			assert.Equal(t, "spectrum", s.Name())
			assert.Equal(t, "Measured spectrum", s.Doc())
			assert.Equal(t, []int{2, 3}, store.Sizes(s))
			assert.Equal(t, "energy", s.Axis(1).Label)
			assert.Equal(t, "keV", s.Axis(1).Doc)
			assert.True(t, store.IsCategorical(s, 0))
			assert.True(t, store.HasErrors(s))
			coords := make([]float64, 3)
			store.FetchCoords(s, 1, coords)
			assert.Equal(t, []float64{0.5, 1, 1.5}, coords)
			vals := make([]float64, 3)
			n := s.FetchValues(1, []int{1, 0}, vals)
			assert.Equal(t, []float64{4, 5, 6}, vals[:n])
			assert.Equal(t, 4, s.(*store.Dense[float64]).Meta.Precision())
		})
	}
}

func TestManifestErrors(t *testing.T) {
	_, err := Read(strings.NewReader(`{"sizes": [2, 2], "values": [1]}`), "bad.json")
	assert.ErrorIs(t, err, store.ErrSize)
	_, err = Read(strings.NewReader(`{"sizes": [2], "strings": ["a"]}`), "bad.json")
	assert.ErrorIs(t, err, store.ErrSize)
	_, err = Read(strings.NewReader(`{"sizes": [0], "values": []}`), "bad.json")
	assert.ErrorIs(t, err, store.ErrEmpty)
	_, err = Read(strings.NewReader(`{`), "bad.json")
	assert.Error(t, err)

	s, err := Read(strings.NewReader(`{"sizes": [2], "strings": ["a", "b"]}`), "words.json")
	require.NoError(t, err)
	assert.Equal(t, "words", s.Name())
	assert.False(t, store.IsNumeric(s))
}

func TestOpenCompressed(t *testing.T) {
	dir := t.TempDir()
	for _, c := range []iox.Compressions{iox.Gzip, iox.Zstd, iox.LZ4} {
		var buf bytes.Buffer
		w, err := iox.NewWriter(&buf, c)
		require.NoError(t, err)
		_, err = w.Write([]byte("1,2\n3,4\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		fn := filepath.Join(dir, "m.csv"+c.Ext())
		require.NoError(t, os.WriteFile(fn, buf.Bytes(), 0o644))

		s, err := Open(fn)
		require.NoError(t, err, c.String())
		assert.Equal(t, "m", s.Name())
		assert.Equal(t, []int{2, 2}, store.Sizes(s))
	}
	_, err := Open(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
