// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader opens data files as stores: delimited text tables
// (.csv, .tsv) as 2D stores, and manifests (.json, .yaml, .yml, .toml)
// describing an n-dimensional store with its axes. Files may be
// compressed with gzip, zstd or lz4, which is detected from content.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/databrowse/base/iox"
	"cogentcore.org/databrowse/store"
)

// Formats are the supported file formats.
type Formats int32

const (
	// Unknown is an unsupported format.
	Unknown Formats = iota

	// CSV is comma separated values, a 2D table.
	CSV

	// TSV is tab separated values, a 2D table.
	TSV

	// JSON is a JSON manifest.
	JSON

	// YAML is a YAML manifest.
	YAML

	// TOML is a TOML manifest.
	TOML
)

var formatExts = map[string]Formats{
	".csv":  CSV,
	".tsv":  TSV,
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
	".toml": TOML,
}

// FormatFor returns the format of given file name from its extension,
// ignoring any compression extension.
func FormatFor(filename string) Formats {
	_, base := iox.CompressionFor(filename)
	return formatExts[strings.ToLower(filepath.Ext(base))]
}

// StoreName returns the default store name for given file name,
// which is the base name without extensions.
func StoreName(filename string) string {
	_, base := iox.CompressionFor(filepath.Base(filename))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Open opens the named file as a store.
func Open(filename string) (store.Store, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, filename)
}

// Read reads a store from r, in the format given by the extension
// of filename, decompressing as needed.
func Read(r io.Reader, filename string) (store.Store, error) {
	format := FormatFor(filename)
	if format == Unknown {
		return nil, fmt.Errorf("loader: %q: unsupported file type", filename)
	}
	rc, comp, err := iox.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %q: %w", filename, err)
	}
	defer rc.Close()
	slog.Debug("loader: reading", "file", filename, "compression", comp)
	name := StoreName(filename)
	var s store.Store
	switch format {
	case CSV:
		s, err = ReadTable(rc, name, ',')
	case TSV:
		s, err = ReadTable(rc, name, '\t')
	default:
		var m *Manifest
		m, err = DecodeManifest(rc, format)
		if err == nil {
			if m.Name == "" {
				m.Name = name
			}
			s, err = m.Store()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loader: %q: %w", filename, err)
	}
	return s, nil
}

// ReadTable reads a delimited text table as a 2D store of rows by
// columns. If any cell of the first row is not a number, the first
// row is a header, whose cells become the category labels of the
// column axis. If any other cell is not a number, the store is a
// text store, otherwise it is numeric.
func ReadTable(r io.Reader, name string, delim rune) (store.Store, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	var header []string
	if len(recs) > 0 && !allNumbers(recs[0]) {
		header, recs = recs[0], recs[1:]
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no data rows", store.ErrEmpty)
	}
	rows, cols := len(recs), len(recs[0])
	numeric := true
	for _, rec := range recs {
		if !allNumbers(rec) {
			numeric = false
			break
		}
	}
	var s store.Store
	var base *store.Base
	if numeric {
		ds, err := store.NewDense[float64](name, rows, cols)
		if err != nil {
			return nil, err
		}
		for ri, rec := range recs {
			for ci := range min(cols, len(rec)) {
				ds.Set(parseNumber(rec[ci]), ri, ci)
			}
		}
		s, base = ds, &ds.Base
	} else {
		ss, err := store.NewStrings(name, rows, cols)
		if err != nil {
			return nil, err
		}
		for ri, rec := range recs {
			for ci := range min(cols, len(rec)) {
				ss.Set(rec[ci], ri, ci)
			}
		}
		s, base = ss, &ss.Base
	}
	base.SetAxisLabels("Row", "Col")
	if len(header) == cols {
		if err := base.SetCategories(1, header); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func allNumbers(rec []string) bool {
	for _, c := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(c), 64); err != nil {
			return false
		}
	}
	return true
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
