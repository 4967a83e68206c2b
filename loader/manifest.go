// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"cogentcore.org/databrowse/store"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AxisSpec describes one axis of a [Manifest].
type AxisSpec struct {
	Label      string    `json:"label" yaml:"label" toml:"label"`
	Doc        string    `json:"doc" yaml:"doc" toml:"doc"`
	Coords     []float64 `json:"coords" yaml:"coords" toml:"coords"`
	Categories []string  `json:"categories" yaml:"categories" toml:"categories"`
}

// Manifest describes an n-dimensional store in a text file.
// Values, Errors and Strings are in row-major order.
type Manifest struct {
	Name      string     `json:"name" yaml:"name" toml:"name"`
	Doc       string     `json:"doc" yaml:"doc" toml:"doc"`
	Sizes     []int      `json:"sizes" yaml:"sizes" toml:"sizes"`
	Axes      []AxisSpec `json:"axes" yaml:"axes" toml:"axes"`
	Precision *int       `json:"precision" yaml:"precision" toml:"precision"`

	// Values are the numeric values; ignored if Strings are given.
	Values []float64 `json:"values" yaml:"values" toml:"values"`

	// Errors are the optional errors of the values.
	Errors []float64 `json:"errors" yaml:"errors" toml:"errors"`

	// Strings are the values of a text store.
	Strings []string `json:"strings" yaml:"strings" toml:"strings"`
}

// DecodeManifest decodes a manifest from r in given format.
func DecodeManifest(r io.Reader, format Formats) (*Manifest, error) {
	m := &Manifest{}
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(m)
	case YAML:
		err = yaml.NewDecoder(r).Decode(m)
	case TOML:
		err = toml.NewDecoder(r).Decode(m)
	default:
		return nil, fmt.Errorf("format %d is not a manifest format", format)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Store returns a new store as described by the manifest.
func (m *Manifest) Store() (store.Store, error) {
	var s store.Store
	var base *store.Base
	if len(m.Strings) > 0 {
		ss, err := store.NewStrings(m.Name, m.Sizes...)
		if err != nil {
			return nil, err
		}
		if len(m.Strings) != len(ss.Values) {
			return nil, fmt.Errorf("%w: shape %v needs %d strings, got %d", store.ErrSize, m.Sizes, len(ss.Values), len(m.Strings))
		}
		copy(ss.Values, m.Strings)
		s, base = ss, &ss.Base
	} else {
		ds, err := store.NewDenseFrom(m.Name, m.Values, m.Sizes...)
		if err != nil {
			return nil, err
		}
		if m.Errors != nil {
			if err := ds.SetErrors(m.Errors); err != nil {
				return nil, err
			}
		}
		s, base = ds, &ds.Base
	}
	base.SetDoc(m.Doc)
	if m.Precision != nil {
		base.Meta.SetPrecision(*m.Precision)
	}
	for d, ax := range m.Axes {
		if d >= base.NumDims() {
			break
		}
		if ax.Label != "" {
			base.SetAxis(d, ax.Label, ax.Doc)
		}
		if ax.Coords != nil {
			if err := base.SetCoords(d, ax.Coords); err != nil {
				return nil, err
			}
		}
		if ax.Categories != nil {
			if err := base.SetCategories(d, ax.Categories); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}
