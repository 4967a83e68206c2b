// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func (md Data) Name() string {
	nm, _ := Get[string](md, "Name")
	return nm
}

// SetDoc sets the "Doc" standard key.
func (md *Data) SetDoc(doc string) {
	md.Set("Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func (md Data) Doc() string {
	doc, _ := Get[string](md, "Doc")
	return doc
}

// SetPrecision sets the "Precision" standard key, which determines
// the precision to use in writing floating point numbers to files.
func (md *Data) SetPrecision(prec int) {
	md.Set("Precision", prec)
}

// Precision returns the "Precision" standard key value,
// or -1 (shortest exact representation) if not set.
func (md Data) Precision() int {
	prec, err := Get[int](md, "Precision")
	if err != nil {
		return -1
	}
	return prec
}

// Precision returns the precision for given object,
// if it implements [Metadataer], or -1 otherwise.
func Precision(obj any) int {
	md := GetData(obj)
	if md == nil {
		return -1
	}
	return md.Precision()
}
