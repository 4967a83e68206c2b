// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes the window of a [slice.Slice] as text.
//
// A 1D window is written as a header row (x,y or x,y,dy when the store
// has errors) followed by one row per coordinate, where x is the
// category label of a categorical axis and the coordinate otherwise.
// A 2D window is written as a raw grid without header or coordinates:
// one row per index of the first free axis, and one column per index
// of the second free axis, with each value followed by its error when
// the store has errors. Text stores are written with their text values.
// Cells are separated by ", ", and are not escaped.
package export

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cogentcore.org/databrowse/base/iox"
	"cogentcore.org/databrowse/base/metadata"
	"cogentcore.org/databrowse/slice"
	"github.com/hack-pad/hackpadfs"
)

// Separator is the separator between the cells of a data row.
const Separator = ", "

// WriteCSV writes the window of given slice to w.
// Nothing is written for an empty slice.
func WriteCSV(w io.Writer, sl *slice.Slice) error {
	if sl.IsEmpty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	prec := Precision(sl)
	if sl.NumDims() == 1 {
		write1D(bw, sl, prec)
	} else {
		write2D(bw, sl, prec)
	}
	return bw.Flush()
}

// Precision returns the precision for writing the values of given slice,
// from the metadata of its store, or -1 (shortest exact) if not set.
func Precision(sl *slice.Slice) int {
	s, ok := sl.Source().Get()
	if !ok {
		return -1
	}
	return metadata.Precision(s)
}

func write1D(w *bufio.Writer, sl *slice.Slice, prec int) {
	errs := sl.Errors()
	if errs != nil {
		w.WriteString("x,y,dy\n")
	} else {
		w.WriteString("x,y\n")
	}
	cat := sl.IsCategorical(0)
	text := !sl.IsNumeric()
	for i := range sl.Len() {
		if cat {
			w.WriteString(sl.Category(0, i))
		} else {
			w.WriteString(formatFloat(sl.Coord(0, i), prec))
		}
		w.WriteString(Separator)
		if text {
			w.WriteString(sl.Text(i))
		} else {
			w.WriteString(formatFloat(sl.Value(i), prec))
		}
		if errs != nil {
			w.WriteString(Separator)
			w.WriteString(formatFloat(errs[i], prec))
		}
		w.WriteByte('\n')
	}
}

func write2D(w *bufio.Writer, sl *slice.Slice, prec int) {
	n0, n1 := sl.DimSize(0), sl.DimSize(1)
	hasErrs := sl.HasErrors()
	text := !sl.IsNumeric()
	for i := range n0 {
		for j := range n1 {
			if j > 0 {
				w.WriteString(Separator)
			}
			if text {
				w.WriteString(sl.Text2(i, j))
			} else {
				w.WriteString(formatFloat(sl.Value2(i, j), prec))
			}
			if hasErrs {
				w.WriteString(Separator)
				w.WriteString(formatFloat(sl.Error2(i, j), prec))
			}
		}
		w.WriteByte('\n')
	}
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// SaveCSV writes the window of given slice to the named file,
// compressed according to its extension (see [iox.CompressionFor]).
func SaveCSV(filename string, sl *slice.Slice) error {
	c, _ := iox.CompressionFor(filename)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = writeCompressed(f, sl, c)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("export %q: %w", filename, err)
	}
	slog.Info("exported", "file", filename, "name", sl.Name(), "compression", c)
	return nil
}

// SaveFS writes the window of given slice to the named file in fsys,
// which must support writing files, compressed according to its extension.
func SaveFS(fsys hackpadfs.FS, name string, sl *slice.Slice) error {
	c, _ := iox.CompressionFor(name)
	var buf bytes.Buffer
	if err := writeCompressed(&buf, sl, c); err != nil {
		return fmt.Errorf("export %q: %w", name, err)
	}
	if err := hackpadfs.WriteFullFile(fsys, name, buf.Bytes(), 0o666); err != nil {
		return fmt.Errorf("export %q: %w", name, err)
	}
	return nil
}

func writeCompressed(w io.Writer, sl *slice.Slice, c iox.Compressions) error {
	cw, err := iox.NewWriter(w, c)
	if err != nil {
		return err
	}
	if err := WriteCSV(cw, sl); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}
