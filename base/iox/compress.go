// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides compressed readers and writers selected by
// file extension or detected from content.
package iox

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressions are the supported compression formats.
type Compressions int32

const (
	// None is uncompressed data.
	None Compressions = iota

	// Gzip is gzip compression, with extension .gz.
	Gzip

	// Zstd is Zstandard compression, with extension .zst.
	Zstd

	// LZ4 is LZ4 frame compression, with extension .lz4.
	LZ4
)

var compressionExts = map[string]Compressions{
	".gz":  Gzip,
	".zst": Zstd,
	".lz4": LZ4,
}

func (c Compressions) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return "none"
}

// Ext returns the file extension for the compression, including the dot.
func (c Compressions) Ext() string {
	for ext, cc := range compressionExts {
		if cc == c {
			return ext
		}
	}
	return ""
}

// CompressionFor returns the compression for given file name,
// based on its extension, and the file name with that extension removed.
func CompressionFor(filename string) (Compressions, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if c, ok := compressionExts[ext]; ok {
		return c, strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	return None, filename
}

// nopCloser is an io.WriteCloser whose Close does nothing.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NewWriter returns a writer that compresses to w with given compression.
// Close must be called to flush the compressed stream; it does not close w.
func NewWriter(w io.Writer, c Compressions) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	case LZ4:
		return lz4.NewWriter(w), nil
	case None:
		return nopCloser{w}, nil
	}
	return nil, fmt.Errorf("iox: unknown compression %d", c)
}

// lz4Magic is the LZ4 frame magic number, little-endian.
var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

// headerSize is the number of bytes needed to detect the file type.
const headerSize = 262

// Detect returns the compression of the data starting with given header.
func Detect(header []byte) Compressions {
	if bytes.HasPrefix(header, lz4Magic) {
		return LZ4
	}
	kind, err := filetype.Match(header)
	if err != nil {
		return None
	}
	switch kind.Extension {
	case "gz":
		return Gzip
	case "zst":
		return Zstd
	}
	return None
}

// NewReader returns a reader that decompresses r, detecting the
// compression from the content, along with the detected compression.
// Uncompressed data is returned as is.
func NewReader(r io.Reader) (io.ReadCloser, Compressions, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(headerSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, None, err
	}
	c := Detect(header)
	switch c {
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, err
		}
		return gr, c, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, err
		}
		return zr.IOReadCloser(), c, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), c, nil
	}
	return io.NopCloser(br), None, nil
}
