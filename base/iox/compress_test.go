// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionFor(t *testing.T) {
	c, base := CompressionFor("data/wave.csv.gz")
	assert.Equal(t, Gzip, c)
	assert.Equal(t, "data/wave.csv", base)
	c, base = CompressionFor("wave.CSV.ZST")
	assert.Equal(t, Zstd, c)
	assert.Equal(t, "wave.CSV", base)
	c, _ = CompressionFor("wave.csv.lz4")
	assert.Equal(t, LZ4, c)
	c, base = CompressionFor("wave.csv")
	assert.Equal(t, None, c)
	assert.Equal(t, "wave.csv", base)
	assert.Equal(t, ".zst", Zstd.Ext())
	assert.Equal(t, "lz4", LZ4.String())
}

func TestRoundTrip(t *testing.T) {
	text := strings.Repeat("x,y\n0, 5\n1, 6\n2, 7\n", 50)
	for _, c := range []Compressions{None, Gzip, Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, c)
			require.NoError(t, err)
			_, err = io.WriteString(w, text)
			require.NoError(t, err)
			require.NoError(t, w.Close())
			if c != None {
				assert.Less(t, buf.Len(), len(text))
			}

			r, got, err := NewReader(&buf)
			require.NoError(t, err)
			assert.Equal(t, c, got)
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.NoError(t, r.Close())
			assert.Equal(t, text, string(b))
		})
	}
}

func TestNewReaderShort(t *testing.T) {
	r, c, err := NewReader(strings.NewReader("1,2"))
	require.NoError(t, err)
	assert.Equal(t, None, c)
	b, _ := io.ReadAll(r)
	assert.Equal(t, "1,2", string(b))
}
