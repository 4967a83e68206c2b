// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	kl.Set("key0", 0)
	kl.Set("key1", 1)
	kl.Set("key2", 2)
	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, 1, kl.At("key1"))
	assert.Equal(t, 2, kl.IndexByKey("key2"))
	assert.Equal(t, -1, kl.IndexByKey("nope"))

	kl.Set("key1", 10)
	assert.Equal(t, 10, kl.Values[1])
	assert.Error(t, kl.Add("key0", 5))
	assert.NoError(t, kl.Add("key3", 3))

	assert.True(t, kl.DeleteByKey("key1"))
	assert.False(t, kl.DeleteByKey("key1"))
	assert.Equal(t, []string{"key0", "key2", "key3"}, kl.Keys)
	assert.Equal(t, 1, kl.IndexByKey("key2"))
	v, ok := kl.AtTry("key3")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
	_, ok = kl.AtTry("key0")
	assert.False(t, ok)
}
