// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func returnsErr(fail bool) (int, error) {
	if fail {
		return 0, fmt.Errorf("returnsErr: %w", errTest)
	}
	return 42, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(errTest)
	assert.ErrorIs(t, err, errTest)

	assert.Equal(t, 42, Log1(returnsErr(false)))
	assert.Equal(t, 0, Log1(returnsErr(true)))
	assert.Equal(t, 0, Ignore1(returnsErr(true)))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, 42, Must1(returnsErr(false)))
	assert.Panics(t, func() { Must1(returnsErr(true)) })
}

func TestWrapped(t *testing.T) {
	_, err := returnsErr(true)
	assert.True(t, Is(err, errTest))
	assert.Equal(t, errTest, Unwrap(err))
}
