// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import "cogentcore.org/databrowse/base/errors"

var (
	// ErrEmpty is returned when a store has no axes or an axis of size 0.
	ErrEmpty = errors.New("empty shape")

	// ErrDangling is returned when a [Ref] no longer points to a live store.
	ErrDangling = errors.New("dangling store reference")

	// ErrSize is returned when a buffer does not match the store shape.
	ErrSize = errors.New("size mismatch")
)
