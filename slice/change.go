// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slice

import "strconv"

// Change is the kind of change made to a [Slice] by an operation,
// which tells dependent views how much they need to resync.
type Change int32

const (
	// Unchanged means the window is the same as before.
	Unchanged Change = iota

	// Updated means the values changed, with the same free axes.
	Updated

	// Swapped means the two free axes were exchanged.
	Swapped

	// Reset means the window was rebuilt with new free axes or shape.
	Reset

	// Cleared means the slice is now empty.
	Cleared
)

var changeNames = [...]string{"Unchanged", "Updated", "Swapped", "Reset", "Cleared"}

func (c Change) String() string {
	if c < 0 || int(c) >= len(changeNames) {
		return "Change(" + strconv.Itoa(int(c)) + ")"
	}
	return changeNames[c]
}

