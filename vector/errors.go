// SPDX-License-Identifier: MIT

package vector

import "errors"

// Sentinel errors for vector operations. Errors returned by Traits hooks are
// passed through unwrapped so callers can match their own sentinels.
var (
	// ErrOutOfRange indicates that At was called with an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNotCopyable indicates a copy was requested for a move-only element type
	// (custom Traits.Move without Traits.Copy).
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

// Precondition panic messages (lvvec_debug builds).
const (
	panicPopEmpty       = "vector: PopBack on empty vector"
	panicBackEmpty      = "vector: Back on empty vector"
	panicIndexRange     = "vector: index out of range"
	panicInsertRange    = "vector: insert position out of range"
	panicEraseRange     = "vector: erase position out of range"
	panicNegativeLength = "vector: negative length"
)
