// SPDX-License-Identifier: MIT

package rawbuf

import "errors"

// ErrOutOfMemory is returned when a block cannot be allocated: the byte size
// overflows, the runtime rejects the length, or a Tracker refuses the charge.
// Callers match it with errors.Is; the returned error carries the details.
var ErrOutOfMemory = errors.New("rawbuf: out of memory")

const (
	panicNegativeCapacity = "rawbuf: Allocate: negative capacity"
	panicBudgetUnderflow  = "rawbuf: Budget: released more bytes than were charged; a block was released twice"
)
