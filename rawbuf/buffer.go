// SPDX-License-Identifier: MIT

package rawbuf

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// Buffer is an owned block of capacity slots of T.
//
// The zero Buffer is empty (capacity 0, no block). A Buffer must not be
// copied by value once it owns a block: use Take to move it and Swap to
// exchange it, otherwise two owners would release the same bytes.
type Buffer[T any] struct {
	slots   []T
	tracker Tracker
}

// ElemSize returns the number of bytes one slot of T occupies.
func ElemSize[T any]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}

// Allocate returns a block sized for capacity elements of T.
//
// Implementation:
//   - Stage 1: capacity 0 yields an empty Buffer without touching tracker.
//   - Stage 2: compute the byte size, failing on overflow.
//   - Stage 3: charge tracker (if any), then make the slice; a runtime
//     refusal refunds the charge.
//
// Errors:
//   - ErrOutOfMemory (wrapped) on overflow, budget rejection or runtime refusal.
//
// Panics on negative capacity (programmer error).
//
// Complexity: O(capacity) for zeroing the block.
func Allocate[T any](capacity int, tracker Tracker) (Buffer[T], error) {
	if capacity < 0 {
		panic(panicNegativeCapacity)
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}

	size := ElemSize[T]()
	if size > 0 && uint64(capacity) > uint64(math.MaxInt)/size {
		return Buffer[T]{}, fmt.Errorf("%w: %d slots of %d bytes overflow the address space", ErrOutOfMemory, capacity, size)
	}
	bytes := uint64(capacity) * size

	if tracker != nil {
		if err := tracker.Increase(bytes); err != nil {
			return Buffer[T]{}, err
		}
	}

	slots, err := makeSlots[T](capacity)
	if err != nil {
		if tracker != nil {
			tracker.Decrease(bytes)
		}
		return Buffer[T]{}, err
	}

	return Buffer[T]{slots: slots, tracker: tracker}, nil
}

// makeSlots converts the runtime's "len out of range" panic into an error.
// A genuine heap exhaustion is fatal in Go and cannot be reported.
func makeSlots[T any](n int) (slots []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			slots, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, re)
		}
	}()

	return make([]T, n), nil
}

// Release gives the block back and refunds the tracker. It does not look at
// slot contents. No-op on an empty Buffer.
func (b *Buffer[T]) Release() {
	if b.slots == nil {
		return
	}
	if b.tracker != nil {
		b.tracker.Decrease(b.Bytes())
	}
	b.slots = nil
	b.tracker = nil
}

// Take transfers ownership of the block to the returned Buffer and leaves b empty.
func (b *Buffer[T]) Take() Buffer[T] {
	out := Buffer[T]{slots: b.slots, tracker: b.tracker}
	b.slots = nil
	b.tracker = nil

	return out
}

// Swap exchanges the blocks of b and other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
	b.tracker, other.tracker = other.tracker, b.tracker
}

// Capacity returns the number of slots in the block.
func (b *Buffer[T]) Capacity() int { return len(b.slots) }

// Bytes returns the number of bytes charged for the block.
func (b *Buffer[T]) Bytes() uint64 { return uint64(len(b.slots)) * ElemSize[T]() }

// Slot returns the address of slot i. Only the Go runtime's own bounds check
// against the capacity applies; whether the slot is live is the caller's concern.
func (b *Buffer[T]) Slot(i int) *T { return &b.slots[i] }

// Slots returns the whole block, len == Capacity().
func (b *Buffer[T]) Slots() []T { return b.slots }

// IndexOf reports whether p addresses one of the block's slots, and which.
// Pointers into the middle of a slot (e.g. to a field) are not slot addresses.
// Always false for zero-sized T, whose slots share addresses.
func (b *Buffer[T]) IndexOf(p *T) (int, bool) {
	if p == nil || len(b.slots) == 0 {
		return -1, false
	}
	size := uintptr(ElemSize[T]())
	if size == 0 {
		return -1, false
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.slots)))
	addr := uintptr(unsafe.Pointer(p))
	if addr < base {
		return -1, false
	}
	off := addr - base
	if off >= uintptr(len(b.slots))*size || off%size != 0 {
		return -1, false
	}

	return int(off / size), true
}
