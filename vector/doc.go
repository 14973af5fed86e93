// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a growable array that owns a contiguous
// block of slots and manages the lifecycle of the elements living in it.
//
// A Vector is two layers:
//
//	rawbuf.Buffer[T] : the block: allocation, release, slot addresses.
//	Vector[T]        : the live prefix [0, Len()) plus every lifecycle step:
//	                   construct, copy, move, destroy, growth, shifting.
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) hold the zero
// value of T. Every public method restores this partition before returning,
// whether it succeeds or fails.
//
// Element lifecycle (Traits):
//
//	Plain Go values need nothing: the zero Traits copy by assignment, move by
//	assignment-then-zero, and never fail. Types that own resources, count
//	references or may fail to duplicate plug hooks into Traits:
//
//	  – Construct(dst)    value-construct a new element (Resize, NewSized)
//	  – Copy(dst, src)    copy-construct (Clone, CopyFrom, PushBackCopy, InsertCopy)
//	  – Assign(dst, src)  copy-assign over a live element (CopyFrom)
//	  – Move(dst, src)    move-construct, src left moved-from
//	  – Destroy(p)        release an element; the slot is zeroed afterwards
//	  – MoveNoFail        Move never returns an error
//
//	A custom Move without a custom Copy makes T move-only: copy operations
//	return ErrNotCopyable.
//
// Growth and relocation:
//
//	Capacity doubles when full (1 from empty). Reserve grows to exactly the
//	requested capacity. Existing elements are relocated by Move when Move
//	cannot fail or T is move-only, and by Copy otherwise, so a failure in the
//	middle of a relocation leaves the original block untouched.
//
// Failure guarantees:
//
//	Every mutation either completes or leaves the vector as it was, with
//	one documented exception: CopyFrom into a vector that already has enough
//	capacity does not undo element assignments that succeeded before the
//	failure (basic guarantee). Hook errors are returned unwrapped.
//
// Preconditions:
//
//	PopBack on an empty vector, Erase/Get/Ref outside [0, Len()) and Insert
//	outside [0, Len()] are programming errors. Builds tagged lvvec_debug
//	assert them with descriptive panics; otherwise only the Go runtime's own
//	bounds checks apply. At is the checked accessor.
//
// Concurrency:
//
//	A Vector is not safe for concurrent use. Guard it externally.
//
// Iterators and addresses returned by Ref, Back, View, All, Values and
// Backward are invalidated by any method that may reallocate or shift.
package vector
