// SPDX-License-Identifier: MIT
//
// File: methods_lifecycle.go
// Role: whole-vector copy, move, swap and teardown.

package vector

import "github.com/katalvlaran/lvvec/rawbuf"

// emptyLike returns an empty vector sharing v's configuration.
func (v *Vector[T]) emptyLike() *Vector[T] {
	return &Vector[T]{traits: v.traits, tracker: v.tracker, observer: v.observer}
}

// cloneOf builds a fresh vector with v's configuration holding copies of src,
// with capacity exactly len(src).
func (v *Vector[T]) cloneOf(src []T) (*Vector[T], error) {
	out := v.emptyLike()
	if len(src) == 0 {
		return out, nil
	}

	nb, err := rawbuf.Allocate[T](len(src), v.tracker)
	if err != nil {
		return nil, err
	}
	if err = v.copyRange(src, nb.Slots()); err != nil {
		nb.Release()
		return nil, err
	}
	out.buf = nb.Take()
	out.size = len(src)

	return out, nil
}

// Clone returns a deep copy of v: same length and configuration, capacity
// equal to v.Len(), every element copy-constructed in order. On failure the
// partial copy is destroyed and v is untouched.
//
// Errors: ErrNotCopyable, rawbuf.ErrOutOfMemory, or the Copy hook's error.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.copyable() {
		return nil, ErrNotCopyable
	}
	out, err := v.cloneOf(v.View())
	if err != nil {
		v.rolledBack(OpClone, err)
		return nil, err
	}

	return out, nil
}

// Move returns a vector that took over v's block and elements in O(1).
// v is left empty with no block.
func (v *Vector[T]) Move() *Vector[T] {
	out := v.emptyLike()
	out.buf = v.buf.Take()
	out.size = v.size
	v.size = 0

	return out
}

// CopyFrom makes v an element-wise copy of rhs.
//
// Implementation:
//   - rhs longer than Cap(): build a full clone and swap it in. Strong guarantee.
//   - otherwise reuse the block: Assign over the common prefix, Copy the extra
//     elements, Destroy the surplus.
//
// On failure while copying extras, the extras already built are destroyed
// and Len() is unchanged. Assignments applied to the common prefix before a
// failure are kept (basic guarantee only in the reuse branch).
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if rhs == v {
		return nil
	}
	if !v.copyable() {
		return ErrNotCopyable
	}

	if rhs.size > v.buf.Capacity() {
		tmp, err := v.cloneOf(rhs.View())
		if err != nil {
			v.rolledBack(OpCopyFrom, err)
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	slots := v.buf.Slots()
	src := rhs.View()
	i := 0
	for ; i < v.size && i < len(src); i++ {
		if err := v.assign(&slots[i], &src[i]); err != nil {
			v.rolledBack(OpCopyFrom, err)
			return err
		}
	}
	for ; i < len(src); i++ {
		if err := v.copyTo(&slots[i], &src[i]); err != nil {
			v.destroyRange(slots[v.size:i])
			v.rolledBack(OpCopyFrom, err)
			return err
		}
	}
	if len(src) < v.size {
		v.destroyRange(slots[len(src):v.size])
	}
	v.size = len(src)

	return nil
}

// MoveFrom transfers rhs's elements into v. It never fails.
//
// The blocks are swapped: v ends with rhs's block and elements, and rhs ends
// with length 0 and v's former block as spare capacity. v's former elements
// are destroyed.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if rhs == v {
		return
	}
	v.buf.Swap(&rhs.buf)
	v.size, rhs.size = rhs.size, v.size
	v.destroyRange(rhs.buf.Slots()[:rhs.size])
	rhs.size = 0
}

// Swap exchanges the blocks and elements of v and other in O(1).
// Configuration (traits, tracker, observer) stays with each vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Clear destroys every element and keeps the block.
func (v *Vector[T]) Clear() {
	v.destroyRange(v.View())
	v.size = 0
}

// Release destroys every element and gives the block back. The vector stays
// usable and empty.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Release()
}
