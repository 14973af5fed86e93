// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: constructors and read-only access.
// Policy:
//   - No mutation of the live range here except through NewSized.
//   - Unchecked accessors assert only in lvvec_debug builds.

package vector

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvvec/rawbuf"
)

// New returns an empty vector: length 0, capacity 0, nothing allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// NewSized returns a vector of n value-constructed elements with capacity n.
//
// Implementation:
//   - Stage 1: allocate exactly n slots.
//   - Stage 2: Construct each slot in order.
//   - Stage 3: on failure, destroy what was built and release the block.
//
// Errors:
//   - rawbuf.ErrOutOfMemory (wrapped) if the block cannot be allocated.
//   - the Construct error, after rollback.
//
// Complexity: O(n).
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		panic(panicNegativeLength)
	}
	v := New(opts...)
	if n == 0 {
		return v, nil
	}

	nb, err := rawbuf.Allocate[T](n, v.tracker)
	if err != nil {
		v.rolledBack(OpNewSized, err)
		return nil, err
	}
	slots := nb.Slots()
	for i := range slots {
		if err = v.construct(&slots[i]); err != nil {
			v.destroyRange(slots[:i])
			nb.Release()
			v.rolledBack(OpNewSized, err)
			return nil, err
		}
	}
	v.buf = nb.Take()
	v.size = n

	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the block.
func (v *Vector[T]) Cap() int { return v.buf.Capacity() }

// Get returns a copy of element i (a Go value copy, not a Traits.Copy).
// Unchecked.
func (v *Vector[T]) Get(i int) T {
	assert(i >= 0 && i < v.size, panicIndexRange)
	return v.buf.Slots()[i]
}

// Ref returns the address of element i. Unchecked. The address is valid
// until the next reallocating or shifting call.
func (v *Vector[T]) Ref(i int) *T {
	assert(i >= 0 && i < v.size, panicIndexRange)
	return v.buf.Slot(i)
}

// At is the checked form of Get.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.size)
	}

	return v.buf.Slots()[i], nil
}

// Back returns the address of the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	assert(v.size > 0, panicBackEmpty)
	return v.buf.Slot(v.size - 1)
}

// View returns the live elements as a slice sharing the vector's block.
// Writes through it modify the elements in place.
func (v *Vector[T]) View() []T {
	return v.buf.Slots()[:v.size:v.size]
}

// All yields (index, element) pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Slots()[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.Slots()[i]) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, v.buf.Slots()[i]) {
				return
			}
		}
	}
}

// owns reports whether p addresses a live element of v.
func (v *Vector[T]) owns(p *T) bool {
	i, ok := v.buf.IndexOf(p)
	return ok && i < v.size
}
