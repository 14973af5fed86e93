// SPDX-License-Identifier: MIT
//
// File: methods_growth.go
// Role: capacity management: Reserve, Resize and the block replacement they share.

package vector

import (
	"math"

	"github.com/katalvlaran/lvvec/rawbuf"
)

// nextCap is the doubling growth policy.
func (v *Vector[T]) nextCap() int {
	c := v.buf.Capacity()
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	default:
		return c * 2
	}
}

// install destroys the current elements, swaps nb in as the block, releases
// the old block and sets the new length.
func (v *Vector[T]) install(nb *rawbuf.Buffer[T], size int) {
	oldCap := v.buf.Capacity()
	v.destroyRange(v.View())
	v.buf.Swap(nb)
	nb.Release()
	v.size = size
	if v.observer != nil {
		v.observer.OnGrow(oldCap, v.buf.Capacity(), rawbuf.ElemSize[T]())
	}
}

// reserve grows the block to exactly newCap slots.
func (v *Vector[T]) reserve(newCap int) error {
	if newCap <= v.buf.Capacity() {
		return nil
	}

	nb, err := rawbuf.Allocate[T](newCap, v.tracker)
	if err != nil {
		return err
	}
	if err = v.relocate(v.View(), nb.Slots()); err != nil {
		nb.Release()
		return err
	}
	v.install(&nb, v.size)

	return nil
}

// Reserve ensures Cap() >= newCap. A newCap not above Cap() is a no-op;
// otherwise the block is replaced by one of exactly newCap slots.
//
// Strong guarantee: on failure the original block and elements are intact.
//
// Errors: rawbuf.ErrOutOfMemory, or the Copy/Move hook error from relocation.
//
// Complexity: O(Len()) when reallocating.
func (v *Vector[T]) Reserve(newCap int) error {
	if err := v.reserve(newCap); err != nil {
		v.rolledBack(OpReserve, err)
		return err
	}

	return nil
}

// Resize sets the length to n. Shrinking destroys the trailing elements and
// never fails. Growing reserves exactly n slots if needed and value-constructs
// the new elements; on failure the ones already added are destroyed and the
// length is unchanged (the capacity may have grown).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(panicNegativeLength)
	}
	if n <= v.size {
		v.destroyRange(v.buf.Slots()[n:v.size])
		v.size = n
		return nil
	}

	if err := v.reserve(n); err != nil {
		v.rolledBack(OpResize, err)
		return err
	}
	slots := v.buf.Slots()
	for i := v.size; i < n; i++ {
		if err := v.construct(&slots[i]); err != nil {
			v.destroyRange(slots[v.size:i])
			v.rolledBack(OpResize, err)
			return err
		}
	}
	v.size = n

	return nil
}
