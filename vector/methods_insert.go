// SPDX-License-Identifier: MIT
//
// File: methods_insert.go
// Role: ordered insertion (Insert, Emplace and the push-back family).
// Paths:
//   - spare capacity: open a gap by shifting the tail, build into it.
//   - full: build the new element into a doubled block, relocate around it.

package vector

import "github.com/katalvlaran/lvvec/rawbuf"

// PushBack appends x, taking ownership of it. Amortized O(1).
// On failure x is destroyed and v is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	return v.insertOwned(OpPushBack, v.size, x)
}

// PushBackCopy appends a copy of *p. p may point at an element of v.
func (v *Vector[T]) PushBackCopy(p *T) error {
	return v.insertCopy(OpPushBack, v.size, p)
}

// EmplaceBack appends an element built in place by build and returns its
// address. build receives a zero slot.
func (v *Vector[T]) EmplaceBack(build func(dst *T) error) (*T, error) {
	return v.emplace(OpPushBack, v.size, build)
}

// Insert places x before position i (0 <= i <= Len()), taking ownership of
// it. Elements at and after i move one position later. On failure x is
// destroyed and v is unchanged.
func (v *Vector[T]) Insert(i int, x T) error {
	return v.insertOwned(OpInsert, i, x)
}

// InsertCopy places a copy of *p before position i. p may point at an
// element of v: the value is then staged before anything shifts.
func (v *Vector[T]) InsertCopy(i int, p *T) error {
	return v.insertCopy(OpInsert, i, p)
}

// Emplace builds a new element before position i and returns its address.
// build receives a zero slot and must not read v; use InsertCopy to insert
// a copy of one of v's own elements.
//
// Strong guarantee: on failure v is as it was before the call.
func (v *Vector[T]) Emplace(i int, build func(dst *T) error) (*T, error) {
	return v.emplace(OpInsert, i, build)
}

func (v *Vector[T]) insertOwned(op Op, i int, x T) error {
	_, err := v.emplace(op, i, func(dst *T) error { return v.moveTo(dst, &x) })
	if err != nil {
		v.destroy(&x)
	}

	return err
}

func (v *Vector[T]) insertCopy(op Op, i int, p *T) error {
	if !v.copyable() {
		return ErrNotCopyable
	}
	if !v.owns(p) {
		_, err := v.emplace(op, i, func(dst *T) error { return v.copyTo(dst, p) })
		return err
	}

	var staged T
	if err := v.copyTo(&staged, p); err != nil {
		v.rolledBack(op, err)
		return err
	}
	_, err := v.emplace(op, i, func(dst *T) error { return v.moveTo(dst, &staged) })
	v.destroy(&staged)

	return err
}

func (v *Vector[T]) emplace(op Op, i int, build func(dst *T) error) (*T, error) {
	assert(i >= 0 && i <= v.size, panicInsertRange)

	var err error
	if v.size < v.buf.Capacity() {
		err = v.emplaceInPlace(i, build)
	} else {
		err = v.emplaceGrow(i, build)
	}
	if err != nil {
		v.rolledBack(op, err)
		return nil, err
	}

	return v.buf.Slot(i), nil
}

// emplaceInPlace inserts without reallocating. Slot size is move-constructed
// from the last element, the interior shifts one slot back with
// move-assignment, and the new element is built into the freed slot i. Any
// failure moves the tail back and clears slot size.
func (v *Vector[T]) emplaceInPlace(i int, build func(dst *T) error) error {
	slots := v.buf.Slots()
	if i < v.size {
		if err := v.moveTo(&slots[v.size], &slots[v.size-1]); err != nil {
			return err
		}
		for j := v.size - 1; j > i; j-- {
			if err := v.moveAssign(&slots[j], &slots[j-1]); err != nil {
				return v.closeGap(j, err)
			}
		}
		v.destroy(&slots[i])
	}

	if err := build(&slots[i]); err != nil {
		zeroSlot(&slots[i])
		if i < v.size {
			return v.closeGap(i, err)
		}
		return err
	}
	v.size++

	return nil
}

// emplaceGrow inserts into a block of twice the capacity. The new element is
// built first, then the prefix and suffix are relocated around it; the old
// block is only touched once everything succeeded.
func (v *Vector[T]) emplaceGrow(i int, build func(dst *T) error) error {
	nb, err := rawbuf.Allocate[T](v.nextCap(), v.tracker)
	if err != nil {
		return err
	}
	dst := nb.Slots()
	old := v.View()

	if err = build(&dst[i]); err != nil {
		zeroSlot(&dst[i])
		nb.Release()
		return err
	}
	if err = v.relocate(old[:i], dst[:i]); err != nil {
		v.destroy(&dst[i])
		nb.Release()
		return err
	}
	if err = v.relocate(old[i:], dst[i+1:]); err != nil {
		v.destroyRange(dst[:i+1])
		nb.Release()
		return err
	}
	v.install(&nb, v.size+1)

	return nil
}
