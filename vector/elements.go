// SPDX-License-Identifier: MIT

package vector

import "go.uber.org/multierr"

// File: elements.go
// Role: single-element lifecycle steps resolved from Traits, plus the range
// helpers every mutation is built from. Nothing here touches size.

func zeroSlot[T any](p *T) {
	var zero T
	*p = zero
}

func (v *Vector[T]) construct(dst *T) error {
	if c := v.traits.Construct; c != nil {
		if err := c(dst); err != nil {
			zeroSlot(dst)
			return err
		}
	}

	return nil
}

// copyable reports whether T has a copy capability.
func (v *Vector[T]) copyable() bool {
	return v.traits.Copy != nil || v.traits.Move == nil
}

// relocatesByMove applies the move-or-copy rule: move when moving cannot
// fail or when copying is impossible.
func (v *Vector[T]) relocatesByMove() bool {
	return v.traits.Move == nil || v.traits.MoveNoFail || !v.copyable()
}

func (v *Vector[T]) copyTo(dst, src *T) error {
	if c := v.traits.Copy; c != nil {
		if err := c(dst, src); err != nil {
			zeroSlot(dst)
			return err
		}
		return nil
	}
	if v.traits.Move != nil {
		return ErrNotCopyable
	}
	*dst = *src

	return nil
}

func (v *Vector[T]) moveTo(dst, src *T) error {
	if m := v.traits.Move; m != nil {
		if err := m(dst, src); err != nil {
			zeroSlot(dst)
			return err
		}
		return nil
	}
	*dst = *src
	zeroSlot(src)

	return nil
}

func (v *Vector[T]) destroy(p *T) {
	if d := v.traits.Destroy; d != nil {
		d(p)
	}
	zeroSlot(p)
}

func (v *Vector[T]) destroyRange(s []T) {
	for i := range s {
		v.destroy(&s[i])
	}
}

// assign copy-assigns src over the live dst. A failed copy leaves dst as it was.
func (v *Vector[T]) assign(dst, src *T) error {
	if a := v.traits.Assign; a != nil {
		return a(dst, src)
	}
	var tmp T
	if err := v.copyTo(&tmp, src); err != nil {
		return err
	}
	v.destroy(dst)
	*dst = tmp

	return nil
}

// moveAssign moves src over the live (or moved-from) dst. A failed move
// leaves both untouched.
func (v *Vector[T]) moveAssign(dst, src *T) error {
	var tmp T
	if err := v.moveTo(&tmp, src); err != nil {
		return err
	}
	v.destroy(dst)
	*dst = tmp

	return nil
}

// relocate transfers from into the zero slots of to (len(to) >= len(from))
// by the move-or-copy rule. On failure the elements already built in to are
// destroyed; from is untouched unless T is move-only.
func (v *Vector[T]) relocate(from, to []T) error {
	byMove := v.relocatesByMove()
	for i := range from {
		var err error
		if byMove {
			err = v.moveTo(&to[i], &from[i])
		} else {
			err = v.copyTo(&to[i], &from[i])
		}
		if err != nil {
			v.destroyRange(to[:i])
			return err
		}
	}

	return nil
}

// copyRange copy-constructs from into the zero slots of to, destroying the
// partial result on failure.
func (v *Vector[T]) copyRange(from, to []T) error {
	for i := range from {
		if err := v.copyTo(&to[i], &from[i]); err != nil {
			v.destroyRange(to[:i])
			return err
		}
	}

	return nil
}

// closeGap undoes the opening of slot gap during an in-place insert: slots
// (gap, size] hold the elements that were at [gap, size). It moves them back
// and clears slot size. It stops at the first failing move; the vector then
// only holds valid elements, not necessarily the original order.
func (v *Vector[T]) closeGap(gap int, cause error) error {
	slots := v.buf.Slots()
	for k := gap; k < v.size; k++ {
		if err := v.moveAssign(&slots[k], &slots[k+1]); err != nil {
			cause = multierr.Append(cause, err)
			break
		}
	}
	v.destroy(&slots[v.size])

	return cause
}

// reopenGap undoes a partial erase: slots [at, hole) hold the elements that
// were at (at, hole], slot hole is moved-from and staged holds the element
// that was at at.
func (v *Vector[T]) reopenGap(at, hole int, staged *T, cause error) error {
	slots := v.buf.Slots()
	for k := hole; k > at; k-- {
		if err := v.moveAssign(&slots[k], &slots[k-1]); err != nil {
			v.destroy(staged)
			return multierr.Append(cause, err)
		}
	}
	if err := v.moveAssign(&slots[at], staged); err != nil {
		v.destroy(staged)
		return multierr.Append(cause, err)
	}

	return cause
}

func (v *Vector[T]) rolledBack(op Op, err error) {
	if v.observer != nil {
		v.observer.OnRollback(op, err)
	}
}

func assert(cond bool, msg string) {
	if debugChecks && !cond {
		panic(msg)
	}
}
