// SPDX-License-Identifier: MIT

package vector

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assert(v.size > 0, panicPopEmpty)
	v.size--
	v.destroy(v.buf.Slot(v.size))
}

// Erase removes the element at i (0 <= i < Len()); later elements move one
// position earlier.
//
// The erased element is staged aside while the tail shifts left with
// move-assignment, and destroyed only after the shift succeeded. A failing
// Move puts everything back and its error is returned. With the default
// Traits Erase never fails.
func (v *Vector[T]) Erase(i int) error {
	assert(i >= 0 && i < v.size, panicEraseRange)

	slots := v.buf.Slots()
	var staged T
	if err := v.moveTo(&staged, &slots[i]); err != nil {
		v.rolledBack(OpErase, err)
		return err
	}
	for j := i; j < v.size-1; j++ {
		if err := v.moveAssign(&slots[j], &slots[j+1]); err != nil {
			err = v.reopenGap(i, j, &staged, err)
			v.rolledBack(OpErase, err)
			return err
		}
	}
	v.size--
	v.destroy(&slots[v.size])
	v.destroy(&staged)

	return nil
}
