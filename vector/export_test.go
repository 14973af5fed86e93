// SPDX-License-Identifier: MIT

package vector

// SpareSlots exposes the slots past Len() so tests can check that they hold
// zero values after every operation.
func SpareSlots[T any](v *Vector[T]) []T {
	return v.buf.Slots()[v.size:]
}
