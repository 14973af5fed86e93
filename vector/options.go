// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvvec/rawbuf"

// Option configures a Vector at construction. Options are applied left to
// right; later options override earlier ones.
type Option[T any] func(v *Vector[T])

// WithTraits sets the element lifecycle hooks.
func WithTraits[T any](tr Traits[T]) Option[T] {
	return func(v *Vector[T]) { v.traits = tr }
}

// WithTracker charges every block the vector allocates to t, typically a
// *rawbuf.Budget shared between vectors. A rejected charge surfaces as
// rawbuf.ErrOutOfMemory from the growing operation.
func WithTracker[T any](t rawbuf.Tracker) Option[T] {
	return func(v *Vector[T]) { v.tracker = t }
}

// WithObserver attaches o to the vector; nil detaches.
func WithObserver[T any](o Observer) Option[T] {
	return func(v *Vector[T]) { v.observer = o }
}
