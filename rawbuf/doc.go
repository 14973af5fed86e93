// SPDX-License-Identifier: MIT

// Package rawbuf owns blocks of element slots without knowing which of them
// hold live values.
//
// A Buffer[T] is the lowest layer of lvvec: it allocates a block sized for
// capacity elements, hands out slot addresses, moves ownership of the block
// (Take), exchanges blocks (Swap) and gives the block back (Release). It never
// runs element construction or destruction; that is the caller's job.
//
// Go has no uninitialized memory, so an "uninitialized" slot is a slot holding
// the zero value of T. Callers that destroy an element are expected to zero
// its slot again before the block is released or reused.
//
// Allocation failure:
//
//	Allocate reports ErrOutOfMemory when the byte size of the request
//	overflows, when the Go runtime refuses the slice length, or when an
//	attached Tracker rejects the request. The error is never swallowed and
//	nothing is charged to the tracker on failure.
//
// Budgets:
//
//	A Tracker is charged capacity*ElemSize[T]() bytes per successful
//	allocation and refunded on Release. Budget is the stock Tracker: a byte
//	limit with current/peak accounting and an optional prometheus rejection
//	counter, shared by as many buffers as the caller likes.
//
// Neither Buffer nor Budget is safe for concurrent use.
package rawbuf
