// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvvec/rawbuf"

// Traits describes how elements of T are constructed, duplicated, moved and
// destroyed. Every field is optional; the zero Traits treats T as a plain
// value.
//
// Hook contract:
//   - dst passed to Construct, Copy and Move is a zero slot.
//   - On error a hook must not leave resources in dst; the slot is zeroed again.
//   - Move must leave src in a state Destroy accepts.
//   - Destroy must accept zero and moved-from values.
//   - T must stay valid when relocated by plain assignment (no self-pointers).
type Traits[T any] struct {
	// Construct value-constructs a new element. Default: the zero value.
	Construct func(dst *T) error

	// Copy copy-constructs dst from src. Default: *dst = *src, unless Move is
	// set, in which case T is move-only.
	Copy func(dst, src *T) error

	// Assign copy-assigns src over the live element dst. Default: Copy into a
	// temporary, Destroy dst, then relocate the temporary into dst.
	Assign func(dst, src *T) error

	// Move move-constructs dst from src. Default: *dst = *src and src zeroed.
	Move func(dst, src *T) error

	// Destroy releases the resources of *p. Default: nothing.
	Destroy func(p *T)

	// MoveNoFail declares that Move never returns an error, which lets
	// relocation move instead of copy.
	MoveNoFail bool
}

// Vector is a growable array of T. The zero Vector is empty and ready to use.
//
// A Vector must not be copied by value; use Clone, Move, CopyFrom or MoveFrom.
type Vector[T any] struct {
	buf  rawbuf.Buffer[T]
	size int

	traits   Traits[T]
	tracker  rawbuf.Tracker
	observer Observer
}

// Op names the operation reported to an Observer.
type Op int

const (
	OpReserve Op = iota
	OpResize
	OpPushBack
	OpInsert
	OpErase
	OpClone
	OpCopyFrom
	OpNewSized
)

var opNames = [...]string{
	OpReserve:  "reserve",
	OpResize:   "resize",
	OpPushBack: "push_back",
	OpInsert:   "insert",
	OpErase:    "erase",
	OpClone:    "clone",
	OpCopyFrom: "copy_from",
	OpNewSized: "new_sized",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}

	return opNames[o]
}

// Observer receives notifications about reallocations and rolled-back
// mutations. Hooks run synchronously on the calling goroutine and must not
// touch the vector that reports to them.
type Observer interface {
	// OnGrow is called after the block was replaced by a larger one.
	OnGrow(oldCap, newCap int, elemBytes uint64)

	// OnRollback is called after a failed mutation was undone, with the
	// error about to be returned.
	OnRollback(op Op, err error)
}
