// Package lvvec is a growable, lifecycle-aware array for Go: a Vector[T]
// that owns its storage, grows by doubling and leaves itself untouched
// whenever an operation fails half-way.
//
// 🚀 What is lvvec?
//
//	A small generic container library built in two layers:
//		• rawbuf: a fixed-capacity block of slots, charged against an
//		  optional byte Budget, with no knowledge of element lifecycles
//		• vector: Vector[T] on top of rawbuf, with Reserve, Resize,
//		  PushBack, EmplaceBack, PopBack, Insert, Emplace, Erase, Clone,
//		  CopyFrom and MoveFrom
//		• observe: ready-made Observers exporting growth and rollback
//		  events as Prometheus metrics or go-kit log lines
//
// ✨ Why choose lvvec?
//
//   - Rollback on failure: a failed copy, move or construction hook never
//     leaves a half-built vector behind
//   - Self-reference safe: InsertCopy(i, v.Ref(j)) does the right thing even
//     when the insert reallocates or shifts the referenced element
//   - Amortized O(1) appends: capacity goes 0, 1, 2, 4, 8, ...
//   - Pluggable: Traits hooks describe how elements are built, copied,
//     moved and destroyed; a Tracker caps the bytes a vector may hold
//
// Layout:
//
//	rawbuf/  — Buffer[T], Tracker and Budget
//	vector/  — Vector[T], Traits[T], Observer and functional options
//	observe/ — Metrics, Logger and Multi observers
//	examples/ — runnable program wiring all three together
//
// Quick example:
//
//	v := vector.New[string]()
//	_ = v.PushBack("a")
//	_ = v.PushBack("c")
//	_ = v.Insert(1, "b")  // [a b c]
//	_ = v.Erase(0)        // [b c]
//
//	go get github.com/katalvlaran/lvvec/vector
package lvvec
