// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures for vector tests.
//
// Purpose:
//   - Provide probe, an element type that counts live objects and fails on demand.
//   - Provide invariant checks (live count, zero spare slots) used after every
//     failing operation.

package vector_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvvec/vector"
)

// errInjected is returned by probe hooks when a failure was armed.
var errInjected = errors.New("probe: injected failure")

// movedFromVal marks a probe whose value was moved out.
const movedFromVal = -1

// Common values used across vector tests.
const (
	Val1  = 1
	Val2  = 2
	Val3  = 3
	Val10 = 10
	Val99 = 99
)

// probe is an element whose lifecycle is tracked by a lab.
type probe struct {
	Val  int
	live bool
}

// lab counts live probes and arms failures. A fail counter of n makes the
// n-th next call of that hook fail once; 0 never fails.
type lab struct {
	live int

	constructs, copies, moves, assigns, destroys int

	failConstruct, failCopy, failMove, failAssign int
}

func trip(counter *int) bool {
	if *counter == 0 {
		return false
	}
	*counter--

	return *counter == 0
}

// make returns a live probe owned by the caller.
func (l *lab) make(val int) probe {
	l.live++
	return probe{Val: val, live: true}
}

// traits returns hooks bound to l.
func (l *lab) traits(moveNoFail bool) vector.Traits[probe] {
	return vector.Traits[probe]{
		Construct: func(dst *probe) error {
			if trip(&l.failConstruct) {
				return errInjected
			}
			l.constructs++
			l.live++
			*dst = probe{live: true}
			return nil
		},
		Copy: func(dst, src *probe) error {
			if trip(&l.failCopy) {
				return errInjected
			}
			l.copies++
			l.live++
			*dst = probe{Val: src.Val, live: true}
			return nil
		},
		Assign: func(dst, src *probe) error {
			if trip(&l.failAssign) {
				return errInjected
			}
			l.assigns++
			dst.Val = src.Val
			return nil
		},
		Move: func(dst, src *probe) error {
			if trip(&l.failMove) {
				return errInjected
			}
			l.moves++
			*dst = *src
			src.Val, src.live = movedFromVal, false
			return nil
		},
		Destroy: func(p *probe) {
			l.destroys++
			if p.live {
				l.live--
			}
		},
		MoveNoFail: moveNoFail,
	}
}

// moveOnly returns traits without a copy capability.
func (l *lab) moveOnly() vector.Traits[probe] {
	tr := l.traits(false)
	tr.Copy = nil
	tr.Assign = nil

	return tr
}

// fill appends probes with the given values.
func (l *lab) fill(t testing.TB, v *vector.Vector[probe], vals ...int) {
	t.Helper()
	for _, val := range vals {
		require.NoError(t, v.PushBack(l.make(val)))
	}
}

// values extracts probe values in order.
func values(v *vector.Vector[probe]) []int {
	out := make([]int, 0, v.Len())
	for p := range v.Values() {
		out = append(out, p.Val)
	}

	return out
}

// requireValues compares the vector's contents with want using cmp.Diff.
func requireValues(t testing.TB, v *vector.Vector[probe], want ...int) {
	t.Helper()
	if want == nil {
		want = []int{}
	}
	if diff := cmp.Diff(want, values(v)); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

// requireSound checks the live/spare partition: every live slot holds a live
// probe, every spare slot is zero, and l accounts for exactly extra probes
// held outside v.
func requireSound(t testing.TB, l *lab, v *vector.Vector[probe], extra int) {
	t.Helper()
	for i, p := range v.All() {
		require.Truef(t, p.live, "slot %d inside Len() holds a dead probe", i)
	}
	for i, p := range vector.SpareSlots(v) {
		require.Equalf(t, probe{}, p, "spare slot %d is not zero", v.Len()+i)
	}
	require.Equal(t, v.Len()+extra, l.live, "live probe count (leak or double destroy)")
}

// ints builds a plain vector of ints.
func ints(t testing.TB, vals ...int) *vector.Vector[int] {
	t.Helper()
	v := vector.New[int]()
	for _, x := range vals {
		require.NoError(t, v.PushBack(x))
	}

	return v
}

// recorder is an Observer that keeps every event.
type recorder struct {
	grows     [][2]int
	rollbacks []vector.Op
	errs      []error
}

func (r *recorder) OnGrow(oldCap, newCap int, _ uint64) {
	r.grows = append(r.grows, [2]int{oldCap, newCap})
}

func (r *recorder) OnRollback(op vector.Op, err error) {
	r.rollbacks = append(r.rollbacks, op)
	r.errs = append(r.errs, err)
}
