// SPDX-License-Identifier: MIT

package rawbuf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvvec/rawbuf"
)

// Common capacities used across rawbuf tests.
const (
	Cap0 = 0
	Cap4 = 4
	Cap8 = 8
)

type pair struct {
	a, b int64
}

func TestAllocate_ZeroCapacity(t *testing.T) {
	budget := rawbuf.NewBudget(0, nil)
	buf, err := rawbuf.Allocate[int64](Cap0, budget)
	require.NoError(t, err)
	require.Equal(t, 0, buf.Capacity())
	require.Nil(t, buf.Slots())
	require.Zero(t, budget.CurrentBytes, "empty allocation must not be charged")

	buf.Release() // no-op
	require.Zero(t, budget.CurrentBytes)
}

func TestAllocate_ChargesAndReleases(t *testing.T) {
	budget := rawbuf.NewBudget(0, nil)
	buf, err := rawbuf.Allocate[pair](Cap4, budget)
	require.NoError(t, err)
	require.Equal(t, Cap4, buf.Capacity())
	require.Len(t, buf.Slots(), Cap4)
	require.Equal(t, uint64(Cap4*16), buf.Bytes())
	require.Equal(t, buf.Bytes(), budget.CurrentBytes)

	for i := range buf.Slots() {
		require.Equal(t, pair{}, *buf.Slot(i), "fresh slots hold the zero value")
	}

	buf.Release()
	require.Equal(t, 0, buf.Capacity())
	require.Zero(t, budget.CurrentBytes)
	require.Equal(t, uint64(Cap4*16), budget.PeakBytes)

	buf.Release() // second release is a no-op, not a double refund
	require.Zero(t, budget.CurrentBytes)
}

func TestAllocate_NegativeCapacityPanics(t *testing.T) {
	require.Panics(t, func() { _, _ = rawbuf.Allocate[int](-1, nil) })
}

func TestAllocate_Overflow(t *testing.T) {
	_, err := rawbuf.Allocate[pair](math.MaxInt/2, nil)
	require.ErrorIs(t, err, rawbuf.ErrOutOfMemory)
}

func TestAllocate_RuntimeRefusalIsReported(t *testing.T) {
	budget := rawbuf.NewBudget(0, nil)
	// Fits the overflow guard but exceeds the runtime's maximum allocation.
	_, err := rawbuf.Allocate[byte](math.MaxInt, budget)
	require.ErrorIs(t, err, rawbuf.ErrOutOfMemory)
	require.Zero(t, budget.CurrentBytes, "refused allocation must be refunded")
}

func TestAllocate_ZeroSizedElements(t *testing.T) {
	buf, err := rawbuf.Allocate[struct{}](math.MaxInt, nil)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, buf.Capacity())
	require.Zero(t, buf.Bytes())

	_, ok := buf.IndexOf(buf.Slot(3))
	require.False(t, ok, "zero-sized slots have no distinguishable addresses")
}

func TestBuffer_TakeTransfersOwnership(t *testing.T) {
	budget := rawbuf.NewBudget(0, nil)
	src, err := rawbuf.Allocate[int64](Cap4, budget)
	require.NoError(t, err)
	*src.Slot(2) = 42

	dst := src.Take()
	require.Equal(t, 0, src.Capacity())
	require.Nil(t, src.Slots())
	require.Equal(t, Cap4, dst.Capacity())
	require.Equal(t, int64(42), *dst.Slot(2))

	src.Release()
	require.Equal(t, uint64(Cap4*8), budget.CurrentBytes, "releasing the moved-from buffer refunds nothing")
	dst.Release()
	require.Zero(t, budget.CurrentBytes)
}

func TestBuffer_Swap(t *testing.T) {
	a, err := rawbuf.Allocate[int](Cap4, nil)
	require.NoError(t, err)
	b, err := rawbuf.Allocate[int](Cap8, nil)
	require.NoError(t, err)
	*a.Slot(0) = 1
	*b.Slot(0) = 2

	a.Swap(&b)
	require.Equal(t, Cap8, a.Capacity())
	require.Equal(t, Cap4, b.Capacity())
	require.Equal(t, 2, *a.Slot(0))
	require.Equal(t, 1, *b.Slot(0))

	var empty rawbuf.Buffer[int]
	a.Swap(&empty)
	require.Equal(t, 0, a.Capacity())
	require.Equal(t, Cap8, empty.Capacity())
}

func TestBuffer_IndexOf(t *testing.T) {
	buf, err := rawbuf.Allocate[pair](Cap4, nil)
	require.NoError(t, err)

	for i := 0; i < Cap4; i++ {
		idx, ok := buf.IndexOf(buf.Slot(i))
		require.True(t, ok)
		require.Equal(t, i, idx)
	}

	outside := pair{}
	_, ok := buf.IndexOf(&outside)
	require.False(t, ok)

	_, ok = buf.IndexOf(nil)
	require.False(t, ok)

	other, err := rawbuf.Allocate[pair](Cap4, nil)
	require.NoError(t, err)
	_, ok = buf.IndexOf(other.Slot(0))
	require.False(t, ok, "slot of another block")

	var empty rawbuf.Buffer[pair]
	_, ok = empty.IndexOf(buf.Slot(0))
	require.False(t, ok)
}
