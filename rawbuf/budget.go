// SPDX-License-Identifier: MIT

package rawbuf

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
)

// Tracker admits or rejects byte charges for newly allocated blocks.
//
// Increase is called before a block is made and must return an error wrapping
// ErrOutOfMemory to refuse it. Decrease is called exactly once per admitted
// block, when it is released (or when the runtime refused it after admission).
type Tracker interface {
	Increase(bytes uint64) error
	Decrease(bytes uint64)
}

// Budget is a Tracker with a byte limit and current/peak accounting.
//
// A MaxBytes of 0 means unlimited. Every rejected request increments the
// optional rejection counter. Budget is not safe for concurrent use.
type Budget struct {
	MaxBytes     uint64
	CurrentBytes uint64
	PeakBytes    uint64

	rejections prometheus.Counter
}

// NewBudget returns a Budget limited to maxBytes. rejections may be nil.
func NewBudget(maxBytes uint64, rejections prometheus.Counter) *Budget {
	return &Budget{
		MaxBytes:   maxBytes,
		rejections: rejections,
	}
}

// Increase charges n bytes, or returns an error wrapping ErrOutOfMemory if
// that would exceed MaxBytes.
func (b *Budget) Increase(n uint64) error {
	if b.MaxBytes > 0 && (n > b.MaxBytes || b.CurrentBytes > b.MaxBytes-n) {
		if b.rejections != nil {
			b.rejections.Inc()
		}

		return fmt.Errorf("%w: request of %s exceeds budget of %s (%s in use)",
			ErrOutOfMemory, humanize.IBytes(n), humanize.IBytes(b.MaxBytes), humanize.IBytes(b.CurrentBytes))
	}

	b.CurrentBytes += n
	b.PeakBytes = max(b.PeakBytes, b.CurrentBytes)

	return nil
}

// Decrease refunds n bytes. Refunding more than is charged panics: it means a
// block was released twice.
func (b *Budget) Decrease(n uint64) {
	if n > b.CurrentBytes {
		panic(panicBudgetUnderflow)
	}
	b.CurrentBytes -= n
}

// Available returns the bytes left before the limit, or the maximum uint64
// when the budget is unlimited.
func (b *Budget) Available() uint64 {
	if b.MaxBytes == 0 {
		return ^uint64(0)
	}

	return b.MaxBytes - b.CurrentBytes
}
