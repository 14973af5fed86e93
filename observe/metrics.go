// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvvec/vector"
)

// Metrics counts reallocations and rollbacks of the vectors it observes.
type Metrics struct {
	reallocations   prometheus.Counter
	reallocatedByte prometheus.Counter
	capacity        prometheus.Histogram
	rollbacks       *prometheus.CounterVec
}

// NewMetrics registers the metrics with reg. A nil reg creates unregistered
// metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		reallocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "lvvec_reallocations_total",
			Help: "Total number of times a vector replaced its block with a larger one.",
		}),
		reallocatedByte: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "lvvec_reallocated_bytes_total",
			Help: "Total bytes of the blocks allocated by vector growth.",
		}),
		capacity: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "lvvec_capacity_after_growth",
			Help:    "Vector capacity, in elements, after each growth.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		rollbacks: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "lvvec_rollbacks_total",
			Help: "Total number of vector mutations that failed and were rolled back.",
		}, []string{"op"}),
	}
}

// OnGrow implements vector.Observer.
func (m *Metrics) OnGrow(_, newCap int, elemBytes uint64) {
	m.reallocations.Inc()
	m.reallocatedByte.Add(float64(uint64(newCap) * elemBytes))
	m.capacity.Observe(float64(newCap))
}

// OnRollback implements vector.Observer.
func (m *Metrics) OnRollback(op vector.Op, _ error) {
	m.rollbacks.WithLabelValues(op.String()).Inc()
}
