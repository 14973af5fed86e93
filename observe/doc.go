// SPDX-License-Identifier: MIT

// Package observe provides vector.Observer implementations.
//
//	Metrics : prometheus counters and a histogram of reallocations and rollbacks.
//	Logger  : go-kit structured log lines (debug on growth, warn on rollback).
//	Multi   : fan-out to several observers.
//
// Observers run synchronously inside vector mutations. Metrics is safe to
// share between vectors used from different goroutines; Logger is as safe as
// the log.Logger it wraps.
package observe
