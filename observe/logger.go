// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/lvvec/vector"
)

// Logger writes one structured line per observed event.
type Logger struct {
	logger log.Logger
}

// NewLogger wraps logger. Growth is logged at debug level, rollbacks at warn.
func NewLogger(logger log.Logger) *Logger {
	return &Logger{logger: log.With(logger, "component", "lvvec")}
}

// OnGrow implements vector.Observer.
func (l *Logger) OnGrow(oldCap, newCap int, elemBytes uint64) {
	level.Debug(l.logger).Log("msg", "vector grew", "old_cap", oldCap, "new_cap", newCap, "bytes", uint64(newCap)*elemBytes)
}

// OnRollback implements vector.Observer.
func (l *Logger) OnRollback(op vector.Op, err error) {
	level.Warn(l.logger).Log("msg", "vector operation rolled back", "op", op.String(), "err", err)
}
