// SPDX-License-Identifier: MIT

package observe

import "github.com/katalvlaran/lvvec/vector"

type multi []vector.Observer

// Multi returns an Observer that forwards every event to each non-nil
// observer in order. It returns nil when there is none, and the observer
// itself when there is exactly one.
func Multi(obs ...vector.Observer) vector.Observer {
	var out multi
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}

	return out
}

func (m multi) OnGrow(oldCap, newCap int, elemBytes uint64) {
	for _, o := range m {
		o.OnGrow(oldCap, newCap, elemBytes)
	}
}

func (m multi) OnRollback(op vector.Op, err error) {
	for _, o := range m {
		o.OnRollback(op, err)
	}
}
