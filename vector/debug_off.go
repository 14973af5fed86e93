// SPDX-License-Identifier: MIT

//go:build !lvvec_debug

package vector

const debugChecks = false
