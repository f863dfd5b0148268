// Package memzero provides best-effort wiping of sensitive buffers.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros.
//
// Best effort only: the runtime may already have copied the data elsewhere
// (stack growth, GC moves), so this reduces exposure rather than removing it.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
