// Package wipe provides best-effort zeroing for byte slices that held
// sensitive material, such as key bytes read for encoding or
// fingerprinting. It reduces the lifetime of secrets in memory; it cannot
// scrub copies the runtime may have made.
package wipe

import "crypto/subtle"

// Bytes overwrites b with zeros.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
