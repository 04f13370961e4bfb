package rlp

import "unsafe"

// overlap reports whether a and b share any backing memory. Slices taken
// from the same backing array can alias even when they look unrelated, so
// the test compares raw address intervals. Empty slices overlap nothing.
func overlap(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := aLo + uintptr(len(a)) - 1
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := bLo + uintptr(len(b)) - 1
	return aLo <= bHi && bLo <= aHi
}
