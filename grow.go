// SPDX-License-Identifier: Apache-2.0

package strarena

const growThreshold = 256

// grow returns s with room for at least n more elements.
// Small slices double, past growThreshold they grow by a quarter.
func grow[T any](s []T, n int) []T {
	newLen := len(s) + n
	newCap := cap(s)
	if newLen <= newCap {
		return s
	}

	if newCap > 0 {
		for newLen > newCap {
			if newCap < growThreshold {
				newCap *= 2
			} else {
				newCap += newCap / 4
			}
		}
	} else {
		newCap = n
	}

	s2 := make([]T, len(s), newCap)
	copy(s2, s)
	return s2
}
