// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

// wordBits is the number of addressable bits in a BitArray.
const wordBits = 64

// bitMask returns the single-bit mask for bit n, and false if n
// falls outside the word.
func bitMask(n uint64) (mask uint64, ok bool) {
	if n >= wordBits {
		return 0, false
	}
	return 1 << n, true
}
