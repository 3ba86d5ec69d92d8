// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitarray provides BitArray, a fixed-width 64-bit bit vector.
//
// Bit 0 is the least significant bit of the word. The binary text form is
// written most-significant bit first with no leading zeros, so it matches
// strconv.FormatUint(n, 2).
//
// Bit indices outside [0, 63] are ignored: Get reports false, and Set and
// Flip leave the word unchanged.
package bitarray

import (
	"strconv"
)

// BitArray is a bit vector backed by a single uint64. The zero value is an
// empty BitArray ready to use. A BitArray is not safe for concurrent
// mutation.
type BitArray struct {
	words uint64
}

// New returns an empty BitArray.
func New() *BitArray {
	return &BitArray{}
}

// AsNumber returns the backing word.
func (a *BitArray) AsNumber() uint64 {
	return a.words
}

// FromNumber replaces the contents of a with n.
func (a *BitArray) FromNumber(n uint64) {
	a.words = n
}

// FromBinary replaces the contents of a with the value of s read as a
// binary literal, most significant bit first.
//
// FromBinary never fails: any byte other than '1' (including '0' and
// non-digits) is read as a 0 bit, and the empty string yields 0. When s
// has more than 64 characters only the trailing 64 bits are kept. Use
// ParseBinary to reject malformed input.
func (a *BitArray) FromBinary(s string) {
	var w uint64
	for i := 0; i < len(s); i++ {
		if i > 0 {
			w <<= 1
		}
		if s[i] == '1' {
			w |= 1
		}
	}
	a.words = w
}

// AsString returns the binary text form of a, e.g. "101" for 5 and "0"
// for an empty BitArray.
func (a *BitArray) AsString() string {
	return strconv.FormatUint(a.words, 2)
}

func (a *BitArray) String() string {
	return a.AsString()
}

// Get reports whether bit n is set.
func (a *BitArray) Get(n uint64) bool {
	mask, ok := bitMask(n)
	if !ok {
		return false
	}
	return a.words&mask != 0
}

// Set sets bit n to b and returns a, so calls can be chained:
//
//	a.Set(0, true).Set(2, true).Set(4, false)
func (a *BitArray) Set(n uint64, b bool) *BitArray {
	mask, ok := bitMask(n)
	if !ok {
		return a
	}
	if b {
		a.words |= mask
	} else {
		a.words &^= mask
	}
	return a
}

// Flip toggles bit n.
func (a *BitArray) Flip(n uint64) {
	mask, ok := bitMask(n)
	if !ok {
		return
	}
	a.words ^= mask
}
