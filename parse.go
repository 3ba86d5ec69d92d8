// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("bitarray: empty binary string")
	ErrInvalidDigit = errors.New("bitarray: invalid binary digit")
	ErrTooLong      = errors.New("bitarray: binary string longer than 64 digits")
)

// ParseBinary is the strict counterpart of FromBinary. It returns a
// BitArray holding the value of s, which must be 1 to 64 characters long
// and contain only '0' and '1'.
func ParseBinary(s string) (*BitArray, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	if len(s) > wordBits {
		return nil, fmt.Errorf("%w: got %d", ErrTooLong, len(s))
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidDigit, c, i)
		}
	}
	a := New()
	a.FromBinary(s)
	return a, nil
}
