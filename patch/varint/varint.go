// This file is part of ramus.
//
// ramus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ramus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ramus.  If not, see <https://www.gnu.org/licenses/>.

// Package varint implements the variable length integer encoding used by the
// BPS patch format.
//
// Each byte carries seven bits of the value, least significant group first.
// The final byte of a number has the high bit set. Unlike the LEB128 encoding
// used by encoding/binary, every additional byte also adds an implicit bias
// (the value of the new shift) to the result. The consequence is that every
// value has exactly one encoding and there are no redundant zero-padded forms:
//
//	0     -> 0x80
//	127   -> 0xff
//	128   -> 0x00 0x80
//	16511 -> 0x7f 0xff
//	16512 -> 0x00 0x00 0x80
package varint

import (
	"math"
	"math/bits"
)

// MaxLen is the maximum number of bytes required to encode a uint64.
const MaxLen = 10

// Decode reads a number from the start of buf. It returns the value and the
// number of bytes consumed.
//
// If n is zero then buf ended before the terminating byte was found. If n is
// negative then the number does not fit in 64 bits and -n is the number of
// bytes read before the overflow was detected.
func Decode(buf []byte) (v uint64, n int) {
	shift := uint64(1)

	for i, b := range buf {
		hi, lo := bits.Mul64(uint64(b&0x7f), shift)
		if hi != 0 {
			return 0, -(i + 1)
		}

		var carry uint64
		v, carry = bits.Add64(v, lo, 0)
		if carry != 0 {
			return 0, -(i + 1)
		}

		if b&0x80 == 0x80 {
			return v, i + 1
		}

		if shift > math.MaxUint64>>7 {
			return 0, -(i + 1)
		}
		shift <<= 7

		v, carry = bits.Add64(v, shift, 0)
		if carry != 0 {
			return 0, -(i + 1)
		}
	}

	return 0, 0
}

// Append the encoding of v to dst and return the extended slice.
func Append(dst []byte, v uint64) []byte {
	for {
		x := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, x|0x80)
		}
		dst = append(dst, x)

		// the bias added by the decoder for every additional byte
		v--
	}
}

// Encode returns the encoding of v.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, EncodedLen(v)), v)
}

// EncodedLen returns the number of bytes required to encode v.
func EncodedLen(v uint64) int {
	n := 1
	for v >>= 7; v > 0; v >>= 7 {
		v--
		n++
	}
	return n
}
