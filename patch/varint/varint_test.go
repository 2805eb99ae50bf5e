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

package varint_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ramus-patch/ramus/patch/varint"
	"github.com/ramus-patch/ramus/test"
)

func roundTrip(t *testing.T, v uint64) {
	t.Helper()
	b := varint.Encode(v)
	test.ExpectEquality(t, len(b), varint.EncodedLen(v), v)

	d, n := varint.Decode(b)
	test.ExpectEquality(t, n, len(b), v)
	test.ExpectEquality(t, d, v)
}

func TestKnownEncodings(t *testing.T) {
	known := map[uint64][]byte{
		0:     {0x80},
		1:     {0x81},
		127:   {0xff},
		128:   {0x00, 0x80},
		129:   {0x01, 0x80},
		16511: {0x7f, 0xff},
		16512: {0x00, 0x00, 0x80},
	}

	for v, enc := range known {
		test.ExpectEquality(t, string(varint.Encode(v)), string(enc), v)
		d, n := varint.Decode(enc)
		test.ExpectEquality(t, n, len(enc))
		test.ExpectEquality(t, d, v)
	}
}

func TestRoundTrip(t *testing.T) {
	for v := uint64(0); v < 0x20000; v++ {
		roundTrip(t, v)
	}

	for range 100000 {
		roundTrip(t, uint64(rand.Uint32()))
	}

	roundTrip(t, math.MaxUint32)
	roundTrip(t, math.MaxUint32+1)
	roundTrip(t, math.MaxUint64)
}

// the encoding is bijective so the length of every encoding must be the
// minimum number of digits for which the value fits in the range of that
// many digits
func TestMinimalLength(t *testing.T) {
	var upper uint64
	digits := uint64(1)

	for n := 1; n <= 5; n++ {
		digits *= 128
		upper += digits

		test.ExpectEquality(t, varint.EncodedLen(upper-1), n)
		test.ExpectEquality(t, varint.EncodedLen(upper), n+1)
		roundTrip(t, upper-1)
		roundTrip(t, upper)
	}
}

func TestAppend(t *testing.T) {
	b := []byte{'B', 'P', 'S', '1'}
	b = varint.Append(b, 4)
	b = varint.Append(b, 16512)
	test.ExpectEquality(t, len(b), 8)

	v, n := varint.Decode(b[4:])
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, v, uint64(4))

	v, n = varint.Decode(b[5:])
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, v, uint64(16512))
}

func TestTruncated(t *testing.T) {
	_, n := varint.Decode(nil)
	test.ExpectEquality(t, n, 0)

	_, n = varint.Decode([]byte{0x00, 0x7f})
	test.ExpectEquality(t, n, 0)
}

func TestOverflow(t *testing.T) {
	b := make([]byte, varint.MaxLen+1)
	for i := range b {
		b[i] = 0x7f
	}
	b[len(b)-1] |= 0x80

	_, n := varint.Decode(b)
	test.ExpectSuccess(t, n < 0)
}
