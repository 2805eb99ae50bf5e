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

package digest_test

import (
	"testing"

	"github.com/ramus-patch/ramus/digest"
	"github.com/ramus-patch/ramus/test"
)

func TestCRC32(t *testing.T) {
	var c digest.CRC32
	test.ExpectEquality(t, c.Sum32(), uint32(0))

	// well known check value for the IEEE polynomial
	c.Write([]byte("123456789"))
	test.ExpectEquality(t, c.Sum32(), uint32(0xcbf43926))
	test.ExpectEquality(t, c.String(), "CBF43926")
}

func TestCRC32Streaming(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	var c digest.CRC32
	c.Write(data[:10])
	for _, b := range data[10:20] {
		c.Write([]byte{b})
	}
	c.Write(nil)
	c.Write(data[20:])

	test.ExpectEquality(t, c.Sum32(), digest.ChecksumCRC32(data))
}

func TestSHA1(t *testing.T) {
	test.ExpectEquality(t, digest.SHA1([]byte("abc")), "a9993e364706816aba3e25717850c26c9cd0d89d")
}
