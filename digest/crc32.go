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

package digest

import (
	"fmt"
	"hash/crc32"
)

// CRC32 accumulates a checksum over a stream of bytes. The zero value is
// ready to use.
type CRC32 struct {
	sum uint32
}

// Write implements the io.Writer interface. It never returns an error.
func (c *CRC32) Write(p []byte) (int, error) {
	c.sum = crc32.Update(c.sum, crc32.IEEETable, p)
	return len(p), nil
}

// Sum32 returns the checksum of all data added so far.
func (c CRC32) Sum32() uint32 {
	return c.sum
}

func (c CRC32) String() string {
	return fmt.Sprintf("%08X", c.sum)
}

// ChecksumCRC32 returns the IEEE CRC32 of data.
func ChecksumCRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
