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

// Package digest provides the checksums and hashes used to identify and
// verify binary data.
//
// The CRC32 type is a streaming accumulator for the IEEE polynomial CRC32
// used by the BPS patch format. Writing data in pieces produces the same result
// as a single call to ChecksumCRC32() over the same data.
//
// SHA1() returns the hex encoded hash of a complete buffer. It is used for
// identifying ROM data and not for any security purpose.
package digest
