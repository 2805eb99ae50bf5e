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

package patch

import (
	"encoding/binary"

	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/digest"
	"github.com/ramus-patch/ramus/patch/varint"
)

// BPSBuilder encodes a BPS patch from an explicit list of instructions. It
// does not compare source and target data to find the instructions.
//
// Copy instructions take absolute offsets. The relative cursor encoding used
// by the BPS format is handled by the builder.
//
// Errors are sticky. Once an instruction fails all further instructions are
// ignored and the error is returned by Bytes().
type BPSBuilder struct {
	sourceSize int
	targetSize int
	metadata   string

	instructions []byte

	out       int
	sourceRel int
	targetRel int

	err error
}

// NewBPSBuilder is the preferred method of initialisation for the BPSBuilder
// type.
func NewBPSBuilder(sourceSize int, targetSize int, metadata string) *BPSBuilder {
	return &BPSBuilder{
		sourceSize: sourceSize,
		targetSize: targetSize,
		metadata:   metadata,
	}
}

func (b *BPSBuilder) instruction(mode int, length int) bool {
	if b.err != nil || length <= 0 {
		return false
	}
	if b.out+length > b.targetSize {
		b.err = curated.Errorf("bps builder: instruction writes past end of target (%d > %d)", b.out+length, b.targetSize)
		return false
	}
	b.instructions = varint.Append(b.instructions, uint64(length-1)<<2|uint64(mode))
	return true
}

func (b *BPSBuilder) delta(rel int, offset int) {
	d := offset - rel
	if d < 0 {
		b.instructions = varint.Append(b.instructions, uint64(-d)<<1|1)
	} else {
		b.instructions = varint.Append(b.instructions, uint64(d)<<1)
	}
}

// SourceRead copies length bytes from the source at the current output
// position.
func (b *BPSBuilder) SourceRead(length int) {
	if b.err != nil || length <= 0 {
		return
	}
	if b.out+length > b.sourceSize {
		b.err = curated.Errorf("bps builder: source read past end of source (%d > %d)", b.out+length, b.sourceSize)
	}
	if !b.instruction(bpsSourceRead, length) {
		return
	}
	b.out += length
}

// TargetRead writes the data to the target.
func (b *BPSBuilder) TargetRead(data []byte) {
	if !b.instruction(bpsTargetRead, len(data)) {
		return
	}
	b.instructions = append(b.instructions, data...)
	b.out += len(data)
}

// SourceCopy copies length bytes from the source at the specified offset.
func (b *BPSBuilder) SourceCopy(length int, offset int) {
	if b.err != nil || length <= 0 {
		return
	}
	if offset < 0 || offset+length > b.sourceSize {
		b.err = curated.Errorf("bps builder: source copy out of range (%d to %d)", offset, offset+length)
	}
	if !b.instruction(bpsSourceCopy, length) {
		return
	}
	b.delta(b.sourceRel, offset)
	b.sourceRel = offset + length
	b.out += length
}

// TargetCopy copies length bytes from the target at the specified offset. The
// offset must be before the current output position but the range being
// copied can overlap the data being written.
func (b *BPSBuilder) TargetCopy(length int, offset int) {
	if b.err != nil || length <= 0 {
		return
	}
	if offset < 0 || offset >= b.out {
		b.err = curated.Errorf("bps builder: target copy from unwritten data (%d >= %d)", offset, b.out)
	}
	if !b.instruction(bpsTargetCopy, length) {
		return
	}
	b.delta(b.targetRel, offset)
	b.targetRel = offset + length
	b.out += length
}

// Bytes returns the encoded patch. The source and target data are required to
// create the checksums in the trailer.
func (b *BPSBuilder) Bytes(source []byte, target []byte) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(source) != b.sourceSize {
		return nil, curated.Errorf("bps builder: source data is %d bytes not %d", len(source), b.sourceSize)
	}
	if len(target) != b.targetSize {
		return nil, curated.Errorf("bps builder: target data is %d bytes not %d", len(target), b.targetSize)
	}

	data := []byte(bpsMagic)
	data = varint.Append(data, uint64(b.sourceSize))
	data = varint.Append(data, uint64(b.targetSize))
	data = varint.Append(data, uint64(len(b.metadata)))
	data = append(data, b.metadata...)
	data = append(data, b.instructions...)
	data = binary.LittleEndian.AppendUint32(data, digest.ChecksumCRC32(source))
	data = binary.LittleEndian.AppendUint32(data, digest.ChecksumCRC32(target))
	data = binary.LittleEndian.AppendUint32(data, digest.ChecksumCRC32(data))

	return data, nil
}

// IPSBuilder encodes an IPS patch from an explicit list of records.
//
// Errors are sticky. Once a record fails all further records are ignored and
// the error is returned by Bytes().
type IPSBuilder struct {
	records  []byte
	truncate int
	err      error
}

// NewIPSBuilder is the preferred method of initialisation for the IPSBuilder
// type.
func NewIPSBuilder() *IPSBuilder {
	return &IPSBuilder{
		records:  []byte(ipsMagic),
		truncate: -1,
	}
}

func (b *IPSBuilder) address(addr int) bool {
	if b.err != nil {
		return false
	}
	if addr < 0 || addr > ipsMaxAddress {
		b.err = curated.Errorf("ips builder: address out of range (%#x)", addr)
		return false
	}

	// an address that looks like the end-of-file marker would end the patch
	// early
	if addr == ipsEOF {
		b.err = curated.Errorf("ips builder: address is the end-of-file marker (%#x)", addr)
		return false
	}

	b.records = append(b.records, byte(addr>>16), byte(addr>>8), byte(addr))
	return true
}

// Literal adds one or more records that write data at the specified address.
// Data longer than the maximum record size is split over several records.
func (b *IPSBuilder) Literal(addr int, data []byte) {
	for len(data) > 0 {
		n := min(len(data), 0xffff)
		if !b.address(addr) {
			return
		}
		b.records = binary.BigEndian.AppendUint16(b.records, uint16(n))
		b.records = append(b.records, data[:n]...)
		data = data[n:]
		addr += n
	}
}

// RLE adds a run-length encoded record that writes count copies of value at
// the specified address.
func (b *IPSBuilder) RLE(addr int, count int, value byte) {
	if b.err == nil && (count <= 0 || count > 0xffff) {
		b.err = curated.Errorf("ips builder: rle count out of range (%d)", count)
	}
	if !b.address(addr) {
		return
	}
	b.records = append(b.records, 0x00, 0x00)
	b.records = binary.BigEndian.AppendUint16(b.records, uint16(count))
	b.records = append(b.records, value)
}

// Truncate adds a truncation length to the end of the patch.
func (b *IPSBuilder) Truncate(size int) {
	if b.err == nil && (size < 0 || size > ipsMaxAddress) {
		b.err = curated.Errorf("ips builder: truncation length out of range (%d)", size)
	}
	b.truncate = size
}

// Bytes returns the encoded patch.
func (b *IPSBuilder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	data := append([]byte{}, b.records...)
	data = append(data, "EOF"...)
	if b.truncate >= 0 {
		data = append(data, byte(b.truncate>>16), byte(b.truncate>>8), byte(b.truncate))
	}

	return data, nil
}
