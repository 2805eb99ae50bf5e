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
	"fmt"
	"strings"
)

const (
	ipsMagic = "PATCH"
	ipsEOF   = 0x454f46

	// magic string and the end-of-file marker
	ipsMinSize = len(ipsMagic) + 3

	// a truncation length is a 24 bit number
	ipsTruncateSize = 3

	// the largest address that can be expressed in an IPS record
	ipsMaxAddress = 0xffffff
)

type ipsFormat struct{}

// Name implements the Format interface.
func (f ipsFormat) Name() string {
	return "IPS"
}

// Load implements the Format interface. Loading is the first of the two passes
// over the IPS records. Every record is validated and the extent of the
// patched data is measured.
func (f ipsFormat) Load(data []byte) (Patch, Result) {
	var m machine

	if len(data) < ipsMinSize {
		return nil, m.fail(PatchTooSmall)
	}
	if string(data[:len(ipsMagic)]) != ipsMagic {
		return nil, m.fail(PatchInvalidHeader)
	}

	m.advance(streamingInstructions)

	p := &IPSPatch{}
	offset := len(ipsMagic)

	u16 := func(b []byte) int {
		return int(b[0])<<8 | int(b[1])
	}
	u24 := func(b []byte) int {
		return int(b[0])<<16 | int(b[1])<<8 | int(b[2])
	}

	for {
		if offset+3 > len(data) {
			return nil, m.fail(PatchTruncated)
		}
		addr := u24(data[offset:])
		offset += 3

		if addr == ipsEOF {
			break // for loop
		}

		if offset+2 > len(data) {
			return nil, m.fail(PatchTruncated)
		}
		r := IPSRecord{
			Address: addr,
			Size:    u16(data[offset:]),
		}
		offset += 2

		if r.Size == 0 {
			if offset+3 > len(data) {
				return nil, m.fail(PatchTruncated)
			}
			r.RLE = true
			r.Size = u16(data[offset:])
			r.Value = data[offset+2]
			offset += 3
		} else {
			if r.Size > len(data)-offset {
				return nil, m.fail(PatchTruncated)
			}
			r.Data = data[offset : offset+r.Size]
			offset += r.Size
		}

		p.Records = append(p.Records, r)
		p.extent = max(p.extent, r.Address+r.Size)
	}

	m.advance(validatingTrailer)

	switch len(data) - offset {
	case 0:
	case ipsTruncateSize:
		p.Truncated = true
		p.Truncate = u24(data[offset:])
	default:
		return nil, m.fail(PatchInvalidTrailer)
	}

	m.done()

	return p, Success
}

// IPSRecord is a single record in an IPS patch.
type IPSRecord struct {
	// position in the target where the record is written
	Address int

	// number of bytes written by the record
	Size int

	// a run-length encoded record writes Value to Size bytes. otherwise the
	// bytes in Data are written
	RLE   bool
	Value byte
	Data  []byte
}

func (r IPSRecord) String() string {
	if r.RLE {
		return fmt.Sprintf("%06x: rle %d x %02x", r.Address, r.Size, r.Value)
	}
	return fmt.Sprintf("%06x: %d bytes", r.Address, r.Size)
}

// IPSPatch is a loaded IPS patch. It implements the Patch interface.
type IPSPatch struct {
	Records []IPSRecord

	// the truncation length that follows the end-of-file marker. only
	// meaningful if Truncated is true
	Truncated bool
	Truncate  int

	// the largest address written to by any record plus one
	extent int
}

func (p *IPSPatch) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("IPS: %d records", len(p.Records)))
	if p.Truncated {
		s.WriteString(fmt.Sprintf(", truncated to %d bytes", p.Truncate))
	}
	return s.String()
}

// Format implements the Patch interface.
func (p *IPSPatch) Format() Format {
	return IPS
}

// TargetSize implements the Patch interface. If the patch has a truncation
// length then that is the target size. Otherwise the target size is large
// enough for both the source data and every record.
func (p *IPSPatch) TargetSize(sourceSize int) int {
	if p.Truncated {
		return p.Truncate
	}
	return max(p.extent, sourceSize)
}

// Apply implements the Patch interface. This is the second pass over the IPS
// records.
func (p *IPSPatch) Apply(source []byte, target []byte) Result {
	var m machine

	size := p.TargetSize(len(source))
	if size > len(target) {
		return m.fail(TargetTooSmall)
	}
	target = target[:size]

	m.advance(streamingInstructions)

	n := copy(target, source)
	clear(target[n:])

	for _, r := range p.Records {
		if r.Address >= size {
			continue // for loop
		}

		// records that write past a truncation point are clipped
		end := min(r.Address+r.Size, size)
		dst := target[r.Address:end]

		if r.RLE {
			for i := range dst {
				dst[i] = r.Value
			}
		} else {
			copy(dst, r.Data)
		}
	}

	m.advance(validatingTrailer)

	return m.done()
}
