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
	"fmt"

	"github.com/ramus-patch/ramus/digest"
	"github.com/ramus-patch/ramus/patch/varint"
)

const (
	bpsMagic = "BPS1"

	// three checksums of four bytes each
	bpsTrailerSize = 12

	// magic string, three single byte numbers and the trailer
	bpsMinSize = len(bpsMagic) + 3 + bpsTrailerSize
)

// BPS instruction modes. the mode is stored in the lower two bits of the
// instruction number
const (
	bpsSourceRead = iota
	bpsTargetRead
	bpsSourceCopy
	bpsTargetCopy
)

type bpsFormat struct {
	lenient bool
}

// Name implements the Format interface.
func (f bpsFormat) Name() string {
	if f.lenient {
		return "BPS (lenient)"
	}
	return "BPS"
}

// Load implements the Format interface.
func (f bpsFormat) Load(data []byte) (Patch, Result) {
	var m machine

	if len(data) < bpsMinSize {
		return nil, m.fail(PatchTooSmall)
	}
	if string(data[:len(bpsMagic)]) != bpsMagic {
		return nil, m.fail(PatchInvalidHeader)
	}

	p := &BPSPatch{
		format: f,
		data:   data,
	}

	// header fields must not reach into the trailer
	hdr := data[:len(data)-bpsTrailerSize]
	offset := len(bpsMagic)

	field := func() (uint64, bool) {
		v, n := varint.Decode(hdr[offset:])
		if n <= 0 {
			return 0, false
		}
		offset += n
		return v, true
	}

	var ok bool
	var metadataSize uint64
	if p.DeclaredSourceSize, ok = field(); !ok || !sizeInRange(p.DeclaredSourceSize) {
		return nil, m.fail(PatchInvalidHeader)
	}
	if p.DeclaredTargetSize, ok = field(); !ok || !sizeInRange(p.DeclaredTargetSize) {
		return nil, m.fail(PatchInvalidHeader)
	}
	if metadataSize, ok = field(); !ok || metadataSize > uint64(len(hdr)-offset) {
		return nil, m.fail(PatchInvalidHeader)
	}

	p.Metadata = string(hdr[offset : offset+int(metadataSize)])
	p.instructions = offset + int(metadataSize)

	trailer := data[len(data)-bpsTrailerSize:]
	p.SourceChecksum = binary.LittleEndian.Uint32(trailer[0:])
	p.TargetChecksum = binary.LittleEndian.Uint32(trailer[4:])
	p.PatchChecksum = binary.LittleEndian.Uint32(trailer[8:])

	return p, Success
}

// BPSPatch is a loaded BPS patch. It implements the Patch interface.
type BPSPatch struct {
	format bpsFormat
	data   []byte

	// offset of the first instruction in data
	instructions int

	// sizes declared by the patch header
	DeclaredSourceSize uint64
	DeclaredTargetSize uint64
	Metadata           string

	// checksums stored in the patch trailer
	SourceChecksum uint32
	TargetChecksum uint32
	PatchChecksum  uint32
}

func (p *BPSPatch) String() string {
	return fmt.Sprintf("%s: source %d bytes [%08X] -> target %d bytes [%08X]",
		p.format.Name(), p.DeclaredSourceSize, p.SourceChecksum, p.DeclaredTargetSize, p.TargetChecksum)
}

// Format implements the Patch interface.
func (p *BPSPatch) Format() Format {
	return p.format
}

// Lenient returns true if the patch was loaded with the BPSLenient format.
func (p *BPSPatch) Lenient() bool {
	return p.format.lenient
}

// TargetSize implements the Patch interface. For the lenient format the target
// size is the larger of the declared target size and the source size.
func (p *BPSPatch) TargetSize(sourceSize int) int {
	size := int(p.DeclaredTargetSize)
	if p.format.lenient && sourceSize > size {
		return sourceSize
	}
	return size
}

// Apply implements the Patch interface.
func (p *BPSPatch) Apply(source []byte, target []byte) Result {
	var m machine

	if p.DeclaredSourceSize > uint64(len(source)) {
		return m.fail(SourceTooSmall)
	}

	size := p.TargetSize(len(source))
	if size > len(target) {
		return m.fail(TargetTooSmall)
	}

	m.advance(streamingInstructions)

	ap := bpsApplier{
		stream: p.data[:len(p.data)-bpsTrailerSize],
		offset: p.instructions,
		source: source,
		target: target[:size],
	}
	ap.patchCRC.Write(p.data[:p.instructions])

	streamed := Success
	for ap.offset < len(ap.stream) {
		streamed = ap.instruction()
		if streamed != Success {
			break // for loop
		}
	}

	m.advance(validatingTrailer)

	// the patch checksum covers everything except the patch checksum itself.
	// any instruction data left unread because of an error in the stream is
	// included so that a corrupt patch is reported as such
	ap.patchCRC.Write(ap.stream[ap.offset:])
	ap.patchCRC.Write(p.data[len(p.data)-bpsTrailerSize : len(p.data)-4])
	if ap.patchCRC.Sum32() != p.PatchChecksum {
		return m.fail(PatchChecksumInvalid)
	}

	if !p.format.lenient && digest.ChecksumCRC32(source) != p.SourceChecksum {
		return m.fail(SourceChecksumInvalid)
	}

	if streamed != Success {
		return m.fail(streamed)
	}

	if p.format.lenient {
		// tail pass-through. data not written by the instructions is copied
		// from the same position in the source
		if ap.out < size {
			n := 0
			if ap.out < len(source) {
				n = copy(ap.target[ap.out:], source[ap.out:])
			}
			clear(ap.target[ap.out+n:])
		}
	} else if ap.out != size || ap.targetCRC.Sum32() != p.TargetChecksum {
		return m.fail(TargetChecksumInvalid)
	}

	return m.done()
}

// bpsApplier holds the state of a single Apply() call
type bpsApplier struct {
	// the patch data up to but not including the trailer
	stream []byte
	offset int

	source []byte
	target []byte

	// output position and the two relative cursors
	out       int
	sourceRel int
	targetRel int

	patchCRC  digest.CRC32
	targetCRC digest.CRC32
}

// number decodes the next varint in the instruction stream
func (ap *bpsApplier) number() (uint64, bool) {
	v, n := varint.Decode(ap.stream[ap.offset:])
	if n <= 0 {
		return 0, false
	}
	ap.patchCRC.Write(ap.stream[ap.offset : ap.offset+n])
	ap.offset += n
	return v, true
}

// cursor adjusts the relative cursor by the next signed number in the
// instruction stream. the limit argument is the size of the buffer being
// copied from
func (ap *bpsApplier) cursor(rel int, limit int) (int, bool) {
	v, ok := ap.number()
	if !ok {
		return 0, false
	}

	// the magnitude of a valid delta can never be larger than the buffer
	// being copied from
	mag := v >> 1
	if mag > uint64(limit) {
		return 0, false
	}

	if v&1 == 1 {
		rel -= int(mag)
	} else {
		rel += int(mag)
	}
	if rel < 0 {
		return 0, false
	}

	return rel, true
}

// instruction decodes and applies the next instruction in the stream
func (ap *bpsApplier) instruction() Result {
	n, ok := ap.number()
	if !ok {
		return OutOfBounds
	}

	mode := n & 0x03
	length := (n >> 2) + 1
	if length > uint64(len(ap.target)-ap.out) {
		return OutOfBounds
	}
	l := int(length)
	dst := ap.target[ap.out : ap.out+l]

	switch mode {
	case bpsSourceRead:
		if ap.out+l > len(ap.source) {
			return OutOfBounds
		}
		copy(dst, ap.source[ap.out:])

	case bpsTargetRead:
		if l > len(ap.stream)-ap.offset {
			return OutOfBounds
		}
		data := ap.stream[ap.offset : ap.offset+l]
		ap.patchCRC.Write(data)
		ap.offset += l
		copy(dst, data)

	case bpsSourceCopy:
		rel, ok := ap.cursor(ap.sourceRel, len(ap.source))
		if !ok || rel+l > len(ap.source) {
			return OutOfBounds
		}
		copy(dst, ap.source[rel:])
		ap.sourceRel = rel + l

	case bpsTargetCopy:
		rel, ok := ap.cursor(ap.targetRel, len(ap.target))
		if !ok || rel >= ap.out {
			return OutOfBounds
		}

		// the regions may overlap, in which case the copy repeats the data
		// that has just been written. the built-in copy() function does not
		// behave like that
		for i := range dst {
			dst[i] = ap.target[rel+i]
		}
		ap.targetRel = rel + l
	}

	ap.targetCRC.Write(dst)
	ap.out += l

	return Success
}
