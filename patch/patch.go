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

import "math"

// MaxSize is the largest source or target size that a patch can declare and
// the largest target buffer that will be allocated for a patch.
const MaxSize = math.MaxUint32

// Format is implemented by every supported patch format.
type Format interface {
	// Name of the format. suitable for displaying to the user
	Name() string

	// Load validates the patch data and returns a Patch ready to be applied.
	// The data is borrowed by the Patch and must not be modified while the
	// Patch is in use.
	//
	// The Patch is nil if the Result is not Success.
	Load(data []byte) (Patch, Result)
}

// Patch is a loaded patch.
type Patch interface {
	// Format returns the Format that loaded the patch
	Format() Format

	// TargetSize returns the size of the target buffer required to apply the
	// patch to source data of the specified size
	TargetSize(sourceSize int) int

	// Apply the patch to source, writing the result to target. The target
	// buffer must be at least as big as the value returned by TargetSize().
	// Only the first TargetSize() bytes of target are written.
	Apply(source []byte, target []byte) Result
}

// The supported patch formats.
var (
	BPS        Format = bpsFormat{}
	BPSLenient Format = bpsFormat{lenient: true}
	IPS        Format = ipsFormat{}
)

// Apply loads the patch data using the specified format and applies it to
// source. A new target buffer of the correct size is allocated and returned.
func Apply(f Format, data []byte, source []byte) ([]byte, Result) {
	p, res := f.Load(data)
	if res != Success {
		return nil, res
	}

	target, res := NewTarget(p, len(source))
	if res != Success {
		return nil, res
	}

	res = p.Apply(source, target)
	if res != Success {
		return nil, res
	}

	return target, Success
}

// NewTarget allocates a target buffer for the patch. TargetTooSmall is
// returned if the required size is larger than MaxSize.
func NewTarget(p Patch, sourceSize int) ([]byte, Result) {
	size := p.TargetSize(sourceSize)
	if size < 0 || !sizeInRange(uint64(size)) {
		return nil, TargetTooSmall
	}
	return make([]byte, size), Success
}

func sizeInRange(size uint64) bool {
	return size <= MaxSize && size <= math.MaxInt
}
