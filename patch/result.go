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

import "fmt"

// Result is the outcome of loading or applying a patch.
type Result int

// List of valid Result values.
const (
	Unknown Result = iota
	Success

	// the patch data is shorter than the smallest valid patch
	PatchTooSmall

	// the magic string does not match the format or the header fields cannot
	// be decoded
	PatchInvalidHeader

	// the data following the IPS end-of-file marker is neither empty nor a
	// truncation length
	PatchInvalidTrailer

	// IPS records continue past the end of the patch data
	PatchTruncated

	// the source data is smaller than the size declared by the patch
	SourceTooSmall

	// the target buffer is smaller than the required target size
	TargetTooSmall

	// the patch checksum does not match the patch data. the patch is corrupt
	PatchChecksumInvalid

	// the source checksum does not match the source data. the patch was
	// created for different source data
	SourceChecksumInvalid

	// the target checksum does not match the data written to the target
	TargetChecksumInvalid

	// an instruction refers to data outside of the patch, source or target
	OutOfBounds
)

func (r Result) String() string {
	switch r {
	case Unknown:
		return "unknown"
	case Success:
		return "success"
	case PatchTooSmall:
		return "patch_too_small"
	case PatchInvalidHeader:
		return "patch_invalid_header"
	case PatchInvalidTrailer:
		return "patch_invalid_trailer"
	case PatchTruncated:
		return "patch_truncated"
	case SourceTooSmall:
		return "source_too_small"
	case TargetTooSmall:
		return "target_too_small"
	case PatchChecksumInvalid:
		return "patch_checksum_invalid"
	case SourceChecksumInvalid:
		return "source_checksum_invalid"
	case TargetChecksumInvalid:
		return "target_checksum_invalid"
	case OutOfBounds:
		return "out_of_bounds"
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// Error implements the error interface.
func (r Result) Error() string {
	return fmt.Sprintf("patch: %s", r.describe())
}

func (r Result) describe() string {
	switch r {
	case Unknown:
		return "unknown result"
	case Success:
		return "success"
	case PatchTooSmall:
		return "patch is too small"
	case PatchInvalidHeader:
		return "patch header is invalid"
	case PatchInvalidTrailer:
		return "unexpected data after end of patch"
	case PatchTruncated:
		return "patch is truncated"
	case SourceTooSmall:
		return "source is too small"
	case TargetTooSmall:
		return "target is too small"
	case PatchChecksumInvalid:
		return "patch checksum is invalid"
	case SourceChecksumInvalid:
		return "source checksum is invalid"
	case TargetChecksumInvalid:
		return "target checksum is invalid"
	case OutOfBounds:
		return "instruction is out of bounds"
	}
	return r.String()
}

// Err returns nil if the Result is Success. Otherwise the Result is returned
// as an error.
func (r Result) Err() error {
	if r == Success {
		return nil
	}
	return r
}

// Category groups results by how a caller should react to them.
type Category int

// List of valid Category values.
const (
	NoError Category = iota

	// the patch data is malformed. retrying with the same patch is pointless
	FormatError

	// a buffer is too small. the caller can retry with a different source or
	// a larger target buffer
	SizeError

	// a checksum does not match. see Result.Advisory()
	ChecksumError

	// the patch refers to data outside of a buffer
	BoundsError
)

func (c Category) String() string {
	switch c {
	case NoError:
		return "no error"
	case FormatError:
		return "format error"
	case SizeError:
		return "size error"
	case ChecksumError:
		return "checksum error"
	case BoundsError:
		return "bounds error"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Category returns the category of the Result.
func (r Result) Category() Category {
	switch r {
	case Success:
		return NoError
	case SourceTooSmall, TargetTooSmall:
		return SizeError
	case PatchChecksumInvalid, SourceChecksumInvalid, TargetChecksumInvalid:
		return ChecksumError
	case OutOfBounds:
		return BoundsError
	}
	return FormatError
}

// Advisory returns true if the Result can be overridden by the caller. This
// is only true for SourceChecksumInvalid, which means the patch was created
// for other source data. The caller may choose to proceed anyway by using the
// BPSLenient format.
func (r Result) Advisory() bool {
	return r == SourceChecksumInvalid
}

// Recoverable returns true if the same patch can be used again with different
// source data or a different target buffer.
func (r Result) Recoverable() bool {
	return r.Category() == SizeError || r.Advisory()
}
