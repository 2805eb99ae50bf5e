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

// Package patch applies BPS and IPS patches to binary data.
//
// Three formats are supported, each an implementation of the Format
// interface:
//
//	BPS         standard BPS. the source and target checksums must match
//	BPSLenient  BPS with the target size allowed to be larger than declared
//	            and with no source or target checksum checks
//	IPS         IPS including the RLE and truncation extensions
//
// Applying a patch is a three step protocol. The patch data is loaded, which
// validates the header and returns a Patch. The caller then allocates a target
// buffer of at least the size returned by Patch.TargetSize(). Finally the
// patch is applied to the source data, writing into the target buffer:
//
//	p, res := patch.BPS.Load(patchData)
//	if res != patch.Success {
//		return res
//	}
//	target := make([]byte, p.TargetSize(len(source)))
//	res = p.Apply(source, target)
//
// The Apply() function in this package performs all three steps.
//
// Every operation returns a Result. Results are values not panics and the
// Result type implements the error interface so that it can be wrapped by
// callers. The contents of the target buffer are unspecified if the Result is
// not Success.
//
// Multi-patching, where a BPS patch is applied to data that is not the source
// it was created from, is possible with the BPSLenient format. The strict BPS
// format reports SourceChecksumInvalid in this situation. Callers may treat
// that result as advisory (see Result.Advisory()) and retry with BPSLenient.
//
// The package does not create patches from source and target data. However,
// the BPSBuilder and IPSBuilder types can encode patches from explicit
// instructions.
//
// Patches are immutable once loaded and the package holds no global state. A
// loaded patch can be applied any number of times and from more than one
// goroutine, provided each call has its own target buffer.
package patch
