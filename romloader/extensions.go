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

package romloader

import (
	"path/filepath"
	"strings"

	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/patch"
)

// CompressedExtension is the file extension of zstd compressed files.
const CompressedExtension = ".ZST"

// PatchExtensions is the list of file extensions that are recognised as patch
// files.
var PatchExtensions = [...]string{".BPS", ".IPS"}

// Sentinel error patterns.
const (
	UnsupportedPatch = "romloader: unsupported patch format (%s)"
	TooLarge         = "romloader: data is too large (%s)"
)

// trimCompressedExt removes the compressed file extension from the end of
// the filename if it is present.
func trimCompressedExt(filename string) string {
	if strings.ToUpper(filepath.Ext(filename)) == CompressedExtension {
		return strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	return filename
}

// IsPatch returns true if the filename has the extension of a patch file. A
// compressed file extension is ignored.
func IsPatch(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(trimCompressedExt(filename)))
	for _, e := range PatchExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// PatchFormat returns the patch.Format that should be used for the patch
// filename. The choice is made by the file extension only. If lenient is true
// then BPS patches use the patch.BPSLenient format.
func PatchFormat(filename string, lenient bool) (patch.Format, error) {
	ext := strings.ToUpper(filepath.Ext(trimCompressedExt(filename)))
	switch ext {
	case ".BPS":
		if lenient {
			return patch.BPSLenient, nil
		}
		return patch.BPS, nil
	case ".IPS":
		return patch.IPS, nil
	}
	return nil, curated.Errorf(UnsupportedPatch, filepath.Base(filename))
}
