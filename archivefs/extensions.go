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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types. MSU-1 packs are zip files with a different extension.
var ArchiveExtensions = [...]string{".ZIP", ".MSU1"}

// IsArchiveExt returns true if the filename has the extension of a supported
// archive type. The contents of the file are not checked.
func IsArchiveExt(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range ArchiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// RemoveArchiveExt removes the file extension of any supported/recognised
// archive type from within the string. Only the first instance of the extension
// is removed
func RemoveArchiveExt(s string) string {
	t := strings.ToUpper(s)
	for _, ext := range ArchiveExtensions {
		i := strings.Index(t, ext)
		if i >= 0 {
			return s[:i] + s[i+len(ext):]
		}
	}

	return s
}

// TrimArchiveExt removes the file extension of any supported/recognised archive
// type from the end of the string
func TrimArchiveExt(s string) string {
	if IsArchiveExt(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
