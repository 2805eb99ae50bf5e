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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for patched data when no output filename has
// been given. Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS.ext
//
// Where name is the filename of the source data without the path or the
// extension. The extension of the source data is retained. If there is no
// name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	ext := filepath.Ext(name)
	c := strings.TrimSpace(strings.TrimSuffix(filepath.Base(name), ext))
	if c == "." || c == string(filepath.Separator) {
		c = ""
	}

	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s%s", prepend, c, timestamp, ext)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
