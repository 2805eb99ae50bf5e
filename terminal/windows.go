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


//go:build windows

package terminal

import "os"

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(_ *os.File) bool {
	return false
}

// Width returns the number of columns in the terminal connected to the file.
// Returns zero if the file is not a terminal.
func Width(_ *os.File) int {
	return 0
}
