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

// Package logger is the central log for the application. Entries are tagged
// and adjacent entries with the same tag and detail are merged.
//
// Log entries are only made if the Permission argument allows it. Use Allow
// for entries that should always be made.
//
//	logger.Log(logger.Allow, "romloader", "loading from zip archive")
//	logger.Logf(logger.Allow, "msu1", "track %d: %s", n, name)
//
// The log is not written anywhere by default. The SetEcho() function can be
// used to write entries as they are made, optionally through a Colorizer.
package logger
