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

// Package archivefs gives access to files inside archives as though they were
// part of the normal file system.
//
// The Path type represents a path that can pass through an archive. For
// example, the following path refers to a file inside a zip file:
//
//	roms/collection.zip/games/game.sfc
//
// The archive is treated as a directory. The Open() function is a convenient
// way of opening a file that may or may not be in an archive.
//
// The Archive type is used when the archive itself is the thing being worked
// on. MSU-1 packs are an example of this. Files in an Archive are addressed by
// their full name and can be found by pattern with the Fetch() function.
//
// Zip files are the only supported archive format. Files with the .msu1
// extension are zip files.
package archivefs
