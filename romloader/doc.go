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

// Package romloader is used to load ROM and patch data.
//
// Data can be loaded from a local file, from a file inside an archive (see
// the archivefs package) or over HTTP. Files with the .zst extension are
// decompressed as they are loaded.
//
// The simplest use of the package:
//
//	ld := romloader.NewLoader("roms/game.sfc")
//	err := ld.Load()
//
// Once loaded the data is available in the Data field and the SHA-1 hash of
// the data in the Hash field. If the Hash field is set before calling Load()
// then the loaded data is checked against it.
//
// The PatchFormat() function chooses the patch.Format for a patch file
// according to its file extension.
package romloader
