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


// Package chain applies a series of patches to a ROM, as described by a YAML
// script. The output of each patch is the source of the next.
//
// An example script:
//
//	source: game.sfc
//	target: game-translated.sfc.zst
//	lenient: false
//	patches:
//	  - translation.bps
//	  - fixes.ips
//
// Filenames are loaded with the romloader package and so can be HTTP URLs,
// paths into archives or zstd compressed files. Relative filenames are
// relative to the directory containing the script. The target is compressed
// if it has the .zst extension.
//
// If lenient is true then BPS patches are applied with the lenient rules of
// the patch.BPSLenient format.
package chain
