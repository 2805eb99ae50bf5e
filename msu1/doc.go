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


// Package msu1 exports MSU-1 packs to a form that can be used by an emulator
// or by flash cartridge hardware.
//
// An MSU-1 pack is a zip archive, usually with the .msu1 extension. It
// contains the msu1.rom data file, audio tracks and either the program.rom
// file or a BPS patch (patch.bps) that creates the program from a ROM
// supplied by the user.
//
// Export() writes the contents of the pack to a destination directory next to
// the pack. The layout of the directory depends on the export Method:
//
//	GamePak:  <name>.sfc/program.rom
//	          <name>.sfc/msu1.rom
//	          <name>.sfc/track-<n>.pcm
//
//	SD2SNES:  SD2SNES-Snes9x/<name>.sfc
//	          SD2SNES-Snes9x/<name>.msu
//	          SD2SNES-Snes9x/<name>-<n>.pcm
//
// The track number <n> is the first run of digits in the filename of the
// track. Tracks in WAV or MP3 format are converted to MSU-1 PCM data as they
// are exported. The audio must be stereo or mono at 44100Hz.
package msu1
