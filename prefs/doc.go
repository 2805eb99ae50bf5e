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

// Package prefs facilitates the storing of preference values on disk. Values
// are typed (Bool, String, Int) and are added to a Disk instance with a key
// that identifies them in the preferences file.
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var lenient prefs.Bool
//	dsk.Add("bps.lenient", &lenient)
//	dsk.Load(true)
//
// The preferences file is a plain text file. The first line is the
// WarningBoilerPlate and each following line is a key/value pair:
//
//	bps.lenient :: false
//	msu1.method :: gamepak
//
// Preference values can be overridden for a session with a group of
// overrides, usually taken from the -prefs flag on the command line. Values in
// the group are used by Disk.Load() in preference to the values in the file.
//
//	prefs.PushOverrides("bps.lenient::true; msu1.workers::2")
package prefs
