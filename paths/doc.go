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

// Package paths contains functions to prepare paths to ramus resources.
//
// The ResourcePath() function returns the supplied resource string prepended
// with the appropriate config directory. For example, the following will
// return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() depends on the build. For development builds
// the base path is ".ramus" in the current directory. For release builds (the
// "release" build tag) the base path is in the user's config directory as
// returned by os.UserConfigDir(). On a modern Linux system, the path returned
// for the example above will be:
//
//	/home/user/.config/ramus/preferences
//
// In both cases the directory is created if it does not already exist.
package paths
