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


package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when ramus refers to itself.
const ApplicationName = "ramus"

// release number. set with the linker:
//
//	go build -ldflags "-X github.com/ramus-patch/ramus/version.number=v1.0.0"
var number string

var version string
var revision string

// Version returns the version string, the VCS revision and whether the binary
// is a numbered release.
//
// A binary without a release number reports its version as "unreleased" if
// it was built from a VCS checkout and "local" otherwise. The revision is
// suffixed with "+dirty" if the checkout had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// settings extracts the VCS fields from the build information
func settings(info *debug.BuildInfo) (vcs bool, rev string, modified bool) {
	if info == nil {
		return false, "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return vcs, rev, modified
}

// describe returns the version and revision strings for the release number
// and VCS fields
func describe(num string, vcs bool, rev string, modified bool) (string, string) {
	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case num != "":
		return num, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

func init() {
	info, _ := debug.ReadBuildInfo()
	vcs, rev, modified := settings(info)
	version, revision = describe(number, vcs, rev, modified)
}
