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


package prefs

import (
	"slices"
	"strings"

	"github.com/ramus-patch/ramus/curated"
)

// separates the key from the value in an override string
const overrideSep = "::"

// each entry is a group of values that have not yet been used by Disk.Load()
var overrides []map[string]string

// PushOverrides parses a string of key/value pairs and adds it as a new group
// of overrides. Pairs are separated by semi-colons:
//
//	bps.lenient::true; msu1.workers::2
//
// Nothing is added if any of the pairs is malformed.
func PushOverrides(s string) error {
	group := make(map[string]string)

	for _, p := range strings.Split(s, ";") {
		if strings.TrimSpace(p) == "" {
			continue
		}

		k, v, ok := strings.Cut(p, overrideSep)
		k = strings.TrimSpace(k)
		if !ok || k == "" || strings.Contains(v, overrideSep) {
			return curated.Errorf("prefs: malformed override (%s)", strings.TrimSpace(p))
		}

		group[k] = strings.TrimSpace(v)
	}

	overrides = append(overrides, group)
	return nil
}

// PopOverrides forgets the most recent group added by PushOverrides(). The
// keys in the group that were never used by Disk.Load() are returned in
// sorted order. A key that is not used is usually a misspelling.
func PopOverrides() []string {
	if len(overrides) == 0 {
		return nil
	}

	group := overrides[len(overrides)-1]
	overrides = overrides[:len(overrides)-1]

	unused := make([]string, 0, len(group))
	for k := range group {
		unused = append(unused, k)
	}
	slices.Sort(unused)

	return unused
}

// takeOverride returns the value for key in the most recent group. the value
// is removed from the group.
func takeOverride(key string) (string, bool) {
	if len(overrides) == 0 {
		return "", false
	}

	group := overrides[len(overrides)-1]
	v, ok := group[key]
	if ok {
		delete(group, key)
	}
	return v, ok
}
