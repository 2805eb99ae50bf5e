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


package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/ramus-patch/ramus/patch"
	"github.com/ramus-patch/ramus/test"
)

var (
	sourceData = []byte("the original data!")
	targetData = []byte("the PATCHED data!!")
)

// writeTestFiles creates source data and a BPS patch in the current directory
func writeTestFiles(t *testing.T) {
	t.Helper()

	b := patch.NewBPSBuilder(len(sourceData), len(targetData), "test patch")
	b.SourceRead(4)
	b.TargetRead([]byte("PATCHED"))
	b.SourceCopy(5, 12)
	b.TargetRead([]byte("!!"))
	data, err := b.Bytes(sourceData, targetData)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, os.WriteFile("source.sfc", sourceData, 0644))
	test.DemandSuccess(t, os.WriteFile("patch.bps", data, 0644))
	test.DemandSuccess(t, os.WriteFile("other.sfc", []byte("THE ORIGINAL DATA!"), 0644))
}

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	tw := &test.Writer{}
	v := launch(context.Background(), args, tw)
	return v, tw.String()
}

func TestApply(t *testing.T) {
	t.Chdir(t.TempDir())
	writeTestFiles(t)

	// APPLY is the default mode
	v, s := run(t, "-o", "out.sfc", "source.sfc", "patch.bps")
	test.ExpectEquality(t, v, 0, s)
	d, err := os.ReadFile("out.sfc")
	test.ExpectSuccess(t, err)
	test.ExpectBytes(t, d, targetData)

	v, s = run(t, "APPLY", "-o", "out.sfc.zst", "source.sfc", "patch.bps")
	test.ExpectEquality(t, v, 0, s)
	_, err = os.Stat("out.sfc.zst")
	test.ExpectSuccess(t, err)

	v, _ = run(t, "APPLY", "source.sfc")
	test.ExpectEquality(t, v, exitMode)

	v, _ = run(t, "APPLY", "source.sfc", "patch.bps", "extra")
	test.ExpectEquality(t, v, exitMode)

	v, s = run(t, "APPLY", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(s, "-lenient"), s)

	// arguments in the wrong order
	v, s = run(t, "APPLY", "patch.bps", "source.sfc")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(s, "the source must come before the patch"), s)

	// the source is too small even for a lenient patch
	test.DemandSuccess(t, os.WriteFile("small.sfc", []byte("the"), 0644))
	v, s = run(t, "APPLY", "-lenient", "small.sfc", "patch.bps")
	test.ExpectEquality(t, v, exitMode)
	test.ExpectSuccess(t, strings.Contains(s, "cannot be used with small"), s)

	v, s = run(t, "APPLY", "-lenient", "-o", "lenient.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, 0, s)
	d, err = os.ReadFile("lenient.sfc")
	test.ExpectSuccess(t, err)
	test.ExpectBytes(t, d, []byte("THE PATCHED DATA!!"))
}

func TestSavePreferences(t *testing.T) {
	t.Chdir(t.TempDir())
	writeTestFiles(t)

	v, s := run(t, "APPLY", "-lenient", "-save", "-o", "out.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, 0, s)

	d, err := os.ReadFile(".ramus/preferences")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "bps.lenient :: true"), string(d))

	// lenient is now the default
	v, s = run(t, "APPLY", "-o", "out.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, 0, s)
}

func TestPreferencesOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	writeTestFiles(t)

	v, s := run(t, "-prefs", "bps.lenient::true", "APPLY", "-o", "out.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, 0, s)

	// the override is not saved
	v, _ = run(t, "APPLY", "-o", "out.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, exitMode)

	// misspelled and malformed overrides are rejected before anything is done
	v, s = run(t, "-prefs", "bps.lenent::true", "APPLY", "-o", "out.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, exitArgs)
	test.ExpectSuccess(t, strings.Contains(s, "unknown preferences (bps.lenent)"), s)

	v, s = run(t, "-prefs", "bps.lenient", "APPLY", "-o", "out.sfc", "other.sfc", "patch.bps")
	test.ExpectEquality(t, v, exitArgs)
	test.ExpectSuccess(t, strings.Contains(s, "malformed override"), s)
}

func TestInfo(t *testing.T) {
	t.Chdir(t.TempDir())
	writeTestFiles(t)

	v, s := run(t, "INFO", "-memviz", "patch.dot", "patch.bps")
	test.ExpectEquality(t, v, 0, s)
	test.ExpectSuccess(t, strings.Contains(s, "test patch"), s)
	_, err := os.Stat("patch.dot")
	test.ExpectSuccess(t, err)

	v, _ = run(t, "INFO", "source.sfc")
	test.ExpectEquality(t, v, exitMode)

	v, _ = run(t, "INFO")
	test.ExpectEquality(t, v, exitMode)
}

func TestVersion(t *testing.T) {
	t.Chdir(t.TempDir())

	v, s := run(t, "VERSION")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(s, "ramus "), s)
}

func TestHelp(t *testing.T) {
	t.Chdir(t.TempDir())

	v, s := run(t, "-help")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(s, "APPLY"), s)
}
