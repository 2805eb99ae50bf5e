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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ramus-patch/ramus/prefs"
	"github.com/ramus-patch/ramus/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "ramus_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// adding the same key twice is not allowed
	test.ExpectFailure(t, dsk.Add("test", &w))
	test.ExpectFailure(t, dsk.Add("", &w))
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("bool", &b))
	test.ExpectSuccess(t, dsk.Add("string", &s))
	test.ExpectSuccess(t, dsk.Add("int", &n))

	// the file does not exist. loading with saveOnFail creates it
	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "bool :: false\nint :: 0\nstring :: \n")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, s.Set("gamepak"))
	test.ExpectSuccess(t, n.Set(4))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get(), prefs.Value(false))
	test.ExpectEquality(t, s.Get(), prefs.Value(""))
	test.ExpectEquality(t, n.Get(), prefs.Value(0))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectEquality(t, s.Get(), prefs.Value("gamepak"))
	test.ExpectEquality(t, n.Get(), prefs.Value(4))
}

func TestLoadOverrides(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("msu1.workers", &n))
	test.ExpectSuccess(t, n.Set(8))
	test.DemandSuccess(t, dsk.Save())

	test.DemandSuccess(t, prefs.PushOverrides("msu1.workers::2; msu1.wrokers::3"))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, n.Get(), prefs.Value(2))

	// the override has been consumed. the misspelled key has not
	test.ExpectEquality(t, strings.Join(prefs.PopOverrides(), ","), "msu1.wrokers")
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("bool", &b))
	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectFailure(t, dsk.Save())
}

func TestHooks(t *testing.T) {
	var b prefs.Bool

	var post bool
	b.SetHookPost(func(v prefs.Value) error {
		post = v.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, post)

	// the pre hook can prevent a value from changing
	b.SetHookPre(func(v prefs.Value) error {
		return fmt.Errorf("no")
	})
	test.ExpectFailure(t, b.Set(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
