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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ramus-patch/ramus/archivefs"
	"github.com/ramus-patch/ramus/test"
)

// writeZip creates a zip file containing the named files. names ending with a
// slash are directories
func writeZip(t *testing.T, filename string, files map[string]string, order []string) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, n := range order {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = io.WriteString(w, files[n])
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
}

// makeTestDir creates the test directory structure and returns the path to
// the test directory
func makeTestDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testdir")
	test.DemandSuccess(t, os.Mkdir(dir, 0700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0600))

	writeZip(t, filepath.Join(dir, "testarchive.zip"), map[string]string{
		"archivefile1":             "archivefile1 contents\n",
		"archivefile2":             "archivefile2 contents\n",
		"archivedir/archivefile3":  "archivefile3 contents\n",
		"archivedir/archivedir2/x": "x\n",
	}, []string{
		"archivefile1",
		"archivefile2",
		"archivedir/",
		"archivedir/archivefile3",
		"archivedir/archivedir2/",
		"archivedir/archivedir2/x",
	})

	return dir
}

func TestArchivefsPath(t *testing.T) {
	testdir := makeTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	var path string
	var entries []archivefs.Node
	var err error

	// non-existant file
	path = filepath.Join(testdir, "..", "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	path = testdir
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// entries in a directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")

	// non-existant file in directory
	path = filepath.Join(testdir, "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real file in directory
	path = filepath.Join(testdir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "testfile")
	test.ExpectEquality(t, afs.Dir(), testdir)

	// calling List() when path is set to a file type (ie not a directory) the
	// list returned should be of the containing directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[0].IsArchive)

	// a real archive
	path = filepath.Join(testdir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// entries in an archive
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 3)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// file in a real archive
	path = filepath.Join(testdir, "testarchive.zip", "archivefile1")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory a real archive
	path = filepath.Join(testdir, "testarchive.zip", "archivedir")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// entries in an archive
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir2 archivefile3]")

	// file in a real archive
	path = filepath.Join(testdir, "testarchive.zip", "archivedir", "archivefile3")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// non-existant file in a real archive
	path = filepath.Join(testdir, "testarchive.zip", "archivedir", "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, afs.InArchive())
}

func TestArchivefsOpen(t *testing.T) {
	testdir := makeTestDir(t)

	r, sz, err := archivefs.Open(filepath.Join(testdir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 22)
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")

	d, err = archivefs.ReadFile(filepath.Join(testdir, "testfile"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")

	// a directory cannot be opened
	_, _, err = archivefs.Open(filepath.Join(testdir, "testarchive.zip", "archivedir"))
	test.ExpectFailure(t, err)
}

func TestArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pack.msu1")
	writeZip(t, fn, map[string]string{
		"msu1.rom":      "data",
		"program.rom":   "program",
		"track-1.pcm":   "one",
		"track-12.PCM":  "twelve",
		"dir/track.pcm": "nested",
	}, []string{"track-1.pcm", "track-12.PCM", "program.rom", "msu1.rom", "dir/track.pcm"})

	a, err := archivefs.OpenArchive(fn)
	test.DemandSuccess(t, err)
	defer a.Close()

	test.ExpectEquality(t, a.Filename(), fn)
	test.ExpectEquality(t, fmt.Sprintf("%s", a.Files()), "[dir/track.pcm msu1.rom program.rom track-1.pcm track-12.PCM]")
	test.ExpectSuccess(t, a.Has("msu1.rom"))
	test.ExpectFailure(t, a.Has("patch.bps"))

	sz, err := a.Size("program.rom")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, 7)

	m, err := a.Fetch("*.pcm")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", m), "[dir/track.pcm track-1.pcm track-12.PCM]")

	m, err = a.Fetch("*.bps")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(m), 0)

	_, err = a.Fetch("[")
	test.ExpectFailure(t, err)

	d, err := a.Extract("track-12.PCM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "twelve")

	_, err = a.Extract("missing")
	test.ExpectFailure(t, err)

	dst := filepath.Join(t.TempDir(), "out.rom")
	test.ExpectSuccess(t, a.ExtractTo("program.rom", dst))
	d, err = os.ReadFile(dst)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "program")
}

func TestArchiveIllegalName(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, fn, map[string]string{"../escape": "x"}, []string{"../escape"})

	_, err := archivefs.OpenArchive(fn)
	test.ExpectFailure(t, err)
}

func TestArchiveExtensions(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsArchiveExt("pack.msu1"))
	test.ExpectSuccess(t, archivefs.IsArchiveExt("roms.ZIP"))
	test.ExpectFailure(t, archivefs.IsArchiveExt("game.sfc"))
	test.ExpectEquality(t, archivefs.TrimArchiveExt("pack.msu1"), "pack")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("game.sfc"), "game.sfc")
	test.ExpectEquality(t, archivefs.RemoveArchiveExt("roms.zip/game.sfc"), "roms/game.sfc")
}
