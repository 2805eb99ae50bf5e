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

package archivefs

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/ramus-patch/ramus/curated"
)

// Archive gives direct access to the files in an archive. Unlike Path, an
// Archive is not navigated. Every file is addressed by its full name inside
// the archive.
type Archive struct {
	filename string
	zf       *zip.ReadCloser

	// regular files in the archive, indexed by name
	files map[string]*zip.File
	names []string
}

// OpenArchive is the preferred method of initialisation for the Archive type.
// The Close() function should be called when the Archive is no longer
// required.
func OpenArchive(filename string) (*Archive, error) {
	zf, err := zip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	a := &Archive{
		filename: filename,
		zf:       zf,
		files:    make(map[string]*zip.File),
	}

	for _, f := range zf.File {
		if f.FileInfo().IsDir() {
			continue // for loop
		}

		// names that would escape a destination directory are not allowed
		if !validName(f.Name) {
			zf.Close()
			return nil, curated.Errorf("archivefs: illegal name in archive: %s", f.Name)
		}

		a.files[f.Name] = f
		a.names = append(a.names, f.Name)
	}

	slices.Sort(a.names)

	return a, nil
}

func validName(name string) bool {
	if name == "" || path.IsAbs(name) || strings.Contains(name, `\`) {
		return false
	}
	for _, p := range strings.Split(name, "/") {
		if p == ".." {
			return false
		}
	}
	return true
}

// Close the archive.
func (a *Archive) Close() error {
	if err := a.zf.Close(); err != nil {
		return curated.Errorf("archivefs: %v", err)
	}
	return nil
}

// Filename returns the filename of the archive.
func (a *Archive) Filename() string {
	return a.filename
}

// Files returns the names of every regular file in the archive, in sorted
// order.
func (a *Archive) Files() []string {
	return slices.Clone(a.names)
}

// Has returns true if the archive contains the named file.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// Size returns the uncompressed size of the named file.
func (a *Archive) Size(name string) (int64, error) {
	f, ok := a.files[name]
	if !ok {
		return 0, curated.Errorf("archivefs: file not in archive: %s", name)
	}
	return int64(f.UncompressedSize64), nil
}

// Fetch returns the names of the files in the archive whose base name matches
// the pattern. Pattern syntax is the same as path.Match() and matching is
// case insensitive.
func (a *Archive) Fetch(pattern string) ([]string, error) {
	pattern = strings.ToLower(pattern)

	// check pattern syntax even if there are no files to match against
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	var m []string
	for _, n := range a.names {
		ok, _ := path.Match(pattern, strings.ToLower(path.Base(n)))
		if ok {
			m = append(m, n)
		}
	}
	return m, nil
}

// Extract returns the contents of the named file.
func (a *Archive) Extract(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, curated.Errorf("archivefs: file not in archive: %s", name)
	}

	r, err := f.Open()
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("archivefs: %s: %v", name, err)
	}

	return data, nil
}

// ExtractTo writes the contents of the named file to the filename dst. Any
// existing file is replaced.
func (a *Archive) ExtractTo(name string, dst string) error {
	f, ok := a.files[name]
	if !ok {
		return curated.Errorf("archivefs: file not in archive: %s", name)
	}

	r, err := f.Open()
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}

	_, err = io.Copy(w, r)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("archivefs: %s: %v", name, err)
	}

	return nil
}
