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

package romloader

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/ramus-patch/ramus/archivefs"
	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/digest"
)

// the largest amount of data that will be loaded from an HTTP URL or produced
// by decompression. this is much bigger than any ROM or patch
var maxDataSize int64 = 1 << 30

// client for loading from HTTP URLs
var client = &http.Client{Timeout: 30 * time.Second}

// Loader is used to specify the data to load and to hold the data once it has
// been loaded.
type Loader struct {
	// filename of the data to load. can be a path into an archive or an HTTP
	// URL
	Filename string

	// expected SHA-1 hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	//
	// for compressed files the hash is of the decompressed data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	// the data was decompressed when it was loaded
	Compressed bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. The path and
// file extensions are removed.
func (ld Loader) ShortName() string {
	s := trimCompressedExt(filepath.Base(ld.Filename))
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// Load the data. Loader filenames with a valid scheme will use that method to
// load the data. Currently supported schemes are HTTP, HTTPS and local files.
// Local files can be inside an archive.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := client.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("http status %s", resp.Status))
		}

		data, err = io.ReadAll(io.LimitReader(resp.Body, maxDataSize+1))
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		if int64(len(data)) > maxDataSize {
			return curated.Errorf(TooLarge, ld.Filename)
		}

	case "file":
		data, err = archivefs.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if strings.ToUpper(filepath.Ext(ld.Filename)) == CompressedExtension {
		data, err = decompress(data)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return curated.Errorf(TooLarge, ld.Filename)
		}
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		ld.Compressed = true
	}

	// an empty file is still loaded data
	if data == nil {
		data = []byte{}
	}

	hash := digest.SHA1(data)

	// check for hash consistency
	if ld.Hash != "" && !strings.EqualFold(ld.Hash, hash) {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxDataSize)))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// WriteFile writes data to the named file. If the filename has the compressed
// file extension then the data is compressed with zstd.
func WriteFile(filename string, data []byte) error {
	if strings.ToUpper(filepath.Ext(filename)) == CompressedExtension {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return curated.Errorf("romloader: %v", err)
		}
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	return nil
}
