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


package msu1

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ramus-patch/ramus/archivefs"
	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/logger"
)

// Method specifies the layout of an exported pack.
type Method int

// List of valid Method values.
const (
	GamePak Method = iota
	SD2SNES
)

func (m Method) String() string {
	switch m {
	case GamePak:
		return "GamePak"
	case SD2SNES:
		return "SD2SNES"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod returns the Method with the name s. Case is ignored.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(s) {
	case "GAMEPAK":
		return GamePak, nil
	case "SD2SNES":
		return SD2SNES, nil
	}
	return GamePak, curated.Errorf(UnknownMethod, s)
}

// Options for the Export() function.
type Options struct {
	// filename of the MSU-1 pack
	Pack string

	// filename of the ROM to patch. required only if the pack contains a
	// patch. can be any filename accepted by romloader.Loader
	ROM string

	Method Method

	// output name. if empty the name of the pack without the extension is
	// used
	Name string

	// apply the patch with lenient BPS rules. checksums of the ROM and the
	// result are ignored and the ROM is allowed to be bigger than the size
	// declared by the patch
	ViolateBPS bool

	// loop point (in samples) written to converted tracks
	Loop uint32

	// maximum number of files exported at once. values less than one
	// indicate the number of CPUs
	Workers int

	// permission to log. logger.Allow if nil
	Log logger.Permission

	// called after every exported file. calls are never concurrent
	Progress func(done int, total int)
}

// Sentinel error patterns.
const (
	UnknownMethod      = "msu1: unknown export method (%s)"
	InvalidPack        = "msu1: invalid pack: %v"
	InvalidName        = "msu1: invalid output name (%s)"
	ROMRequired        = "msu1: a ROM is required to apply the patch"
	UnsupportedAudio   = "msu1: unsupported audio format (%s)"
	InvalidAudio       = "msu1: %s: %v"
	InvalidTrackNumber = "msu1: invalid track number in filename (%s)"
	DuplicateTrack     = "msu1: duplicate track number (%d)"
	PatchHeaderInvalid = "msu1: the BPS patch's header is invalid: %v"
	PatchCorrupt       = "msu1: the BPS patch is corrupt: %v"
	ROMTooSmall        = "msu1: the ROM is too small: %v"
	ROMIncompatible    = "msu1: the patch is not compatible with the ROM (expected CRC32 %08X): %v"
)

// OutputName returns the name used for exported files.
func (opts Options) OutputName() string {
	if opts.Name != "" {
		return opts.Name
	}
	base := filepath.Base(opts.Pack)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Destination returns the directory the pack will be exported to.
func (opts Options) Destination() string {
	dir := filepath.Dir(opts.Pack)
	if opts.Method == SD2SNES {
		return filepath.Join(dir, "SD2SNES-Snes9x")
	}
	return filepath.Join(dir, opts.OutputName()+".sfc")
}

func (opts Options) workers() int {
	if opts.Workers < 1 {
		return runtime.NumCPU()
	}
	return opts.Workers
}

func (opts Options) log() logger.Permission {
	if opts.Log == nil {
		return logger.Allow
	}
	return opts.Log
}

// Validate checks that the pack can be exported with the options.
func Validate(opts Options) error {
	pack, err := archivefs.OpenArchive(opts.Pack)
	if err != nil {
		return curated.Errorf(InvalidPack, err)
	}
	defer pack.Close()
	return validate(pack, opts)
}

func validate(pack *archivefs.Archive, opts Options) error {
	if !pack.Has(msu1ROM) {
		return curated.Errorf(InvalidPack, fmt.Sprintf("no %s file", msu1ROM))
	}
	if !pack.Has(programROM) && !pack.Has(patchFile) {
		return curated.Errorf(InvalidPack, fmt.Sprintf("no %s or %s file", programROM, patchFile))
	}
	if pack.Has(patchFile) && opts.ROM == "" {
		return curated.Errorf(ROMRequired)
	}

	switch opts.Method {
	case GamePak, SD2SNES:
	default:
		return curated.Errorf(UnknownMethod, opts.Method)
	}

	name := opts.OutputName()
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return curated.Errorf(InvalidName, name)
	}

	return nil
}
