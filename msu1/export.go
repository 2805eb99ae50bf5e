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
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/ramus-patch/ramus/archivefs"
	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/logger"
	"github.com/ramus-patch/ramus/patch"
	"github.com/ramus-patch/ramus/romloader"
	"golang.org/x/sync/errgroup"
)

const logTag = "msu1"

// names of files in a pack with special meaning
const (
	msu1ROM    = "msu1.rom"
	programROM = "program.rom"
	patchFile  = "patch.bps"
)

// the files that make up the program ROM for the SD2SNES method, in the order
// in which they are concatenated
var romPieces = [...]string{
	"program.rom",
	"data.rom",
	"slot-*.rom",
	"*.boot.rom",
	"*.program.rom",
	"*.data.rom",
}

// file extensions of audio tracks
var trackExtensions = [...]string{".pcm", ".wav", ".ogg", ".flac", ".mp3"}

// maximum track number supported by the MSU-1
const maxTrack = 0xffff

// Report is the result of a successful export.
type Report struct {
	// directory the pack was exported to
	Destination string

	// filename of the exported program ROM
	ROM string

	// track numbers of the exported audio, in ascending order
	Tracks []int
}

func (rep Report) String() string {
	return fmt.Sprintf("%s: %d tracks", rep.Destination, len(rep.Tracks))
}

// a single file to export from the pack
type job struct {
	name string
	dst  string

	// nil if the file is to be copied without conversion
	convert func(data []byte, loop uint32) ([]byte, error)
}

// Export the MSU-1 pack according to the options. Files are exported
// concurrently and the export is abandoned if the context is cancelled. Files
// that were exported before an error are not removed.
func Export(ctx context.Context, opts Options) (Report, error) {
	pack, err := archivefs.OpenArchive(opts.Pack)
	if err != nil {
		return Report{}, curated.Errorf(InvalidPack, err)
	}
	defer pack.Close()

	if err := validate(pack, opts); err != nil {
		return Report{}, err
	}

	rep := Report{
		Destination: opts.Destination(),
	}

	jobs, err := plan(pack, opts, &rep)
	if err != nil {
		return Report{}, err
	}

	// problems with the ROM or patch are found before anything is written
	rom, err := program(pack, opts)
	if err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, curated.Errorf("msu1: %v", err)
	}

	if err := os.MkdirAll(rep.Destination, 0755); err != nil {
		return Report{}, curated.Errorf("msu1: %v", err)
	}

	if rom != nil {
		if err := os.WriteFile(rep.ROM, rom, 0644); err != nil {
			return Report{}, curated.Errorf("msu1: %v", err)
		}
		logger.Logf(opts.log(), logTag, "wrote %s (%s)", filepath.Base(rep.ROM), humanize.Bytes(uint64(len(rom))))
	}

	var crit sync.Mutex
	var done int

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := j.export(pack, opts); err != nil {
				return err
			}

			crit.Lock()
			defer crit.Unlock()
			done++
			if opts.Progress != nil {
				opts.Progress(done, len(jobs))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if !curated.IsAny(err) {
			err = curated.Errorf("msu1: %v", err)
		}
		return Report{}, err
	}

	logger.Logf(opts.log(), logTag, "exported %d files to %s", len(jobs), rep.Destination)

	return rep, nil
}

// plan the export of every file in the pack. the ROM and Tracks fields of the
// report are filled in
func plan(pack *archivefs.Archive, opts Options, rep *Report) ([]job, error) {
	name := opts.OutputName()
	patched := pack.Has(patchFile)

	var jobs []job

	for _, f := range pack.Files() {
		ext := strings.ToLower(path.Ext(f))

		if slices.Contains(trackExtensions[:], ext) {
			id, err := trackID(path.Base(f))
			if err != nil {
				return nil, err
			}
			if slices.Contains(rep.Tracks, id) {
				return nil, curated.Errorf(DuplicateTrack, id)
			}
			rep.Tracks = append(rep.Tracks, id)

			var out string
			if opts.Method == SD2SNES {
				out = fmt.Sprintf("%s-%d", name, id)
			} else {
				out = fmt.Sprintf("track-%d", id)
			}

			j := job{name: f}
			switch ext {
			case ".pcm":
				j.dst = out + ext
			case ".wav":
				j.dst = out + ".pcm"
				j.convert = ConvertWAV
			case ".mp3":
				j.dst = out + ".pcm"
				j.convert = ConvertMP3
			default:
				return nil, curated.Errorf(UnsupportedAudio, f)
			}

			jobs = append(jobs, j)
			continue // for loop
		}

		switch opts.Method {
		case GamePak:
			if ext == ".bps" {
				continue // for loop
			}

			if f == programROM {
				if patched {
					continue // for loop
				}
				rep.ROM = filepath.Join(rep.Destination, programROM)
			}

			jobs = append(jobs, job{name: f, dst: filepath.FromSlash(f)})

		case SD2SNES:
			if f == msu1ROM {
				jobs = append(jobs, job{name: f, dst: name + ".msu"})
			}
		}
	}

	for i := range jobs {
		jobs[i].dst = filepath.Join(rep.Destination, jobs[i].dst)
	}

	if patched {
		rep.ROM = filepath.Join(rep.Destination, programROM)
	}
	if opts.Method == SD2SNES {
		rep.ROM = filepath.Join(rep.Destination, name+".sfc")
	}

	slices.Sort(rep.Tracks)

	return jobs, nil
}

// trackID returns the value of the first run of digits in the filename
func trackID(filename string) (int, error) {
	start := strings.IndexAny(filename, "0123456789")
	if start < 0 {
		return 0, curated.Errorf(InvalidTrackNumber, filename)
	}

	end := start
	for end < len(filename) && filename[end] >= '0' && filename[end] <= '9' {
		end++
	}

	id, err := strconv.Atoi(filename[start:end])
	if err != nil || id > maxTrack {
		return 0, curated.Errorf(InvalidTrackNumber, filename)
	}

	return id, nil
}

func (j job) export(pack *archivefs.Archive, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(j.dst), 0755); err != nil {
		return curated.Errorf("msu1: %v", err)
	}

	if j.convert == nil {
		if err := pack.ExtractTo(j.name, j.dst); err != nil {
			return curated.Errorf("msu1: %v", err)
		}
		logger.Logf(opts.log(), logTag, "exported %s", j.name)
		return nil
	}

	data, err := pack.Extract(j.name)
	if err != nil {
		return curated.Errorf("msu1: %v", err)
	}

	pcm, err := j.convert(data, opts.Loop)
	if err != nil {
		return curated.Errorf(InvalidAudio, j.name, err)
	}

	if err := os.WriteFile(j.dst, pcm, 0644); err != nil {
		return curated.Errorf("msu1: %v", err)
	}
	logger.Logf(opts.log(), logTag, "converted %s to %s (%s)", j.name, filepath.Base(j.dst), humanize.Bytes(uint64(len(pcm))))

	return nil
}

// program returns the data for the program ROM. the result is nil if the
// program ROM is copied from the pack without change
func program(pack *archivefs.Archive, opts Options) ([]byte, error) {
	if pack.Has(patchFile) {
		return patchROM(pack, opts)
	}

	if opts.Method != SD2SNES {
		return nil, nil
	}

	var rom []byte
	var seen []string

	for _, p := range romPieces {
		names, err := pack.Fetch(p)
		if err != nil {
			return nil, curated.Errorf("msu1: %v", err)
		}

		for _, n := range names {
			if slices.Contains(seen, n) {
				continue // for loop
			}
			seen = append(seen, n)

			d, err := pack.Extract(n)
			if err != nil {
				return nil, curated.Errorf("msu1: %v", err)
			}
			rom = append(rom, d...)
		}
	}

	return rom, nil
}

func patchROM(pack *archivefs.Archive, opts Options) ([]byte, error) {
	data, err := pack.Extract(patchFile)
	if err != nil {
		return nil, curated.Errorf("msu1: %v", err)
	}

	ld := romloader.NewLoader(opts.ROM)
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf("msu1: %v", err)
	}

	format := patch.BPS
	if opts.ViolateBPS {
		format = patch.BPSLenient
	}

	p, res := format.Load(data)
	if res != patch.Success {
		return nil, patchError(res, nil)
	}

	rom, res := patch.NewTarget(p, len(ld.Data))
	if res != patch.Success {
		return nil, patchError(res, p)
	}

	res = p.Apply(ld.Data, rom)
	if res != patch.Success {
		return nil, patchError(res, p)
	}

	logger.Logf(opts.log(), logTag, "applied %s patch to %s", format.Name(), ld.ShortName())

	return rom, nil
}

// patchError converts a patch.Result into an error suitable for the user
func patchError(res patch.Result, p patch.Patch) error {
	switch res {
	case patch.PatchInvalidHeader:
		return curated.Errorf(PatchHeaderInvalid, res)
	case patch.SourceTooSmall:
		return curated.Errorf(ROMTooSmall, res)
	case patch.SourceChecksumInvalid:
		if bps, ok := p.(*patch.BPSPatch); ok {
			return curated.Errorf(ROMIncompatible, bps.SourceChecksum, res)
		}
	}
	return curated.Errorf(PatchCorrupt, res)
}
