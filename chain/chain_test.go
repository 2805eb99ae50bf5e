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


package chain_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ramus-patch/ramus/chain"
	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/logger"
	"github.com/ramus-patch/ramus/patch"
	"github.com/ramus-patch/ramus/romloader"
	"github.com/ramus-patch/ramus/test"
)

var quiet = logger.Quiet(true)

// writeFiles creates the test files in dir: a source ROM, a BPS patch from
// the ROM to an intermediate result and an IPS patch to the final result. the
// final result is returned
func writeFiles(t *testing.T, dir string) []byte {
	t.Helper()

	source := []byte("the quick brown fox")
	middle := []byte("the quick brown fox jumps")

	b := patch.NewBPSBuilder(len(source), len(middle), "")
	b.SourceRead(len(source))
	b.TargetRead([]byte(" jumps"))
	bps, err := b.Bytes(source, middle)
	test.DemandSuccess(t, err)

	ib := patch.NewIPSBuilder()
	ib.Literal(4, []byte("QUICK"))
	ib.RLE(25, 3, '!')
	ips, err := ib.Bytes()
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "game.sfc"), source, 0644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "first.bps"), bps, 0644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "second.ips"), ips, 0644))

	return []byte("the QUICK brown fox jumps!!!")
}

func writeScript(t *testing.T, dir string, script string) string {
	t.Helper()
	filename := filepath.Join(dir, "script.yaml")
	test.DemandSuccess(t, os.WriteFile(filename, []byte(script), 0644))
	return filename
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	want := writeFiles(t, dir)

	s, err := chain.Load(writeScript(t, dir, `
source: game.sfc
target: out.sfc.zst
patches:
  - first.bps
  - second.ips
`))
	test.DemandSuccess(t, err)

	data, steps, err := s.Run(quiet)
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, data, want)

	test.ExpectEquality(t, len(steps), 2)
	test.ExpectEquality(t, steps[0].Format, patch.BPS.Name())
	test.ExpectEquality(t, steps[0].Size, 25)
	test.ExpectEquality(t, steps[1].Format, patch.IPS.Name())
	test.ExpectEquality(t, steps[1].Size, len(want))

	// target was compressed
	ld := romloader.NewLoader(filepath.Join(dir, "out.sfc.zst"))
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Compressed, true)
	test.ExpectBytes(t, ld.Data, want)
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	// the BPS patch does not apply to the output of the IPS patch
	s, err := chain.Load(writeScript(t, dir, `
source: game.sfc
patches:
  - second.ips
  - first.bps
`))
	test.DemandSuccess(t, err)

	_, steps, err := s.Run(quiet)
	test.ExpectSuccess(t, curated.Is(err, chain.StepFailed))
	test.ExpectSuccess(t, errors.Is(err, patch.SourceChecksumInvalid))
	test.ExpectEquality(t, len(steps), 1)

	s, err = chain.Load(writeScript(t, dir, `
source: game.sfc
patches:
  - first.xdelta
`))
	test.DemandSuccess(t, err)
	_, _, err = s.Run(quiet)
	test.ExpectSuccess(t, curated.Has(err, romloader.UnsupportedPatch))
}

func TestRunLenient(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir)

	// the source is different to the one the BPS patch was made for
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "other.sfc"), []byte("THE QUICK BROWN FOX AND MORE"), 0644))

	script := `
source: other.sfc
lenient: %s
patches:
  - first.bps
`
	s, err := chain.Load(writeScript(t, dir, fmt.Sprintf(script, "false")))
	test.DemandSuccess(t, err)
	_, _, err = s.Run(quiet)
	test.ExpectSuccess(t, errors.Is(err, patch.SourceChecksumInvalid))

	s, err = chain.Load(writeScript(t, dir, fmt.Sprintf(script, "true")))
	test.DemandSuccess(t, err)
	data, steps, err := s.Run(quiet)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, steps[0].Format, patch.BPSLenient.Name())
	test.ExpectBytes(t, data, []byte("THE QUICK BROWN FOX jumpsORE"))
}

func TestParse(t *testing.T) {
	_, err := chain.Parse([]byte("patches: [a.bps]"))
	test.ExpectSuccess(t, curated.Is(err, chain.InvalidScript))

	_, err = chain.Parse([]byte("source: a.sfc"))
	test.ExpectSuccess(t, curated.Is(err, chain.InvalidScript))

	_, err = chain.Parse([]byte("source: a.sfc\npatches: [a.bps]\nunknown: true\n"))
	test.ExpectSuccess(t, curated.Is(err, chain.InvalidScript))

	_, err = chain.Parse([]byte("source: [\n"))
	test.ExpectSuccess(t, curated.Is(err, chain.InvalidScript))

	s, err := chain.Parse([]byte("source: a.sfc\ntarget: b.sfc\nlenient: true\npatches:\n  - a.bps\n  - b.ips\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Source, "a.sfc")
	test.ExpectEquality(t, s.Target, "b.sfc")
	test.ExpectEquality(t, s.Lenient, true)
	test.ExpectEquality(t, len(s.Patches), 2)
}
