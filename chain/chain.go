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


package chain

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/logger"
	"github.com/ramus-patch/ramus/patch"
	"github.com/ramus-patch/ramus/romloader"
)

const logTag = "chain"

// Sentinel error patterns.
const (
	InvalidScript = "chain: invalid script: %v"
	StepFailed    = "chain: step %d (%s): %v"
)

// Script describes the patches to apply and the data to apply them to.
type Script struct {
	Source  string   `yaml:"source"`
	Target  string   `yaml:"target"`
	Lenient bool     `yaml:"lenient"`
	Patches []string `yaml:"patches"`

	// relative filenames are relative to this directory
	dir string
}

// Parse the YAML script. Unknown fields are an error.
func Parse(data []byte) (Script, error) {
	var s Script

	if err := yaml.UnmarshalWithOptions(data, &s, yaml.Strict()); err != nil {
		return Script{}, curated.Errorf(InvalidScript, err)
	}

	if s.Source == "" {
		return Script{}, curated.Errorf(InvalidScript, "no source")
	}
	if len(s.Patches) == 0 {
		return Script{}, curated.Errorf(InvalidScript, "no patches")
	}

	return s, nil
}

// Load and parse the script file.
func Load(filename string) (Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Script{}, curated.Errorf("chain: %v", err)
	}

	s, err := Parse(data)
	if err != nil {
		return Script{}, err
	}
	s.dir = filepath.Dir(filename)

	return s, nil
}

// resolve the filename relative to the directory of the script
func (s Script) resolve(filename string) string {
	if u, err := url.Parse(filename); err == nil && len(u.Scheme) > 1 {
		return filename
	}
	if s.dir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(s.dir, filename)
}

// Step is the outcome of a single patch in the script.
type Step struct {
	Patch  string
	Format string
	Size   int
}

// Run the script. Patches are applied in order and the first failure stops
// the script. The result is written to the target file if one is specified.
func (s Script) Run(perm logger.Permission) ([]byte, []Step, error) {
	ld := romloader.NewLoader(s.resolve(s.Source))
	if err := ld.Load(); err != nil {
		return nil, nil, curated.Errorf("chain: %v", err)
	}

	data := ld.Data
	steps := make([]Step, 0, len(s.Patches))

	for i, p := range s.Patches {
		format, err := romloader.PatchFormat(p, s.Lenient)
		if err != nil {
			return nil, steps, curated.Errorf(StepFailed, i+1, p, err)
		}

		pld := romloader.NewLoader(s.resolve(p))
		if err := pld.Load(); err != nil {
			return nil, steps, curated.Errorf(StepFailed, i+1, p, err)
		}

		out, res := patch.Apply(format, pld.Data, data)
		if res != patch.Success {
			return nil, steps, curated.Errorf(StepFailed, i+1, p, res)
		}

		logger.Logf(perm, logTag, "%s: %s patch applied (%s)", pld.ShortName(), format.Name(), humanize.Bytes(uint64(len(out))))

		steps = append(steps, Step{
			Patch:  p,
			Format: format.Name(),
			Size:   len(out),
		})
		data = out
	}

	if s.Target != "" {
		if err := romloader.WriteFile(s.resolve(s.Target), data); err != nil {
			return nil, steps, curated.Errorf("chain: %v", err)
		}
		logger.Logf(perm, logTag, "wrote %s", s.Target)
	}

	return data, steps, nil
}
