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
	"io"

	"github.com/ramus-patch/ramus/logger"
	"github.com/ramus-patch/ramus/modalflag"
	"github.com/ramus-patch/ramus/msu1"
	"github.com/ramus-patch/ramus/paths"
	"github.com/ramus-patch/ramus/prefs"
)

// name of the preferences file in the resource path
const prefsFile = "preferences"

// preferences are the defaults for command line flags. the values can be
// changed with the -save flag of each mode
type preferences struct {
	dsk *prefs.Disk

	lenient prefs.Bool
	method  prefs.String
	loop    prefs.Int
	workers prefs.Int
	echo    prefs.Bool
}

// setter is satisfied by all prefs types
type setter interface {
	Set(prefs.Value) error
}

func newPreferences(output io.Writer) (*preferences, error) {
	p := &preferences{}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	// defaults
	p.lenient.Set(false)
	p.method.Set(msu1.GamePak.String())
	p.loop.Set(0)
	p.workers.Set(0)
	p.echo.Set(false)

	p.method.SetHookPre(func(v prefs.Value) error {
		_, err := msu1.ParseMethod(v.(string))
		return err
	})

	p.echo.SetHookPost(func(v prefs.Value) error {
		setEcho(output, v.(bool))
		return nil
	})

	err = p.dsk.Add("bps.lenient", &p.lenient)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("msu1.method", &p.method)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("msu1.loop", &p.loop)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("msu1.workers", &p.workers)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("log.echo", &p.echo)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// save the values of the flags that were set on the command line. the flags
// argument maps flag names to the preference value they are saved to
func (p *preferences) save(md *modalflag.Modes, flags map[string]setter) error {
	var err error
	md.Visit(func(name string, value string) {
		if s, ok := flags[name]; ok && err == nil {
			err = s.Set(value)
		}
	})
	if err != nil {
		return err
	}
	return p.dsk.Save()
}

// setEcho turns log echoing on or off
func setEcho(output io.Writer, echo bool) {
	if echo {
		logger.SetEcho(logger.NewColorizer(output), false)
	} else {
		logger.SetEcho(nil, false)
	}
}
