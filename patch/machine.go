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

package patch

import "fmt"

// state of an apply operation. all formats move through the same states in
// the same order
type state int

const (
	parsingHeader state = iota
	streamingInstructions
	validatingTrailer
	stateDone
	stateError
)

func (s state) String() string {
	switch s {
	case parsingHeader:
		return "parsing header"
	case streamingInstructions:
		return "streaming instructions"
	case validatingTrailer:
		return "validating trailer"
	case stateDone:
		return "done"
	case stateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// machine enforces forward-only movement through the apply states. the zero
// value is in the parsingHeader state
type machine struct {
	state  state
	result Result
}

// advance moves the machine to a later state. moving backwards or out of a
// terminal state is a programming error
func (m *machine) advance(s state) {
	if m.state >= stateDone || s <= m.state {
		panic(fmt.Sprintf("patch: illegal state transition: %s -> %s", m.state, s))
	}
	m.state = s
}

// fail moves the machine to the error state and returns the result
func (m *machine) fail(r Result) Result {
	if m.state >= stateDone {
		panic(fmt.Sprintf("patch: illegal state transition: %s -> %s", m.state, stateError))
	}
	m.state = stateError
	m.result = r
	return r
}

// done moves the machine to the done state. it can only be called after the
// trailer has been validated
func (m *machine) done() Result {
	if m.state != validatingTrailer {
		panic(fmt.Sprintf("patch: illegal state transition: %s -> %s", m.state, stateDone))
	}
	m.state = stateDone
	m.result = Success
	return Success
}
