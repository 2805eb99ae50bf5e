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

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is highlighted and repeat counts are dimmed.
//
// Whether color is used at all is decided by the fatih/color package, which
// disables it when the output is not a terminal or when the NO_COLOR
// environment variable is set.
type Colorizer struct {
	out    io.Writer
	tag    *color.Color
	repeat *color.Color
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:    out,
		tag:    color.New(color.FgCyan, color.Bold),
		repeat: color.New(color.Faint),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue // for loop
		}

		var s strings.Builder

		body := l
		if tag, detail, ok := strings.Cut(l, ": "); ok {
			s.WriteString(c.tag.Sprint(tag))
			s.WriteString(": ")
			body = detail
		}

		if i := strings.LastIndex(body, " (repeat x"); i >= 0 {
			s.WriteString(body[:i])
			s.WriteString(c.repeat.Sprint(strings.TrimRight(body[i:], "\n")))
			if strings.HasSuffix(body, "\n") {
				s.WriteString("\n")
			}
		} else {
			s.WriteString(body)
		}

		if _, err := io.WriteString(c.out, s.String()); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
