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


package terminal

import (
	"fmt"
	"io"
	"strings"
)

// the width of the progress bar if the terminal width is not known
const defaultWidth = 40

// Progress draws a progress bar on a single line of a terminal.
type Progress struct {
	output io.Writer
	label  string
	width  int
}

// NewProgress is the preferred method of initialisation for the Progress
// type. The width is the number of columns available for the entire line. A
// width of zero or less selects a default width.
func NewProgress(output io.Writer, label string, width int) *Progress {
	if width <= 0 {
		width = defaultWidth
	}
	return &Progress{
		output: output,
		label:  label,
		width:  width,
	}
}

// Update redraws the progress bar. The line is ended when done equals total.
func (p *Progress) Update(done int, total int) {
	counter := fmt.Sprintf(" %d/%d", done, total)

	// space for the label, brackets and counter
	bar := p.width - len(p.label) - len(counter) - 3
	if bar < 1 {
		bar = 1
	}

	fill := 0
	if total > 0 {
		fill = min(bar, bar*done/total)
	}

	s := fmt.Sprintf("\r%s [%s%s]%s", p.label, strings.Repeat("=", fill), strings.Repeat(" ", bar-fill), counter)
	if done >= total {
		s = fmt.Sprintf("%s\n", s)
	}

	io.WriteString(p.output, s)
}
