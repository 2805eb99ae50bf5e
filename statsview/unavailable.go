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


//go:build !statsview

package statsview

import (
	"context"
	"fmt"
	"io"
)

// Address of the statistics server, had it been available.
const Address = "localhost:12600"

// Launch does nothing except say that the statistics server is unavailable.
func Launch(_ context.Context, output io.Writer) {
	fmt.Fprintln(output, "stats server not available in this build")
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return false
}
