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
	"net/http"
	"testing"
	"time"
)

// SetLimits changes the data size limit and the HTTP timeout for the duration
// of the test
func SetLimits(t *testing.T, size int64, timeout time.Duration) {
	t.Helper()

	prevSize, prevClient := maxDataSize, client
	maxDataSize = size
	client = &http.Client{Timeout: timeout}

	t.Cleanup(func() {
		maxDataSize, client = prevSize, prevClient
	})
}
