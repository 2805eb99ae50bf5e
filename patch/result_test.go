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

package patch_test

import (
	"errors"
	"testing"

	"github.com/ramus-patch/ramus/curated"
	"github.com/ramus-patch/ramus/patch"
	"github.com/ramus-patch/ramus/test"
)

func TestResultStrings(t *testing.T) {
	test.ExpectEquality(t, patch.Success.String(), "success")
	test.ExpectEquality(t, patch.PatchChecksumInvalid.String(), "patch_checksum_invalid")
	test.ExpectEquality(t, patch.OutOfBounds.String(), "out_of_bounds")
	test.ExpectEquality(t, patch.Result(100).String(), "result(100)")

	test.ExpectEquality(t, patch.SourceTooSmall.Error(), "patch: source is too small")
	test.ExpectEquality(t, patch.Result(100).Error(), "patch: result(100)")
}

func TestResultErr(t *testing.T) {
	test.ExpectSuccess(t, patch.Success.Err() == nil)
	test.ExpectSuccess(t, patch.Success)
	test.ExpectFailure(t, patch.PatchTruncated)
	test.ExpectFailure(t, patch.Unknown)

	// results can be found in an error chain
	err := curated.Errorf("ramus: %v", patch.SourceChecksumInvalid.Err())
	test.ExpectSuccess(t, errors.Is(err, patch.SourceChecksumInvalid))
	test.ExpectFailure(t, errors.Is(err, patch.TargetChecksumInvalid))

	var res patch.Result
	test.ExpectSuccess(t, errors.As(err, &res))
	test.ExpectEquality(t, res, patch.SourceChecksumInvalid)
}

func TestResultCategory(t *testing.T) {
	tests := []struct {
		res         patch.Result
		category    patch.Category
		advisory    bool
		recoverable bool
	}{
		{patch.Success, patch.NoError, false, false},
		{patch.Unknown, patch.FormatError, false, false},
		{patch.PatchTooSmall, patch.FormatError, false, false},
		{patch.PatchInvalidHeader, patch.FormatError, false, false},
		{patch.PatchInvalidTrailer, patch.FormatError, false, false},
		{patch.PatchTruncated, patch.FormatError, false, false},
		{patch.SourceTooSmall, patch.SizeError, false, true},
		{patch.TargetTooSmall, patch.SizeError, false, true},
		{patch.PatchChecksumInvalid, patch.ChecksumError, false, false},
		{patch.SourceChecksumInvalid, patch.ChecksumError, true, true},
		{patch.TargetChecksumInvalid, patch.ChecksumError, false, false},
		{patch.OutOfBounds, patch.BoundsError, false, false},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, tt.res.Category(), tt.category, tt.res)
		test.ExpectEquality(t, tt.res.Advisory(), tt.advisory, tt.res)
		test.ExpectEquality(t, tt.res.Recoverable(), tt.recoverable, tt.res)
	}

	test.ExpectEquality(t, patch.ChecksumError.String(), "checksum error")
}
