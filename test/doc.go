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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of any
// comparable type. Where comparing values of different type is required,
// conversion should happen at the call site, so that the intention of the
// test is obvious.
//
// The ExpectSuccess() and ExpectFailure() functions test for success values
// and failure values. A bool true or a nil error is a success. For types that
// have an Err() method returning an error (such as the Result type of the
// patch package) the value of Err() is used.
//
// The nil value is considered a success. This is because of how errors are
// usually tested in Go: nil to indicate no error.
//
// ExpectBytes() compares byte slices and reports the difference with the
// go-cmp package. Patch output is usually too long to be usefully printed in
// full.
//
// The Demand*() functions are the same as the Expect*() functions except that
// a failure is fatal to the test.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
