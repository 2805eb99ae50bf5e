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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first call NewArgs()
// with the array of arguments and then Parse() with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes and
// sub-modes.
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. For example, handling exactly
// two arguments:
//
//	switch len(md.RemainingArgs()) {
//	case 2:
//		apply(md.GetArg(0), md.GetArg(1))
//	default:
//		return fmt.Errorf("source and patch files required")
//	}
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	lenient := md.AddBool("lenient", false, "ignore source and target checksums")
//
// These flag functions return a pointer to a variable of the specified type.
// The initial value of these variables is the default value, the second
// argument in the function call above.
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In this
// context, a mode is a special command line argument that when specified, puts
// the program into a different mode of operation, in the same way as the go
// command has the build, doc, get and test modes.
//
// The modalflag package handles sub-modes with the AddSubModes() function.
// This function takes any number of string arguments, each one the name of a
// mode. The first mode is the default mode.
//
//	md.AddSubModes("apply", "info", "msu1")
//
// For simplicity, all sub-mode comparisons are case insensitive and the Mode()
// function returns the mode in upper case.
//
// Subsequent calls to Parse() will then process flags in the normal way but
// unlike the regular flag.Parse() function will check to see if the first
// argument after the flags is one of these modes. If it is, then the
// RemainingArgs() function will return all the arguments after the flags AND
// the mode selector.
//
//	md.Parse()
//	switch md.Mode() {
//	case "MSU1":
//		md.NewMode()
//		method := md.AddString("method", "gamepak", "export method")
//		p, err := md.Parse()
//		...
//	}
//
// This second call to Parse() will check for any additional flags and any
// further sub-modes. Modes can be chained together as deeply as required.
package modalflag
