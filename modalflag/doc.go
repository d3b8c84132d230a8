// This file is part of Romload.
//
// Romload is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romload is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romload.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "NORMALISE", "LIST")
//	_, _ = md.Parse()
//
// The first argument after the flags is compared against the list of
// sub-modes. If it matches then the mode is selected and the argument is
// consumed, otherwise the first sub-mode in the list is selected as the
// default. Comparisons are case insensitive and sub-modes are always reported
// in upper case.
//
// Flags for the selected mode are then added after a call to NewMode() and
// parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stdout")
//		_, _ = md.Parse()
//	}
//
// Help is handled automatically. When the -help or -h flag is found the list
// of flags and available sub-modes is written to the Output field and Parse()
// returns ParseHelp.
package modalflag
