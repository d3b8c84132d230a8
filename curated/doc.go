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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for should be
// stored as a const string. For example:
//
//	const UnrecognisedLayout = "byteorder: unrecognised layout (%08x)"
//
//	e := curated.Errorf(UnrecognisedLayout, magic)
//
//	if curated.Is(e, UnrecognisedLayout) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. An error is wrapped by passing it as a value with the %v
// verb:
//
//	f := curated.Errorf("cartridgeloader: %v", e)
//
//	if curated.Has(f, UnrecognisedLayout) {
//		fmt.Println("true")
//	}
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Chains are thought of as being composed of parts separated
// by the sub-string ': '. So a chain built with the same prefix at two levels
// of the call stack:
//
//	cartridgeloader: cartridgeloader: file not found
//
// will be reported as:
//
//	cartridgeloader: file not found
package curated
