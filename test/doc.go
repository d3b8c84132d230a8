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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. The types currently supported are bool
// and error. The nil value is considered a success, because of how errors
// usually work in Go.
//
// ExpectEquality() and ExpectInequality() compare values of the same
// comparable type. The Demand*() variants stop the test immediately on
// failure, which is useful when the value is used by further tests. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for later comparison.
package test
