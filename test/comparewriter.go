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

package test

import "strings"

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
	writes int
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	tw.writes++
	return len(p), nil
}

// Clear empties the buffer and resets the write count.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
	tw.writes = 0
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Contains returns true if the buffered output contains the sub-string.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(string(tw.buffer), s)
}

// Lines returns the number of non-empty lines in the buffer.
func (tw *CompareWriter) Lines() int {
	var n int
	for _, l := range strings.Split(string(tw.buffer), "\n") {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}

// Writes returns the number of calls to Write() since the last Clear().
func (tw *CompareWriter) Writes() int {
	return tw.writes
}

// implements Stringer interface.
func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}
