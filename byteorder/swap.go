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

package byteorder

// ReverseWords reverses the order of the bytes in every 4-byte group:
//
//	[a b c d] -> [d c b a]
//
// Trailing bytes that do not make up a complete group are not touched.
func ReverseWords(b []byte) {
	for i := 0; i+3 < len(b); i += 4 {
		b[i], b[i+3] = b[i+3], b[i]
		b[i+1], b[i+2] = b[i+2], b[i+1]
	}
}

// SwapHalfWords exchanges the two 16-bit halves of every 4-byte group:
//
//	[a b c d] -> [c d a b]
//
// Trailing bytes that do not make up a complete group are not touched.
func SwapHalfWords(b []byte) {
	for i := 0; i+3 < len(b); i += 4 {
		b[i], b[i+2] = b[i+2], b[i]
		b[i+1], b[i+3] = b[i+3], b[i+1]
	}
}
