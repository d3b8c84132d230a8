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

// Package byteorder identifies the byte-interleaving layout of an N64
// cartridge image and rewrites images into the native order.
//
// The layout of an image is identified by the first four bytes of the image
// (the header magic) read as a big-endian 32-bit value. There are three
// recognised values:
//
//	80 37 12 40   Native
//	40 12 37 80   WordSwapped   every 32-bit word is byte-reversed
//	12 40 80 37   ByteSwapped   the 16-bit halves of every word are exchanged
//
// Any other value is unrecognised. An image with an unrecognised layout cannot
// be corrected and the Correct() function will return an error rather than
// silently leaving the image in an unknown order.
//
// The two elementary transforms, ReverseWords() and SwapHalfWords(), operate
// in place on every complete 4-byte group of the buffer. Each transform is its
// own inverse.
package byteorder
