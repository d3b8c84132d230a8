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

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/romload/curated"
)

// Sentinal error patterns.
const (
	UnrecognisedLayout = "byteorder: unrecognised layout (%08x)"
	ShortHeader        = "byteorder: header too short (%d bytes)"
)

// MagicSize is the number of bytes at the start of an image that make up the
// header magic.
const MagicSize = 4

// Magic is the first 32-bit value of a cartridge image.
type Magic uint32

// List of recognised header magic values.
const (
	Native      Magic = 0x80371240
	WordSwapped Magic = 0x40123780
	ByteSwapped Magic = 0x12408037
)

func (m Magic) String() string {
	return fmt.Sprintf("%08x", uint32(m))
}

// ReadMagic returns the header magic of an image. Only the first four bytes of
// the header are considered.
func ReadMagic(header []byte) (Magic, error) {
	if len(header) < MagicSize {
		return 0, curated.Errorf(ShortHeader, len(header))
	}
	return Magic(binary.BigEndian.Uint32(header)), nil
}

// Layout describes how the bytes in an image are arranged relative to the
// native order.
type Layout int

// List of valid Layout values.
const (
	LayoutUnrecognised Layout = iota
	LayoutNative
	LayoutWordSwapped
	LayoutByteSwapped
)

func (l Layout) String() string {
	switch l {
	case LayoutNative:
		return "native"
	case LayoutWordSwapped:
		return "word swapped"
	case LayoutByteSwapped:
		return "byte swapped"
	}
	return "unrecognised"
}

// Layout returns the layout indicated by the header magic.
func (m Magic) Layout() Layout {
	switch m {
	case Native:
		return LayoutNative
	case WordSwapped:
		return LayoutWordSwapped
	case ByteSwapped:
		return LayoutByteSwapped
	}
	return LayoutUnrecognised
}

// Recognised returns true if the magic is one of the three recognised values.
func (m Magic) Recognised() bool {
	return m.Layout() != LayoutUnrecognised
}

// Correct rewrites the buffer in place so that it is in native order. The
// buffer is assumed to be in the layout indicated by the magic value.
//
// The buffer is not touched if the magic is unrecognised and an error is
// returned.
func (m Magic) Correct(b []byte) error {
	switch m.Layout() {
	case LayoutNative:
		// already in native order
	case LayoutWordSwapped:
		ReverseWords(b)
	case LayoutByteSwapped:
		SwapHalfWords(b)
	case LayoutUnrecognised:
		return curated.Errorf(UnrecognisedLayout, uint32(m))
	}
	return nil
}
